// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package field

import (
	"fmt"
	"math/big"
	"strings"
)

// An Element of a prime-order field.
type Element[Operand any] interface {
	fmt.Stringer
	// Add x+y
	Add(y Operand) Operand
	// Cmp returns 1 if x > y, 0 if x = y, and -1 if x < y.
	Cmp(y Operand) int
	// Equals returns true if x = y.
	Equals(y Operand) bool
	// Check whether this value is zero (or not).
	IsZero() bool
	// Check whether this value is one (or not).
	IsOne() bool
	// Return the modulus for the field in question.
	Modulus() *big.Int
	// Compute x * y
	Mul(y Operand) Operand
	// Compute -x
	Neg() Operand
	// Compute x⁻¹.  The second result is false iff x = 0, in which case no
	// inverse exists.
	Inverse() (Operand, bool)
	// Compute x - y
	Sub(y Operand) Operand
	// SetUint64 returns the element representing the given value.
	SetUint64(val uint64) Operand
	// SetBigInt returns the element representing the given value, or an error
	// if it lies outside the range [0, modulus).
	SetBigInt(val *big.Int) (Operand, error)
	// BigInt returns the canonical (non-Montgomery) value of x.
	BigInt() *big.Int
	// Text returns the numerical value of x in the given base.
	Text(base int) string
}

// Zero constructs a field element representing 0
func Zero[F Element[F]]() F {
	var element F
	//
	return element
}

// BigInt constructs a field element from a given big.Int.  Values which are
// negative or not below the modulus are rejected rather than reduced, since a
// silently reduced value is a different element.
func BigInt[F Element[F]](val *big.Int) (F, error) {
	var element F
	//
	return element.SetBigInt(val)
}

// Parse constructs a field element from its textual representation.  Decimal is
// the default, whilst a "0x" prefix selects hexadecimal.
func Parse[F Element[F]](text string) (F, error) {
	var (
		element F
		val     big.Int
	)
	//
	base, digits := 10, text
	//
	if strings.HasPrefix(text, "0x") || strings.HasPrefix(text, "0X") {
		base, digits = 16, text[2:]
	}
	//
	if _, ok := val.SetString(digits, base); !ok {
		return element, fmt.Errorf("invalid field element %q", text)
	}
	//
	return BigInt[F](&val)
}

// CheckRange returns an error if val is not a canonical representative of a
// field with the given modulus.
func CheckRange(val *big.Int, modulus *big.Int) error {
	if val.Sign() < 0 {
		return fmt.Errorf("negative value %s", val.String())
	} else if val.Cmp(modulus) >= 0 {
		return fmt.Errorf("value %s out of range (modulus %s)", val.String(), modulus.String())
	}
	//
	return nil
}
