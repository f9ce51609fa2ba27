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
package scalar

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/stark-curve/fr"
	"github.com/consensys/stark-vrf/pkg/util/field"
)

// Bytes is the width of the canonical big-endian encoding of an Element.
const Bytes = fr.Bytes

// Element wraps fr.Element (the scalar field of the STARK curve, whose modulus
// is the order of the curve group) to conform to the field.Element interface.
type Element struct {
	fr.Element
}

// New constructs an element from a uint64.
func New(val uint64) Element {
	return Element{fr.NewElement(val)}
}

// FromBigInt constructs an element from a canonical value in [0, r).
func FromBigInt(val *big.Int) (Element, error) {
	var elem Element
	//
	return elem.SetBigInt(val)
}

// Parse constructs an element from its decimal (or "0x" prefixed hexadecimal)
// representation.  Out of range values are rejected.
func Parse(text string) (Element, error) {
	return field.Parse[Element](text)
}

// FromBytes decodes a canonical 32-byte big-endian encoding.
func FromBytes(bytes []byte) (Element, error) {
	var elem fr.Element
	//
	if err := elem.SetBytesCanonical(bytes); err != nil {
		return Element{}, fmt.Errorf("invalid scalar field encoding: %w", err)
	}
	//
	return Element{elem}, nil
}

// Reduce maps an arbitrary non-negative integer into the scalar field by
// reduction modulo r.  This is only appropriate for hash outputs, where the
// bias introduced is negligible; configured values must use FromBigInt.
func Reduce(val *big.Int) Element {
	var res fr.Element
	//
	res.SetBigInt(val)
	//
	return Element{res}
}

// Random samples a uniformly random non-zero element.
func Random() (Element, error) {
	var res fr.Element
	//
	for res.IsZero() {
		if _, err := res.SetRandom(); err != nil {
			return Element{}, err
		}
	}
	//
	return Element{res}, nil
}

// Modulus returns the modulus r of the scalar field.
func Modulus() *big.Int {
	return fr.Modulus()
}

// Modulus implementation for the field.Element interface.
func (x Element) Modulus() *big.Int {
	return fr.Modulus()
}

// Add x + y
func (x Element) Add(y Element) Element {
	var res fr.Element
	//
	res.Add(&x.Element, &y.Element)
	//
	return Element{res}
}

// Sub x - y
func (x Element) Sub(y Element) Element {
	var res fr.Element
	//
	res.Sub(&x.Element, &y.Element)
	//
	return Element{res}
}

// Mul x * y
func (x Element) Mul(y Element) Element {
	var res fr.Element
	//
	res.Mul(&x.Element, &y.Element)
	//
	return Element{res}
}

// Neg -x
func (x Element) Neg() Element {
	var res fr.Element
	//
	res.Neg(&x.Element)
	//
	return Element{res}
}

// Inverse x⁻¹.  Returns false if x = 0.
func (x Element) Inverse() (Element, bool) {
	if x.Element.IsZero() {
		return Element{}, false
	}
	//
	var res fr.Element
	//
	res.Inverse(&x.Element)
	//
	return Element{res}, true
}

// Cmp returns 1 if x > y, 0 if x = y, and -1 if x < y.
func (x Element) Cmp(y Element) int {
	return x.Element.Cmp(&y.Element)
}

// Equals returns true if x = y.
func (x Element) Equals(y Element) bool {
	return x.Element.Equal(&y.Element)
}

// IsZero implementation for the field.Element interface
func (x Element) IsZero() bool {
	return x.Element.IsZero()
}

// IsOne implementation for the field.Element interface
func (x Element) IsOne() bool {
	return x.Element.IsOne()
}

// SetUint64 implementation for the field.Element interface
func (x Element) SetUint64(val uint64) Element {
	return New(val)
}

// SetBigInt implementation for the field.Element interface
func (x Element) SetBigInt(val *big.Int) (Element, error) {
	var res fr.Element
	//
	if err := field.CheckRange(val, fr.Modulus()); err != nil {
		return Element{}, fmt.Errorf("invalid scalar field element: %w", err)
	}
	//
	res.SetBigInt(val)
	//
	return Element{res}, nil
}

// BigInt implementation for the field.Element interface
func (x Element) BigInt() *big.Int {
	return x.Element.BigInt(new(big.Int))
}

// Bytes returns the canonical big-endian encoding of x.
func (x Element) Bytes() []byte {
	bytes := x.Element.Bytes()
	//
	return bytes[:]
}

// String returns the canonical decimal representation of x.
func (x Element) String() string {
	return x.BigInt().String()
}

// Text implementation for the field.Element interface.  Unlike fp/fr, values
// close to the modulus are never rendered as negative numbers.
func (x Element) Text(base int) string {
	return x.BigInt().Text(base)
}
