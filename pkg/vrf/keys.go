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
package vrf

import (
	"fmt"

	"github.com/consensys/stark-vrf/pkg/curve"
	"github.com/consensys/stark-vrf/pkg/util/field/felt"
	"github.com/consensys/stark-vrf/pkg/util/field/scalar"
)

// SecretKey is a non-zero element of the scalar field.  It is never part of a
// proof.
type SecretKey struct {
	value scalar.Element
}

// NewSecretKey constructs a secret key, failing if the given scalar is zero.
func NewSecretKey(value scalar.Element) (SecretKey, error) {
	if value.IsZero() {
		return SecretKey{}, errorf("NewSecretKey", ErrInvalidSecretKey, "zero")
	}
	//
	return SecretKey{value}, nil
}

// ParseSecretKey parses a secret key from its decimal (or "0x" prefixed
// hexadecimal) representation.  Values which are zero, negative, or not below
// the group order are rejected rather than reduced.
func ParseSecretKey(text string) (SecretKey, error) {
	value, err := scalar.Parse(text)
	if err != nil {
		return SecretKey{}, &Error{"ParseSecretKey", errJoin(ErrInvalidSecretKey, err)}
	}
	//
	return NewSecretKey(value)
}

// GenerateKey samples a fresh secret key from the system's secure random source.
func GenerateKey() (SecretKey, error) {
	value, err := scalar.Random()
	if err != nil {
		return SecretKey{}, &Error{"GenerateKey", err}
	}
	//
	return SecretKey{value}, nil
}

// NewPublicKey constructs a public key from its affine coordinates, failing if
// they do not describe a point on the curve.
func NewPublicKey(x felt.Element, y felt.Element) (curve.Point, error) {
	pk, err := curve.NewPoint(x, y)
	if err != nil {
		return curve.Infinity(), &Error{"NewPublicKey", errJoin(ErrInvalidPublicKey, err)}
	}
	//
	return pk, nil
}

// ParsePublicKey parses a public key from the decimal (or "0x" prefixed
// hexadecimal) representation of its affine coordinates.
func ParsePublicKey(x string, y string) (curve.Point, error) {
	px, err := felt.Parse(x)
	if err != nil {
		return curve.Infinity(), &Error{"ParsePublicKey", errJoin(ErrInvalidPublicKey, fmt.Errorf("x: %w", err))}
	}
	//
	py, err := felt.Parse(y)
	if err != nil {
		return curve.Infinity(), &Error{"ParsePublicKey", errJoin(ErrInvalidPublicKey, fmt.Errorf("y: %w", err))}
	}
	//
	return NewPublicKey(px, py)
}

// Scalar returns the underlying scalar of this key.
func (sk SecretKey) Scalar() scalar.Element {
	return sk.value
}

// IsZero holds for the zero value of SecretKey, which is not a valid key.
func (sk SecretKey) IsZero() bool {
	return sk.value.IsZero()
}

// PublicKey returns generator·sk.
func (sk SecretKey) PublicKey() curve.Point {
	return curve.ScalarBaseMul(sk.value)
}

// toFelt returns the key as a base field element.  This is always possible since
// the group order is below the base field modulus.
func (sk SecretKey) toFelt() felt.Element {
	x, err := felt.FromBigInt(sk.value.BigInt())
	if err != nil {
		panic("group order exceeds base field modulus")
	}
	//
	return x
}
