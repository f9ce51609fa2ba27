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

// ProofSize is the number of bytes in the binary encoding of a proof.
const ProofSize = 2*felt.Bytes + 2*scalar.Bytes

// Proof attests that a given output was correctly derived from a given input
// under the secret key matching some public key.
type Proof struct {
	// Gamma is the input point multiplied by the secret key.
	Gamma curve.Point
	// C is the Schnorr challenge.
	C scalar.Element
	// S is the Schnorr response.
	S scalar.Element
}

// NewProof constructs a proof from its components, checking that gamma is a
// valid (non-identity) curve point.
func NewProof(gamma curve.Point, c scalar.Element, s scalar.Element) (Proof, error) {
	proof := Proof{gamma, c, s}
	//
	if err := proof.validate(); err != nil {
		return Proof{}, &Error{"NewProof", err}
	}
	//
	return proof, nil
}

// ParseProof decodes a proof from its binary encoding, which is the big-endian
// concatenation of gamma's coordinates, the challenge and the response.  Every
// component must be canonical (i.e. less than its modulus).
func ParseProof(bytes []byte) (Proof, error) {
	var (
		gx, gy felt.Element
		c, s   scalar.Element
		err    error
	)
	//
	if len(bytes) != ProofSize {
		return Proof{}, errorf("ParseProof", ErrMalformedProofEncoding, "expected %d bytes, got %d",
			ProofSize, len(bytes))
	}
	//
	if gx, err = felt.FromBytes(bytes[0:32]); err != nil {
		return Proof{}, &Error{"ParseProof", errJoin(ErrMalformedProofEncoding, err)}
	} else if gy, err = felt.FromBytes(bytes[32:64]); err != nil {
		return Proof{}, &Error{"ParseProof", errJoin(ErrMalformedProofEncoding, err)}
	} else if c, err = scalar.FromBytes(bytes[64:96]); err != nil {
		return Proof{}, &Error{"ParseProof", errJoin(ErrMalformedProofEncoding, err)}
	} else if s, err = scalar.FromBytes(bytes[96:128]); err != nil {
		return Proof{}, &Error{"ParseProof", errJoin(ErrMalformedProofEncoding, err)}
	}
	//
	return decodeProof("ParseProof", gx, gy, c, s)
}

// ParseProofText decodes a proof from the textual representation of its
// components.  Each may be given in decimal, or in hex with a "0x" prefix.
func ParseProofText(gammaX, gammaY, c, s string) (Proof, error) {
	var (
		gx, gy     felt.Element
		cval, sval scalar.Element
		err        error
	)
	//
	if gx, err = felt.Parse(gammaX); err != nil {
		return Proof{}, &Error{"ParseProofText", errJoin(ErrMalformedProofEncoding, fmt.Errorf("gamma.x: %w", err))}
	} else if gy, err = felt.Parse(gammaY); err != nil {
		return Proof{}, &Error{"ParseProofText", errJoin(ErrMalformedProofEncoding, fmt.Errorf("gamma.y: %w", err))}
	} else if cval, err = scalar.Parse(c); err != nil {
		return Proof{}, &Error{"ParseProofText", errJoin(ErrMalformedProofEncoding, fmt.Errorf("c: %w", err))}
	} else if sval, err = scalar.Parse(s); err != nil {
		return Proof{}, &Error{"ParseProofText", errJoin(ErrMalformedProofEncoding, fmt.Errorf("s: %w", err))}
	}
	//
	return decodeProof("ParseProofText", gx, gy, cval, sval)
}

func decodeProof(op string, gx, gy felt.Element, c, s scalar.Element) (Proof, error) {
	gamma, err := curve.NewPoint(gx, gy)
	//
	if err != nil {
		return Proof{}, &Error{op, errJoin(ErrMalformedProofEncoding, err)}
	}
	//
	return NewProof(gamma, c, s)
}

// Bytes returns the binary encoding of this proof.
func (p Proof) Bytes() []byte {
	bytes := make([]byte, 0, ProofSize)
	//
	bytes = append(bytes, p.Gamma.X().Bytes()...)
	bytes = append(bytes, p.Gamma.Y().Bytes()...)
	bytes = append(bytes, p.C.Bytes()...)
	//
	return append(bytes, p.S.Bytes()...)
}

// Equals checks whether two proofs are identical.
func (p Proof) Equals(q Proof) bool {
	return p.Gamma.Equals(q.Gamma) && p.C.Equals(q.C) && p.S.Equals(q.S)
}

func (p Proof) String() string {
	return fmt.Sprintf("{gamma=%s, c=%s, s=%s}", p.Gamma.String(), p.C.String(), p.S.String())
}

// validate checks that gamma is a non-identity point on the curve.
func (p Proof) validate() error {
	if p.Gamma.IsInfinity() {
		return fmt.Errorf("%w: gamma is the point at infinity", ErrMalformedProofEncoding)
	} else if !p.Gamma.IsOnCurve() {
		return fmt.Errorf("%w: gamma is not on the curve", ErrMalformedProofEncoding)
	}
	//
	return nil
}
