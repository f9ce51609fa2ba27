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
	"github.com/consensys/stark-vrf/pkg/curve"
	"github.com/consensys/stark-vrf/pkg/util/field/felt"
)

// ECVRF is a verifiable random function engine bound to a single public key.
// An engine holds no mutable state and, hence, can be shared freely between
// goroutines.
type ECVRF struct {
	publicKey   curve.Point
	maxAttempts uint64
}

// Option configures an engine.
type Option func(*ECVRF)

// WithMaxEncodeAttempts bounds the number of candidates tried when mapping an
// input onto the curve.  Proofs remain verifiable by any engine whose bound
// exceeds the attempt at which the input was mapped.
func WithMaxEncodeAttempts(n uint64) Option {
	return func(v *ECVRF) {
		v.maxAttempts = n
	}
}

// New constructs an engine for the given public key, which must be a
// non-identity point on the curve.  Keys given as raw coordinates should be
// constructed with ParsePublicKey or NewPublicKey.
func New(publicKey curve.Point, options ...Option) (*ECVRF, error) {
	// The identity is the only point not on the curve.
	if !publicKey.IsOnCurve() {
		return nil, errorf("New", ErrInvalidPublicKey, "public key is the point at infinity")
	}
	//
	engine := &ECVRF{publicKey, DefaultMaxEncodeAttempts}
	//
	for _, option := range options {
		option(engine)
	}
	//
	return engine, nil
}

// PublicKey returns the public key this engine is bound to.
func (v *ECVRF) PublicKey() curve.Point {
	return v.publicKey
}

// HashToCurve maps an input onto the curve, as done when proving and
// verifying.
func (v *ECVRF) HashToCurve(input []felt.Element) (curve.Point, error) {
	h, _, ok := encodeToCurve(input, v.maxAttempts)
	//
	if !ok {
		return h, errorf("HashToCurve", ErrProofGeneration, "no curve point after %d attempts", v.maxAttempts)
	}
	//
	return h, nil
}

// Prove constructs a proof for the given input using the given secret key,
// which must correspond to the engine's public key.  Proving is deterministic:
// the same key and input always produce the same proof.
func (v *ECVRF) Prove(sk SecretKey, input []felt.Element) (Proof, error) {
	if sk.IsZero() {
		return Proof{}, errorf("Prove", ErrInvalidSecretKey, "secret key is zero")
	} else if !sk.PublicKey().Equals(v.publicKey) {
		return Proof{}, errorf("Prove", ErrInvalidSecretKey, "secret key does not match public key")
	}
	//
	h, _, ok := encodeToCurve(input, v.maxAttempts)
	if !ok {
		return Proof{}, errorf("Prove", ErrProofGeneration, "no curve point after %d attempts", v.maxAttempts)
	}
	//
	gamma := h.ScalarMul(sk.value)
	//
	k := nonce(sk, h)
	if k.IsZero() {
		return Proof{}, errorf("Prove", ErrProofGeneration, "degenerate nonce")
	}
	// Commitments
	u := curve.ScalarBaseMul(k)
	w := h.ScalarMul(k)
	//
	c := challenge(v.publicKey, h, gamma, u, w)
	s := k.Add(c.Mul(sk.value))
	//
	return Proof{gamma, c, s}, nil
}

// Verify checks a proof for the given input against the engine's public key.
// An error is returned only when the proof is malformed, or the input cannot
// be mapped onto the curve.  Otherwise, the result indicates whether or not
// the proof is valid.
func (v *ECVRF) Verify(input []felt.Element, proof Proof) (bool, error) {
	if err := proof.validate(); err != nil {
		return false, &Error{"Verify", err}
	}
	//
	h, _, ok := encodeToCurve(input, v.maxAttempts)
	if !ok {
		return false, errorf("Verify", ErrProofGeneration, "no curve point after %d attempts", v.maxAttempts)
	}
	// U' = s·G - c·pk
	u := curve.JointScalarBaseMul(proof.S, v.publicKey, proof.C.Neg())
	// V' = s·H - c·gamma
	w := h.ToProjective().ScalarMul(proof.S).
		Add(proof.Gamma.ToProjective().ScalarMul(proof.C).Neg()).
		ToAffine()
	//
	return challenge(v.publicKey, h, proof.Gamma, u, w).Equals(proof.C), nil
}

// ProofToHash extracts the output of the VRF from a proof.  This does not
// check the proof is valid, only that it is well formed.
func (v *ECVRF) ProofToHash(proof Proof) (felt.Element, error) {
	return ProofToHash(proof)
}

// HashToSqrtRatioHint computes the square root ratio witness for the
// candidate x-coordinate from which the input is mapped onto the curve, along
// with the attempt which produced that candidate.  The witness is the
// y-coordinate of the mapped point, allowing a verifier with no square root
// operation (e.g. a contract) to recover the point using only multiplications
// (see CheckSqrtRatioHint).  This is the same witness consumed by Prove.
func (v *ECVRF) HashToSqrtRatioHint(input []felt.Element) (felt.Element, uint64, error) {
	h, attempt, ok := encodeToCurve(input, v.maxAttempts)
	//
	if !ok {
		return felt.Element{}, attempt, errorf("HashToSqrtRatioHint", ErrProofGeneration,
			"no curve point after %d attempts", v.maxAttempts)
	}
	//
	return h.Y(), attempt, nil
}

// CheckSqrtRatioHint recovers the point onto which an input is mapped from a
// witness produced by HashToSqrtRatioHint, using multiplications only.  The
// witness must be the canonical square root of the curve equation at the
// candidate x-coordinate for the given attempt.  Candidates for earlier
// attempts are not checked.
func (v *ECVRF) CheckSqrtRatioHint(input []felt.Element, attempt uint64, hint felt.Element) (curve.Point, error) {
	if attempt >= v.maxAttempts {
		return curve.Infinity(), errorf("CheckSqrtRatioHint", ErrMalformedProofEncoding,
			"attempt %d exceeds bound %d", attempt, v.maxAttempts)
	}
	//
	x := candidate(input, attempt)
	isSquare, valid := felt.CheckSqrtRatio(curve.Rhs(x), felt.New(1), hint)
	//
	if !valid || !isSquare {
		return curve.Infinity(), errorf("CheckSqrtRatioHint", ErrMalformedProofEncoding,
			"hint %s does not witness attempt %d", hint.String(), attempt)
	} else if hint.LexicographicallyLargest() {
		return curve.Infinity(), errorf("CheckSqrtRatioHint", ErrMalformedProofEncoding,
			"hint %s is not the canonical root", hint.String())
	}
	//
	h, err := curve.NewPoint(x, hint)
	if err != nil {
		return curve.Infinity(), &Error{"CheckSqrtRatioHint", errJoin(ErrMalformedProofEncoding, err)}
	}
	//
	return h, nil
}

// Verify checks a proof for the given input against a given public key.  This
// is a convenience for constructing an engine and verifying with it.
func Verify(publicKey curve.Point, input []felt.Element, proof Proof) (bool, error) {
	engine, err := New(publicKey)
	if err != nil {
		return false, err
	}
	//
	return engine.Verify(input, proof)
}

// ProofToHash extracts the output of the VRF from a proof.
func ProofToHash(proof Proof) (felt.Element, error) {
	if err := proof.validate(); err != nil {
		return felt.Element{}, &Error{"ProofToHash", err}
	}
	//
	return gammaToHash(proof.Gamma), nil
}
