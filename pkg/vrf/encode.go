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
	"github.com/consensys/stark-vrf/pkg/poseidon"
	"github.com/consensys/stark-vrf/pkg/util/field/felt"
	"github.com/consensys/stark-vrf/pkg/util/field/scalar"
)

// DefaultMaxEncodeAttempts bounds the number of candidate x-coordinates tried
// when mapping an input onto the curve.  Each candidate succeeds with
// probability one half, so exhausting this bound does not happen in practice.
const DefaultMaxEncodeAttempts = 256

// SuiteName identifies this construction.  It is absorbed (as a short string)
// ahead of every hash computed by the engine.
const SuiteName = "ECVRF-STARK-POSEIDON"

// Domain separators distinguishing the engine's uses of the hash.
const (
	encodeToCurveFront uint64 = 0x01
	challengeFront     uint64 = 0x02
	proofToHashFront   uint64 = 0x03
	nonceFront         uint64 = 0x04
	domainBack         uint64 = 0x00
)

var suite felt.Element

func init() {
	var err error
	//
	if suite, err = felt.FromShortString(SuiteName); err != nil {
		panic(err)
	}
}

// hashPrefixed hashes the suite and the given front separator, followed by
// the given elements and the back separator.
func hashPrefixed(front uint64, elements ...felt.Element) felt.Element {
	var sponge poseidon.Sponge
	//
	sponge.Absorb(suite, felt.New(front))
	sponge.Absorb(elements...)
	sponge.Absorb(felt.New(domainBack))
	//
	return sponge.Squeeze()
}

// candidate computes the candidate x-coordinate for a given input and attempt
// number.
func candidate(input []felt.Element, attempt uint64) felt.Element {
	var sponge poseidon.Sponge
	//
	sponge.Absorb(suite, felt.New(encodeToCurveFront))
	sponge.Absorb(input...)
	sponge.Absorb(felt.New(attempt), felt.New(domainBack))
	//
	return sponge.Squeeze()
}

// sqrtRatio computes the square root ratio witness for a given attempt,
// returning the candidate x-coordinate, whether it lies on the curve and the
// witness itself.  When it lies on the curve, the witness is the canonical
// y-coordinate.
func sqrtRatio(input []felt.Element, attempt uint64) (felt.Element, bool, felt.Element) {
	x := candidate(input, attempt)
	isSquare, hint := felt.SqrtRatio(curve.Rhs(x), felt.New(1))
	//
	return x, isSquare, hint
}

// encodeToCurve maps an input onto the curve by trying successive candidates
// until one lies on the curve.  Returns false if all attempts are exhausted.
func encodeToCurve(input []felt.Element, maxAttempts uint64) (curve.Point, uint64, bool) {
	for attempt := uint64(0); attempt < maxAttempts; attempt++ {
		x, isSquare, y := sqrtRatio(input, attempt)
		//
		if isSquare {
			// The curve has prime order, hence no point has y = 0.
			point, err := curve.NewPoint(x, y)
			if err != nil {
				panic(err)
			}
			//
			return point, attempt, true
		}
	}
	//
	return curve.Infinity(), maxAttempts, false
}

// nonce derives the proof nonce deterministically from the secret key and the
// encoded input.
func nonce(sk SecretKey, h curve.Point) scalar.Element {
	k := hashPrefixed(nonceFront, sk.toFelt(), h.X(), h.Y())
	//
	return scalar.Reduce(k.BigInt())
}

// challenge derives the Schnorr challenge from every point involved in the
// proof.
func challenge(pk, h, gamma, u, v curve.Point) scalar.Element {
	c := hashPrefixed(challengeFront,
		pk.X(), pk.Y(),
		h.X(), h.Y(),
		gamma.X(), gamma.Y(),
		u.X(), u.Y(),
		v.X(), v.Y())
	//
	return scalar.Reduce(c.BigInt())
}

// gammaToHash compresses gamma into the output of the VRF.
func gammaToHash(gamma curve.Point) felt.Element {
	return hashPrefixed(proofToHashFront, gamma.X(), gamma.Y())
}
