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
	"testing"

	"github.com/consensys/stark-vrf/pkg/curve"
	"github.com/consensys/stark-vrf/pkg/util/field/felt"
	"github.com/consensys/stark-vrf/pkg/util/field/scalar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ProofEncoding(t *testing.T) {
	sk := parseKey(t, "7")
	engine := newEngine(t, sk)
	input := []felt.Element{felt.New(42)}
	proof, err := engine.Prove(sk, input)
	require.NoError(t, err)
	//
	bytes := proof.Bytes()
	require.Len(t, bytes, ProofSize)
	//
	decoded, err := ParseProof(bytes)
	require.NoError(t, err)
	assert.True(t, decoded.Equals(proof))
	//
	text, err := ParseProofText(proof.Gamma.X().String(), proof.Gamma.Y().String(),
		"0x"+proof.C.Text(16), proof.S.String())
	require.NoError(t, err)
	assert.True(t, text.Equals(proof))
}

func Test_ProofEncoding_Malformed(t *testing.T) {
	sk := parseKey(t, "7")
	engine := newEngine(t, sk)
	proof, err := engine.Prove(sk, []felt.Element{felt.New(42)})
	require.NoError(t, err)
	// Wrong lengths
	for _, n := range []int{0, 1, ProofSize - 1, ProofSize + 1} {
		_, err := ParseProof(make([]byte, n))
		assert.ErrorIs(t, err, ErrMalformedProofEncoding)
	}
	// Gamma is the (encoded) identity
	_, err = ParseProof(make([]byte, ProofSize))
	assert.ErrorIs(t, err, ErrMalformedProofEncoding)
	// Gamma off the curve
	bytes := proof.Bytes()
	bytes[63] ^= 1
	_, err = ParseProof(bytes)
	assert.ErrorIs(t, err, ErrMalformedProofEncoding)
	// Non-canonical challenge and response
	for _, offset := range []int{0, 64, 96} {
		bytes := proof.Bytes()
		copy(bytes[offset:offset+32], allOnes())
		_, err = ParseProof(bytes)
		assert.ErrorIs(t, err, ErrMalformedProofEncoding, "offset %d", offset)
	}
	// Text components
	x, y := proof.Gamma.X().String(), proof.Gamma.Y().String()
	c, s := proof.C.String(), proof.S.String()
	//
	for _, args := range [][4]string{
		{"", y, c, s},
		{x, "1", c, s},
		{x, y, scalar.Modulus().String(), s},
		{x, y, c, "-1"},
		{felt.Modulus().String(), y, c, s},
	} {
		_, err := ParseProofText(args[0], args[1], args[2], args[3])
		assert.ErrorIs(t, err, ErrMalformedProofEncoding, "%v", args)
	}
}

func Test_ProofValidation(t *testing.T) {
	_, err := NewProof(curve.Infinity(), scalar.New(1), scalar.New(1))
	assert.ErrorIs(t, err, ErrMalformedProofEncoding)
	//
	_, err = ProofToHash(Proof{})
	assert.ErrorIs(t, err, ErrMalformedProofEncoding)
	//
	engine := newEngine(t, parseKey(t, "7"))
	ok, err := engine.Verify([]felt.Element{felt.New(42)}, Proof{})
	assert.ErrorIs(t, err, ErrMalformedProofEncoding)
	assert.False(t, ok)
	//
	proof, err := NewProof(curve.Generator(), scalar.New(1), scalar.New(2))
	require.NoError(t, err)
	assert.True(t, proof.Gamma.Equals(curve.Generator()))
}

func allOnes() []byte {
	bytes := make([]byte, 32)
	//
	for i := range bytes {
		bytes[i] = 0xff
	}
	//
	return bytes
}
