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
package cmd

import (
	"encoding/hex"
	"testing"

	"github.com/consensys/stark-vrf/pkg/util/termio"
	"github.com/consensys/stark-vrf/pkg/vrf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	publicKeyX = "3285470181182513595299391888669018264373825695633626141263541088056464172983"
	publicKeyY = "407217118062758744964593760322705378299439026911040607736478266570367095223"
	gammaX     = "211581782854282878101217515312732598097467150564389044856665258829546344989"
	hintY      = "1370423606037616038806867413215722312186658174101130344531309950069803237306"
	output     = "2970881600327748750815186596790059734693284657791464166909195042488106600783"
)

func Test_KeyRecord(t *testing.T) {
	sk, err := vrf.ParseSecretKey("7")
	require.NoError(t, err)
	//
	fields := toMap(keyRecord(sk, false))
	assert.Equal(t, map[string]string{"public_key_x": publicKeyX, "public_key_y": publicKeyY}, fields)
	//
	fields = toMap(keyRecord(sk, true))
	assert.Equal(t, "7", fields["secret_key"])
}

func Test_ProveVerify(t *testing.T) {
	sk, err := vrf.ParseSecretKey("7")
	require.NoError(t, err)
	//
	record, err := prove(sk, []string{"42"})
	require.NoError(t, err)
	//
	fields := toMap(record)
	assert.Equal(t, publicKeyX, fields["public_key_x"])
	assert.Equal(t, gammaX, fields["proof_gamma_x"])
	assert.Equal(t, output, fields["beta"])
	assert.Equal(t, hintY, fields["proof_verify_hint"])
	assert.Equal(t, "0", fields["proof_verify_hint_attempt"])
	assert.Len(t, fields["proof"], 2*vrf.ProofSize)
	// Valid
	record, ok, err := verify(publicKeyX, publicKeyY, encoded(fields["proof"]), []string{"42"})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, map[string]string{"valid": "true", "beta": output}, toMap(record))
	// Prefixed encoding
	_, ok, err = verify(publicKeyX, publicKeyY, encoded("0x"+fields["proof"]), []string{"0x2a"})
	require.NoError(t, err)
	assert.True(t, ok)
	// Wrong input
	record, ok, err = verify(publicKeyX, publicKeyY, encoded(fields["proof"]), []string{"43"})
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, map[string]string{"valid": "false"}, toMap(record))
	// Output
	record, err = beta(encoded(fields["proof"]))
	require.NoError(t, err)
	assert.Equal(t, output, toMap(record)["beta"])
}

func Test_ProofComponents(t *testing.T) {
	sk, err := vrf.ParseSecretKey("7")
	require.NoError(t, err)
	//
	record, err := prove(sk, []string{"42"})
	require.NoError(t, err)
	//
	fields := toMap(record)
	components := proofFlags{
		gammaX: fields["proof_gamma_x"],
		gammaY: fields["proof_gamma_y"],
		c:      fields["proof_c"],
		s:      fields["proof_s"],
	}
	// Decimal components agree with the encoding
	proof, err := components.parse()
	require.NoError(t, err)
	assert.Equal(t, fields["proof"], hex.EncodeToString(proof.Bytes()))
	//
	_, ok, err := verify(publicKeyX, publicKeyY, components, []string{"42"})
	require.NoError(t, err)
	assert.True(t, ok)
	record, err = beta(components)
	require.NoError(t, err)
	assert.Equal(t, output, toMap(record)["beta"])
	// Incomplete
	partial := components
	partial.s = ""
	_, err = partial.parse()
	assert.Error(t, err)
	// Ambiguous
	both := components
	both.encoded = fields["proof"]
	_, err = both.parse()
	assert.Error(t, err)
	// Gamma off the curve
	offCurve := components
	offCurve.gammaY = "1"
	_, err = offCurve.parse()
	assert.ErrorIs(t, err, vrf.ErrMalformedProofEncoding)
}

func Test_Invalid(t *testing.T) {
	sk, err := vrf.ParseSecretKey("7")
	require.NoError(t, err)
	//
	_, err = prove(sk, []string{"forty-two"})
	assert.Error(t, err)
	//
	record, err := prove(sk, []string{"42"})
	require.NoError(t, err)
	proof := toMap(record)["proof"]
	// Public key off the curve
	_, _, err = verify(publicKeyX, "1", encoded(proof), []string{"42"})
	assert.ErrorIs(t, err, vrf.ErrInvalidPublicKey)
	_, _, err = verify("0", "0", encoded(proof), []string{"42"})
	assert.ErrorIs(t, err, vrf.ErrInvalidPublicKey)
	_, _, err = verify("x", publicKeyY, encoded(proof), []string{"42"})
	assert.ErrorIs(t, err, vrf.ErrInvalidPublicKey)
	// Malformed proofs
	_, _, err = verify(publicKeyX, publicKeyY, encoded("zz"), []string{"42"})
	assert.Error(t, err)
	_, _, err = verify(publicKeyX, publicKeyY, encoded(proof[2:]), []string{"42"})
	assert.ErrorIs(t, err, vrf.ErrMalformedProofEncoding)
	_, err = beta(proofFlags{})
	assert.ErrorIs(t, err, vrf.ErrMalformedProofEncoding)
}

func Test_Hint(t *testing.T) {
	record, err := hint([]string{"42"})
	require.NoError(t, err)
	assert.Equal(t, hintY, toMap(record)["proof_verify_hint"])
	assert.Equal(t, "0", toMap(record)["attempt"])
	// First candidate for this input is not on the curve
	record, err = hint([]string{"1"})
	require.NoError(t, err)
	assert.Equal(t, "1307654315532164946695676231168891662491634200885251736110283364728141753128",
		toMap(record)["x"])
	assert.Equal(t, "866299367125511843960546786592795636964670263601366948778379911101616853186",
		toMap(record)["proof_verify_hint"])
	assert.Equal(t, "1", toMap(record)["attempt"])
	//
	_, err = hint([]string{"-1"})
	assert.Error(t, err)
}

func encoded(proof string) proofFlags {
	return proofFlags{encoded: proof}
}

func toMap(record *termio.Record) map[string]string {
	fields := make(map[string]string)
	//
	for _, f := range record.Fields() {
		fields[f.Key] = f.Value
	}
	//
	return fields
}
