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
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const groupOrder = "3618502788666131213697322783095070105526743751716087489154079457884512865583"

func Test_Modulus(t *testing.T) {
	assert.Equal(t, groupOrder, Modulus().String())
}

func Test_Arithmetic(t *testing.T) {
	var (
		a = New(10)
		b = New(3)
	)
	//
	assert.True(t, a.Add(b).Equals(New(13)))
	assert.True(t, a.Sub(b).Equals(New(7)))
	assert.True(t, a.Mul(b).Equals(New(30)))
	assert.True(t, a.Neg().Add(a).IsZero())
	//
	_, ok := New(0).Inverse()
	assert.False(t, ok)
	inv, ok := b.Inverse()
	require.True(t, ok)
	assert.True(t, inv.Mul(b).IsOne())
}

func Test_Parse(t *testing.T) {
	x, err := Parse("7")
	require.NoError(t, err)
	assert.True(t, x.Equals(New(7)))
	// group order is out of range
	_, err = Parse(groupOrder)
	assert.Error(t, err)
	_, err = Parse("-7")
	assert.Error(t, err)
	// round trip of a value close to the modulus
	neg := New(1).Neg()
	y, err := Parse(neg.String())
	require.NoError(t, err)
	assert.True(t, y.Equals(neg))
}

func Test_Bytes(t *testing.T) {
	x := New(1).Neg()
	y, err := FromBytes(x.Bytes())
	require.NoError(t, err)
	assert.True(t, x.Equals(y))
	//
	_, err = FromBytes(Modulus().FillBytes(make([]byte, Bytes)))
	assert.Error(t, err)
}

func Test_Reduce(t *testing.T) {
	r := Modulus()
	//
	assert.True(t, Reduce(r).IsZero())
	assert.True(t, Reduce(new(big.Int).Add(r, big.NewInt(5))).Equals(New(5)))
	assert.True(t, Reduce(big.NewInt(5)).Equals(New(5)))
}

func Test_Random(t *testing.T) {
	x, err := Random()
	require.NoError(t, err)
	y, err := Random()
	require.NoError(t, err)
	//
	assert.False(t, x.IsZero())
	assert.False(t, x.Equals(y))
}
