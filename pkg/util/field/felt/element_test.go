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
package felt

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Modulus(t *testing.T) {
	// p = 2²⁵¹ + 17·2¹⁹² + 1
	p := new(big.Int).Lsh(big.NewInt(1), 251)
	p.Add(p, new(big.Int).Lsh(big.NewInt(17), 192))
	p.Add(p, big.NewInt(1))
	//
	assert.Equal(t, 0, Modulus().Cmp(p))
}

func Test_Arithmetic(t *testing.T) {
	var (
		a = New(10)
		b = New(3)
	)
	//
	assert.True(t, a.Add(b).Equals(New(13)))
	assert.True(t, a.Sub(b).Equals(New(7)))
	assert.True(t, b.Sub(a).Add(New(7)).IsZero())
	assert.True(t, a.Mul(b).Equals(New(30)))
	assert.True(t, a.Neg().Add(a).IsZero())
	assert.True(t, b.Square().Equals(New(9)))
	assert.Equal(t, 1, a.Cmp(b))
	assert.Equal(t, -1, b.Cmp(a))
	assert.Equal(t, 0, a.Cmp(a))
}

func Test_Inverse(t *testing.T) {
	_, ok := New(0).Inverse()
	assert.False(t, ok)
	//
	for i := uint64(1); i < 50; i++ {
		x := New(i * 7919)
		inv, ok := x.Inverse()
		require.True(t, ok)
		assert.True(t, x.Mul(inv).IsOne())
	}
}

func Test_Sqrt(t *testing.T) {
	half := new(big.Int).Rsh(Modulus(), 1)
	//
	for i := uint64(0); i < 100; i++ {
		x := New(i)
		root, ok := x.Sqrt()
		//
		if !ok {
			assert.False(t, x.IsSquare())
			continue
		}
		//
		assert.True(t, root.Square().Equals(x))
		// Canonical root is the smaller one
		assert.True(t, root.BigInt().Cmp(half) <= 0, "root of %d not canonical", i)
		// Other root is larger
		if !root.IsZero() {
			assert.True(t, root.Neg().BigInt().Cmp(half) > 0)
		}
	}
	// Squares of large values recover the canonical root
	y := New(123456789).Neg()
	root, ok := y.Square().Sqrt()
	require.True(t, ok)
	assert.True(t, root.Equals(New(123456789)))
}

func Test_NonResidue(t *testing.T) {
	assert.False(t, NonResidue.IsSquare())
	_, ok := NonResidue.Sqrt()
	assert.False(t, ok)
}

func Test_SqrtRatio(t *testing.T) {
	one := New(1)
	//
	for i := uint64(0); i < 64; i++ {
		u := New(i*i*i + 5)
		v := New(i + 2)
		isSquare, hint := SqrtRatio(u, v)
		// Check witness
		check, valid := CheckSqrtRatio(u, v, hint)
		require.True(t, valid)
		assert.Equal(t, isSquare, check)
		// Cross-check against direct computation
		vinv, _ := v.Inverse()
		assert.Equal(t, isSquare, u.Mul(vinv).IsSquare())
	}
	// u/1 reduces to a plain square root.
	isSquare, hint := SqrtRatio(New(16), one)
	assert.True(t, isSquare)
	assert.True(t, hint.Equals(New(4)))
	// non-residue case
	isSquare, hint = SqrtRatio(NonResidue, one)
	assert.False(t, isSquare)
	assert.True(t, hint.Square().Equals(NonResidue.Mul(NonResidue)))
	// bogus hint
	_, valid := CheckSqrtRatio(New(16), one, New(5))
	assert.False(t, valid)
}

func Test_Encoding(t *testing.T) {
	x, err := Parse("3141592653589793238462643383279502884197169399375105820974944592307816406665")
	require.NoError(t, err)
	//
	y, err := FromBytes(x.Bytes())
	require.NoError(t, err)
	assert.True(t, x.Equals(y))
	//
	z, err := Parse("0x" + x.Text(16))
	require.NoError(t, err)
	assert.True(t, x.Equals(z))
	assert.Equal(t, x.String(), x.Text(10))
	// values close to the modulus round-trip through decimal text
	neg := New(5).Neg()
	w, err := Parse(neg.String())
	require.NoError(t, err)
	assert.True(t, neg.Equals(w))
	// modulus is not canonical
	_, err = FromBytes(Modulus().FillBytes(make([]byte, Bytes)))
	assert.Error(t, err)
	_, err = FromBytes([]byte{1, 2, 3})
	assert.Error(t, err)
}

func Test_FromShortString(t *testing.T) {
	x, err := FromShortString("AB")
	require.NoError(t, err)
	assert.True(t, x.Equals(New(0x4142)))
	//
	_, err = FromShortString("this string is far too long to fit in a felt")
	assert.Error(t, err)
}
