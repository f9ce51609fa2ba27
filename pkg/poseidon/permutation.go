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
package poseidon

import "github.com/consensys/gnark-crypto/ecc/stark-curve/fp"

// State of the Hades permutation.
type State [Width]fp.Element

// Permute applies the Hades permutation in place: half of the full rounds,
// then the partial rounds, then the remaining full rounds.  Each round adds
// the round constants, applies the cubing S-box (to every element in full
// rounds, to the last element in partial rounds), and mixes with the MDS
// matrix.
func (s *State) Permute() {
	var (
		half  = FullRounds / 2
		round = 0
	)
	//
	for ; round < half; round++ {
		s.addRoundConstants(round)
		s.fullSBox()
		s.mix()
	}
	//
	for ; round < half+PartialRounds; round++ {
		s.addRoundConstants(round)
		cube(&s[Width-1])
		s.mix()
	}
	//
	for ; round < FullRounds+PartialRounds; round++ {
		s.addRoundConstants(round)
		s.fullSBox()
		s.mix()
	}
}

func (s *State) addRoundConstants(round int) {
	for i := range s {
		s[i].Add(&s[i], &roundConstants[round][i])
	}
}

func (s *State) fullSBox() {
	for i := range s {
		cube(&s[i])
	}
}

// mix multiplies the state by the MDS matrix
//
//	| 3  1  1 |
//	| 1 -1  1 |
//	| 1  1 -2 |
func (s *State) mix() {
	var t, tmp fp.Element
	// t = s0 + s1 + s2
	t.Add(&s[0], &s[1]).Add(&t, &s[2])
	// s0 = t + 2·s0
	tmp.Double(&s[0])
	s[0].Add(&t, &tmp)
	// s1 = t - 2·s1
	tmp.Double(&s[1])
	s[1].Sub(&t, &tmp)
	// s2 = t - 3·s2
	tmp.Double(&s[2]).Add(&tmp, &s[2])
	s[2].Sub(&t, &tmp)
}

func cube(x *fp.Element) {
	var sq fp.Element
	//
	sq.Square(x)
	x.Mul(x, &sq)
}
