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

import (
	"github.com/consensys/gnark-crypto/ecc/stark-curve/fp"
	"github.com/consensys/stark-vrf/pkg/util/field/felt"
)

// Hash computes the Poseidon hash of two elements, permuting the state
// [x, y, 2] and returning its first element.
func Hash(x felt.Element, y felt.Element) felt.Element {
	state := State{x.Element, y.Element, fp.NewElement(2)}
	//
	state.Permute()
	//
	return felt.Element{Element: state[0]}
}

// HashSingle computes the Poseidon hash of a single element, permuting the
// state [x, 0, 1] and returning its first element.
func HashSingle(x felt.Element) felt.Element {
	state := State{x.Element, fp.Element{}, fp.NewElement(1)}
	//
	state.Permute()
	//
	return felt.Element{Element: state[0]}
}

// HashMany computes the Poseidon hash of an arbitrary number of elements using
// a sponge of rate two and capacity one.
func HashMany(elements ...felt.Element) felt.Element {
	var sponge Sponge
	//
	sponge.Absorb(elements...)
	//
	return sponge.Squeeze()
}

// Sponge absorbs elements incrementally, producing the same digest as HashMany
// over the concatenation of everything absorbed.  The zero value is an empty
// sponge.  A sponge must not be used after Squeeze.
type Sponge struct {
	state State
	// pending holds an absorbed element awaiting its pair.
	pending    fp.Element
	hasPending bool
}

// Absorb adds zero or more elements to the sponge.
func (s *Sponge) Absorb(elements ...felt.Element) {
	for _, e := range elements {
		s.absorb(e.Element)
	}
}

// Squeeze pads the absorbed input with a one, followed by a zero if needed to
// complete the final pair, and returns the first state element.
func (s *Sponge) Squeeze() felt.Element {
	s.absorb(fp.One())
	//
	if s.hasPending {
		s.absorb(fp.Element{})
	}
	//
	return felt.Element{Element: s.state[0]}
}

func (s *Sponge) absorb(e fp.Element) {
	if !s.hasPending {
		s.pending = e
		s.hasPending = true
		//
		return
	}
	//
	s.state[0].Add(&s.state[0], &s.pending)
	s.state[1].Add(&s.state[1], &e)
	s.state.Permute()
	s.hasPending = false
}
