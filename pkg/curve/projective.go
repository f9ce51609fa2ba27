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
package curve

import (
	starkcurve "github.com/consensys/gnark-crypto/ecc/stark-curve"
	"github.com/consensys/stark-vrf/pkg/util/field/scalar"
)

// Projective is a point in Jacobian coordinates (x=X/Z², y=Y/Z³), which avoids
// an inversion per addition.  The identity has Z = 0.
type Projective struct {
	inner starkcurve.G1Jac
}

// Add computes p + q.
func (p Projective) Add(q Projective) Projective {
	res := p.inner
	//
	res.AddAssign(&q.inner)
	//
	return Projective{res}
}

// AddAffine computes p + q for an affine point q.
func (p Projective) AddAffine(q Point) Projective {
	res := p.inner
	//
	res.AddMixed(&q.inner)
	//
	return Projective{res}
}

// Neg computes -p.
func (p Projective) Neg() Projective {
	var res starkcurve.G1Jac
	//
	res.Neg(&p.inner)
	//
	return Projective{res}
}

// Double computes 2p.
func (p Projective) Double() Projective {
	var res starkcurve.G1Jac
	//
	res.Double(&p.inner)
	//
	return Projective{res}
}

// ScalarMul computes k·p.
func (p Projective) ScalarMul(k scalar.Element) Projective {
	var res starkcurve.G1Jac
	//
	res.ScalarMultiplication(&p.inner, k.BigInt())
	//
	return Projective{res}
}

// IsInfinity checks whether this is the identity.
func (p Projective) IsInfinity() bool {
	return p.inner.Z.IsZero()
}

// Equals checks whether two projective points represent the same point.
func (p Projective) Equals(q Projective) bool {
	return p.inner.Equal(&q.inner)
}

// ToAffine converts this point into affine coordinates.
func (p Projective) ToAffine() Point {
	var res starkcurve.G1Affine
	//
	res.FromJacobian(&p.inner)
	//
	return Point{res}
}
