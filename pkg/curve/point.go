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
	"errors"
	"fmt"

	starkcurve "github.com/consensys/gnark-crypto/ecc/stark-curve"
	"github.com/consensys/stark-vrf/pkg/util/field"
	"github.com/consensys/stark-vrf/pkg/util/field/felt"
	"github.com/consensys/stark-vrf/pkg/util/field/scalar"
)

// ErrNotOnCurve indicates a pair of coordinates which does not satisfy the
// curve equation.
var ErrNotOnCurve = errors.New("point not on curve")

// Point is a point on the STARK curve y² = x³ + a·x + b in affine coordinates.
// The point at infinity is represented by the coordinates (0,0), which do not
// satisfy the curve equation.  Points are immutable values.
type Point struct {
	inner starkcurve.G1Affine
}

// Coefficients returns the coefficients a and b of the curve equation.
func Coefficients() (felt.Element, felt.Element) {
	a, b := starkcurve.CurveCoefficients()
	//
	return felt.Element{Element: a}, felt.Element{Element: b}
}

// Generator returns the publicly fixed generator of the curve group.  Its order
// is the modulus of the scalar field.
func Generator() Point {
	_, gen := starkcurve.Generators()
	//
	return Point{gen}
}

// Infinity returns the identity of the curve group.
func Infinity() Point {
	return Point{}
}

// NewPoint constructs a point from raw affine coordinates, failing if they do
// not satisfy the curve equation.
func NewPoint(x felt.Element, y felt.Element) (Point, error) {
	p := Point{starkcurve.G1Affine{X: x.Element, Y: y.Element}}
	//
	if !p.IsOnCurve() {
		return Infinity(), fmt.Errorf("(%s, %s): %w", x.String(), y.String(), ErrNotOnCurve)
	}
	//
	return p, nil
}

// Rhs evaluates the right-hand side x³ + a·x + b of the curve equation.
func Rhs(x felt.Element) felt.Element {
	a, b := Coefficients()
	//
	return field.Sum(field.Pow(x, 3), a.Mul(x), b)
}

// PointFromX recovers the point with the given x-coordinate whose y-coordinate
// is the canonical square root of the right-hand side.  Returns false if no
// such point exists.
func PointFromX(x felt.Element) (Point, bool) {
	y, ok := Rhs(x).Sqrt()
	if !ok {
		return Infinity(), false
	}
	//
	return Point{starkcurve.G1Affine{X: x.Element, Y: y.Element}}, true
}

// X returns the x-coordinate of this point.
func (p Point) X() felt.Element {
	return felt.Element{Element: p.inner.X}
}

// Y returns the y-coordinate of this point.
func (p Point) Y() felt.Element {
	return felt.Element{Element: p.inner.Y}
}

// IsInfinity checks whether this is the identity.
func (p Point) IsInfinity() bool {
	return p.inner.IsInfinity()
}

// IsOnCurve checks whether this point satisfies the curve equation.  The
// identity is not considered on the curve, since it has no affine coordinates.
func (p Point) IsOnCurve() bool {
	if p.inner.IsInfinity() {
		return false
	}
	//
	return p.inner.IsOnCurve()
}

// Equals checks whether two points are identical.
func (p Point) Equals(q Point) bool {
	return p.inner.Equal(&q.inner)
}

// Add computes p + q.
func (p Point) Add(q Point) Point {
	var res starkcurve.G1Affine
	//
	res.Add(&p.inner, &q.inner)
	//
	return Point{res}
}

// Sub computes p - q.
func (p Point) Sub(q Point) Point {
	var res starkcurve.G1Affine
	//
	res.Sub(&p.inner, &q.inner)
	//
	return Point{res}
}

// Neg computes -p.
func (p Point) Neg() Point {
	if p.IsInfinity() {
		return p
	}
	//
	var res starkcurve.G1Affine
	//
	res.Neg(&p.inner)
	//
	return Point{res}
}

// Double computes 2p.
func (p Point) Double() Point {
	return p.Add(p)
}

// ScalarMul computes k·p.  Multiplication by zero yields the identity.
func (p Point) ScalarMul(k scalar.Element) Point {
	var res starkcurve.G1Affine
	//
	res.ScalarMultiplication(&p.inner, k.BigInt())
	//
	return Point{res}
}

// ScalarBaseMul computes k·G for the generator G.
func ScalarBaseMul(k scalar.Element) Point {
	var res starkcurve.G1Affine
	//
	res.ScalarMultiplicationBase(k.BigInt())
	//
	return Point{res}
}

// JointScalarBaseMul computes s·G + t·p for the generator G, sharing the
// doublings between both multiplications.
func JointScalarBaseMul(s scalar.Element, p Point, t scalar.Element) Point {
	var (
		jac starkcurve.G1Jac
		res starkcurve.G1Affine
	)
	//
	if p.IsInfinity() {
		return ScalarBaseMul(s)
	}
	//
	jac.JointScalarMultiplicationBase(&p.inner, s.BigInt(), t.BigInt())
	res.FromJacobian(&jac)
	//
	return Point{res}
}

// ToProjective converts this point into projective (Jacobian) coordinates.
func (p Point) ToProjective() Projective {
	var res starkcurve.G1Jac
	//
	res.FromAffine(&p.inner)
	//
	return Projective{res}
}

// String returns E([x,y]), or "O" for the identity.
func (p Point) String() string {
	if p.IsInfinity() {
		return "O"
	}
	//
	return fmt.Sprintf("E([%s,%s])", p.X().String(), p.Y().String())
}
