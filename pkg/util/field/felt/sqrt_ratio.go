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

// NonResidue is the fixed quadratic non-residue Z used by SqrtRatio.  It is
// the multiplicative generator of the base field.
var NonResidue = New(3)

// SqrtRatio computes a square root witness for the ratio u/v.  If u/v is a
// quadratic residue then (true, √(u/v)) is returned; otherwise (false,
// √(Z·u/v)) is returned, where Z is NonResidue.  Exactly one of the two ratios
// is a residue, hence a witness always exists.  In both cases the canonical
// root is selected.  The ratio is undefined for v = 0, and is treated as u/1.
//
// A verifier holding the witness confirms the outcome using multiplications
// only (see CheckSqrtRatio), avoiding a square root computation of its own.
func SqrtRatio(u Element, v Element) (bool, Element) {
	ratio := u
	//
	if vinv, ok := v.Inverse(); ok {
		ratio = u.Mul(vinv)
	}
	// Residue case
	if root, ok := ratio.Sqrt(); ok {
		return true, root
	}
	// Non-residue case.  Since Z is a non-residue, Z·ratio is a residue.
	root, ok := NonResidue.Mul(ratio).Sqrt()
	if !ok {
		panic("non-residue times non-residue must be a residue")
	}
	//
	return false, root
}

// CheckSqrtRatio confirms that hint is a valid witness for the ratio u/v,
// returning whether the ratio is a residue.  The second result is false if the
// hint witnesses neither case.
func CheckSqrtRatio(u Element, v Element, hint Element) (isSquare bool, valid bool) {
	if v.IsZero() {
		v = New(1)
	}
	//
	lhs := hint.Square().Mul(v)
	//
	switch {
	case lhs.Equals(u):
		return true, true
	case lhs.Equals(NonResidue.Mul(u)):
		return false, true
	default:
		return false, false
	}
}
