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
	"errors"
	"fmt"
)

var (
	// ErrInvalidPublicKey indicates a public key which is the identity or does
	// not lie on the curve.
	ErrInvalidPublicKey = errors.New("vrf: invalid public key")

	// ErrInvalidSecretKey indicates a secret key which is zero, out of range,
	// or does not match the engine's public key.
	ErrInvalidSecretKey = errors.New("vrf: invalid secret key")

	// ErrProofGeneration indicates that point derivation exhausted its attempts,
	// or that a degenerate nonce was derived.
	ErrProofGeneration = errors.New("vrf: proof generation failed")

	// ErrMalformedProofEncoding indicates a proof with out-of-range components,
	// or whose gamma is not a valid curve point.
	ErrMalformedProofEncoding = errors.New("vrf: malformed proof encoding")
)

// Error wraps one of the above errors with the operation that failed.
type Error struct {
	Op  string // Operation that failed
	Err error  // Underlying error
}

func (e *Error) Error() string {
	return fmt.Sprintf("vrf.%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// errorf creates a new Error whose cause is kind, annotated with a message.
func errorf(op string, kind error, format string, args ...any) error {
	return &Error{
		Op:  op,
		Err: fmt.Errorf("%w: %s", kind, fmt.Sprintf(format, args...)),
	}
}

// errJoin wraps err beneath the given kind, such that both match errors.Is.
func errJoin(kind error, err error) error {
	return fmt.Errorf("%w: %w", kind, err)
}
