// SPDX-License-Identifier: MIT

package covfn

import "errors"

var (
	// ErrInvalidModel indicates a non-positive or non-finite scale or variance.
	ErrInvalidModel = errors.New("covfn: correlation lengths and variance must be positive and finite")
	// ErrUnknownKind indicates an unrecognized covariance function selector.
	ErrUnknownKind = errors.New("covfn: unknown covariance function")
)
