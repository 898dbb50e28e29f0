// SPDX-License-Identifier: MIT

package config

import "errors"

// ErrInvalidConfig indicates a file, environment value or field that failed validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")
