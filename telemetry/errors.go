// SPDX-License-Identifier: EPL-2.0

package telemetry

import "errors"

var (
	ErrInvalidDstSize = errors.New("dst size must be multiple of channels")
	ErrUnknownField   = errors.New("unknown telemetry field")
	ErrNotExportable  = errors.New("field has no full scale and cannot be exported as a channel")
	ErrNoFields       = errors.New("at least one field is required")
	ErrInvalidRate    = errors.New("sample rate must be positive")
)
