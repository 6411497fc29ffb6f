// SPDX-License-Identifier: EPL-2.0

package dda

import "errors"

var (
	// ErrNilReader indicates Decode was called without a reader
	ErrNilReader = errors.New("nil reader")

	// ErrSeekOutOfRange indicates the record area starts past the end of the log
	ErrSeekOutOfRange = errors.New("start offset is beyond the end of the log")

	// ErrIO wraps a failure of the underlying reader or seeker
	ErrIO = errors.New("log read failed")

	// ErrMalformedRecord indicates a block whose length does not match its record kind
	ErrMalformedRecord = errors.New("record length does not match its kind")
)
