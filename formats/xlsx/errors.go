// SPDX-License-Identifier: EPL-2.0

package xlsx

import "errors"

var (
	ErrNilWriter    = errors.New("xlsx: nil writer")
	ErrInvalidSheet = errors.New("xlsx: invalid sheet name")
)
