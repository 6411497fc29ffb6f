// SPDX-License-Identifier: EPL-2.0

package pcmexport

import "errors"

var (
	ErrUnsupportedBitDepth = errors.New("bit depth must be 16, 24 or 32")
	ErrNoFrames            = errors.New("no frames to export")
)
