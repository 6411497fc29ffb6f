// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"

	"github.com/ik5/ddalog/internal/pcmexport"
)

var (
	ErrNilWriter           = errors.New("wav: nil writer")
	ErrNoFrames            = pcmexport.ErrNoFrames
	ErrUnsupportedBitDepth = pcmexport.ErrUnsupportedBitDepth
)
