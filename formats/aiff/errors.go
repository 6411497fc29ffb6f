// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"errors"

	"github.com/ik5/ddalog/internal/pcmexport"
)

var (
	// ErrNilWriter indicates Encode was given no writer
	ErrNilWriter = errors.New("aiff: nil writer")

	// ErrNoFrames indicates the source produced no samples
	ErrNoFrames = pcmexport.ErrNoFrames

	// ErrUnsupportedBitDepth indicates a bit depth other than 16, 24 or 32
	ErrUnsupportedBitDepth = pcmexport.ErrUnsupportedBitDepth
)
