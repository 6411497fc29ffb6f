// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"fmt"
	"io"

	goaiff "github.com/go-audio/aiff"

	"github.com/ik5/ddalog/internal/pcmexport"
	"github.com/ik5/ddalog/telemetry"
)

// Encoder writes selected channels of a Source as an AIFF file.
type Encoder struct {
	// Fields become channels in order. Empty means EngineSpeed only.
	Fields []telemetry.Field
	// Rate is the output frame rate. Zero keeps the source rate.
	Rate int
	// BitDepth is 16, 24 or 32. Zero means 16.
	BitDepth int
}

func (Encoder) Extension() string { return "aiff" }

// Encode writes every frame of src and returns the number of frames.
func (e Encoder) Encode(w io.Writer, src telemetry.Source) (int, error) {
	if w == nil {
		return 0, ErrNilWriter
	}

	opts, err := pcmexport.Options{
		Fields:   e.Fields,
		Rate:     e.Rate,
		BitDepth: e.BitDepth,
	}.Normalize(src)
	if err != nil {
		return 0, err
	}

	sig, err := pcmexport.Open(src, opts)
	if err != nil {
		return 0, err
	}

	frames := 0
	err = pcmexport.WithSeeker(w, func(ws io.WriteSeeker) error {
		enc := goaiff.NewEncoder(ws, sig.SampleRate(), opts.BitDepth, sig.Channels())

		n, err := pcmexport.Drain(sig, opts.BitDepth, enc)
		frames = n
		if err != nil {
			return err
		}
		if n == 0 {
			return ErrNoFrames
		}

		if err := enc.Close(); err != nil {
			return fmt.Errorf("finalizing aiff: %w", err)
		}
		return nil
	})

	return frames, err
}
