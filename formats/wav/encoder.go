// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	gowav "github.com/go-audio/wav"

	"github.com/ik5/ddalog/internal/pcmexport"
	"github.com/ik5/ddalog/telemetry"
)

// wavFormatPCM is the WAVE_FORMAT_PCM format tag.
const wavFormatPCM = 1

// Encoder writes selected channels of a Source as a WAV file.
type Encoder struct {
	// Fields become channels in order. Empty means EngineSpeed only.
	Fields []telemetry.Field
	// Rate is the output frame rate. Zero keeps the source rate.
	Rate int
	// BitDepth is 16, 24 or 32. Zero means 16.
	BitDepth int
}

func (Encoder) Extension() string { return "wav" }

// Encode writes every frame of src and returns the number of frames, which
// differs from the number of samples when resampling.
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
		enc := gowav.NewEncoder(ws, sig.SampleRate(), opts.BitDepth, sig.Channels(), wavFormatPCM)

		n, err := pcmexport.Drain(sig, opts.BitDepth, enc)
		frames = n
		if err != nil {
			return err
		}
		if n == 0 {
			return ErrNoFrames
		}

		if err := enc.Close(); err != nil {
			return fmt.Errorf("finalizing wav: %w", err)
		}
		return nil
	})

	return frames, err
}
