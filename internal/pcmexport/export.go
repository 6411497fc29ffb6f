// SPDX-License-Identifier: EPL-2.0

package pcmexport

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-audio/audio"

	"github.com/ik5/ddalog/telemetry"
	"github.com/ik5/ddalog/utils"
)

// DefaultBitDepth is used when Options.BitDepth is zero.
const DefaultBitDepth = 16

// chunkFrames is how many frames are converted per encoder write.
const chunkFrames = 1024

// Options selects the channels and format of an export.
type Options struct {
	// Fields become channels in the given order. Empty means EngineSpeed.
	Fields []telemetry.Field
	// Rate is the output frame rate. Zero keeps the source rate.
	Rate int
	// BitDepth of the integer samples. Zero means DefaultBitDepth.
	BitDepth int
}

// Normalize fills in defaults and validates o against src.
func (o Options) Normalize(src telemetry.Source) (Options, error) {
	if len(o.Fields) == 0 {
		o.Fields = []telemetry.Field{telemetry.EngineSpeed}
	}
	if o.Rate == 0 {
		o.Rate = src.SampleRate()
	}
	if o.Rate < 0 {
		return o, fmt.Errorf("%w: %d", telemetry.ErrInvalidRate, o.Rate)
	}
	if o.BitDepth == 0 {
		o.BitDepth = DefaultBitDepth
	}

	switch o.BitDepth {
	case 16, 24, 32:
	default:
		return o, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, o.BitDepth)
	}

	return o, nil
}

// Open projects src onto the selected channels, resampled to o.Rate when it
// differs from the source rate. o must be normalized.
func Open(src telemetry.Source, o Options) (telemetry.Signal, error) {
	sig, err := telemetry.NewSignal(src, o.Fields...)
	if err != nil {
		return nil, err
	}

	if o.Rate == sig.SampleRate() {
		return sig, nil
	}

	return telemetry.NewResampler(sig, o.Rate)
}

// FrameWriter accepts integer PCM buffers. Both go-audio encoders satisfy it.
type FrameWriter interface {
	Write(buf *audio.IntBuffer) error
}

// Drain converts every frame of sig to bitDepth PCM and hands it to w in
// chunks. It returns the number of frames written.
func Drain(sig telemetry.Signal, bitDepth int, w FrameWriter) (int, error) {
	channels := sig.Channels()
	in := make([]float64, chunkFrames*channels)
	data := make([]int, len(in))

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: channels,
			SampleRate:  sig.SampleRate(),
		},
		SourceBitDepth: bitDepth,
	}

	frames := 0

	for {
		n, err := sig.ReadFrames(in)
		if n > 0 {
			for i, x := range in[:n] {
				data[i] = utils.FloatToPCM(x, bitDepth)
			}

			buf.Data = data[:n]
			if werr := w.Write(buf); werr != nil {
				return frames, fmt.Errorf("writing frames: %w", werr)
			}
			frames += n / channels
		}

		if errors.Is(err, io.EOF) {
			return frames, nil
		}

		if err != nil {
			return frames, fmt.Errorf("%w", err)
		}
	}
}
