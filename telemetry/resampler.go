// SPDX-License-Identifier: EPL-2.0

package telemetry

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/ddalog/utils"
)

// Resampler streams src at a different frame rate using cubic interpolation.
// Works on interleaved frames; preserves channel count. Frames past the end
// of src hold the last real frame, so N source frames produce
// ceil(N * dstRate / srcRate) output frames.
type Resampler struct {
	src      Signal
	dstRate  int
	ratio    float64 // source frames per output frame
	channels int

	// Window of four source frames around the output position:
	// frames[0] = base-1, frames[1] = base, frames[2] = base+1, frames[3] = base+2
	frames [4][]float64
	base   int
	primed bool

	read  int // real frames pulled from src
	total int // number of real frames in src, -1 until src reports EOF
	out   int // frames produced so far

	buf []float64
}

func NewResampler(src Signal, dstRate int) (*Resampler, error) {
	if dstRate <= 0 || src.SampleRate() <= 0 {
		return nil, ErrInvalidRate
	}

	channels := src.Channels()
	r := &Resampler{
		src:      src,
		dstRate:  dstRate,
		ratio:    float64(src.SampleRate()) / float64(dstRate),
		channels: channels,
		total:    -1,
		buf:      make([]float64, channels),
	}

	for i := range r.frames {
		r.frames[i] = make([]float64, channels)
	}

	return r, nil
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }

// pull reads the next source frame into dst, or copies hold once src is
// exhausted.
func (r *Resampler) pull(dst, hold []float64) error {
	for r.total < 0 {
		n, err := r.src.ReadFrames(r.buf)
		if n == r.channels {
			copy(dst, r.buf)
			r.read++
			if errors.Is(err, io.EOF) {
				r.total = r.read
			}
			return nil
		}

		if errors.Is(err, io.EOF) {
			r.total = r.read
			break
		}

		if err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	copy(dst, hold)
	return nil
}

func (r *Resampler) prime() error {
	if err := r.pull(r.frames[1], r.frames[1]); err != nil {
		return err
	}
	if r.total == 0 {
		return io.EOF
	}

	copy(r.frames[0], r.frames[1])
	if err := r.pull(r.frames[2], r.frames[1]); err != nil {
		return err
	}
	if err := r.pull(r.frames[3], r.frames[2]); err != nil {
		return err
	}

	r.primed = true
	return nil
}

func (r *Resampler) advance() error {
	first := r.frames[0]
	copy(r.frames[:3], r.frames[1:])
	r.frames[3] = first
	r.base++

	return r.pull(r.frames[3], r.frames[2])
}

// ReadFrames produces frames at the destination rate.
// dst length should be a multiple of r.Channels().
func (r *Resampler) ReadFrames(dst []float64) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if r.ratio == 1 {
		return r.src.ReadFrames(dst)
	}

	if !r.primed {
		if r.total == 0 {
			return 0, io.EOF
		}
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	framesNeeded := len(dst) / r.channels
	written := 0

	for written < framesNeeded {
		pos := float64(r.out) * r.ratio
		idx := int(pos)

		for r.base < idx {
			if err := r.advance(); err != nil {
				return written * r.channels, err
			}
		}

		if r.total >= 0 && idx >= r.total {
			if written == 0 {
				return 0, io.EOF
			}
			return written * r.channels, nil
		}

		x := pos - float64(idx)
		for c := range r.channels {
			dst[written*r.channels+c] = utils.CubicInterpolate(
				r.frames[0][c], r.frames[1][c], r.frames[2][c], r.frames[3][c], x)
		}

		written++
		r.out++
	}

	return written * r.channels, nil
}
