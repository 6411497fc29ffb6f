// SPDX-License-Identifier: EPL-2.0

package telemetry

import "fmt"

// Signal is a stream of interleaved, normalized channel values.
type Signal interface {
	// SampleRate of the stream in frames per second.
	SampleRate() int
	// Channels is the number of values per frame.
	Channels() int
	// ReadFrames fills dst with interleaved values in [-1,1] and returns the
	// number of values written (not frames). When n == 0 with err == io.EOF,
	// the stream is finished.
	ReadFrames(dst []float64) (n int, err error)
}

// ChannelSignal projects selected fields of a Source into a Signal, one
// channel per field, each divided by the field's full scale. Absent values
// read as 0.
type ChannelSignal struct {
	src    Source
	fields []Field
	scale  []float64
	tmp    []Sample
}

func NewSignal(src Source, fields ...Field) (*ChannelSignal, error) {
	if len(fields) == 0 {
		return nil, ErrNoFields
	}

	scale := make([]float64, len(fields))
	for i, f := range fields {
		fs, ok := f.FullScale()
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrNotExportable, f)
		}
		scale[i] = fs
	}

	return &ChannelSignal{
		src:    src,
		fields: append([]Field(nil), fields...),
		scale:  scale,
		tmp:    make([]Sample, defaultBatch),
	}, nil
}

func (c *ChannelSignal) SampleRate() int { return c.src.SampleRate() }
func (c *ChannelSignal) Channels() int   { return len(c.fields) }

// Fields returns the field carried by each channel, in channel order.
func (c *ChannelSignal) Fields() []Field { return append([]Field(nil), c.fields...) }

func (c *ChannelSignal) ReadFrames(dst []float64) (int, error) {
	channels := len(c.fields)
	if len(dst)%channels != 0 {
		return 0, ErrInvalidDstSize
	}

	frames := len(dst) / channels
	if frames == 0 {
		return 0, nil
	}

	if cap(c.tmp) < frames {
		c.tmp = make([]Sample, frames)
	}

	n, err := c.src.ReadSamples(c.tmp[:frames])
	for i := range n {
		base := i * channels
		for ch, f := range c.fields {
			v, ok := c.tmp[i].Value(f)
			if !ok {
				v = 0
			}
			dst[base+ch] = v / c.scale[ch]
		}
	}

	return n * channels, err
}
