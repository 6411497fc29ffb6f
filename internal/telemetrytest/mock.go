// SPDX-License-Identifier: EPL-2.0

package telemetrytest

import (
	"io"

	"github.com/ik5/ddalog/telemetry"
)

// MockSource is a test helper that generates telemetry samples.
type MockSource struct {
	rate      int
	total     int // total samples to generate
	generated int // samples generated so far
	gen       func(i int) telemetry.Sample
	closed    bool
}

// NewMockSource creates a source producing total samples. gen receives the
// sample index and returns the sample for it.
func NewMockSource(total int, gen func(i int) telemetry.Sample) *MockSource {
	return &MockSource{
		rate:  50,
		total: total,
		gen:   gen,
	}
}

// NewRampSource creates a source whose EngineSpeed rises by 100 rpm and
// whose Time advances by 0.02 s per sample.
func NewRampSource(total int) *MockSource {
	return NewMockSource(total, func(i int) telemetry.Sample {
		return telemetry.Sample{
			Time:        float64(i) * 0.02,
			EngineSpeed: uint16(i * 100),
			Gear:        uint8(1 + i%6),
		}
	})
}

// NewConstantSource creates a source repeating s.
func NewConstantSource(total int, s telemetry.Sample) *MockSource {
	return NewMockSource(total, func(int) telemetry.Sample { return s })
}

// NewSliceSource replays samples in order.
func NewSliceSource(samples []telemetry.Sample) *MockSource {
	return NewMockSource(len(samples), func(i int) telemetry.Sample { return samples[i] })
}

func (m *MockSource) SampleRate() int { return m.rate }

func (m *MockSource) Close() error {
	m.closed = true
	return nil
}

// Closed reports whether Close was called.
func (m *MockSource) Closed() bool { return m.closed }

// Reset resets the generated sample counter to allow re-reading
func (m *MockSource) Reset() {
	m.generated = 0
}

func (m *MockSource) ReadSamples(dst []telemetry.Sample) (int, error) {
	if m.generated >= m.total {
		return 0, io.EOF
	}

	n := min(len(dst), m.total-m.generated)
	for i := range n {
		dst[i] = m.gen(m.generated + i)
	}
	m.generated += n

	if m.generated >= m.total {
		return n, io.EOF
	}

	return n, nil
}

// FailingSource returns Err after producing After samples.
type FailingSource struct {
	MockSource
	After int
	Err   error
}

// NewFailingSource wraps a ramp of total samples that fails with err once
// after samples have been read.
func NewFailingSource(total, after int, err error) *FailingSource {
	return &FailingSource{
		MockSource: *NewRampSource(total),
		After:      after,
		Err:        err,
	}
}

func (f *FailingSource) ReadSamples(dst []telemetry.Sample) (int, error) {
	if f.generated >= f.After {
		return 0, f.Err
	}

	return f.MockSource.ReadSamples(dst[:min(len(dst), f.After-f.generated)])
}
