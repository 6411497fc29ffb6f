// SPDX-License-Identifier: EPL-2.0

package telemetry

import (
	"errors"
	"io"
)

// mockSource generates total samples from gen, returning the final batch
// together with io.EOF.
type mockSource struct {
	rate      int
	total     int
	generated int
	gen       func(i int) Sample
	failAfter int // return errMock once this many samples were produced; <0 disables
	closed    bool
}

var errMock = errors.New("mock read failure")

func newMockSource(total int, gen func(i int) Sample) *mockSource {
	return &mockSource{rate: 50, total: total, gen: gen, failAfter: -1}
}

// newRampSource produces EngineSpeed rising by 100 rpm per sample.
func newRampSource(total int) *mockSource {
	return newMockSource(total, func(i int) Sample {
		return Sample{Time: float64(i) * 0.02, EngineSpeed: uint16(i * 100)}
	})
}

func newConstantSource(total int, s Sample) *mockSource {
	return newMockSource(total, func(int) Sample { return s })
}

func (m *mockSource) SampleRate() int { return m.rate }
func (m *mockSource) Close() error    { m.closed = true; return nil }

func (m *mockSource) ReadSamples(dst []Sample) (int, error) {
	if m.failAfter >= 0 && m.generated >= m.failAfter {
		return 0, errMock
	}
	if m.generated >= m.total {
		return 0, io.EOF
	}

	n := min(len(dst), m.total-m.generated)
	if m.failAfter >= 0 {
		n = min(n, m.failAfter-m.generated)
	}

	for i := range n {
		dst[i] = m.gen(m.generated + i)
	}
	m.generated += n

	if m.generated >= m.total {
		return n, io.EOF
	}
	return n, nil
}
