// SPDX-License-Identifier: EPL-2.0

package telemetry

import (
	"errors"
	"io"
	"iter"
)

const defaultBatch = 64

// All returns a single-pass iterator over every sample of src. A read error
// is yielded once with a zero Sample and ends the sequence; io.EOF is not
// reported.
func All(src Source) iter.Seq2[Sample, error] {
	return func(yield func(Sample, error) bool) {
		buf := make([]Sample, defaultBatch)

		for {
			n, err := src.ReadSamples(buf)
			for i := range n {
				if !yield(buf[i], nil) {
					return
				}
			}

			if errors.Is(err, io.EOF) {
				return
			}

			if err != nil {
				yield(Sample{}, err)
				return
			}
		}
	}
}
