// SPDX-License-Identifier: EPL-2.0

package ddalog

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ik5/ddalog/formats/aiff"
	"github.com/ik5/ddalog/formats/csv"
	"github.com/ik5/ddalog/formats/dda"
	"github.com/ik5/ddalog/formats/wav"
	"github.com/ik5/ddalog/formats/xlsx"
	"github.com/ik5/ddalog/telemetry"
)

// DecodeAll decodes every sample of the dump in r.
func DecodeAll(r io.Reader, opts ...dda.Option) ([]telemetry.Sample, error) {
	src, err := dda.NewDecoder(opts...).Open(r)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	// 10 seconds up front; most rides are far longer and grow by doubling
	samples := make([]telemetry.Sample, 0, 10*src.SampleRate())
	buf := make([]telemetry.Sample, 4096)

	for {
		n, err := src.ReadSamples(buf)
		samples = append(samples, buf[:n]...)

		if errors.Is(err, io.EOF) {
			return samples, nil
		}

		if err != nil {
			return samples, fmt.Errorf("%w", err)
		}
	}
}

// Convert drains src into w with enc and closes src. It returns the count
// reported by the encoder: rows for tables, frames for audio.
func Convert(src telemetry.Source, enc telemetry.Encoder, w io.Writer) (int, error) {
	n, err := enc.Encode(w, src)
	if cerr := src.Close(); err == nil && cerr != nil {
		err = cerr
	}
	if err != nil {
		return n, fmt.Errorf("encoding %s: %w", enc.Extension(), err)
	}

	return n, nil
}

// NewRegistry returns a registry holding every output format, keyed by
// extension, with default settings.
func NewRegistry() *telemetry.Registry {
	r := telemetry.NewRegistry()
	for _, enc := range []telemetry.Encoder{
		csv.Encoder{},
		xlsx.Encoder{},
		wav.Encoder{},
		aiff.Encoder{},
	} {
		r.Register(enc.Extension(), enc)
	}

	return r
}

// OutputPath replaces the extension of input with ext.
func OutputPath(input, ext string) string {
	base := strings.TrimSuffix(input, filepath.Ext(input))
	return base + "." + strings.TrimPrefix(ext, ".")
}
