// SPDX-License-Identifier: EPL-2.0

package ddalog

import (
	"bytes"
	"errors"
	"io"
	"os"
	"slices"
	"testing"

	"github.com/ik5/ddalog/formats/csv"
	"github.com/ik5/ddalog/formats/dda"
	"github.com/ik5/ddalog/internal/telemetrytest"
	"github.com/ik5/ddalog/telemetry"
)

func TestConvert_GoldenCSV(t *testing.T) {
	t.Parallel()

	in, err := os.Open("testdata/sample.dda")
	if err != nil {
		t.Fatal(err)
	}
	defer in.Close()

	want, err := os.ReadFile("testdata/sample.csv")
	if err != nil {
		t.Fatal(err)
	}

	src, err := dda.Decoder{}.Decode(in)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	var out bytes.Buffer
	n, err := Convert(src, csv.Encoder{}, &out)
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}

	if n != 60 {
		t.Errorf("Convert() = %d rows, want 60", n)
	}
	if !bytes.Equal(out.Bytes(), want) {
		t.Errorf("CSV output differs from testdata/sample.csv\ngot:\n%s", out.String())
	}
}

func TestConvert_ClosesSource(t *testing.T) {
	t.Parallel()

	src := telemetrytest.NewRampSource(5)
	if _, err := Convert(src, csv.Encoder{}, io.Discard); err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if !src.Closed() {
		t.Error("Convert() did not close the source")
	}

	errBoom := errors.New("boom")
	failing := telemetrytest.NewFailingSource(10, 3, errBoom)
	_, err := Convert(failing, csv.Encoder{}, io.Discard)
	if !errors.Is(err, errBoom) {
		t.Errorf("Convert() error = %v, want errBoom", err)
	}
	if !failing.Closed() {
		t.Error("Convert() did not close the failing source")
	}
}

func TestDecodeAll(t *testing.T) {
	t.Parallel()

	in, err := os.Open("testdata/sample.dda")
	if err != nil {
		t.Fatal(err)
	}
	defer in.Close()

	samples, err := DecodeAll(in)
	if err != nil {
		t.Fatalf("DecodeAll() error = %v", err)
	}

	if len(samples) != 60 {
		t.Fatalf("DecodeAll() = %d samples, want 60", len(samples))
	}
	if samples[45].EngineTemperature != telemetry.Int(20) || samples[44].EngineTemperature.Valid {
		t.Errorf("engine temperature around the first extended record = %v, %v",
			samples[44].EngineTemperature, samples[45].EngineTemperature)
	}
}

func TestDecodeAll_Errors(t *testing.T) {
	t.Parallel()

	if _, err := DecodeAll(bytes.NewReader(make([]byte, 100))); !errors.Is(err, dda.ErrSeekOutOfRange) {
		t.Errorf("short input error = %v, want ErrSeekOutOfRange", err)
	}

	samples, err := DecodeAll(bytes.NewReader(make([]byte, dda.DefaultOffset)))
	if err != nil || len(samples) != 0 {
		t.Errorf("header only = %d samples, %v; want none", len(samples), err)
	}

	// a bare record area
	samples, err = DecodeAll(bytes.NewReader(make([]byte, 2*dda.RegularSize)), dda.WithOffset(0))
	if err != nil || len(samples) != 10 {
		t.Errorf("WithOffset(0) = %d samples, %v; want 10", len(samples), err)
	}
}

func TestNewRegistry(t *testing.T) {
	t.Parallel()

	r := NewRegistry()

	if got, want := r.Formats(), []string{"aiff", "csv", "wav", "xlsx"}; !slices.Equal(got, want) {
		t.Errorf("Formats() = %v, want %v", got, want)
	}

	for _, f := range r.Formats() {
		enc, ok := r.Get(f)
		if !ok || enc.Extension() != f {
			t.Errorf("Get(%q) = %v, %v", f, enc, ok)
		}
	}
}

func TestOutputPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		ext   string
		want  string
	}{
		{"ride.dda", "csv", "ride.csv"},
		{"logs/ride.DDA", ".xlsx", "logs/ride.xlsx"},
		{"ride", "wav", "ride.wav"},
		{"logs.v2/ride", "aiff", "logs.v2/ride.aiff"},
		{"a.b.dda", "csv", "a.b.csv"},
	}

	for _, tt := range tests {
		if got := OutputPath(tt.input, tt.ext); got != tt.want {
			t.Errorf("OutputPath(%q, %q) = %q, want %q", tt.input, tt.ext, got, tt.want)
		}
	}
}

func BenchmarkDecodeAll(b *testing.B) {
	data, err := os.ReadFile("testdata/sample.dda")
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()

	for range b.N {
		if _, err := DecodeAll(bytes.NewReader(data)); err != nil {
			b.Fatal(err)
		}
	}
}
