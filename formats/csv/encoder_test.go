// SPDX-License-Identifier: EPL-2.0

package csv

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ik5/ddalog/formats/dda"
	"github.com/ik5/ddalog/internal/telemetrytest"
	"github.com/ik5/ddalog/telemetry"
)

var _ telemetry.Encoder = Encoder{}

const header = "Time,EngineSpeed,Pedal,TractionControl,VehicleSpeed,Gear,Altitude," +
	"Longitude,Latitude,EngineTemperature,Distance,Lap,LeanAngle"

type errWriter struct{ err error }

func (w errWriter) Write([]byte) (int, error) { return 0, w.err }

func TestEncoder_Golden(t *testing.T) {
	t.Parallel()

	f, err := os.Open("../dda/testdata/sample.dda")
	require.NoError(t, err)
	defer f.Close()

	want, err := os.ReadFile("testdata/sample.csv")
	require.NoError(t, err)

	src, err := dda.Decoder{}.Decode(f)
	require.NoError(t, err)

	var out bytes.Buffer
	n, err := Encoder{}.Encode(&out, src)
	require.NoError(t, err)

	assert.Equal(t, 60, n)
	assert.Equal(t, string(want), out.String())
}

func TestEncoder_Empty(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	n, err := Encoder{}.Encode(&out, telemetrytest.NewRampSource(0))
	require.NoError(t, err)

	assert.Zero(t, n)
	assert.Equal(t, header+"\r\n", out.String())
}

func TestEncoder_Rows(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	n, err := Encoder{LF: true}.Encode(&out, telemetrytest.NewRampSource(3))
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, header, lines[0])
	assert.Equal(t, "0.0,0,0.0,0,0.0,1,0.0,0.0,0.0,,,0,0.0", lines[1])
	assert.Equal(t, "0.02,100,0.0,0,0.0,2,0.0,0.0,0.0,,,0,0.0", lines[2])
	assert.Equal(t, "0.04,200,0.0,0,0.0,3,0.0,0.0,0.0,,,0,0.0", lines[3])
}

func TestEncoder_Comma(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	_, err := Encoder{Comma: ';'}.Encode(&out, telemetrytest.NewRampSource(1))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out.String(), "Time;EngineSpeed;Pedal;"))
	assert.Contains(t, out.String(), "\r\n0.0;0;0.0;")
}

func TestEncoder_InvalidComma(t *testing.T) {
	t.Parallel()

	_, err := Encoder{Comma: '"'}.Encode(&bytes.Buffer{}, telemetrytest.NewRampSource(1))
	assert.Error(t, err)
}

func TestEncoder_SourceError(t *testing.T) {
	t.Parallel()

	errBoom := errors.New("boom")
	var out bytes.Buffer

	n, err := Encoder{}.Encode(&out, telemetrytest.NewFailingSource(10, 4, errBoom))
	require.ErrorIs(t, err, errBoom)
	assert.Equal(t, 4, n)

	// rows decoded before the failure are flushed
	assert.Equal(t, 5, strings.Count(out.String(), "\r\n"))
}

func TestEncoder_WriteError(t *testing.T) {
	t.Parallel()

	errBoom := errors.New("disk full")

	_, err := Encoder{}.Encode(errWriter{errBoom}, telemetrytest.NewRampSource(3))
	assert.ErrorIs(t, err, errBoom)
}

func TestEncoder_NilWriter(t *testing.T) {
	t.Parallel()

	_, err := Encoder{}.Encode(nil, telemetrytest.NewRampSource(1))
	assert.ErrorIs(t, err, ErrNilWriter)
}

func TestEncoder_Extension(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "csv", Encoder{}.Extension())
}

func BenchmarkEncoder(b *testing.B) {
	src := telemetrytest.NewRampSource(5000)

	b.ReportAllocs()

	for range b.N {
		src.Reset()
		if _, err := (Encoder{}).Encode(&bytes.Buffer{}, src); err != nil {
			b.Fatal(err)
		}
	}
}
