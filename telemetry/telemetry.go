// SPDX-License-Identifier: EPL-2.0

package telemetry

import (
	"io"
	"slices"
	"sync"
)

// Sample is one decoded row of telemetry.
type Sample struct {
	Time            float64 // seconds since the first record
	EngineSpeed     uint16  // rpm
	Pedal           float64 // throttle opening, percent
	TractionControl uint8
	VehicleSpeed    float64
	Gear            uint8
	Altitude        float64 // metres
	Longitude       float64 // degrees
	Latitude        float64 // degrees
	// EngineTemperature and Distance come from the most recent extended
	// record and are not valid before the first one has been decoded.
	EngineTemperature NullInt
	Distance          NullInt
	Lap               uint16
	LeanAngle         float64 // degrees
}

// NullInt is an integer that may be absent.
type NullInt struct {
	Int   int
	Valid bool
}

// Int returns a valid NullInt holding v.
func Int(v int) NullInt { return NullInt{Int: v, Valid: true} }

// Value returns the numeric value of field f and whether it is present.
func (s Sample) Value(f Field) (float64, bool) {
	switch f {
	case Time:
		return s.Time, true
	case EngineSpeed:
		return float64(s.EngineSpeed), true
	case Pedal:
		return s.Pedal, true
	case TractionControl:
		return float64(s.TractionControl), true
	case VehicleSpeed:
		return s.VehicleSpeed, true
	case Gear:
		return float64(s.Gear), true
	case Altitude:
		return s.Altitude, true
	case Longitude:
		return s.Longitude, true
	case Latitude:
		return s.Latitude, true
	case EngineTemperature:
		return float64(s.EngineTemperature.Int), s.EngineTemperature.Valid
	case Distance:
		return float64(s.Distance.Int), s.Distance.Valid
	case Lap:
		return float64(s.Lap), true
	case LeanAngle:
		return s.LeanAngle, true
	default:
		return 0, false
	}
}

type Source interface {
	// SampleRate is the nominal number of samples per second.
	SampleRate() int
	// ReadSamples fills dst with samples in increasing Time order and returns
	// how many were written. When n == 0 with err == io.EOF, the stream is finished.
	ReadSamples(dst []Sample) (n int, err error)

	// Close releases any resources.
	Close() error
}

// Decoder constructs a Source from an input reader.
type Decoder interface {
	Decode(r io.Reader) (Source, error)
}

// Encoder drains a Source into w and reports how many samples it wrote.
type Encoder interface {
	Encode(w io.Writer, src Source) (n int, err error)
	// Extension is the file extension, without the dot, for encoded output.
	Extension() string
}

// Registry for encoders by format key (e.g., "csv", "xlsx", "wav").
type Registry struct {
	encoders map[string]Encoder

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		encoders: make(map[string]Encoder),
		mtx:      &sync.Mutex{},
	}
}

func (r *Registry) Register(format string, e Encoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.encoders[format] = e
}

func (r *Registry) Get(format string) (Encoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	e, ok := r.encoders[format]
	return e, ok
}

// Formats lists the registered format keys in sorted order.
func (r *Registry) Formats() []string {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	formats := make([]string, 0, len(r.encoders))
	for k := range r.encoders {
		formats = append(formats, k)
	}
	slices.Sort(formats)

	return formats
}
