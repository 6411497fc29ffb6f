// SPDX-License-Identifier: EPL-2.0

package telemetry

import (
	"fmt"
	"strings"
)

// Field names one column of a Sample.
type Field int

const (
	Time Field = iota
	EngineSpeed
	Pedal
	TractionControl
	VehicleSpeed
	Gear
	Altitude
	Longitude
	Latitude
	EngineTemperature
	Distance
	Lap
	LeanAngle

	numFields
)

var fieldNames = [numFields]string{
	"Time", "EngineSpeed", "Pedal", "TractionControl", "VehicleSpeed", "Gear",
	"Altitude", "Longitude", "Latitude", "EngineTemperature", "Distance", "Lap",
	"LeanAngle",
}

// fullScale is the largest magnitude each channel can reach given the width
// of its raw field and its unit conversion. Time has none.
var fullScale = [numFields]float64{
	EngineSpeed:       65535,
	Pedal:             255.0 / 2,
	TractionControl:   255,
	VehicleSpeed:      65535.0 / 16,
	Gear:              255,
	Altitude:          65535.0 / 10,
	Longitude:         2147483648.0 / 1_000_000,
	Latitude:          2147483648.0 / 1_000_000,
	EngineTemperature: 255 - 40,
	Distance:          65535,
	Lap:               255,
	LeanAngle:         0.05493*65535 - 449.931,
}

// integral marks the fields that hold whole numbers.
var integral = [numFields]bool{
	EngineSpeed:       true,
	TractionControl:   true,
	Gear:              true,
	EngineTemperature: true,
	Distance:          true,
	Lap:               true,
}

func (f Field) String() string {
	if f < 0 || f >= numFields {
		return fmt.Sprintf("Field(%d)", int(f))
	}
	return fieldNames[f]
}

// FullScale returns the value that maps to 1.0 when f is exported as a
// normalized channel.
func (f Field) FullScale() (float64, bool) {
	if f <= Time || f >= numFields {
		return 0, false
	}
	return fullScale[f], true
}

// Integral reports whether values of f are always whole numbers.
func (f Field) Integral() bool {
	return f >= 0 && f < numFields && integral[f]
}

// ParseField resolves a header name, ignoring case.
func ParseField(name string) (Field, error) {
	for i, n := range fieldNames {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return Field(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownField, name)
}

// ParseFields resolves a comma separated list of header names.
func ParseFields(list string) ([]Field, error) {
	var fields []Field
	for name := range strings.SplitSeq(list, ",") {
		if strings.TrimSpace(name) == "" {
			continue
		}
		f, err := ParseField(name)
		if err != nil {
			return nil, err
		}
		fields = append(fields, f)
	}
	if len(fields) == 0 {
		return nil, ErrNoFields
	}
	return fields, nil
}

// Fields returns every field in header order.
func Fields() []Field {
	fields := make([]Field, numFields)
	for i := range fields {
		fields[i] = Field(i)
	}
	return fields
}

// Header returns the column names in output order.
func Header() []string {
	return append([]string(nil), fieldNames[:]...)
}
