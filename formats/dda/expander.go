// SPDX-License-Identifier: EPL-2.0

package dda

import (
	"github.com/ik5/ddalog/telemetry"
	"github.com/ik5/ddalog/utils"
)

const (
	// SubSamples is the number of samples produced from each record.
	SubSamples = 5
	// SampleRate is the resulting number of samples per second.
	SampleRate = 50

	subStep    = 0.02 // seconds between sub-samples
	recordStep = 0.1  // seconds between records

	// Calibration constants of the logger; keep as is.
	leanScale  = 0.05493
	leanOffset = 449.931
	tempOffset = 40
	speedScale = 16
	pedalScale = 2
	altScale   = 10
	coordScale = 1_000_000
)

// Expander turns records into timed samples. It carries the clock, the
// record position and the most recent extended record across calls, so one
// Expander must see every record of a log in order.
type Expander struct {
	clock float64
	index int

	last         Record
	haveExtended bool
}

// Index is the zero-based position of the next record to expand.
func (e *Expander) Index() int { return e.index }

// Clock is the time in seconds of the first sample of the next record.
func (e *Expander) Clock() float64 { return e.clock }

// LastExtended returns the most recent extended record, if one was seen.
func (e *Expander) LastExtended() (Record, bool) { return e.last, e.haveExtended }

// Expand produces the five samples of rec and advances the clock by 0.1 s.
//
// Even sub-samples take Throttle, Lean and DTC, odd ones Throttle2, Lean2
// and DTC2. EngineSpeed walks RPM[0..4]. Temperature, distance and lap come
// from the latest extended record, which is rec itself when it is extended.
func (e *Expander) Expand(rec Record) [SubSamples]telemetry.Sample {
	if rec.Kind == Extended {
		e.last = rec
		e.haveExtended = true
	}

	var (
		temp, dist telemetry.NullInt
		lap        uint16
	)
	if e.haveExtended {
		temp = telemetry.Int(int(e.last.Temp) - tempOffset)
		dist = telemetry.Int(int(e.last.Distance))
		lap = uint16(e.last.Lap)
	}

	speed := float64(rec.Speed) / speedScale
	alt := utils.Round(float64(rec.Altitude)/altScale, 1)
	lon := utils.Round(float64(rec.Longitude)/coordScale, 6)
	lat := utils.Round(float64(rec.Latitude)/coordScale, 6)

	var out [SubSamples]telemetry.Sample
	for i := range SubSamples {
		throttle, lean, dtc := rec.Throttle2, rec.Lean2, rec.DTC2
		if i%2 == 0 {
			throttle, lean, dtc = rec.Throttle, rec.Lean, rec.DTC
		}

		// explicit float64 conversions keep the products from being fused
		// into the following add
		t := e.clock + float64(float64(i)*subStep)
		angle := float64(leanScale*float64(lean)) - leanOffset

		out[i] = telemetry.Sample{
			Time:              utils.Round(t, 3),
			EngineSpeed:       rec.RPM[i],
			Pedal:             utils.Round(float64(throttle)/pedalScale, 1),
			TractionControl:   dtc,
			VehicleSpeed:      speed,
			Gear:              rec.Gear,
			Altitude:          alt,
			Longitude:         lon,
			Latitude:          lat,
			EngineTemperature: temp,
			Distance:          dist,
			Lap:               lap,
			LeanAngle:         utils.Round(angle, 2),
		}
	}

	e.clock += recordStep
	e.index++

	return out
}
