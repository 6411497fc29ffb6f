// SPDX-License-Identifier: EPL-2.0

// Package csv writes telemetry samples as comma separated values.
//
// The table has a fixed header, one column per telemetry.Field in header
// order, and one row per sample:
//
//	Time,EngineSpeed,Pedal,TractionControl,VehicleSpeed,Gear,Altitude,Longitude,Latitude,EngineTemperature,Distance,Lap,LeanAngle
//
// Rows end with CRLF unless Encoder.LF is set. Whole number channels are
// printed as integers. Other values use the shortest decimal that reads
// back to the same float64, always with a fractional part ("100.0"), and
// switch to exponent form below 1e-4 and from 1e16 up ("1e-05"). Values
// that are absent, such as engine temperature before the first extended
// record, are empty cells.
//
// # Usage
//
//	src, err := dda.Decoder{}.Decode(f)
//	if err != nil {
//	    return err
//	}
//	n, err := csv.Encoder{}.Encode(out, src)
package csv
