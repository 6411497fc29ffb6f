// SPDX-License-Identifier: EPL-2.0

// Package dda decodes the fixed-layout binary dumps written by the data
// logger into telemetry samples.
//
// # File Format
//
// A dump is a header followed by back-to-back records starting at byte
// 1494 (DefaultOffset). Records carry no tag or length; their layout is
// decided by position alone:
//
//	index % 10 == 9  extended, 36 bytes
//	otherwise        regular,  31 bytes
//
// Both layouts share the leading 16 bytes (RPM1, RPM2, Throttle, Lean, DTC,
// RPM3, RPM4, Speed, RPM5). Regular records continue with Throttle2; extended
// records insert Temp first and Distance and Lap after Throttle2, and end with
// one spare byte. Gear, Lean2, DTC2, Altitude, Longitude and Latitude close
// both layouts. Integers are little endian and the coordinates are signed.
//
// The stream ends at end of file or at a final record that is shorter than
// its layout requires. Neither is an error.
//
// # Samples
//
// Each record is logged every 0.1 s and expands into five samples 0.02 s
// apart. EngineSpeed takes one of the five RPM readings per sample, while
// Pedal, TractionControl and LeanAngle alternate between their first and
// second reading. Engine temperature, distance and lap are only logged in
// extended records and are carried forward until the next one.
//
// # Decoding
//
//	file, _ := os.Open("ride.dda")
//	src, err := dda.Decoder{}.Open(file)
//	if err != nil {
//	    // ErrSeekOutOfRange, ErrIO
//	}
//
//	buf := make([]telemetry.Sample, 256)
//	n, err := src.ReadSamples(buf)
//
// NewDecoder accepts WithOffset for loggers with a different header size and
// WithLogger to receive progress through log/slog.
//
// # Errors
//
//   - ErrSeekOutOfRange: the file is shorter than the start offset
//   - ErrIO: the reader failed; the cause is wrapped
//   - ErrMalformedRecord: DecodeRecord got a block of the wrong length
//
// # Rounding
//
// Derived values are rounded to fixed decimals (Time 3, Pedal 1, Altitude 1,
// coordinates 6, LeanAngle 2) with utils.Round, which rounds the exact binary
// value and sends exact ties to even.
package dda
