// SPDX-License-Identifier: EPL-2.0

// Package ddalog converts motorcycle data logger dumps into tables and
// channel audio.
//
// A dump is decoded by formats/dda into a lazy telemetry.Source of samples
// at 50 Hz. Encoders in the formats subpackages drain a Source into an
// output format:
//
//   - csv: one row per sample, the layout other tools expect
//   - xlsx: the same table as an Excel workbook
//   - wav, aiff: selected channels as PCM audio, optionally resampled, for
//     overlaying telemetry on video in an editor
//
// # Quick Start
//
//	in, _ := os.Open("ride.dda")
//	src, _ := dda.Decoder{}.Decode(in)
//
//	out, _ := os.Create(ddalog.OutputPath("ride.dda", "csv"))
//	rows, err := ddalog.Convert(src, csv.Encoder{}, out)
//
// DecodeAll collects a whole dump when random access is more convenient
// than streaming:
//
//	samples, err := ddalog.DecodeAll(in)
//
// # Registry
//
// NewRegistry returns a telemetry.Registry with every output format under
// its file extension, which is how cmd/ddaconv resolves -format.
//
// # End Of Stream
//
// A dump ends at end of file or at a final record shorter than its layout.
// Both are a normal end: sources report io.EOF and the helpers here return
// a nil error.
package ddalog
