// SPDX-License-Identifier: EPL-2.0

// Package aiff exports telemetry channels as PCM AIFF files.
//
// It behaves like the wav package, one channel per selected field scaled
// by its full scale, but writes the big endian AIFF container through
// github.com/go-audio/aiff. Some editors on macOS import AIFF more readily
// than WAV.
//
//	enc := aiff.Encoder{Fields: []telemetry.Field{telemetry.LeanAngle}, Rate: 25}
//	frames, err := enc.Encode(out, src)
package aiff
