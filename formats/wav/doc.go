// SPDX-License-Identifier: EPL-2.0

// Package wav exports telemetry channels as PCM WAV files.
//
// Each selected telemetry.Field becomes one channel. Values are divided by
// the field's full scale, so a channel spans its whole integer range only
// when the raw reading does, and are written as signed PCM at 16, 24 or 32
// bits. The file plays at the source rate (50 Hz for data logger dumps)
// unless Rate asks for cubic resampling, which is how a channel is lined
// up with video at 25, 30 or 60 frames per second.
//
// It uses github.com/go-audio/wav for the RIFF container.
//
// # Encoding
//
//	src, _ := dda.Decoder{}.Decode(in)
//	out, _ := os.Create("rpm.wav")
//	enc := wav.Encoder{
//	    Fields: []telemetry.Field{telemetry.EngineSpeed, telemetry.Pedal},
//	    Rate:   60,
//	}
//	frames, err := enc.Encode(out, src)
//
// The RIFF header is patched with Seek once all frames are written. Writers
// that cannot seek, such as pipes, are buffered in memory and receive the
// whole file at the end.
//
// # Error Handling
//
//   - ErrNoFrames: the source produced no samples; nothing is written
//   - ErrUnsupportedBitDepth: BitDepth is not 16, 24 or 32
//   - telemetry.ErrNotExportable: a field, such as Time, has no full scale
package wav
