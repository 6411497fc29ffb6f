// SPDX-License-Identifier: EPL-2.0

// Package telemetry provides the format-independent building blocks for
// decoded data logger output.
//
// This package contains:
//   - Sample, the 13-column row every decoder produces
//   - Source, a pull stream of samples terminated by io.EOF
//   - Decoder and Encoder interfaces implemented by the formats packages
//   - Registry for looking up encoders by format key
//   - Signal, ChannelSignal and Resampler for exporting channels as audio-rate PCM
//
// # Source Interface
//
//	type Source interface {
//	    SampleRate() int
//	    ReadSamples(dst []Sample) (int, error)
//	    Close() error
//	}
//
// Sources are single pass. Read until io.EOF:
//
//	buf := make([]telemetry.Sample, 64)
//	for {
//	    n, err := src.ReadSamples(buf)
//	    // use buf[:n]
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	}
//
// or range over All:
//
//	for s, err := range telemetry.All(src) {
//	    if err != nil {
//	        return err
//	    }
//	    fmt.Println(s.Time, s.EngineSpeed)
//	}
//
// # Absent Values
//
// EngineTemperature and Distance are NullInt values. They stay invalid until
// the decoder has seen a record that carries them. Encoders write absent
// values as empty cells and channel exports read them as 0.
//
// # Channel Export
//
// NewSignal selects fields and scales each by its full scale so every
// channel lies in [-1, 1]. NewResampler changes the frame rate with
// Catmull-Rom interpolation, for example to line telemetry up with a 60 fps
// video:
//
//	sig, _ := telemetry.NewSignal(src, telemetry.EngineSpeed, telemetry.LeanAngle)
//	res, _ := telemetry.NewResampler(sig, 60)
package telemetry
