// SPDX-License-Identifier: EPL-2.0

package telemetry_test

import (
	"fmt"
	"io"

	"github.com/ik5/ddalog/internal/telemetrytest"
	"github.com/ik5/ddalog/telemetry"
)

// Example_all demonstrates ranging over a source.
func Example_all() {
	src := telemetrytest.NewRampSource(3)

	for s, err := range telemetry.All(src) {
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("%.2f %d\n", s.Time, s.EngineSpeed)
	}
	// Output:
	// 0.00 0
	// 0.02 100
	// 0.04 200
}

// Example_resampler demonstrates exporting a channel at video frame rate.
func Example_resampler() {
	// 2 seconds of telemetry at 50 Hz
	src := telemetrytest.NewRampSource(100)

	sig, err := telemetry.NewSignal(src, telemetry.EngineSpeed)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	res, err := telemetry.NewResampler(sig, 30)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Printf("Output frame rate: %d fps\n", res.SampleRate())
	fmt.Printf("Channels: %d\n", res.Channels())

	buf := make([]float64, 16)
	total := 0

	for {
		n, err := res.ReadFrames(buf)
		total += n

		if err == io.EOF {
			break
		}
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
	}

	fmt.Printf("Total frames read: %d\n", total)
	// Output:
	// Output frame rate: 30 fps
	// Channels: 1
	// Total frames read: 60
}

// Example_registry demonstrates looking up encoders by format key.
func Example_registry() {
	registry := telemetry.NewRegistry()
	fmt.Println(len(registry.Formats()))

	_, ok := registry.Get("csv")
	fmt.Println(ok)
	// Output:
	// 0
	// false
}
