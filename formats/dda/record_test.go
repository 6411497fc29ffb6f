// SPDX-License-Identifier: EPL-2.0

package dda

import (
	"encoding/binary"
	"errors"
	"testing"
)

func TestLayoutSizes(t *testing.T) {
	t.Parallel()

	if got := binary.Size(rawRegular{}); got != RegularSize {
		t.Errorf("regular layout is %d bytes, want %d", got, RegularSize)
	}
	if got := binary.Size(rawExtended{}); got != ExtendedSize {
		t.Errorf("extended layout is %d bytes, want %d", got, ExtendedSize)
	}
}

func TestDecodeRecord_Regular(t *testing.T) {
	t.Parallel()

	block := encode(rawRegular{
		RPM1: 1000, RPM2: 2000, Throttle: 100, Lean: 8191, DTC: 1,
		RPM3: 3000, RPM4: 4000, Speed: 800, RPM5: 50000, Throttle2: 50,
		Gear: 4, Lean2: 9000, DTC2: 2, Altitude: 5123,
		Longitude: 123456789, Latitude: -987654321,
	})

	rec, err := DecodeRecord(block, Regular)
	if err != nil {
		t.Fatalf("DecodeRecord() error = %v", err)
	}

	want := Record{
		Kind:     Regular,
		RPM:      [5]uint16{1000, 2000, 3000, 4000, 50000},
		Throttle: 100, Throttle2: 50,
		Lean: 8191, Lean2: 9000,
		DTC: 1, DTC2: 2,
		Speed: 800, Gear: 4, Altitude: 5123,
		Longitude: 123456789, Latitude: -987654321,
	}

	if rec != want {
		t.Errorf("DecodeRecord() = %+v\nwant %+v", rec, want)
	}
}

func TestDecodeRecord_Extended(t *testing.T) {
	t.Parallel()

	block := encode(rawExtended{
		RPM1: 11, RPM2: 12, Throttle: 13, Lean: 14, DTC: 15,
		RPM3: 16, RPM4: 17, Speed: 18, RPM5: 19,
		Temp: 60, Throttle2: 21, Distance: 65000, Lap: 7, Gear: 6,
		Lean2: 24, DTC2: 25, Altitude: 26, Longitude: -1, Latitude: 2147483647,
		Spare: 0x5A,
	})

	rec, err := DecodeRecord(block, Extended)
	if err != nil {
		t.Fatalf("DecodeRecord() error = %v", err)
	}

	want := Record{
		Kind:     Extended,
		RPM:      [5]uint16{11, 12, 16, 17, 19},
		Throttle: 13, Throttle2: 21,
		Lean: 14, Lean2: 24,
		DTC: 15, DTC2: 25,
		Speed: 18, Gear: 6, Altitude: 26,
		Longitude: -1, Latitude: 2147483647,
		Temp: 60, Distance: 65000, Lap: 7, Spare: 0x5A,
	}

	if rec != want {
		t.Errorf("DecodeRecord() = %+v\nwant %+v", rec, want)
	}
}

func TestDecodeRecord_LengthMismatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		size int
		kind Kind
	}{
		{name: "regular too short", size: 30, kind: Regular},
		{name: "regular given extended block", size: ExtendedSize, kind: Regular},
		{name: "extended given regular block", size: RegularSize, kind: Extended},
		{name: "empty", size: 0, kind: Extended},
		{name: "unknown kind", size: RegularSize, kind: Kind(9)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := DecodeRecord(make([]byte, tt.size), tt.kind)
			if !errors.Is(err, ErrMalformedRecord) {
				t.Errorf("DecodeRecord() error = %v, want ErrMalformedRecord", err)
			}
		})
	}
}

func TestDecodeRecord_ZeroAllocs(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping allocation test in short mode")
	}

	block := encode(fixtureRecord(3))

	allocs := testing.AllocsPerRun(1000, func() {
		_, _ = DecodeRecord(block, Regular)
	})

	if allocs > 0 {
		t.Errorf("DecodeRecord allocated %v times, want 0", allocs)
	}
}

func BenchmarkDecodeRecord(b *testing.B) {
	regular := encode(fixtureRecord(0))
	extended := encode(fixtureRecord(9))

	b.ReportAllocs()

	for i := range b.N {
		if i%10 == 9 {
			_, _ = DecodeRecord(extended, Extended)
		} else {
			_, _ = DecodeRecord(regular, Regular)
		}
	}
}
