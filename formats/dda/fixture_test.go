// SPDX-License-Identifier: EPL-2.0

package dda

import (
	"bytes"
	"encoding/binary"
)

// rawRegular mirrors the 31-byte regular layout for binary.Write.
type rawRegular struct {
	RPM1, RPM2      uint16
	Throttle        uint8
	Lean            uint16
	DTC             uint8
	RPM3, RPM4      uint16
	Speed, RPM5     uint16
	Throttle2, Gear uint8
	Lean2           uint16
	DTC2            uint8
	Altitude        uint16
	Longitude       int32
	Latitude        int32
}

// rawExtended mirrors the 36-byte extended layout for binary.Write.
type rawExtended struct {
	RPM1, RPM2      uint16
	Throttle        uint8
	Lean            uint16
	DTC             uint8
	RPM3, RPM4      uint16
	Speed, RPM5     uint16
	Temp, Throttle2 uint8
	Distance        uint16
	Lap, Gear       uint8
	Lean2           uint16
	DTC2            uint8
	Altitude        uint16
	Longitude       int32
	Latitude        int32
	Spare           uint8
}

func encode(v any) []byte {
	buf := new(bytes.Buffer)
	binary.Write(buf, binary.LittleEndian, v)
	return buf.Bytes()
}

// fixtureRecord returns the raw record at index i of the generated log used
// throughout the tests (also stored in testdata/sample.dda).
func fixtureRecord(i int) any {
	r := rawRegular{
		RPM1: uint16(3000 + 100*i), RPM2: uint16(3001 + 100*i),
		RPM3: uint16(3002 + 100*i), RPM4: uint16(3003 + 100*i), RPM5: uint16(3004 + 100*i),
		Throttle: uint8(2*i + 1), Throttle2: uint8(200 - i),
		Lean: uint16(8191 + 100*i), Lean2: uint16(8191 - 100*i),
		DTC: uint8(i), DTC2: uint8(i + 1),
		Speed: uint16(16*i + 8), Gear: uint8(1 + i%6),
		Altitude: uint16(1234 + i), Longitude: int32(123456789 + i), Latitude: int32(-33876543 - i),
	}
	if i%10 != 9 {
		return r
	}
	return rawExtended{
		RPM1: r.RPM1, RPM2: r.RPM2, RPM3: r.RPM3, RPM4: r.RPM4, RPM5: r.RPM5,
		Throttle: r.Throttle, Throttle2: r.Throttle2, Lean: r.Lean, Lean2: r.Lean2,
		DTC: r.DTC, DTC2: r.DTC2, Speed: r.Speed, Gear: r.Gear,
		Altitude: r.Altitude, Longitude: r.Longitude, Latitude: r.Latitude,
		Temp: 60, Distance: 1500, Lap: 3, Spare: 0xAA,
	}
}

// buildLog assembles a dump: a zeroed header, the given records and an
// optional tail of garbage bytes.
func buildLog(records []any, tail int) []byte {
	buf := new(bytes.Buffer)
	buf.Write(make([]byte, DefaultOffset))
	for _, r := range records {
		binary.Write(buf, binary.LittleEndian, r)
	}
	buf.Write(bytes.Repeat([]byte{1}, tail))
	return buf.Bytes()
}

func fixtureLog(n, tail int) []byte {
	records := make([]any, n)
	for i := range records {
		records[i] = fixtureRecord(i)
	}
	return buildLog(records, tail)
}
