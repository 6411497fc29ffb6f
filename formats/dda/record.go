// SPDX-License-Identifier: EPL-2.0

package dda

import (
	"encoding/binary"
	"fmt"
)

// Record is one decoded log record. Extended records fill every field;
// regular records leave Temp, Distance, Lap and Spare zero.
type Record struct {
	Kind Kind

	// RPM holds the five engine speed readings taken across the record.
	RPM [5]uint16

	Throttle, Throttle2 uint8
	Lean, Lean2         uint16
	DTC, DTC2           uint8

	Speed     uint16
	Gear      uint8
	Altitude  uint16
	Longitude int32
	Latitude  int32

	Temp     uint8
	Distance uint16
	Lap      uint8
	Spare    uint8
}

// Byte offsets shared by both kinds. After RPM5 the layouts diverge:
//
//	regular:  Throttle2(1) | tail
//	extended: Temp(1) Throttle2(1) Distance(2) Lap(1) | tail | Spare(1)
//
// where tail is Gear(1) Lean2(2) DTC2(1) Altitude(2) Longitude(4) Latitude(4).
const (
	offRPM1     = 0
	offRPM2     = 2
	offThrottle = 4
	offLean     = 5
	offDTC      = 7
	offRPM3     = 8
	offRPM4     = 10
	offSpeed    = 12
	offRPM5     = 14
	headSize    = 16

	regularTail  = headSize + 1
	extendedTail = headSize + 5
	tailSize     = 14
)

// DecodeRecord unpacks block according to kind. All integers are little
// endian; Longitude and Latitude are signed.
func DecodeRecord(block []byte, kind Kind) (Record, error) {
	if size := kind.Size(); size == 0 || len(block) != size {
		return Record{}, fmt.Errorf("%w: %s record needs %d bytes, got %d",
			ErrMalformedRecord, kind, size, len(block))
	}

	le := binary.LittleEndian
	rec := Record{Kind: kind}

	rec.RPM[0] = le.Uint16(block[offRPM1:])
	rec.RPM[1] = le.Uint16(block[offRPM2:])
	rec.Throttle = block[offThrottle]
	rec.Lean = le.Uint16(block[offLean:])
	rec.DTC = block[offDTC]
	rec.RPM[2] = le.Uint16(block[offRPM3:])
	rec.RPM[3] = le.Uint16(block[offRPM4:])
	rec.Speed = le.Uint16(block[offSpeed:])
	rec.RPM[4] = le.Uint16(block[offRPM5:])

	var tail []byte
	switch kind {
	case Extended:
		rec.Temp = block[headSize]
		rec.Throttle2 = block[headSize+1]
		rec.Distance = le.Uint16(block[headSize+2:])
		rec.Lap = block[headSize+4]
		tail = block[extendedTail : extendedTail+tailSize]
		rec.Spare = block[extendedTail+tailSize]
	default:
		rec.Throttle2 = block[headSize]
		tail = block[regularTail : regularTail+tailSize]
	}

	rec.Gear = tail[0]
	rec.Lean2 = le.Uint16(tail[1:])
	rec.DTC2 = tail[3]
	rec.Altitude = le.Uint16(tail[4:])
	rec.Longitude = int32(le.Uint32(tail[6:]))
	rec.Latitude = int32(le.Uint32(tail[10:]))

	return rec, nil
}
