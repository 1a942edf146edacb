// Copyright 2014 Quoc-Viet Nguyen. All rights reserved.
// This software may be modified and distributed under the terms
// of the BSD license. See the LICENSE file for details.

package mx2

const (
	crcPoly16    uint16 = 0xA001
	crcInitValue uint16 = 0xFFFF
)

// crc is the cyclical redundancy check of an RTU frame: polynomial 0xA001
// (reflected), seeded with 0xFFFF, transmitted low byte first.
type crc struct {
	sum uint16
}

// reset initializes the checksum. A crc value must be reset before reuse.
func (crc *crc) reset() *crc {
	crc.sum = crcInitValue
	return crc
}

// pushByte folds a single byte into the checksum.
func (crc *crc) pushByte(b byte) *crc {
	crc.sum ^= uint16(b)
	for i := 0; i < 8; i++ {
		if crc.sum&1 != 0 {
			crc.sum = crc.sum>>1 ^ crcPoly16
		} else {
			crc.sum >>= 1
		}
	}
	return crc
}

// pushBytes folds data into the checksum.
func (crc *crc) pushBytes(data []byte) *crc {
	for _, b := range data {
		crc.pushByte(b)
	}
	return crc
}

// value returns the checksum of all bytes pushed since the last reset.
func (crc *crc) value() uint16 {
	return crc.sum
}
