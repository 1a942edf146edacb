// Copyright 2014 Quoc-Viet Nguyen. All rights reserved.
// This software may be modified and distributed under the terms
// of the BSD license. See the LICENSE file for details.

package mx2

import (
	"encoding/binary"
	"fmt"
)

const (
	coilOn  uint16 = 0xFF00
	coilOff uint16 = 0x0000
)

// encodeRegister16 encodes one register word big-endian.
func encodeRegister16(value uint16) []byte {
	data := make([]byte, 2)
	binary.BigEndian.PutUint16(data, value)
	return data
}

// decodeRegister16 decodes one big-endian register word.
func decodeRegister16(data []byte) uint16 {
	return binary.BigEndian.Uint16(data)
}

// encodeRegister32 encodes the low 32 bits of value as two register words,
// high word first.
func encodeRegister32(value int64) []byte {
	data := make([]byte, 4)
	binary.BigEndian.PutUint32(data, uint32(value))
	return data
}

// decodeRegister32 reassembles two consecutive register words into one
// 32-bit value, high word first. The result is sign-extended when signed
// is true and zero-extended otherwise.
func decodeRegister32(data []byte, signed bool) int64 {
	value := uint32(binary.BigEndian.Uint16(data))<<16 | uint32(binary.BigEndian.Uint16(data[2:]))
	if signed {
		return int64(int32(value))
	}
	return int64(value)
}

// encodeCoil encodes a coil state as the two-byte constant the device
// expects: 0xFF00 for ON, 0x0000 for OFF.
func encodeCoil(value bool) []byte {
	if value {
		return encodeRegister16(coilOn)
	}
	return encodeRegister16(coilOff)
}

// decodeCoil decodes a two-byte coil state. Anything other than the two
// well-known constants is rejected.
func decodeCoil(data []byte) (bool, error) {
	if len(data) != 2 {
		return false, fmt.Errorf("mx2: coil state size '%v' must be '%v': %w", len(data), 2, ErrInvalidCoilEncoding)
	}
	switch binary.BigEndian.Uint16(data) {
	case coilOn:
		return true, nil
	case coilOff:
		return false, nil
	}
	return false, fmt.Errorf("mx2: coil state '%#04x' must be either 0xFF00 (ON) or 0x0000 (OFF): %w",
		binary.BigEndian.Uint16(data), ErrInvalidCoilEncoding)
}

// packCoils packs coil states into change data for a multi-coil write:
// bit i of byte i/8, least significant bit first, spare bits zero. The
// drive takes change data in word units, so the result is padded to an
// even number of bytes.
func packCoils(values []bool) []byte {
	count := (len(values) + 7) / 8
	if count%2 != 0 {
		count++
	}
	data := make([]byte, count)
	for i, value := range values {
		if value {
			data[i/8] |= 1 << (i % 8)
		}
	}
	return data
}

// unpackCoils extracts quantity coil states from the packed status bytes
// of a read response, bit i of byte i/8. Spare bits are ignored.
func unpackCoils(quantity uint16, data []byte) []bool {
	values := make([]bool, quantity)
	for i := range values {
		values[i] = data[i/8]&(1<<(i%8)) != 0
	}
	return values
}
