// Copyright 2014 Quoc-Viet Nguyen. All rights reserved.
// This software may be modified and distributed under the terms
// of the BSD license. See the LICENSE file for details.

package mx2

import (
	"testing"
)

func TestCRC(t *testing.T) {
	var crc crc
	crc.reset().pushByte(0x02).pushByte(0x07)

	if 0x1241 != crc.value() {
		t.Fatalf("crc expected %v, actual %v", 0x1241, crc.value())
	}
}

func TestCRCInitValue(t *testing.T) {
	var crc crc
	if crcInitValue != crc.reset().value() {
		t.Fatalf("crc expected %v, actual %v", crcInitValue, crc.value())
	}

	crc.pushByte(0x00)
	if 0x40BF != crc.value() {
		t.Fatalf("crc expected %v, actual %v", 0x40BF, crc.value())
	}
}

func TestCRCPushBytes(t *testing.T) {
	// Read coil status example from datasheet section B-3-5.
	var crc crc
	crc.reset().pushBytes([]byte{0x08, 0x01, 0x00, 0x06, 0x00, 0x05})

	if 0x911C != crc.value() {
		t.Fatalf("crc expected %v, actual %v", 0x911C, crc.value())
	}
}

func TestCRCReset(t *testing.T) {
	var crc crc
	crc.reset().pushBytes([]byte{0xDE, 0xAD, 0xBE, 0xEF})
	crc.reset().pushBytes([]byte{0x02, 0x07})

	if 0x1241 != crc.value() {
		t.Fatalf("crc expected %v, actual %v", 0x1241, crc.value())
	}
}
