// Copyright 2014 Quoc-Viet Nguyen. All rights reserved.
// This software may be modified and distributed under the terms
// of the BSD license. See the LICENSE file for details.

package mx2

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/grid-x/serial"
)

const (
	rtuMinSize = 4
	rtuMaxSize = 256

	rtuExceptionSize = 5

	rtuMaxSlaveID = 247
)

const (
	stateSlaveID = 1 << iota
	stateFunctionCode
	stateReadLength
	stateReadPayload
	stateCRC
)

// RTUClientHandler implements Packager and Transporter interface.
type RTUClientHandler struct {
	rtuPackager
	rtuSerialTransporter
}

// NewRTUClientHandler allocates and initializes a RTUClientHandler.
func NewRTUClientHandler(address string) *RTUClientHandler {
	handler := &RTUClientHandler{}
	handler.Address = address
	handler.Timeout = serialTimeout
	handler.IdleTimeout = serialIdleTimeout
	return handler
}

// RTUClient creates RTU client with default handler and given connect string.
func RTUClient(address string) Client {
	handler := NewRTUClientHandler(address)
	return NewClient(handler)
}

// rtuPackager implements Packager interface.
type rtuPackager struct {
	SlaveID byte
}

// SetSlave sets the slave id for the next client operations.
func (mb *rtuPackager) SetSlave(slaveID byte) {
	mb.SlaveID = slaveID
}

// Slave returns the configured slave id.
func (mb *rtuPackager) Slave() byte {
	return mb.SlaveID
}

// Encode encodes PDU in an RTU frame:
//
//	Slave Address   : 1 byte
//	Function        : 1 byte
//	Data            : 0 up to 252 bytes
//	CRC             : 2 byte
func (mb *rtuPackager) Encode(pdu *ProtocolDataUnit) (adu []byte, err error) {
	if mb.SlaveID > rtuMaxSlaveID {
		err = fmt.Errorf("mx2: slave id '%v' must be between '%v' and '%v': %w", mb.SlaveID, BroadcastID, rtuMaxSlaveID, ErrInvalidAddress)
		return
	}
	length := len(pdu.Data) + 4
	if length > rtuMaxSize {
		err = fmt.Errorf("mx2: length of data '%v' must not be bigger than '%v': %w", length, rtuMaxSize, ErrInvalidRequestSize)
		return
	}
	adu = make([]byte, length)

	adu[0] = mb.SlaveID
	adu[1] = pdu.FunctionCode
	copy(adu[2:], pdu.Data)

	// Append crc
	var crc crc
	crc.reset().pushBytes(adu[0 : length-2])
	checksum := crc.value()

	adu[length-1] = byte(checksum >> 8)
	adu[length-2] = byte(checksum)
	return
}

// Verify verifies response length and slave id.
func (mb *rtuPackager) Verify(aduRequest []byte, aduResponse []byte) (err error) {
	length := len(aduResponse)
	// Minimum size (including address, function and CRC)
	if length < rtuMinSize {
		err = fmt.Errorf("mx2: response length '%v' does not meet minimum '%v': %w", length, rtuMinSize, ErrFrameTooShort)
		return
	}
	// Slave address must match
	if aduResponse[0] != aduRequest[0] {
		err = fmt.Errorf("mx2: response slave id '%v' does not match request '%v': %w", aduResponse[0], aduRequest[0], ErrUnexpectedEcho)
		return
	}
	return
}

// Decode extracts PDU from RTU frame and verify CRC.
func (mb *rtuPackager) Decode(adu []byte) (pdu *ProtocolDataUnit, err error) {
	length := len(adu)
	if length < rtuMinSize {
		err = fmt.Errorf("mx2: frame length '%v' does not meet minimum '%v': %w", length, rtuMinSize, ErrFrameTooShort)
		return
	}
	// Calculate checksum
	var crc crc
	crc.reset().pushBytes(adu[0 : length-2])
	checksum := uint16(adu[length-1])<<8 | uint16(adu[length-2])
	if checksum != crc.value() {
		err = fmt.Errorf("mx2: frame crc '%v' does not match expected '%v': %w", checksum, crc.value(), ErrChecksumMismatch)
		return
	}
	// Function code & data
	pdu = &ProtocolDataUnit{}
	pdu.FunctionCode = adu[1]
	pdu.Data = adu[2 : length-2]
	return
}

// rtuSerialTransporter implements Transporter interface.
type rtuSerialTransporter struct {
	serialPort

	// Latency is the extra response wait of the drive, mirroring its
	// communication wait time setting (C078). Zero keeps the standard
	// silent interval only.
	Latency time.Duration
}

// InvalidLengthError is returned by readIncrementally when the response would overflow buffer
// implemented to simplify testing
type InvalidLengthError struct {
	length byte // length received which triggered the error
}

// Error implements the error interface
func (e *InvalidLengthError) Error() string {
	return fmt.Sprintf("invalid length received: %d", e.length)
}

// readIncrementally reads one frame byte at a time, skipping line noise
// until the expected slave id comes by.
func readIncrementally(slaveID, functionCode byte, r io.Reader, deadline time.Time) ([]byte, error) {
	data := make([]byte, rtuMaxSize)

	state := stateSlaveID
	var length, toRead byte
	var n, crcCount int

	for {
		if time.Now().After(deadline) { // Possible that serialport may spew data
			return nil, fmt.Errorf("mx2: no complete frame within deadline: %w", ErrTimeout)
		}
		if r == nil {
			return nil, fmt.Errorf("mx2: reader is nil")
		}
		buf := make([]byte, 1)
		_, err := io.ReadAtLeast(r, buf, 1)
		if err != nil {
			return nil, err
		}
		switch state {
		// expecting slaveID
		case stateSlaveID:
			// read slaveID
			if buf[0] == slaveID {
				state = stateFunctionCode
				data[n] = buf[0]
				n++
				continue
			}
		case stateFunctionCode:
			// read function code
			if buf[0] == functionCode {
				switch functionCode {
				case FuncCodeReadCoils,
					FuncCodeReadHoldingRegisters,
					FuncCodeReadWriteMultipleRegisters:

					state = stateReadLength
				case FuncCodeWriteSingleCoil,
					FuncCodeWriteSingleRegister,
					FuncCodeWriteMultipleCoils,
					FuncCodeWriteMultipleRegisters,
					FuncCodeLoopbackTest:

					// Fixed four data bytes: either an address and value
					// echo or the loopback sub-function and data.
					state = stateReadPayload
					toRead = 4
				default:
					return nil, fmt.Errorf("mx2: function code not handled: %d", functionCode)
				}
				data[n] = buf[0]
				n++
				continue
			} else if buf[0] == functionCode+0x80 {
				state = stateReadPayload
				data[n] = buf[0]
				n++
				// only exception code left to read
				toRead = 1
			}
		case stateReadLength:
			// read length byte
			length = buf[0]
			// max length = rtuMaxSize - SlaveID(1) - FunctionCode(1) - length(1) - CRC(2)
			if length > rtuMaxSize-5 || length == 0 {
				return nil, &InvalidLengthError{length: length}
			}

			toRead = length
			data[n] = length
			n++
			state = stateReadPayload
		case stateReadPayload:
			// read payload
			data[n] = buf[0]
			toRead--
			n++
			if toRead == 0 {
				state = stateCRC
			}
		case stateCRC:
			// read crc
			data[n] = buf[0]
			crcCount++
			n++
			if crcCount == 2 {
				return data[:n], nil
			}
		}
	}
}

func (mb *rtuSerialTransporter) Send(aduRequest []byte) (aduResponse []byte, err error) {
	mb.mu.Lock()
	defer mb.mu.Unlock()

	// Make sure port is connected
	if err = mb.connect(); err != nil {
		return
	}
	// Start the timer to close when idle
	mb.lastActivity = time.Now()
	mb.startCloseTimer()

	// Send the request
	mb.logf("mx2: send % x\n", aduRequest)
	if _, err = mb.port.Write(aduRequest); err != nil {
		return
	}
	bytesToRead := calculateResponseLength(aduRequest)
	time.Sleep(mb.calculateDelay(len(aduRequest)+bytesToRead) + mb.Latency)

	if aduRequest[0] == BroadcastID {
		// Broadcast requests are never answered. The delay above keeps
		// the next frame separated on the bus.
		return nil, nil
	}

	data, err := readIncrementally(aduRequest[0], aduRequest[1], mb.port, time.Now().Add(mb.Config.Timeout))
	if errors.Is(err, serial.ErrTimeout) {
		err = fmt.Errorf("mx2: no response from slave '%v': %w", aduRequest[0], ErrTimeout)
	}
	if err != nil {
		return
	}
	mb.logf("mx2: recv % x\n", data[:])
	aduResponse = data
	return
}

// charDuration is the time one character occupies on the wire. A character
// is 11 bits long: start, eight data bits, parity or a second stop, stop.
func (mb *rtuSerialTransporter) charDuration() time.Duration {
	return time.Duration(float64(time.Second) / float64(mb.BaudRate) * 11)
}

// characterDelay is the longest silence allowed inside a frame, 1.5
// characters, fixed at 750us above 19200 baud.
func (mb *rtuSerialTransporter) characterDelay() time.Duration {
	if mb.BaudRate <= 0 || mb.BaudRate > 19200 {
		return 750 * time.Microsecond
	}
	return mb.charDuration() * 3 / 2
}

// frameDelay is the silent interval separating frames, 3.5 characters,
// fixed at 1750us above 19200 baud.
func (mb *rtuSerialTransporter) frameDelay() time.Duration {
	if mb.BaudRate <= 0 || mb.BaudRate > 19200 {
		return 1750 * time.Microsecond
	}
	return mb.charDuration() * 7 / 2
}

// calculateDelay roughly calculates time needed for the next frame.
// See MODBUS over Serial Line - Specification and Implementation Guide (page 13).
func (mb *rtuSerialTransporter) calculateDelay(chars int) time.Duration {
	return time.Duration(chars)*mb.characterDelay() + mb.frameDelay()
}

func calculateResponseLength(adu []byte) int {
	length := rtuMinSize
	switch adu[1] {
	case FuncCodeReadCoils:
		count := int(binary.BigEndian.Uint16(adu[4:]))
		length += 1 + count/8
		if count%8 != 0 {
			length++
		}
	case FuncCodeReadHoldingRegisters,
		FuncCodeReadWriteMultipleRegisters:
		count := int(binary.BigEndian.Uint16(adu[4:]))
		length += 1 + count*2
	case FuncCodeWriteSingleCoil,
		FuncCodeWriteMultipleCoils,
		FuncCodeWriteSingleRegister,
		FuncCodeWriteMultipleRegisters,
		FuncCodeLoopbackTest:
		length += 4
	default:
	}
	return length
}
