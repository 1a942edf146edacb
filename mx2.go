// Copyright 2014 Quoc-Viet Nguyen. All rights reserved.
// This software may be modified and distributed under the terms
// of the BSD license. See the LICENSE file for details.

/*
Package mx2 provides a Modbus RTU master for the Omron MX2 inverter.

The package is split along the protocol layers: a Packager frames
protocol data units into RTU frames with a CRC-16 trailer, a Transporter
exchanges frames over the serial line, and the Client built from both
exposes one typed operation per function code the inverter implements
(01h, 03h, 05h, 06h, 08h, 0Fh, 10h and 17h). The Inverter type layers
the drive's own conventions (datasheet numbering, 2-word registers,
fault monitors, EEPROM persistence) on top of the Client.
*/
package mx2

import (
	"errors"
	"fmt"
)

const (
	// FuncCodeReadCoils for bit wise access
	FuncCodeReadCoils = 0x01
	// FuncCodeWriteSingleCoil for bit wise access
	FuncCodeWriteSingleCoil = 0x05
	// FuncCodeWriteMultipleCoils for bit wise access
	FuncCodeWriteMultipleCoils = 0x0F

	// FuncCodeReadHoldingRegisters 16-bit wise access
	FuncCodeReadHoldingRegisters = 0x03
	// FuncCodeWriteSingleRegister 16-bit wise access
	FuncCodeWriteSingleRegister = 0x06
	// FuncCodeWriteMultipleRegisters 16-bit wise access
	FuncCodeWriteMultipleRegisters = 0x10
	// FuncCodeReadWriteMultipleRegisters 16-bit wise access
	FuncCodeReadWriteMultipleRegisters = 0x17

	// FuncCodeLoopbackTest echoes arbitrary diagnostic data
	FuncCodeLoopbackTest = 0x08
)

const (
	// ExceptionCodeIllegalFunction error code
	ExceptionCodeIllegalFunction = 1
	// ExceptionCodeIllegalDataAddress error code
	ExceptionCodeIllegalDataAddress = 2
	// ExceptionCodeIllegalDataValue error code
	ExceptionCodeIllegalDataValue = 3
	// ExceptionCodeServerDeviceFailure error code
	ExceptionCodeServerDeviceFailure = 4

	// Device-specific exception codes of the MX2 (datasheet section B-3).

	// ExceptionCodeOutOfBounds target address outside the register map
	ExceptionCodeOutOfBounds = 0x21
	// ExceptionCodeFunctionNotAvailable function exists but cannot run now
	ExceptionCodeFunctionNotAvailable = 0x22
	// ExceptionCodeReadOnlyTarget write to a read-only coil or register
	ExceptionCodeReadOnlyTarget = 0x23
)

// BroadcastID addresses every slave on the bus at once. Broadcast requests
// are write-only and never answered.
const BroadcastID byte = 0

// Sentinel errors of the protocol stack. Errors returned by this package
// wrap one of these (or *Error for a device-reported exception) so callers
// can branch with errors.Is.
var (
	// ErrInvalidAddress is returned when a slave address is outside 0-247
	// or a read is attempted on the broadcast address.
	ErrInvalidAddress = errors.New("mx2: invalid address")
	// ErrInvalidRequestSize is returned before any I/O when a quantity is
	// out of range or a batch of values is empty or not contiguous.
	ErrInvalidRequestSize = errors.New("mx2: invalid request size")
	// ErrFrameTooShort is returned when a frame cannot hold address,
	// function code and checksum.
	ErrFrameTooShort = errors.New("mx2: frame too short")
	// ErrChecksumMismatch is returned when the CRC trailer of a received
	// frame does not match its content.
	ErrChecksumMismatch = errors.New("mx2: checksum mismatch")
	// ErrInvalidCoilEncoding is returned when a coil state is encoded as
	// anything but 0xFF00 or 0x0000.
	ErrInvalidCoilEncoding = errors.New("mx2: invalid coil encoding")
	// ErrUnexpectedEcho is returned when a write or loopback confirmation
	// does not repeat the request.
	ErrUnexpectedEcho = errors.New("mx2: unexpected echo")
	// ErrByteCountMismatch is returned when the byte count declared in a
	// response disagrees with the payload or the requested quantity.
	ErrByteCountMismatch = errors.New("mx2: byte count mismatch")
	// ErrTimeout is returned when no complete frame arrives within the
	// transport timeout.
	ErrTimeout = errors.New("mx2: timeout awaiting response")
)

// Error implements error interface for device-reported exceptions.
type Error struct {
	FunctionCode  byte
	ExceptionCode byte
}

// Error converts known exception codes to error messages.
func (e *Error) Error() string {
	var name string
	switch e.ExceptionCode {
	case ExceptionCodeIllegalFunction:
		name = "illegal function"
	case ExceptionCodeIllegalDataAddress:
		name = "illegal data address"
	case ExceptionCodeIllegalDataValue:
		name = "illegal data value"
	case ExceptionCodeServerDeviceFailure:
		name = "server device failure"
	case ExceptionCodeOutOfBounds:
		name = "target address out of bounds"
	case ExceptionCodeFunctionNotAvailable:
		name = "function not available"
	case ExceptionCodeReadOnlyTarget:
		name = "read-only target"
	default:
		name = "unknown"
	}
	return fmt.Sprintf("mx2: exception '%v' (%s), function '%v'", e.ExceptionCode, name, e.FunctionCode&0x7F)
}

// ProtocolDataUnit (PDU) is independent of underlying communication layers.
type ProtocolDataUnit struct {
	FunctionCode byte
	Data         []byte
}

// Packager specifies the communication layer.
type Packager interface {
	SetSlave(slaveID byte)
	Slave() byte
	Encode(pdu *ProtocolDataUnit) (adu []byte, err error)
	Decode(adu []byte) (pdu *ProtocolDataUnit, err error)
	Verify(aduRequest []byte, aduResponse []byte) (err error)
}

// Transporter specifies the transport layer. A nil response with a nil
// error means the request was broadcast and no reply is expected.
type Transporter interface {
	Send(aduRequest []byte) (aduResponse []byte, err error)
}

// Connector exposes the underlying handler capability for open/connect and close the transport channel.
type Connector interface {
	Connect() error
	Close() error
}
