// Copyright 2014 Quoc-Viet Nguyen. All rights reserved.
// This software may be modified and distributed under the terms
// of the BSD license. See the LICENSE file for details.

package mx2

// CoilAddress identifies a single-bit coil on the wire. Wire addresses are
// zero-based; the datasheet numbers coils from one.
type CoilAddress uint16

// RegisterAddress identifies a 16-bit holding register on the wire. Wire
// addresses are zero-based; the datasheet numbers registers from one.
type RegisterAddress uint16

// CoilValue pairs a coil address with its state.
type CoilValue struct {
	Address CoilAddress
	Value   bool
}

// RegisterValue pairs a register address with one 16-bit word. Wide
// quantities span two consecutive registers, high word first.
type RegisterValue struct {
	Address RegisterAddress
	Value   uint16
}

// Client declares one operation per function code the drive implements,
// regardless of the underlying transport stream.
type Client interface {
	// Bit access

	// ReadCoils reads from 1 to 2000 contiguous coils starting at address
	// and returns one value per coil.
	ReadCoils(address CoilAddress, quantity uint16) (results []CoilValue, err error)
	// WriteCoil sets a single coil to either ON or OFF and verifies the
	// confirmation echoed by the device.
	WriteCoil(value CoilValue) error
	// WriteCoils sets a contiguous run of 1 to 1968 coils in one request.
	// The addresses of values must be consecutive.
	WriteCoils(values []CoilValue) error

	// 16-bit access

	// ReadHoldingRegisters reads from 1 to 125 contiguous holding
	// registers starting at address and returns one value per register.
	ReadHoldingRegisters(address RegisterAddress, quantity uint16) (results []RegisterValue, err error)
	// WriteHoldingRegister writes a single holding register and verifies
	// the confirmation echoed by the device.
	WriteHoldingRegister(value RegisterValue) error
	// WriteHoldingRegisters writes a contiguous run of 1 to 123 registers
	// in one request. The addresses of values must be consecutive.
	WriteHoldingRegisters(values []RegisterValue) error
	// ReadWriteHoldingRegisters writes a contiguous run of registers and
	// reads readQuantity registers starting at readAddress in a single
	// request. It returns the read values only.
	ReadWriteHoldingRegisters(readAddress RegisterAddress, readQuantity uint16, values []RegisterValue) (results []RegisterValue, err error)

	// 32-bit access

	// ReadWideRegister reads the two consecutive registers starting at
	// address and reassembles them into one 32-bit value, high word first.
	// The result is sign-extended when signed is true.
	ReadWideRegister(address RegisterAddress, signed bool) (int64, error)

	// Diagnostics

	// LoopbackTest asks the device to echo data back without acting on it
	// and fails unless the echo matches.
	LoopbackTest(data uint16) error
}
