// Copyright 2014 Quoc-Viet Nguyen. All rights reserved.
// This software may be modified and distributed under the terms
// of the BSD license. See the LICENSE file for details.

package mx2

import (
	"encoding/binary"
	"fmt"
)

// logger is the interface to the required logging functions
type logger interface {
	Printf(format string, v ...interface{})
}

// ClientHandler is the interface that groups the Packager and Transporter methods.
type ClientHandler interface {
	Packager
	Transporter
	Connector
}

type client struct {
	packager    Packager
	transporter Transporter
}

// NewClient creates a new client with given backend handler.
func NewClient(handler ClientHandler) Client {
	return &client{packager: handler, transporter: handler}
}

// NewClient2 creates a new client with given backend packager and transporter.
func NewClient2(packager Packager, transporter Transporter) Client {
	return &client{packager: packager, transporter: transporter}
}

// The diagnostics sub-function implemented by the drive (return query data).
const loopbackSubFunc uint16 = 0x0000

// Request:
//
//	Function code         : 1 byte (0x01)
//	Starting address      : 2 bytes
//	Quantity of coils     : 2 bytes
//
// Response:
//
//	Function code         : 1 byte (0x01)
//	Byte count            : 1 byte
//	Coil status           : N* bytes
func (mb *client) ReadCoils(address CoilAddress, quantity uint16) ([]CoilValue, error) {
	if quantity < 1 || quantity > 2000 {
		return nil, fmt.Errorf("mx2: quantity '%v' must be between '%v' and '%v': %w", quantity, 1, 2000, ErrInvalidRequestSize)
	}
	if mb.packager.Slave() == BroadcastID {
		return nil, fmt.Errorf("mx2: read commands cannot be broadcast: %w", ErrInvalidAddress)
	}
	request := ProtocolDataUnit{
		FunctionCode: FuncCodeReadCoils,
		Data:         dataBlock(uint16(address), quantity),
	}
	response, err := mb.send(&request)
	if err != nil {
		return nil, err
	}
	if err := verifyByteCount(response.Data, coilByteCount(quantity)); err != nil {
		return nil, err
	}
	results := make([]CoilValue, quantity)
	for i, state := range unpackCoils(quantity, response.Data[1:]) {
		results[i] = CoilValue{Address: address + CoilAddress(i), Value: state}
	}
	return results, nil
}

// Request:
//
//	Function code         : 1 byte (0x03)
//	Starting address      : 2 bytes
//	Quantity of registers : 2 bytes
//
// Response:
//
//	Function code         : 1 byte (0x03)
//	Byte count            : 1 byte
//	Register value        : Nx2 bytes
func (mb *client) ReadHoldingRegisters(address RegisterAddress, quantity uint16) ([]RegisterValue, error) {
	if quantity < 1 || quantity > 125 {
		return nil, fmt.Errorf("mx2: quantity '%v' must be between '%v' and '%v': %w", quantity, 1, 125, ErrInvalidRequestSize)
	}
	if mb.packager.Slave() == BroadcastID {
		return nil, fmt.Errorf("mx2: read commands cannot be broadcast: %w", ErrInvalidAddress)
	}
	request := ProtocolDataUnit{
		FunctionCode: FuncCodeReadHoldingRegisters,
		Data:         dataBlock(uint16(address), quantity),
	}
	response, err := mb.send(&request)
	if err != nil {
		return nil, err
	}
	if err := verifyByteCount(response.Data, 2*int(quantity)); err != nil {
		return nil, err
	}
	return registerValues(address, response.Data[1:]), nil
}

// ReadWideRegister reads a 32-bit quantity split across two consecutive
// registers, high word first. It is a fixed-size read with the same wire
// format as ReadHoldingRegisters.
//
// Request:
//
//	Function code         : 1 byte (0x03)
//	Starting address      : 2 bytes
//	Quantity of registers : 2 bytes (0x0002)
//
// Response:
//
//	Function code         : 1 byte (0x03)
//	Byte count            : 1 byte (0x04)
//	Register value        : 4 bytes
func (mb *client) ReadWideRegister(address RegisterAddress, signed bool) (int64, error) {
	if mb.packager.Slave() == BroadcastID {
		return 0, fmt.Errorf("mx2: read commands cannot be broadcast: %w", ErrInvalidAddress)
	}
	request := ProtocolDataUnit{
		FunctionCode: FuncCodeReadHoldingRegisters,
		Data:         dataBlock(uint16(address), 2),
	}
	response, err := mb.send(&request)
	if err != nil {
		return 0, err
	}
	if err := verifyByteCount(response.Data, 4); err != nil {
		return 0, err
	}
	return decodeRegister32(response.Data[1:], signed), nil
}

// Request:
//
//	Function code         : 1 byte (0x05)
//	Coil address          : 2 bytes
//	Coil state            : 2 bytes (0xFF00 or 0x0000)
//
// Response:
//
//	Function code         : 1 byte (0x05)
//	Coil address          : 2 bytes
//	Coil state            : 2 bytes
func (mb *client) WriteCoil(value CoilValue) error {
	request := ProtocolDataUnit{
		FunctionCode: FuncCodeWriteSingleCoil,
		Data:         append(dataBlock(uint16(value.Address)), encodeCoil(value.Value)...),
	}
	response, err := mb.send(&request)
	if err != nil {
		return err
	}
	if response == nil {
		// Broadcast, nothing echoed.
		return nil
	}
	// Fixed response length
	if len(response.Data) != 4 {
		return fmt.Errorf("mx2: response data size '%v' does not match expected '%v': %w", len(response.Data), 4, ErrUnexpectedEcho)
	}
	respValue := binary.BigEndian.Uint16(response.Data)
	if uint16(value.Address) != respValue {
		return fmt.Errorf("mx2: response address '%v' does not match request '%v': %w", respValue, value.Address, ErrUnexpectedEcho)
	}
	respState, err := decodeCoil(response.Data[2:])
	if err != nil {
		return err
	}
	if value.Value != respState {
		return fmt.Errorf("mx2: response state '%v' does not match request '%v': %w", respState, value.Value, ErrUnexpectedEcho)
	}
	return nil
}

// Request:
//
//	Function code         : 1 byte (0x06)
//	Register address      : 2 bytes
//	Register value        : 2 bytes
//
// Response:
//
//	Function code         : 1 byte (0x06)
//	Register address      : 2 bytes
//	Register value        : 2 bytes
func (mb *client) WriteHoldingRegister(value RegisterValue) error {
	request := ProtocolDataUnit{
		FunctionCode: FuncCodeWriteSingleRegister,
		Data:         dataBlock(uint16(value.Address), value.Value),
	}
	response, err := mb.send(&request)
	if err != nil {
		return err
	}
	if response == nil {
		// Broadcast, nothing echoed.
		return nil
	}
	// Fixed response length
	if len(response.Data) != 4 {
		return fmt.Errorf("mx2: response data size '%v' does not match expected '%v': %w", len(response.Data), 4, ErrUnexpectedEcho)
	}
	respValue := binary.BigEndian.Uint16(response.Data)
	if uint16(value.Address) != respValue {
		return fmt.Errorf("mx2: response address '%v' does not match request '%v': %w", respValue, value.Address, ErrUnexpectedEcho)
	}
	respValue = binary.BigEndian.Uint16(response.Data[2:])
	if value.Value != respValue {
		return fmt.Errorf("mx2: response value '%v' does not match request '%v': %w", respValue, value.Value, ErrUnexpectedEcho)
	}
	return nil
}

// LoopbackTest sends data through the device and back without touching any
// coil or register. The device must repeat the sub-function code and data
// unchanged.
//
// Request:
//
//	Function code         : 1 byte (0x08)
//	Sub-function code     : 2 bytes (0x0000)
//	Data                  : 2 bytes
//
// Response:
//
//	Function code         : 1 byte (0x08)
//	Sub-function code     : 2 bytes (0x0000)
//	Data                  : 2 bytes
func (mb *client) LoopbackTest(data uint16) error {
	if mb.packager.Slave() == BroadcastID {
		return fmt.Errorf("mx2: the loopback test cannot be broadcast: %w", ErrInvalidAddress)
	}
	request := ProtocolDataUnit{
		FunctionCode: FuncCodeLoopbackTest,
		Data:         dataBlock(loopbackSubFunc, data),
	}
	response, err := mb.send(&request)
	if err != nil {
		return err
	}
	// Fixed response length
	if len(response.Data) != 4 {
		return fmt.Errorf("mx2: response data size '%v' does not match expected '%v': %w", len(response.Data), 4, ErrUnexpectedEcho)
	}
	respValue := binary.BigEndian.Uint16(response.Data)
	if respValue != loopbackSubFunc {
		return fmt.Errorf("mx2: response sub-function '%v' does not match request '%v': %w", respValue, loopbackSubFunc, ErrUnexpectedEcho)
	}
	respValue = binary.BigEndian.Uint16(response.Data[2:])
	if respValue != data {
		return fmt.Errorf("mx2: response data '%v' does not match request '%v': %w", respValue, data, ErrUnexpectedEcho)
	}
	return nil
}

// Request:
//
//	Function code         : 1 byte (0x0F)
//	Starting address      : 2 bytes
//	Quantity of coils     : 2 bytes
//	Byte count            : 1 byte
//	Change data           : N* bytes
//
// Response:
//
//	Function code         : 1 byte (0x0F)
//	Starting address      : 2 bytes
//	Quantity of coils     : 2 bytes
func (mb *client) WriteCoils(values []CoilValue) error {
	if len(values) < 1 || len(values) > 1968 {
		return fmt.Errorf("mx2: quantity '%v' must be between '%v' and '%v': %w", len(values), 1, 1968, ErrInvalidRequestSize)
	}
	states, err := coilStates(values)
	if err != nil {
		return err
	}
	address := uint16(values[0].Address)
	quantity := uint16(len(values))
	request := ProtocolDataUnit{
		FunctionCode: FuncCodeWriteMultipleCoils,
		Data:         dataBlockSuffix(packCoils(states), address, quantity),
	}
	response, err := mb.send(&request)
	if err != nil {
		return err
	}
	if response == nil {
		// Broadcast, nothing echoed.
		return nil
	}
	// Fixed response length
	if len(response.Data) != 4 {
		return fmt.Errorf("mx2: response data size '%v' does not match expected '%v': %w", len(response.Data), 4, ErrUnexpectedEcho)
	}
	respValue := binary.BigEndian.Uint16(response.Data)
	if address != respValue {
		return fmt.Errorf("mx2: response address '%v' does not match request '%v': %w", respValue, address, ErrUnexpectedEcho)
	}
	respValue = binary.BigEndian.Uint16(response.Data[2:])
	if quantity != respValue {
		return fmt.Errorf("mx2: response quantity '%v' does not match request '%v': %w", respValue, quantity, ErrUnexpectedEcho)
	}
	return nil
}

// Request:
//
//	Function code         : 1 byte (0x10)
//	Starting address      : 2 bytes
//	Quantity of registers : 2 bytes
//	Byte count            : 1 byte
//	Registers value       : Nx2 bytes
//
// Response:
//
//	Function code         : 1 byte (0x10)
//	Starting address      : 2 bytes
//	Quantity of registers : 2 bytes
func (mb *client) WriteHoldingRegisters(values []RegisterValue) error {
	if len(values) < 1 || len(values) > 123 {
		return fmt.Errorf("mx2: quantity '%v' must be between '%v' and '%v': %w", len(values), 1, 123, ErrInvalidRequestSize)
	}
	words, err := registerWords(values)
	if err != nil {
		return err
	}
	address := uint16(values[0].Address)
	quantity := uint16(len(values))
	request := ProtocolDataUnit{
		FunctionCode: FuncCodeWriteMultipleRegisters,
		Data:         dataBlockSuffix(words, address, quantity),
	}
	response, err := mb.send(&request)
	if err != nil {
		return err
	}
	if response == nil {
		// Broadcast, nothing echoed.
		return nil
	}
	// Fixed response length
	if len(response.Data) != 4 {
		return fmt.Errorf("mx2: response data size '%v' does not match expected '%v': %w", len(response.Data), 4, ErrUnexpectedEcho)
	}
	respValue := binary.BigEndian.Uint16(response.Data)
	if address != respValue {
		return fmt.Errorf("mx2: response address '%v' does not match request '%v': %w", respValue, address, ErrUnexpectedEcho)
	}
	respValue = binary.BigEndian.Uint16(response.Data[2:])
	if quantity != respValue {
		return fmt.Errorf("mx2: response quantity '%v' does not match request '%v': %w", respValue, quantity, ErrUnexpectedEcho)
	}
	return nil
}

// Request:
//
//	Function code         : 1 byte (0x17)
//	Read starting address : 2 bytes
//	Quantity to read      : 2 bytes
//	Write starting address: 2 bytes
//	Quantity to write     : 2 bytes
//	Write byte count      : 1 byte
//	Write registers value : Nx2 bytes
//
// Response:
//
//	Function code         : 1 byte (0x17)
//	Byte count            : 1 byte
//	Read registers value  : Nx2 bytes
func (mb *client) ReadWriteHoldingRegisters(readAddress RegisterAddress, readQuantity uint16, values []RegisterValue) ([]RegisterValue, error) {
	if readQuantity < 1 || readQuantity > 125 {
		return nil, fmt.Errorf("mx2: quantity to read '%v' must be between '%v' and '%v': %w", readQuantity, 1, 125, ErrInvalidRequestSize)
	}
	if len(values) < 1 || len(values) > 121 {
		return nil, fmt.Errorf("mx2: quantity to write '%v' must be between '%v' and '%v': %w", len(values), 1, 121, ErrInvalidRequestSize)
	}
	words, err := registerWords(values)
	if err != nil {
		return nil, err
	}
	if mb.packager.Slave() == BroadcastID {
		return nil, fmt.Errorf("mx2: read commands cannot be broadcast: %w", ErrInvalidAddress)
	}
	request := ProtocolDataUnit{
		FunctionCode: FuncCodeReadWriteMultipleRegisters,
		Data:         dataBlockSuffix(words, uint16(readAddress), readQuantity, uint16(values[0].Address), uint16(len(values))),
	}
	response, err := mb.send(&request)
	if err != nil {
		return nil, err
	}
	if err := verifyByteCount(response.Data, 2*int(readQuantity)); err != nil {
		return nil, err
	}
	return registerValues(readAddress, response.Data[1:]), nil
}

// Helpers

// send sends request and checks possible exception in the response. A nil
// response with a nil error means the request was broadcast.
func (mb *client) send(request *ProtocolDataUnit) (*ProtocolDataUnit, error) {
	aduRequest, err := mb.packager.Encode(request)
	if err != nil {
		return nil, err
	}
	aduResponse, err := mb.transporter.Send(aduRequest)
	if err != nil {
		return nil, err
	}
	if aduResponse == nil {
		// Broadcast, no reply expected.
		return nil, nil
	}
	if err := mb.packager.Verify(aduRequest, aduResponse); err != nil {
		return nil, err
	}
	response, err := mb.packager.Decode(aduResponse)
	if err != nil {
		return nil, err
	}
	// Check correct function code returned (exception)
	if response.FunctionCode != request.FunctionCode {
		return nil, responseError(response)
	}
	if len(response.Data) == 0 {
		// Empty response
		return nil, fmt.Errorf("mx2: response data is empty")
	}
	return response, nil
}

// dataBlock creates a sequence of uint16 data.
func dataBlock(value ...uint16) []byte {
	data := make([]byte, 2*len(value))
	for i, v := range value {
		binary.BigEndian.PutUint16(data[i*2:], v)
	}
	return data
}

// dataBlockSuffix creates a sequence of uint16 data and append the suffix plus its length.
func dataBlockSuffix(suffix []byte, value ...uint16) []byte {
	length := 2 * len(value)
	data := make([]byte, length+1+len(suffix))
	for i, v := range value {
		binary.BigEndian.PutUint16(data[i*2:], v)
	}
	data[length] = uint8(len(suffix))
	copy(data[length+1:], suffix)
	return data
}

// coilByteCount is the packed size of a coil read: bit per coil, rounded
// up to whole bytes.
func coilByteCount(quantity uint16) int {
	return (int(quantity) + 7) / 8
}

// verifyByteCount checks the byte count prefix of a read response against
// the received payload and against the size the request asked for.
func verifyByteCount(data []byte, expected int) error {
	count := int(data[0])
	if length := len(data) - 1; count != length {
		return fmt.Errorf("mx2: response data size '%v' does not match count '%v': %w", length, count, ErrByteCountMismatch)
	}
	if count != expected {
		return fmt.Errorf("mx2: response byte count '%v' does not match requested '%v': %w", count, expected, ErrByteCountMismatch)
	}
	return nil
}

// registerValues decodes consecutive register words starting at address.
func registerValues(address RegisterAddress, data []byte) []RegisterValue {
	results := make([]RegisterValue, len(data)/2)
	for i := range results {
		results[i] = RegisterValue{
			Address: address + RegisterAddress(i),
			Value:   decodeRegister16(data[2*i:]),
		}
	}
	return results
}

// registerWords packs values into register words after checking that their
// addresses form one contiguous run.
func registerWords(values []RegisterValue) ([]byte, error) {
	data := make([]byte, 2*len(values))
	for i, v := range values {
		if i > 0 && v.Address != values[i-1].Address+1 {
			return nil, fmt.Errorf("mx2: register address '%v' at index '%v' is not contiguous: %w", v.Address, i, ErrInvalidRequestSize)
		}
		binary.BigEndian.PutUint16(data[2*i:], v.Value)
	}
	return data, nil
}

// coilStates extracts the states of values after checking that their
// addresses form one contiguous run.
func coilStates(values []CoilValue) ([]bool, error) {
	states := make([]bool, len(values))
	for i, v := range values {
		if i > 0 && v.Address != values[i-1].Address+1 {
			return nil, fmt.Errorf("mx2: coil address '%v' at index '%v' is not contiguous: %w", v.Address, i, ErrInvalidRequestSize)
		}
		states[i] = v.Value
	}
	return states, nil
}

func responseError(response *ProtocolDataUnit) error {
	mbError := &Error{FunctionCode: response.FunctionCode}
	if len(response.Data) > 0 {
		mbError.ExceptionCode = response.Data[0]
	}
	return mbError
}
