package mx2

import (
	"fmt"
	"time"

	"github.com/grid-x/mx2/registers"
)

// Limits of the drive itself, tighter than the protocol allows: at most 31
// coils or 16 register words per request (datasheet section B-3-3).
const (
	maxDeviceCoils = 31
	maxDeviceWords = 16
)

const (
	// eepromPollInterval covers the drive's default communication wait
	// time plus one frame at 9600 baud.
	eepromPollInterval = 35 * time.Millisecond
	eepromPollBudget   = 100
)

// Inverter drives one Omron MX2 inverter (or every drive on the bus, with
// the broadcast id) through a Client. It applies the drive's conventions
// on top of the raw command set: coils and registers are addressed by
// their one-based datasheet numbers, wide registers move as single 32-bit
// values, and request sizes are capped at the drive's limits.
type Inverter struct {
	client   Client
	deviceID byte

	// PollInterval separates the status polls of SaveToEEPROM.
	PollInterval time.Duration
	// PollBudget caps the number of status polls before SaveToEEPROM
	// gives up.
	PollBudget int
}

// NewInverter builds a driver for the drive with the given device id
// reachable through handler. The device id is 1 to 247 for a single drive,
// or BroadcastID to address every drive on the bus with write commands.
func NewInverter(handler ClientHandler, deviceID byte) *Inverter {
	handler.SetSlave(deviceID)
	return NewInverter2(NewClient(handler), deviceID)
}

// NewInverter2 builds a driver on top of an existing client. The device id
// must match the slave id the client is configured with.
func NewInverter2(client Client, deviceID byte) *Inverter {
	return &Inverter{
		client:       client,
		deviceID:     deviceID,
		PollInterval: eepromPollInterval,
		PollBudget:   eepromPollBudget,
	}
}

// ReadCoils reads count coils starting at the datasheet coil number start.
// Addresses in the result are datasheet coil numbers again.
func (inv *Inverter) ReadCoils(start registers.Coil, count int) ([]CoilValue, error) {
	if err := checkCoil(start); err != nil {
		return nil, err
	}
	if count < 1 || count > maxDeviceCoils {
		return nil, fmt.Errorf("mx2: coil count '%v' must be between '%v' and '%v': %w", count, 1, maxDeviceCoils, ErrInvalidRequestSize)
	}
	if inv.deviceID == BroadcastID {
		return nil, fmt.Errorf("mx2: read commands cannot be broadcast: %w", ErrInvalidAddress)
	}
	results, err := inv.client.ReadCoils(wireCoil(start), uint16(count))
	if err != nil {
		return nil, err
	}
	for i := range results {
		results[i].Address++
	}
	return results, nil
}

// WriteCoil sets a single coil, addressed by its datasheet number.
func (inv *Inverter) WriteCoil(coil registers.Coil, state bool) error {
	if err := checkCoil(coil); err != nil {
		return err
	}
	return inv.client.WriteCoil(CoilValue{Address: wireCoil(coil), Value: state})
}

// WriteCoils sets up to 31 consecutive coils starting at the datasheet
// coil number start.
func (inv *Inverter) WriteCoils(start registers.Coil, states []bool) error {
	if err := checkCoil(start); err != nil {
		return err
	}
	if len(states) < 1 || len(states) > maxDeviceCoils {
		return fmt.Errorf("mx2: coil count '%v' must be between '%v' and '%v': %w", len(states), 1, maxDeviceCoils, ErrInvalidRequestSize)
	}
	values := make([]CoilValue, len(states))
	for i, state := range states {
		values[i] = CoilValue{Address: wireCoil(start) + CoilAddress(i), Value: state}
	}
	return inv.client.WriteCoils(values)
}

// ReadRegister reads one register and returns its value, reassembled from
// two words when the register is wide.
func (inv *Inverter) ReadRegister(reg registers.Register) (int64, error) {
	if err := checkRegister(reg); err != nil {
		return 0, err
	}
	if inv.deviceID == BroadcastID {
		return 0, fmt.Errorf("mx2: read commands cannot be broadcast: %w", ErrInvalidAddress)
	}
	if reg.Words == 2 {
		return inv.client.ReadWideRegister(wireRegister(reg), false)
	}
	results, err := inv.client.ReadHoldingRegisters(wireRegister(reg), 1)
	if err != nil {
		return 0, err
	}
	return int64(results[0].Value), nil
}

// ReadRegisters reads a contiguous span of registers in one request and
// returns one value per register, wide registers reassembled. The span may
// cover at most 16 words.
func (inv *Inverter) ReadRegisters(regs []registers.Register) ([]int64, error) {
	words, err := registerSpan(regs)
	if err != nil {
		return nil, err
	}
	if inv.deviceID == BroadcastID {
		return nil, fmt.Errorf("mx2: read commands cannot be broadcast: %w", ErrInvalidAddress)
	}
	results, err := inv.client.ReadHoldingRegisters(wireRegister(regs[0]), words)
	if err != nil {
		return nil, err
	}
	return combineWords(regs, results), nil
}

// WriteRegister writes one register. Wide registers are written with a
// multi-register request so both words change in the same transaction.
func (inv *Inverter) WriteRegister(reg registers.Register, value int64) error {
	if reg.Words == 2 {
		return inv.WriteRegisters([]registers.Register{reg}, []int64{value})
	}
	if err := checkRegister(reg); err != nil {
		return err
	}
	if err := checkRegisterValue(reg, value); err != nil {
		return err
	}
	return inv.client.WriteHoldingRegister(RegisterValue{Address: wireRegister(reg), Value: uint16(value)})
}

// WriteRegisters writes a contiguous span of registers in one request, one
// value per register. The span may cover at most 16 words.
func (inv *Inverter) WriteRegisters(regs []registers.Register, values []int64) error {
	wire, err := wireValues(regs, values)
	if err != nil {
		return err
	}
	return inv.client.WriteHoldingRegisters(wire)
}

// ReadWriteRegisters writes one contiguous register span and reads another
// in a single request. Each span may cover at most 16 words.
func (inv *Inverter) ReadWriteRegisters(readRegs []registers.Register, writeRegs []registers.Register, writeValues []int64) ([]int64, error) {
	readWords, err := registerSpan(readRegs)
	if err != nil {
		return nil, err
	}
	wire, err := wireValues(writeRegs, writeValues)
	if err != nil {
		return nil, err
	}
	if inv.deviceID == BroadcastID {
		return nil, fmt.Errorf("mx2: read commands cannot be broadcast: %w", ErrInvalidAddress)
	}
	results, err := inv.client.ReadWriteHoldingRegisters(wireRegister(readRegs[0]), readWords, wire)
	if err != nil {
		return nil, err
	}
	return combineWords(readRegs, results), nil
}

// ReadFaultMonitor reads one field of fault monitor index, 1 being the
// most recent trip and 6 the oldest retained one.
func (inv *Inverter) ReadFaultMonitor(index int, field registers.FaultMonitorField) (int64, error) {
	if index < 1 || index > len(registers.FaultMonitors) {
		return 0, fmt.Errorf("mx2: fault monitor '%v' must be between '%v' and '%v': %w", index, 1, len(registers.FaultMonitors), ErrInvalidRequestSize)
	}
	return inv.ReadRegister(registers.FaultMonitor(index, field))
}

// LoopbackTest verifies the serial link by echoing a changing test pattern
// through the drive.
func (inv *Inverter) LoopbackTest() error {
	if inv.deviceID == BroadcastID {
		return fmt.Errorf("mx2: the loopback test cannot be broadcast: %w", ErrInvalidAddress)
	}
	return inv.client.LoopbackTest(uint16(time.Now().UnixMilli()))
}

// SaveToEEPROM commits the register changes of the current session to
// non-volatile storage and waits for the drive to finish. The drive clears
// its writing flag on completion and trips with an EEPROM error when the
// write fails.
func (inv *Inverter) SaveToEEPROM() error {
	if inv.deviceID == BroadcastID {
		return fmt.Errorf("mx2: an EEPROM save cannot be broadcast: %w", ErrInvalidAddress)
	}
	if err := inv.WriteRegister(registers.WriteToEEPROM, 1); err != nil {
		return err
	}
	for poll := 0; poll < inv.PollBudget; poll++ {
		busy, err := inv.ReadCoils(registers.DataWritingInProgress, 1)
		if err != nil {
			return err
		}
		if !busy[0].Value {
			return nil
		}
		time.Sleep(inv.PollInterval)
		factor, err := inv.ReadFaultMonitor(1, registers.FaultFactor)
		if err != nil {
			return err
		}
		if factor == int64(registers.TripEEPROMError) {
			return fmt.Errorf("mx2: EEPROM write failed with trip factor '%v'", factor)
		}
	}
	return fmt.Errorf("mx2: EEPROM write still in progress after '%v' polls: %w", inv.PollBudget, ErrTimeout)
}

// Helpers

// Datasheet numbers are one-based, the wire is zero-based.

func wireCoil(coil registers.Coil) CoilAddress {
	return CoilAddress(coil - 1)
}

func wireRegister(reg registers.Register) RegisterAddress {
	return RegisterAddress(reg.Addr - 1)
}

func checkCoil(coil registers.Coil) error {
	if coil < registers.FirstCoil || coil > registers.LastCoil {
		return fmt.Errorf("mx2: coil '%#02x' must be between '%#02x' and '%#02x': %w",
			uint16(coil), uint16(registers.FirstCoil), uint16(registers.LastCoil), ErrInvalidAddress)
	}
	return nil
}

func checkRegister(reg registers.Register) error {
	if reg.Addr == 0 {
		return fmt.Errorf("mx2: register numbers start at one: %w", ErrInvalidAddress)
	}
	if reg.Words != 1 && reg.Words != 2 {
		return fmt.Errorf("mx2: register '%#04x' spans '%v' words, expected one or two: %w", reg.Addr, reg.Words, ErrInvalidRequestSize)
	}
	return nil
}

func checkRegisterValue(reg registers.Register, value int64) error {
	if value < 0 || value >= 1<<(16*int64(reg.Words)) {
		return fmt.Errorf("mx2: value '%v' does not fit the '%v' word register '%#04x': %w", value, reg.Words, reg.Addr, ErrInvalidRequestSize)
	}
	return nil
}

// registerSpan checks that regs form one contiguous datasheet span and
// returns its width in words.
func registerSpan(regs []registers.Register) (uint16, error) {
	if len(regs) == 0 {
		return 0, fmt.Errorf("mx2: no registers given: %w", ErrInvalidRequestSize)
	}
	var words uint16
	for i, reg := range regs {
		if err := checkRegister(reg); err != nil {
			return 0, err
		}
		if i > 0 {
			prev := regs[i-1]
			if reg.Addr != prev.Addr+uint16(prev.Words) {
				return 0, fmt.Errorf("mx2: register '%#04x' does not follow '%#04x': %w", reg.Addr, prev.Addr, ErrInvalidRequestSize)
			}
		}
		words += uint16(reg.Words)
	}
	if words > maxDeviceWords {
		return 0, fmt.Errorf("mx2: span of '%v' words exceeds the drive limit of '%v': %w", words, maxDeviceWords, ErrInvalidRequestSize)
	}
	return words, nil
}

// wireValues expands datasheet values into wire register words, two words
// per wide register with the high word first.
func wireValues(regs []registers.Register, values []int64) ([]RegisterValue, error) {
	if len(values) != len(regs) {
		return nil, fmt.Errorf("mx2: got '%v' values for '%v' registers: %w", len(values), len(regs), ErrInvalidRequestSize)
	}
	words, err := registerSpan(regs)
	if err != nil {
		return nil, err
	}
	results := make([]RegisterValue, 0, words)
	address := wireRegister(regs[0])
	for i, reg := range regs {
		if err := checkRegisterValue(reg, values[i]); err != nil {
			return nil, err
		}
		if reg.Words == 2 {
			data := encodeRegister32(values[i])
			results = append(results,
				RegisterValue{Address: address, Value: decodeRegister16(data)},
				RegisterValue{Address: address + 1, Value: decodeRegister16(data[2:])})
		} else {
			results = append(results, RegisterValue{Address: address, Value: uint16(values[i])})
		}
		address += RegisterAddress(reg.Words)
	}
	return results, nil
}

// combineWords folds wire words back into one value per register,
// reassembling wide registers high word first.
func combineWords(regs []registers.Register, words []RegisterValue) []int64 {
	results := make([]int64, len(regs))
	i := 0
	for j, reg := range regs {
		if reg.Words == 2 {
			results[j] = int64(uint32(words[i].Value)<<16 | uint32(words[i+1].Value))
			i += 2
		} else {
			results[j] = int64(words[i].Value)
			i++
		}
	}
	return results
}
