package registers

import "testing"

func TestRegisterTable(t *testing.T) {
	tests := []struct {
		name  string
		reg   Register
		addr  uint16
		words uint8
	}{
		{"A001", A001, 0x1201, 1},
		{"A020", A020, 0x1216, 2},
		{"A201", A201, 0x2201, 1},
		{"B001", B001, 0x1301, 1},
		{"B911", B911, 0x13C7, 2},
		{"C071", C071, 0x144B, 1},
		{"C072", C072, 0x144C, 1},
		{"C078", C078, 0x1452, 1},
		{"D001", D001, 0x1001, 2},
		{"D081", D081, 0x0012, 1},
		{"D086", D086, 0x0044, 1},
		{"F001", F001, 0x0001, 2},
		{"F002", F002, 0x1103, 2},
		{"H003", H003, 0x1503, 1},
		{"P039", P039, 0x1627, 2},
		{"InverterStatusA", InverterStatusA, 0x0003, 1},
		{"WriteToEEPROM", WriteToEEPROM, 0x0900, 1},
		{"EEPROMWriteMode", EEPROMWriteMode, 0x0902, 1},
	}
	for _, test := range tests {
		if test.reg.Addr != test.addr {
			t.Errorf("%s: address %#04x, expected %#04x", test.name, test.reg.Addr, test.addr)
		}
		if test.reg.Words != test.words {
			t.Errorf("%s: width %d, expected %d", test.name, test.reg.Words, test.words)
		}
	}
}

func TestFaultMonitorBlocks(t *testing.T) {
	// The six fault monitor blocks start ten words apart.
	for i := 1; i < len(FaultMonitors); i++ {
		gap := FaultMonitors[i].Addr - FaultMonitors[i-1].Addr
		if gap != 0x000A {
			t.Errorf("fault monitor %d starts %d words after monitor %d, expected 10", i+1, gap, i)
		}
	}

	tests := []struct {
		index int
		field FaultMonitorField
		addr  uint16
		words uint8
	}{
		{1, FaultFactor, 0x0012, 1},
		{1, FaultInverterStatus, 0x0013, 1},
		{1, FaultFrequency, 0x0014, 2},
		{1, FaultCurrent, 0x0016, 1},
		{1, FaultVoltage, 0x0017, 1},
		{2, FaultRunningTime, 0x0022, 2},
		{3, FaultFactor, 0x0026, 1},
		{6, FaultPowerOnTime, 0x004C, 2},
	}
	for _, test := range tests {
		reg := FaultMonitor(test.index, test.field)
		if reg.Addr != test.addr {
			t.Errorf("FaultMonitor(%d, %#04x): address %#04x, expected %#04x", test.index, uint16(test.field), reg.Addr, test.addr)
		}
		if reg.Words != test.words {
			t.Errorf("FaultMonitor(%d, %#04x): width %d, expected %d", test.index, uint16(test.field), reg.Words, test.words)
		}
	}
}

func TestCoilBounds(t *testing.T) {
	if FirstCoil != 0x01 {
		t.Errorf("first coil %#02x, expected 0x01", uint16(FirstCoil))
	}
	if LastCoil != 0x58 {
		t.Errorf("last coil %#02x, expected 0x58", uint16(LastCoil))
	}
	if DataWritingInProgress != 0x49 {
		t.Errorf("data writing coil %#02x, expected 0x49", uint16(DataWritingInProgress))
	}
}

func TestTripFactorString(t *testing.T) {
	tests := []struct {
		factor   TripFactor
		expected string
	}{
		{TripNone, "no trip"},
		{TripOverCurrentAtConstantSpeed, "E01 over-current at constant speed"},
		{TripEEPROMError, "E08 EEPROM error"},
		{TripModbusCommunicationError, "E41 Modbus communication error"},
		{TripEasySequenceUserTrip3, "E53 easy sequence user trip 3"},
		{TripFactor(99), "E99 unknown trip factor"},
	}
	for _, test := range tests {
		if got := test.factor.String(); got != test.expected {
			t.Errorf("TripFactor(%d): %q, expected %q", uint16(test.factor), got, test.expected)
		}
	}
}

func TestInverterStatusString(t *testing.T) {
	tests := []struct {
		status   InverterStatus
		expected string
	}{
		{StatusStopping, "stopping"},
		{StatusDCBraking, "DC braking"},
		{StatusOverloadRestricted, "overload restricted"},
		{InverterStatus(12), "unknown status 12"},
	}
	for _, test := range tests {
		if got := test.status.String(); got != test.expected {
			t.Errorf("InverterStatus(%d): %q, expected %q", uint16(test.status), got, test.expected)
		}
	}
}
