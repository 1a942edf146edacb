// Package registers maps the parameter space of the Omron MX2 inverter:
// the coils, the Modbus-only registers, the keypad parameter groups listed
// in appendix B-4 of the datasheet, and the fault monitor blocks.
//
// Coil and register numbers are the one-based values printed in the
// datasheet. The Inverter driver shifts them onto the zero-based wire.
package registers

import "fmt"

// Register locates one drive parameter in holding register space. Addr is
// the one-based register number from the datasheet lists, Words how many
// 16-bit words the parameter spans. Wide parameters put the high word at
// Addr and the low word at Addr+1.
type Register struct {
	Addr  uint16
	Words uint8
}

// Registers without a keypad parameter code, reachable over the bus only
// (datasheet section B-4, pp. 318 and 320).
var (
	InverterStatusA = Register{0x0003, 1}
	InverterStatusB = Register{0x0004, 1}
	InverterStatusC = Register{0x0005, 1}
	PIDFeedback     = Register{0x0006, 1}
	WriteToEEPROM   = Register{0x0900, 1} // Write one to commit changed registers
	EEPROMWriteMode = Register{0x0902, 1}
)

// FaultMonitors holds the factor register of each fault monitor block,
// the most recent trip first (D081 to D086).
var FaultMonitors = [6]Register{D081, D082, D083, D084, D085, D086}

// FaultMonitorField selects one field of a fault monitor block by its
// offset from the factor register.
type FaultMonitorField uint16

const (
	FaultFactor         FaultMonitorField = 0x0000
	FaultInverterStatus FaultMonitorField = 0x0001
	FaultFrequency      FaultMonitorField = 0x0002
	FaultCurrent        FaultMonitorField = 0x0004
	FaultVoltage        FaultMonitorField = 0x0005
	FaultRunningTime    FaultMonitorField = 0x0006
	FaultPowerOnTime    FaultMonitorField = 0x0008
)

// Words returns the width of the field in register words.
func (f FaultMonitorField) Words() uint8 {
	switch f {
	case FaultFrequency, FaultRunningTime, FaultPowerOnTime:
		return 2
	}
	return 1
}

// FaultMonitor returns the register holding one field of fault monitor
// index. Index 1 describes the most recent trip, index 6 the oldest
// retained one.
func FaultMonitor(index int, field FaultMonitorField) Register {
	return Register{
		Addr:  FaultMonitors[index-1].Addr + uint16(field),
		Words: field.Words(),
	}
}

// TripFactor identifies the cause of a trip event, as reported in the
// factor field of a fault monitor (datasheet section B-4, p. 421).
type TripFactor uint16

const (
	TripNone                          TripFactor = 0
	TripOverCurrentAtConstantSpeed    TripFactor = 1
	TripOverCurrentDuringDeceleration TripFactor = 2
	TripOverCurrentDuringAcceleration TripFactor = 3
	TripOverCurrentOther              TripFactor = 4
	TripOverloadProtection            TripFactor = 5
	TripBrakingResistorOverload       TripFactor = 6
	TripOvervoltageProtection         TripFactor = 7
	TripEEPROMError                   TripFactor = 8
	TripUndervoltageProtection        TripFactor = 9
	TripCurrentDetectionError         TripFactor = 10
	TripCPUError                      TripFactor = 11
	TripExternal                      TripFactor = 12
	TripUSPError                      TripFactor = 13
	TripGroundFaultProtection         TripFactor = 14
	TripInputOvervoltageProtection    TripFactor = 15
	TripInverterThermal               TripFactor = 21
	TripCPUErrorAlt                   TripFactor = 22
	TripMainCircuitError              TripFactor = 25
	TripDriverError                   TripFactor = 30
	TripThermistorError               TripFactor = 35
	TripBrakingError                  TripFactor = 36
	TripSafeStop                      TripFactor = 37
	TripLowSpeedOverloadProtection    TripFactor = 38
	TripOperatorConnection            TripFactor = 40
	TripModbusCommunicationError      TripFactor = 41
	TripInvalidInstruction            TripFactor = 43
	TripInvalidNestingCount           TripFactor = 44
	TripEasySequenceExecutionError    TripFactor = 45
	TripEasySequenceUserTrip0         TripFactor = 50
	TripEasySequenceUserTrip1         TripFactor = 51
	TripEasySequenceUserTrip2         TripFactor = 52
	TripEasySequenceUserTrip3         TripFactor = 53
	TripEasySequenceUserTrip4         TripFactor = 54
	TripEasySequenceUserTrip5         TripFactor = 55
	TripEasySequenceUserTrip6         TripFactor = 56
	TripEasySequenceUserTrip7         TripFactor = 57
	TripEasySequenceUserTrip8         TripFactor = 58
	TripEasySequenceUserTrip9         TripFactor = 59
	TripOptionError0                  TripFactor = 60
	TripOptionError1                  TripFactor = 61
	TripOptionError2                  TripFactor = 62
	TripOptionError3                  TripFactor = 63
	TripOptionError4                  TripFactor = 64
	TripOptionError5                  TripFactor = 65
	TripOptionError6                  TripFactor = 66
	TripOptionError7                  TripFactor = 67
	TripOptionError8                  TripFactor = 68
	TripOptionError9                  TripFactor = 69
	TripEncoderDisconnection          TripFactor = 80
	TripExcessiveSpeed                TripFactor = 81
	TripPositionControlRange          TripFactor = 83
)

var tripFactorNames = map[TripFactor]string{
	TripNone:                          "no trip",
	TripOverCurrentAtConstantSpeed:    "over-current at constant speed",
	TripOverCurrentDuringDeceleration: "over-current during deceleration",
	TripOverCurrentDuringAcceleration: "over-current during acceleration",
	TripOverCurrentOther:              "over-current in other conditions",
	TripOverloadProtection:            "overload protection",
	TripBrakingResistorOverload:       "braking resistor overload protection",
	TripOvervoltageProtection:         "overvoltage protection",
	TripEEPROMError:                   "EEPROM error",
	TripUndervoltageProtection:        "undervoltage protection",
	TripCurrentDetectionError:         "current detection error",
	TripCPUError:                      "CPU error",
	TripExternal:                      "external trip",
	TripUSPError:                      "USP error",
	TripGroundFaultProtection:         "ground fault protection",
	TripInputOvervoltageProtection:    "input overvoltage protection",
	TripInverterThermal:               "inverter thermal trip",
	TripCPUErrorAlt:                   "CPU error",
	TripMainCircuitError:              "main circuit error",
	TripDriverError:                   "driver error",
	TripThermistorError:               "thermistor error",
	TripBrakingError:                  "braking error",
	TripSafeStop:                      "safe stop",
	TripLowSpeedOverloadProtection:    "low-speed overload protection",
	TripOperatorConnection:            "operator connection",
	TripModbusCommunicationError:      "Modbus communication error",
	TripInvalidInstruction:            "invalid instruction",
	TripInvalidNestingCount:           "invalid nesting count",
	TripEasySequenceExecutionError:    "easy sequence execution error",
	TripEasySequenceUserTrip0:         "easy sequence user trip 0",
	TripEasySequenceUserTrip1:         "easy sequence user trip 1",
	TripEasySequenceUserTrip2:         "easy sequence user trip 2",
	TripEasySequenceUserTrip3:         "easy sequence user trip 3",
	TripEasySequenceUserTrip4:         "easy sequence user trip 4",
	TripEasySequenceUserTrip5:         "easy sequence user trip 5",
	TripEasySequenceUserTrip6:         "easy sequence user trip 6",
	TripEasySequenceUserTrip7:         "easy sequence user trip 7",
	TripEasySequenceUserTrip8:         "easy sequence user trip 8",
	TripEasySequenceUserTrip9:         "easy sequence user trip 9",
	TripOptionError0:                  "option error 0",
	TripOptionError1:                  "option error 1",
	TripOptionError2:                  "option error 2",
	TripOptionError3:                  "option error 3",
	TripOptionError4:                  "option error 4",
	TripOptionError5:                  "option error 5",
	TripOptionError6:                  "option error 6",
	TripOptionError7:                  "option error 7",
	TripOptionError8:                  "option error 8",
	TripOptionError9:                  "option error 9",
	TripEncoderDisconnection:          "encoder disconnection",
	TripExcessiveSpeed:                "excessive speed",
	TripPositionControlRange:          "position control range trip",
}

// String renders the factor the way the drive display does, as an Exx
// error code.
func (f TripFactor) String() string {
	name, ok := tripFactorNames[f]
	if !ok {
		return fmt.Sprintf("E%02d unknown trip factor", uint16(f))
	}
	if f == TripNone {
		return name
	}
	return fmt.Sprintf("E%02d %s", uint16(f), name)
}

// InverterStatus is the operating state reported in the status field of a
// fault monitor (datasheet section B-4, p. 421).
type InverterStatus uint16

const (
	StatusResetting InverterStatus = iota
	StatusStopping
	StatusDecelerating
	StatusConstantSpeed
	StatusAccelerating
	StatusZeroFrequency
	StatusStarting
	StatusDCBraking
	StatusOverloadRestricted
)

var inverterStatusNames = map[InverterStatus]string{
	StatusResetting:          "resetting",
	StatusStopping:           "stopping",
	StatusDecelerating:       "decelerating",
	StatusConstantSpeed:      "constant speed operation",
	StatusAccelerating:       "accelerating",
	StatusZeroFrequency:      "operating at zero frequency",
	StatusStarting:           "starting",
	StatusDCBraking:          "DC braking",
	StatusOverloadRestricted: "overload restricted",
}

func (s InverterStatus) String() string {
	if name, ok := inverterStatusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("unknown status %d", uint16(s))
}
