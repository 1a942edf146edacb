package registers

// Coil is the one-based number of a drive coil (datasheet section B-4,
// p. 316). The low coils carry commands, the rest report drive state.
type Coil uint16

const (
	OperationCommand                Coil = 0x01
	RotationDirectionCommand        Coil = 0x02
	ExternalTrip                    Coil = 0x03
	TripReset                       Coil = 0x04
	IntelligentInput1               Coil = 0x07
	IntelligentInput2               Coil = 0x08
	IntelligentInput3               Coil = 0x09
	IntelligentInput4               Coil = 0x0A
	IntelligentInput5               Coil = 0x0B
	IntelligentInput6               Coil = 0x0C
	IntelligentInput7               Coil = 0x0D
	OperationStatus                 Coil = 0x0F
	RotationDirectionStatus         Coil = 0x10
	InverterReady                   Coil = 0x11
	Running                         Coil = 0x13
	ConstantSpeedReached            Coil = 0x14
	SetFrequencyOverreached         Coil = 0x15
	Overload                        Coil = 0x16
	OutputDeviation                 Coil = 0x17
	Alarm                           Coil = 0x18
	SetFrequencyReached             Coil = 0x19
	OverTorque                      Coil = 0x1A
	UnderVoltage                    Coil = 0x1C
	TorqueLimited                   Coil = 0x1D
	OperationTimeOver               Coil = 0x1E
	PlugInTimeOver                  Coil = 0x1F
	ThermalAlarm                    Coil = 0x20
	BrakeRelease                    Coil = 0x26
	BrakeError                      Coil = 0x27
	ZeroHzDetection                 Coil = 0x28
	SpeedDeviationMaximum           Coil = 0x29
	PositioningCompleted            Coil = 0x2A
	SetFrequencyOverreached2        Coil = 0x2B
	SetFrequencyReached2            Coil = 0x2C
	Overload2                       Coil = 0x2D
	AnalogVoltageIODisconnected     Coil = 0x2E
	AnalogCurrentIODisconnected     Coil = 0x2F
	PIDFeedbackComparison           Coil = 0x32
	CommunicationTrainDisconnection Coil = 0x33
	LogicalOperationResult1         Coil = 0x34
	LogicalOperationResult2         Coil = 0x35
	LogicalOperationResult3         Coil = 0x36
	CapacitorLifeWarning            Coil = 0x3A
	CoolingFanSpeedDrop             Coil = 0x3B
	StartingContactSignal           Coil = 0x3C
	HeatSinkOverheatWarning         Coil = 0x3D
	LowCurrentIndicator             Coil = 0x3E
	GeneralOutput1                  Coil = 0x3F
	GeneralOutput2                  Coil = 0x40
	GeneralOutput3                  Coil = 0x41
	InverterReadyOutput             Coil = 0x45
	ForwardRotation                 Coil = 0x46
	ReverseRotation                 Coil = 0x47
	MajorFailure                    Coil = 0x48
	DataWritingInProgress           Coil = 0x49
	CRCError                        Coil = 0x4A
	Overrun                         Coil = 0x4B
	FramingError                    Coil = 0x4C
	ParityError                     Coil = 0x4D
	SumCheckError                   Coil = 0x4E
	WindowComparatorVoltage         Coil = 0x50
	WindowComparatorCurrent         Coil = 0x51
	OptionDisconnection             Coil = 0x53
	FrequencyCommandSource          Coil = 0x54
	RunCommandSource                Coil = 0x55
	SecondMotorSelected             Coil = 0x56
	GateSuppressMonitor             Coil = 0x58
)

// Bounds of the coil space. The gaps in between are reserved.
const (
	FirstCoil = OperationCommand
	LastCoil  = GateSuppressMonitor
)
