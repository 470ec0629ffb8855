package i3c

// BusMode selects the controller derivation.
type BusMode uint8

const (
	// PureBus carries I3C devices only.
	PureBus BusMode = iota + 1
	// MixedBus shares SCL/SDA with legacy I2C devices.
	MixedBus
)

func (m BusMode) String() string {
	switch m {
	case PureBus:
		return "pure"
	case MixedBus:
		return "mixed"
	default:
		return "unknown"
	}
}

// ParseBusMode accepts "pure" or "mixed".
func ParseBusMode(s string) (BusMode, error) {
	switch s {
	case "pure":
		return PureBus, nil
	case "mixed":
		return MixedBus, nil
	}
	return 0, ErrUnknownBus
}

// ControllerRequest holds the inputs of ComputeController.
type ControllerRequest struct {
	ClockSourceHz uint32
	I3CFreqHz     uint32
	// I2CFreqHz is only read on a MixedBus.
	I2CFreqHz uint32
	// DutyCycle in percent, 0..50. On a MixedBus it applies to the I2C clock.
	DutyCycle uint32
	Bus       BusMode
}

// ControllerConfig holds the controller timing fields. Each count n stands
// for n+1 clock-source cycles.
type ControllerConfig struct {
	SCLPPLow   uint8 // SCL low, push-pull
	SCLI3CHigh uint8 // SCL high, I3C (push-pull and open-drain)
	SCLODLow   uint8 // SCL low, open-drain
	SCLI2CHigh uint8 // SCL high, I2C; 0 on a pure bus
	BusFree    uint8
	BusIdle    uint8 // ~1 us reference
	// SDAHold is already shifted into its TIMINGR1 position.
	SDAHold uint32
}

// TargetRequest holds the inputs of ComputeTarget.
type TargetRequest struct {
	ClockSourceHz uint32
}

// TargetConfig holds the target timing field.
type TargetConfig struct {
	BusAvailable uint8
}

// Status is the collapsed outcome of a computation.
type Status uint8

const (
	Success Status = iota
	Error
)

func (s Status) String() string {
	if s == Success {
		return "success"
	}
	return "error"
}

// StatusOf maps nil to Success and any error to Error.
func StatusOf(err error) Status {
	if err == nil {
		return Success
	}
	return Error
}
