package i3c

import (
	"i3ctiming/x/mathx"
	"i3ctiming/x/timex"
)

// Report describes the bus timing a ControllerConfig actually produces.
// Durations are in 10 ps units, frequencies in Hz.
type Report struct {
	SourcePeriod uint64

	PushPullLow    uint64
	I3CHigh        uint64
	PushPullPeriod uint64
	PushPullHz     uint32
	// PushPullDeviation is PushPullPeriod minus the requested I3C period.
	PushPullDeviation int64

	OpenDrainLow    uint64
	OpenDrainPeriod uint64 // open-drain low + I3C high

	// I2C figures are zero on a pure bus.
	I2CHigh   uint64
	I2CPeriod uint64
	I2CHz     uint32

	BusFree uint64
	BusIdle uint64 // includes the pipeline cycles deducted from the count
}

// Report computes the realized timing of c for the request it was derived from.
func (c ControllerConfig) Report(req ControllerRequest) Report {
	src := uint64(timex.Period10ps(req.ClockSourceHz))
	dur := func(n uint8) uint64 { return (uint64(n) + 1) * src }

	r := Report{
		SourcePeriod: src,
		PushPullLow:  dur(c.SCLPPLow),
		I3CHigh:      dur(c.SCLI3CHigh),
		OpenDrainLow: dur(c.SCLODLow),
		BusFree:      dur(c.BusFree),
		BusIdle:      (uint64(c.BusIdle) + idlePipeline) * src,
	}
	r.PushPullPeriod = r.PushPullLow + r.I3CHigh
	r.PushPullHz = timex.FreqFromPeriod10ps(r.PushPullPeriod)
	r.PushPullDeviation = int64(r.PushPullPeriod) - int64(timex.Period10ps(req.I3CFreqHz))
	r.OpenDrainPeriod = r.OpenDrainLow + r.I3CHigh

	if req.Bus == MixedBus {
		r.I2CHigh = dur(c.SCLI2CHigh)
		r.I2CPeriod = r.OpenDrainLow + r.I2CHigh
		r.I2CHz = timex.FreqFromPeriod10ps(r.I2CPeriod)
	}
	return r
}

// PushPullWithin reports whether the realized push-pull period is within
// cycles source periods of the request.
func (r Report) PushPullWithin(cycles int64) bool {
	return mathx.Abs(r.PushPullDeviation) <= cycles*int64(r.SourcePeriod)
}
