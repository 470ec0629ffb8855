package i3c

import (
	"i3ctiming/x/mathx"
	"i3ctiming/x/timex"
)

// periods are the request frequencies converted to 10 ps units.
type periods struct {
	src int64 // clock source
	pp  int64 // I3C push-pull
	i2c int64 // I2C open-drain, mixed bus only
}

// counts are the derived fields before the 8-bit range check. They stay
// signed so that an underflowing derivation is caught by the same check.
type counts struct {
	ppLow, i3cHigh, odLow, i2cHigh int64
	free, idle                     int64
	sdaHold                        int64
}

// ComputeController derives the controller timing fields for req. On error
// the returned config is the zero value and must not be applied.
func ComputeController(req ControllerRequest) (ControllerConfig, error) {
	p, err := controllerPeriods(req)
	if err != nil {
		return ControllerConfig{}, err
	}
	duty := int64(req.DutyCycle)

	var c counts
	switch req.Bus {
	case PureBus:
		c = derivePure(p, duty)
	case MixedBus:
		c = deriveMixed(p, duty)
	}
	c.sdaHold = sdaHold(p.src)
	c.idle = busIdleCount(p.src)
	return c.pack()
}

// Compute recomputes c from req. c is left unchanged on error, so a
// previously valid configuration survives a failed attempt.
func (c *ControllerConfig) Compute(req ControllerRequest) error {
	cfg, err := ComputeController(req)
	if err != nil {
		return err
	}
	*c = cfg
	return nil
}

func controllerPeriods(req ControllerRequest) (periods, error) {
	if req.ClockSourceHz == 0 {
		return periods{}, ErrZeroClockSource
	}
	if req.I3CFreqHz == 0 {
		return periods{}, ErrZeroI3CFreq
	}
	switch req.Bus {
	case PureBus:
	case MixedBus:
		if req.I2CFreqHz == 0 {
			return periods{}, ErrZeroI2CFreq
		}
	default:
		return periods{}, ErrUnknownBus
	}
	if req.DutyCycle > MaxDutyCycle {
		return periods{}, ErrDutyCycle
	}

	p := periods{src: int64(timex.Period10ps(req.ClockSourceHz))}
	if p.src == 0 {
		return periods{}, ErrSourceTooFast
	}
	p.pp = int64(timex.Period10ps(req.I3CFreqHz))
	if req.Bus == MixedBus {
		p.i2c = int64(timex.Period10ps(req.I2CFreqHz))
		if p.i2c > tSMMin {
			return periods{}, ErrI2CTooSlow
		}
	}
	return p, nil
}

// derivePure splits the push-pull period by duty cycle and sizes the
// open-drain low phase from the pure-bus minimums.
func derivePure(p periods, duty int64) counts {
	clk := p.src
	var c counts

	c.i3cHigh = mathx.RoundDiv(mathx.RoundDiv(p.pp*duty, clk), 100) - 1
	if (c.i3cHigh+1)*clk < tI3CHighMin {
		c.i3cHigh = cyclesAtLeast(tI3CHighMin, clk)
		// Keep the requested period: low takes whatever high left over.
		c.ppLow = mathx.RoundDiv(p.pp, clk) - (c.i3cHigh + 1) - 1
	} else {
		c.ppLow = mathx.RoundDiv(mathx.RoundDiv(p.pp*(100-duty), clk), 100) - 1
	}
	c.ppLow = trimPushPullLow(c.ppLow, c.i3cHigh, p)

	if p.pp < tI3CLowODMin {
		c.odLow = cyclesAtLeast(tI3CLowODMin, clk)
	} else {
		c.odLow = c.ppLow
	}
	// SDA must reach 70% VDD before SCL is pulled low again.
	if (c.odLow+1)*clk < tCapa {
		c.odLow = mathx.RoundDiv(tCapa, clk) + 1
	}
	c.i2cHigh = 0

	c.free = mathx.RoundDiv(tCASMin+tCapa, 2*clk) + 1
	return c
}

// deriveMixed pins SCL high near the open-drain maximum and sizes the
// open-drain phase from the I2C clock sharing the bus.
func deriveMixed(p periods, duty int64) counts {
	clk := p.src
	var c counts

	c.i3cHigh = mathx.RoundDiv(tI3CHighODMax, clk) - 1
	switch high := (c.i3cHigh + 1) * clk; {
	case high < tI3CHighMin:
		c.i3cHigh++
	case high > tI3CHighODMax:
		c.i3cHigh = tI3CHighODMax / clk
	}
	c.ppLow = mathx.RoundDiv(p.pp-(c.i3cHigh+1)*clk, clk) - 1
	c.ppLow = trimPushPullLow(c.ppLow, c.i3cHigh, p)

	c.odLow = mathx.RoundDiv(mathx.RoundDiv(p.i2c*(100-duty), clk), 100) - 1
	lowMin := int64(tFMLowODMin)
	if p.i2c < tFMMin {
		lowMin = tFMPlusLowODMin
	}
	if (c.odLow+1)*clk < lowMin {
		c.odLow = mathx.RoundDiv(lowMin, clk) - 1
	}
	c.i2cHigh = mathx.RoundDiv(p.i2c-(c.odLow+1)*clk, clk) - 1

	c.free = mathx.RoundDiv((c.odLow+1)*clk+tCapa, 2*clk)
	return c
}

// trimPushPullLow nudges the push-pull low count against the low-phase
// target (the request minus the high phase) plus half a source cycle. The
// shortening check runs first and the lengthening check sees its result.
func trimPushPullLow(low, high int64, p periods) int64 {
	limit := p.pp - (high+1)*p.src + p.src/2 + 1
	if (low+1)*p.src >= limit {
		low--
	}
	if (low+high+2)*p.src < limit {
		low++
	}
	return low
}

// cyclesAtLeast returns the count whose duration is the nearest to floor
// without falling below it.
func cyclesAtLeast(floor, clk int64) int64 {
	n := mathx.RoundDiv(floor, clk) - 1
	if (n+1)*clk < floor {
		n++
	}
	return n
}

// sdaHold asks for an extra half-cycle hold when the source period is too
// short to cover the 3 ns SDA hold on its own.
func sdaHold(clk int64) int64 {
	if clk > tSDAHoldNoWait {
		return 0
	}
	return 1
}

func busIdleCount(clk int64) int64 {
	return mathx.RoundDiv(tOneMicro, clk) - idlePipeline
}

func (c counts) pack() (ControllerConfig, error) {
	fields := [countFields]int64{c.ppLow, c.i3cHigh, c.odLow, c.i2cHigh, c.free, c.idle}
	for _, v := range fields {
		if !mathx.Between(v, 0, countMax) {
			return ControllerConfig{}, ErrCountOverflow
		}
	}
	return ControllerConfig{
		SCLPPLow:   uint8(c.ppLow),
		SCLI3CHigh: uint8(c.i3cHigh),
		SCLODLow:   uint8(c.odLow),
		SCLI2CHigh: uint8(c.i2cHigh),
		BusFree:    uint8(c.free),
		BusIdle:    uint8(c.idle),
		SDAHold:    uint32(c.sdaHold) << t1SDAHDPos,
	}, nil
}
