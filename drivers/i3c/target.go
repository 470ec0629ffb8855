package i3c

import "i3ctiming/x/timex"

// ComputeTarget derives the bus-available count for a target-role device.
// The count is truncated to 8 bits; target clock sources are expected to
// stay within normal operating range.
func ComputeTarget(req TargetRequest) (TargetConfig, error) {
	if req.ClockSourceHz == 0 {
		return TargetConfig{}, ErrZeroClockSource
	}
	clk := int64(timex.Period10ps(req.ClockSourceHz))
	if clk == 0 {
		return TargetConfig{}, ErrSourceTooFast
	}
	return TargetConfig{BusAvailable: uint8(busIdleCount(clk))}, nil
}

// Compute recomputes c from req, leaving c unchanged on error.
func (c *TargetConfig) Compute(req TargetRequest) error {
	cfg, err := ComputeTarget(req)
	if err != nil {
		return err
	}
	*c = cfg
	return nil
}
