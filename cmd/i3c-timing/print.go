package main

import (
	"fmt"
	"io"

	"i3ctiming/drivers/i3c"
)

func printController(w io.Writer, req i3c.ControllerRequest) error {
	cfg, err := i3c.ComputeController(req)
	if err != nil {
		return err
	}
	row := func(k string, v any) { fmt.Fprintf(w, "%-10s %v\n", k, v) }

	row("bus", req.Bus)
	row("SCLL_PP", cfg.SCLPPLow)
	row("SCLH_I3C", cfg.SCLI3CHigh)
	row("SCLL_OD", cfg.SCLODLow)
	row("SCLH_I2C", cfg.SCLI2CHigh)
	row("FREE", cfg.BusFree)
	row("AVAL", cfg.BusIdle)
	row("SDA_HD", cfg.SDAHoldBit())
	row("TIMINGR0", fmt.Sprintf("%#08x", cfg.Timing0()))
	if t1, err := cfg.Timing1(); err != nil {
		row("TIMINGR1", err)
	} else {
		row("TIMINGR1", fmt.Sprintf("%#08x", t1))
	}

	r := cfg.Report(req)
	row("i3c", fmt.Sprintf("%d Hz (%+d x10ps)", r.PushPullHz, r.PushPullDeviation))
	if req.Bus == i3c.MixedBus {
		row("i2c", fmt.Sprintf("%d Hz", r.I2CHz))
	}
	return nil
}
