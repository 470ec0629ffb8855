package main

import (
	"time"

	"i3ctiming/drivers/i3c"
	"i3ctiming/profiles"

	"tinygo.org/x/drivers"
)

const (
	// bootProfile is the board profile computed at start-up.
	bootProfile = "h5-pure-12m5"
	// windowAddr is the I2C address of the controller's register window.
	windowAddr = 0x30
)

func main() {
	// Allow USB CDC to enumerate before we print.
	time.Sleep(2 * time.Second)
	println("boot")

	p, err := profiles.Load(bootProfile)
	if err != nil {
		println("profile:", err.Error())
		return
	}
	req, err := p.Request()
	if err != nil {
		println("profile:", err.Error())
		return
	}

	var cfg i3c.ControllerConfig
	if err := cfg.Compute(req); err != nil {
		println("i3c timing:", err.Error())
		return
	}
	t1, err := cfg.Timing1()
	if err != nil {
		println("i3c timing:", err.Error())
		return
	}
	println("i3c", bootProfile, "TIMINGR0", cfg.Timing0(), "TIMINGR1", t1)

	bus, ok := timingBus()
	if !ok {
		return
	}
	if err := apply(bus, cfg); err != nil {
		println("i3c apply:", err.Error())
		return
	}
	println("i3c timing applied")
}

// apply programs cfg into the controller window and reads it back.
func apply(bus drivers.I2C, cfg i3c.ControllerConfig) error {
	p := i3c.NewProgrammer(bus, windowAddr)
	if err := p.ApplyController(cfg); err != nil {
		return err
	}
	got, err := p.ReadController()
	if err != nil {
		return err
	}
	if got != cfg {
		return i3c.ErrVerify
	}
	return nil
}
