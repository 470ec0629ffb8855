//go:build rp2040 || rp2350

package main

import (
	"machine"

	"tinygo.org/x/drivers"
)

// timingBus configures i2c0 on the default pins for the bring-up register
// window.
func timingBus() (drivers.I2C, bool) {
	b := machine.I2C0
	if err := b.Configure(machine.I2CConfig{
		Frequency: 400 * machine.KHz,
		SDA:       machine.I2C0_SDA_PIN,
		SCL:       machine.I2C0_SCL_PIN,
	}); err != nil {
		println("i2c0:", err.Error())
		return nil, false
	}
	return b, true
}
