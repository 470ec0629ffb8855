//go:build !rp2040 && !rp2350

package main

import "tinygo.org/x/drivers"

// timingBus has no register window on the host; timing words are only
// printed.
func timingBus() (drivers.I2C, bool) { return nil, false }
