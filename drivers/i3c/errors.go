package i3c

import "i3ctiming/errcode"

var (
	// Input validation (TinyGo-safe; no fmt)
	ErrZeroClockSource = errcode.New(errcode.InvalidParams, "i3c", "clock source frequency is zero")
	ErrZeroI3CFreq     = errcode.New(errcode.InvalidParams, "i3c", "I3C bus frequency is zero")
	ErrZeroI2CFreq     = errcode.New(errcode.InvalidParams, "i3c", "I2C bus frequency is zero")
	ErrDutyCycle       = errcode.New(errcode.InvalidParams, "i3c", "duty cycle above 50%")
	ErrUnknownBus      = errcode.New(errcode.InvalidParams, "i3c", "unknown bus mode")
	ErrSourceTooFast   = errcode.New(errcode.InvalidParams, "i3c", "clock source period rounds to zero")
	ErrI2CTooSlow      = errcode.New(errcode.InvalidParams, "i3c", "I2C period above standard-mode ceiling")

	// Derived fields
	ErrCountOverflow = errcode.New(errcode.OutOfRange, "i3c", "timing count exceeds 8 bits")
	ErrFreeOverflow  = errcode.New(errcode.OutOfRange, "i3c", "bus free count exceeds TIMINGR1.FREE")

	// Programmer
	ErrVerify = errcode.New(errcode.VerifyFailed, "i3c", "timing register readback mismatch")
)
