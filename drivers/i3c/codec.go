package i3c

// Timing0 packs the SCL fields into a TIMINGR0 word.
func (c ControllerConfig) Timing0() uint32 {
	return uint32(c.SCLPPLow)<<t0SCLLPPPos |
		uint32(c.SCLI3CHigh)<<t0SCLHI3CPos |
		uint32(c.SCLODLow)<<t0SCLLODPos |
		uint32(c.SCLI2CHigh)<<t0SCLHI2CPos
}

// Timing1 packs bus idle, bus free and SDA hold into a TIMINGR1 word with
// ASNCR cleared. TIMINGR1.FREE is 7 bits wide, narrower than BusFree.
func (c ControllerConfig) Timing1() (uint32, error) {
	if c.BusFree > t1FREEMax {
		return 0, ErrFreeOverflow
	}
	return uint32(c.BusIdle)<<t1AVALPos |
		uint32(c.BusFree)<<t1FREEPos |
		c.SDAHold&t1SDAHDMsk, nil
}

// DecodeController unpacks TIMINGR0/TIMINGR1 words. ASNCR is ignored.
func DecodeController(t0, t1 uint32) ControllerConfig {
	return ControllerConfig{
		SCLPPLow:   uint8(t0 >> t0SCLLPPPos),
		SCLI3CHigh: uint8(t0 >> t0SCLHI3CPos),
		SCLODLow:   uint8(t0 >> t0SCLLODPos),
		SCLI2CHigh: uint8(t0 >> t0SCLHI2CPos),
		BusIdle:    uint8((t1 & t1AVALMsk) >> t1AVALPos),
		BusFree:    uint8((t1 & t1FREEMsk) >> t1FREEPos),
		SDAHold:    t1 & t1SDAHDMsk,
	}
}

// SDAHoldBit reports the unshifted SDA hold flag.
func (c ControllerConfig) SDAHoldBit() uint8 {
	return uint8((c.SDAHold & t1SDAHDMsk) >> t1SDAHDPos)
}

// Timing1 returns prev with its AVAL field replaced by BusAvailable.
func (c TargetConfig) Timing1(prev uint32) uint32 {
	return prev&^t1AVALMsk | uint32(c.BusAvailable)<<t1AVALPos
}

// DecodeTarget unpacks the AVAL field of a TIMINGR1 word.
func DecodeTarget(t1 uint32) TargetConfig {
	return TargetConfig{BusAvailable: uint8((t1 & t1AVALMsk) >> t1AVALPos)}
}
