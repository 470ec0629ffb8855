// Package i3c computes I3C controller and target timing register fields from
// a clock-source frequency and the requested bus frequencies.
//
//	cfg, err := i3c.ComputeController(i3c.ControllerRequest{
//		ClockSourceHz: 100_000_000,
//		I3CFreqHz:     12_500_000,
//		DutyCycle:     50,
//		Bus:           i3c.PureBus,
//	})
//
// All arithmetic is integer-only: periods are carried in units of 10 ps so
// that results are bit-identical on every target, FPU or not.
package i3c

// MIPI I3C and I2C electrical limits, in 10 ps units.
const (
	tI3CHighMin     = 3200    // SCL high min, push-pull & open-drain (tDIG_H), 32 ns
	tI3CHighODMax   = 4100    // SCL high max in open-drain (tHIGH), 41 ns
	tI3CLowODMin    = 20000   // SCL low min, open-drain, pure bus (tLOW_OD), 200 ns
	tFMPlusLowODMin = 50000   // SCL low min, mixed bus with Fm+ I2C, 500 ns
	tFMLowODMin     = 130000  // SCL low min, mixed bus with Fm I2C, 1300 ns
	tFMMin          = 250000  // I2C period boundary between Fm+ and Fm, 2.5 us
	tSMMin          = 1000000 // I2C period ceiling, standard mode, 10 us
	tCASMin         = 3840    // SCL after START min (tCAS), 38.4 ns
	tCapa           = 35000   // SDA rise to 70% VDD, measured bus capacitance, 350 ns

	tOneMicro      = 100000 // 1 us
	tSDAHoldNoWait = 600    // source periods above 6 ns meet the 3 ns hold without extra delay
	idlePipeline   = 2      // controller-internal latency deducted from the 1 us reference
)

// MaxDutyCycle is the largest accepted DutyCycle, in percent.
const MaxDutyCycle = 50

// TIMINGR0 fields.
const (
	t0SCLLPPPos  = 0
	t0SCLHI3CPos = 8
	t0SCLLODPos  = 16
	t0SCLHI2CPos = 24
)

// TIMINGR1 fields.
const (
	t1AVALPos   = 0
	t1AVALMsk   = 0xFF << t1AVALPos
	t1ASNCRPos  = 8
	t1ASNCRMsk  = 0x3 << t1ASNCRPos
	t1FREEPos   = 16
	t1FREEMax   = 0x7F
	t1FREEMsk   = t1FREEMax << t1FREEPos
	t1SDAHDPos  = 28
	t1SDAHDMsk  = 1 << t1SDAHDPos
	countMax    = 0xFF
	countFields = 6
)

// Register window offsets used by Programmer.
const (
	RegTiming0 = 0xA0
	RegTiming1 = 0xA4
)
