package timex

// Ticks10psPerSecond is one second expressed in 10 ps units.
const Ticks10psPerSecond uint64 = 100_000_000_000

// Period10ps returns the period of freqHz in units of 10 ps, rounded to nearest.
// freqHz==0 yields 0; callers treat a zero period as invalid input.
func Period10ps(freqHz uint32) uint32 {
	if freqHz == 0 {
		return 0
	}
	f := uint64(freqHz)
	return uint32((Ticks10psPerSecond + f/2) / f)
}

// FreqFromPeriod10ps is the inverse of Period10ps: a frequency in Hz for a
// period in 10 ps units, rounded to nearest. period==0 yields 0.
func FreqFromPeriod10ps(period uint64) uint32 {
	if period == 0 {
		return 0
	}
	return uint32((Ticks10psPerSecond + period/2) / period)
}
