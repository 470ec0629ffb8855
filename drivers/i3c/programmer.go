package i3c

import "tinygo.org/x/drivers"

// Programmer writes timing words into an I3C controller through an I2C
// register window: each access starts with a one-byte register offset,
// followed by a 32-bit little-endian word.
//
// A Programmer is not safe for concurrent use.
type Programmer struct {
	bus  drivers.I2C
	addr uint16

	w [5]byte
	r [4]byte
}

// NewProgrammer returns a Programmer for the window at addr. The I2C bus
// must already be configured.
func NewProgrammer(bus drivers.I2C, addr uint16) *Programmer {
	return &Programmer{bus: bus, addr: addr}
}

// ApplyController writes TIMINGR0 and TIMINGR1 and reads both back. The
// ASNCR field of TIMINGR1 is preserved.
func (p *Programmer) ApplyController(cfg ControllerConfig) error {
	t1, err := cfg.Timing1()
	if err != nil {
		return err
	}
	prev, err := p.readWord(RegTiming1)
	if err != nil {
		return err
	}
	t1 |= prev & t1ASNCRMsk
	t0 := cfg.Timing0()

	if err := p.writeWord(RegTiming0, t0); err != nil {
		return err
	}
	if err := p.writeWord(RegTiming1, t1); err != nil {
		return err
	}
	if err := p.verify(RegTiming0, t0); err != nil {
		return err
	}
	return p.verify(RegTiming1, t1)
}

// ApplyTarget replaces TIMINGR1.AVAL and reads it back.
func (p *Programmer) ApplyTarget(cfg TargetConfig) error {
	prev, err := p.readWord(RegTiming1)
	if err != nil {
		return err
	}
	t1 := cfg.Timing1(prev)
	if err := p.writeWord(RegTiming1, t1); err != nil {
		return err
	}
	return p.verify(RegTiming1, t1)
}

// ReadController reads and decodes the controller timing words.
func (p *Programmer) ReadController() (ControllerConfig, error) {
	t0, err := p.readWord(RegTiming0)
	if err != nil {
		return ControllerConfig{}, err
	}
	t1, err := p.readWord(RegTiming1)
	if err != nil {
		return ControllerConfig{}, err
	}
	return DecodeController(t0, t1), nil
}

func (p *Programmer) verify(reg byte, want uint32) error {
	got, err := p.readWord(reg)
	if err != nil {
		return err
	}
	if got != want {
		return ErrVerify
	}
	return nil
}

func (p *Programmer) readWord(reg byte) (uint32, error) {
	p.w[0] = reg
	if err := p.bus.Tx(p.addr, p.w[:1], p.r[:4]); err != nil {
		return 0, err
	}
	return uint32(p.r[0]) | uint32(p.r[1])<<8 | uint32(p.r[2])<<16 | uint32(p.r[3])<<24, nil
}

func (p *Programmer) writeWord(reg byte, val uint32) error {
	p.w[0] = reg
	p.w[1] = byte(val)
	p.w[2] = byte(val >> 8)
	p.w[3] = byte(val >> 16)
	p.w[4] = byte(val >> 24)
	return p.bus.Tx(p.addr, p.w[:5], nil)
}
