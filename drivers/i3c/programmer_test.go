package i3c

import (
	"errors"
	"testing"

	"tinygo.org/x/drivers"
)

var _ drivers.I2C = (*regWindow)(nil)

// regWindow fakes an I2C register window of 32-bit little-endian words.
type regWindow struct {
	addr    uint16
	regs    map[byte]uint32
	writes  []byte // register offsets in write order
	stuck   uint32 // bits that never clear on write
	failOn  byte
	failErr error
}

func newRegWindow(addr uint16) *regWindow {
	return &regWindow{addr: addr, regs: map[byte]uint32{}}
}

func (f *regWindow) Tx(addr uint16, w, r []byte) error {
	if addr != f.addr {
		return errors.New("nack")
	}
	if len(w) == 0 {
		return errors.New("missing register offset")
	}
	reg := w[0]
	if f.failErr != nil && reg == f.failOn {
		return f.failErr
	}
	if len(w) == 5 {
		f.regs[reg] = (uint32(w[1]) | uint32(w[2])<<8 | uint32(w[3])<<16 | uint32(w[4])<<24) | f.stuck
		f.writes = append(f.writes, reg)
	}
	if len(r) == 4 {
		v := f.regs[reg]
		r[0], r[1], r[2], r[3] = byte(v), byte(v>>8), byte(v>>16), byte(v>>24)
	}
	return nil
}

func TestProgrammerApplyController(t *testing.T) {
	bus := newRegWindow(0x30)
	bus.regs[RegTiming1] = 0x200 // ASNCR set by firmware
	p := NewProgrammer(bus, 0x30)

	cfg, err := ComputeController(ControllerRequest{ClockSourceHz: 50_000_000, I3CFreqHz: 2_500_000, DutyCycle: 50, Bus: PureBus})
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if err := p.ApplyController(cfg); err != nil {
		t.Fatalf("ApplyController: %v", err)
	}
	if got, want := bus.regs[RegTiming0], uint32(0x00130909); got != want {
		t.Fatalf("TIMINGR0 = %#08x, want %#08x", got, want)
	}
	if got, want := bus.regs[RegTiming1], uint32(0x000B0230); got != want {
		t.Fatalf("TIMINGR1 = %#08x, want %#08x", got, want)
	}
	if len(bus.writes) != 2 || bus.writes[0] != RegTiming0 || bus.writes[1] != RegTiming1 {
		t.Fatalf("write order = %#v", bus.writes)
	}

	back, err := p.ReadController()
	if err != nil {
		t.Fatalf("ReadController: %v", err)
	}
	if back != cfg {
		t.Fatalf("readback = %+v, want %+v", back, cfg)
	}
}

func TestProgrammerVerifyMismatch(t *testing.T) {
	bus := newRegWindow(0x30)
	bus.stuck = 1 << 31
	p := NewProgrammer(bus, 0x30)
	err := p.ApplyController(ControllerConfig{SCLPPLow: 3, SCLI3CHigh: 3, SCLODLow: 36, BusFree: 20, BusIdle: 98})
	if !errors.Is(err, ErrVerify) {
		t.Fatalf("err = %v, want ErrVerify", err)
	}
}

func TestProgrammerErrors(t *testing.T) {
	boom := errors.New("bus fault")
	bus := newRegWindow(0x30)
	bus.failOn, bus.failErr = RegTiming1, boom
	p := NewProgrammer(bus, 0x30)

	if err := p.ApplyController(ControllerConfig{}); !errors.Is(err, boom) {
		t.Fatalf("ApplyController err = %v, want bus fault", err)
	}
	if len(bus.writes) != 0 {
		t.Fatalf("unexpected writes after failed read: %#v", bus.writes)
	}
	if err := p.ApplyTarget(TargetConfig{BusAvailable: 98}); !errors.Is(err, boom) {
		t.Fatalf("ApplyTarget err = %v, want bus fault", err)
	}

	// Field checks happen before touching the bus.
	if err := NewProgrammer(newRegWindow(0x30), 0x30).ApplyController(ControllerConfig{BusFree: 0x80}); !errors.Is(err, ErrFreeOverflow) {
		t.Fatalf("err = %v, want ErrFreeOverflow", err)
	}
}

func TestProgrammerApplyTarget(t *testing.T) {
	bus := newRegWindow(0x31)
	bus.regs[RegTiming1] = 0x10320000
	p := NewProgrammer(bus, 0x31)

	cfg, err := ComputeTarget(TargetRequest{ClockSourceHz: 100_000_000})
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if err := p.ApplyTarget(cfg); err != nil {
		t.Fatalf("ApplyTarget: %v", err)
	}
	if got, want := bus.regs[RegTiming1], uint32(0x10320062); got != want {
		t.Fatalf("TIMINGR1 = %#08x, want %#08x", got, want)
	}
}
