package cpu

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/go-test/deep"
)

// flatMemory is a minimal memory.Accessor backed by a flat 64K array, used
// throughout these tests instead of a full memory.Bus so register behavior
// can be checked without any device wiring.
type flatMemory struct {
	addr [65536]uint8
}

func (r *flatMemory) Read(addr uint16) uint8     { return r.addr[addr] }
func (r *flatMemory) Write(addr uint16, v uint8) { r.addr[addr] = v }

func (r *flatMemory) setWord(addr uint16, val uint16) {
	r.addr[addr] = uint8(val)
	r.addr[addr+1] = uint8(val >> 8)
}

// readCountingMemory wraps a flatMemory and counts reads per address.
type readCountingMemory struct {
	*flatMemory
	reads map[uint16]int
}

func (r *readCountingMemory) Read(addr uint16) uint8 {
	r.reads[addr]++
	return r.flatMemory.Read(addr)
}

func newChip(t *testing.T, resetVector uint16) (*Chip, *flatMemory) {
	t.Helper()
	m := &flatMemory{}
	m.setWord(ResetVectorLow, resetVector)
	c, err := New(m)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c, m
}

func TestNewNilBus(t *testing.T) {
	if _, err := New(nil); err == nil {
		t.Fatal("New(nil) succeeded, want NullDependencyError")
	}
}

func TestReset(t *testing.T) {
	c, _ := newChip(t, 0x1234)
	want := State{A: 0, X: 0, Y: 0, SP: 0xFD, P: FlagInterruptDisable | FlagUnused, PC: 0x1234}
	got := c.State()
	if diff := deep.Equal(got, want); diff != nil {
		t.Errorf("State after Reset mismatch: %v\ngot:  %s\nwant: %s", diff, spew.Sdump(got), spew.Sdump(want))
	}
}

func TestLDAImmediateFlags(t *testing.T) {
	tests := []struct {
		name  string
		val   uint8
		wantZ bool
		wantN bool
	}{
		{"positive", 0x42, false, false},
		{"zero", 0x00, true, false},
		{"negative", 0x80, false, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, m := newChip(t, 0x0200)
			m.addr[0x0200] = 0xA9 // LDA #imm
			m.addr[0x0201] = tc.val
			cycles, err := c.Step()
			if err != nil {
				t.Fatalf("Step: %v", err)
			}
			if cycles != 2 {
				t.Errorf("cycles = %d, want 2", cycles)
			}
			if c.A != tc.val {
				t.Errorf("A = 0x%02X, want 0x%02X", c.A, tc.val)
			}
			if c.flag(FlagZero) != tc.wantZ {
				t.Errorf("Z = %v, want %v", c.flag(FlagZero), tc.wantZ)
			}
			if c.flag(FlagNegative) != tc.wantN {
				t.Errorf("N = %v, want %v", c.flag(FlagNegative), tc.wantN)
			}
		})
	}
}

func TestSTAAbsoluteDoesNotReadTarget(t *testing.T) {
	c, m := newChip(t, 0x0200)
	m.addr[0x0200] = 0xA9 // LDA #$42
	m.addr[0x0201] = 0x42
	m.addr[0x0202] = 0x8D // STA $0300
	m.addr[0x0203] = 0x00
	m.addr[0x0204] = 0x03
	rec := &readCountingMemory{flatMemory: m, reads: map[uint16]int{}}
	if err := c.SetBus(rec); err != nil {
		t.Fatalf("SetBus: %v", err)
	}
	if _, err := c.Step(); err != nil {
		t.Fatalf("Step LDA: %v", err)
	}
	if _, err := c.Step(); err != nil {
		t.Fatalf("Step STA: %v", err)
	}
	if m.addr[0x0300] != 0x42 {
		t.Errorf("mem[0x0300] = 0x%02X, want 0x42", m.addr[0x0300])
	}
	if n := rec.reads[0x0300]; n != 0 {
		t.Errorf("STA read its target 0x0300 %d time(s), want 0", n)
	}
}

func TestADCBinary(t *testing.T) {
	c, m := newChip(t, 0x0200)
	c.A = 0x10
	m.addr[0x0200] = 0x69 // ADC #imm
	m.addr[0x0201] = 0x20
	if _, err := c.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if c.A != 0x30 {
		t.Errorf("A = 0x%02X, want 0x30", c.A)
	}
	if c.flag(FlagCarry) || c.flag(FlagOverflow) {
		t.Errorf("unexpected carry/overflow: P = 0x%02X", c.P)
	}
}

func TestADCOverflow(t *testing.T) {
	c, m := newChip(t, 0x0200)
	c.A = 0x7F
	m.addr[0x0200] = 0x69
	m.addr[0x0201] = 0x01
	if _, err := c.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if c.A != 0x80 {
		t.Errorf("A = 0x%02X, want 0x80", c.A)
	}
	if !c.flag(FlagOverflow) {
		t.Error("V not set on signed overflow")
	}
	if !c.flag(FlagNegative) {
		t.Error("N not set")
	}
}

func TestADCDecimalMode(t *testing.T) {
	c, m := newChip(t, 0x0200)
	c.P |= FlagDecimal
	c.A = 0x19 // BCD 19
	m.addr[0x0200] = 0x69
	m.addr[0x0201] = 0x11 // BCD 11 -> 30
	if _, err := c.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if c.A != 0x30 {
		t.Errorf("A = 0x%02X, want BCD 0x30", c.A)
	}
	if c.flag(FlagCarry) {
		t.Error("unexpected carry out of BCD add")
	}
}

func TestSBCBinaryBorrow(t *testing.T) {
	c, m := newChip(t, 0x0200)
	c.A = 0x05
	c.P |= FlagCarry // carry set means "no borrow" going in
	m.addr[0x0200] = 0xE9 // SBC #imm
	m.addr[0x0201] = 0x06
	if _, err := c.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if c.A != 0xFF {
		t.Errorf("A = 0x%02X, want 0xFF", c.A)
	}
	if c.flag(FlagCarry) {
		t.Error("carry should be clear indicating a borrow occurred")
	}
}

func TestAbsoluteXPageCrossAddsCycle(t *testing.T) {
	c, m := newChip(t, 0x0200)
	c.X = 0xFF
	m.addr[0x0200] = 0xBD // LDA abs,X
	m.addr[0x0201] = 0x01
	m.addr[0x0202] = 0x02 // base 0x0201, + 0xFF crosses into 0x0300
	m.addr[0x0300] = 0x55
	cycles, err := c.Step()
	if err != nil {
		t.Fatalf("Step: %v", err)
	}
	if cycles != 5 {
		t.Errorf("cycles = %d, want 5 (4 base + 1 page cross)", cycles)
	}
	if c.A != 0x55 {
		t.Errorf("A = 0x%02X, want 0x55", c.A)
	}
}

func TestSTAAbsoluteXNeverAddsPageCrossCycle(t *testing.T) {
	c, m := newChip(t, 0x0200)
	c.X = 0xFF
	c.A = 0x99
	m.addr[0x0200] = 0x9D // STA abs,X
	m.addr[0x0201] = 0x01
	m.addr[0x0202] = 0x02
	cycles, err := c.Step()
	if err != nil {
		t.Fatalf("Step: %v", err)
	}
	if cycles != 5 {
		t.Errorf("cycles = %d, want fixed 5 for STA abs,X", cycles)
	}
}

func TestBranchTakenAddsCycle(t *testing.T) {
	c, m := newChip(t, 0x0200)
	c.P |= FlagZero
	m.addr[0x0200] = 0xF0 // BEQ
	m.addr[0x0201] = 0x05
	cycles, err := c.Step()
	if err != nil {
		t.Fatalf("Step: %v", err)
	}
	if cycles != 3 {
		t.Errorf("cycles = %d, want 3 (2 base + 1 taken)", cycles)
	}
	if c.PC != 0x0207 {
		t.Errorf("PC = 0x%04X, want 0x0207", c.PC)
	}
}

func TestBranchNotTakenNoExtraCycle(t *testing.T) {
	c, m := newChip(t, 0x0200)
	c.P &^= FlagZero
	m.addr[0x0200] = 0xF0 // BEQ
	m.addr[0x0201] = 0x05
	cycles, err := c.Step()
	if err != nil {
		t.Fatalf("Step: %v", err)
	}
	if cycles != 2 {
		t.Errorf("cycles = %d, want 2", cycles)
	}
	if c.PC != 0x0202 {
		t.Errorf("PC = 0x%04X, want 0x0202", c.PC)
	}
}

func TestBranchPageCrossAddsExtraCycle(t *testing.T) {
	c, m := newChip(t, 0x02F0)
	c.P |= FlagZero
	m.addr[0x02F0] = 0xF0 // BEQ
	m.addr[0x02F1] = 0x10 // crosses into next page
	cycles, err := c.Step()
	if err != nil {
		t.Fatalf("Step: %v", err)
	}
	if cycles != 4 {
		t.Errorf("cycles = %d, want 4 (2 base + 1 taken + 1 page cross)", cycles)
	}
}

func TestJSRRTSRoundTrip(t *testing.T) {
	c, m := newChip(t, 0x0200)
	m.addr[0x0200] = 0x20 // JSR $0300
	m.addr[0x0201] = 0x00
	m.addr[0x0202] = 0x03
	m.addr[0x0300] = 0x60 // RTS
	if _, err := c.Step(); err != nil {
		t.Fatalf("JSR: %v", err)
	}
	if c.PC != 0x0300 {
		t.Errorf("PC after JSR = 0x%04X, want 0x0300", c.PC)
	}
	if _, err := c.Step(); err != nil {
		t.Fatalf("RTS: %v", err)
	}
	if c.PC != 0x0203 {
		t.Errorf("PC after RTS = 0x%04X, want 0x0203", c.PC)
	}
}

func TestPHAPLARoundTrip(t *testing.T) {
	c, m := newChip(t, 0x0200)
	c.A = 0x77
	startSP := c.SP
	m.addr[0x0200] = 0x48 // PHA
	m.addr[0x0201] = 0xA9 // LDA #$00
	m.addr[0x0202] = 0x00
	m.addr[0x0203] = 0x68 // PLA
	for i := 0; i < 3; i++ {
		if _, err := c.Step(); err != nil {
			t.Fatalf("Step %d: %v", i, err)
		}
	}
	if c.A != 0x77 {
		t.Errorf("A = 0x%02X, want 0x77", c.A)
	}
	if c.SP != startSP {
		t.Errorf("SP = 0x%02X, want 0x%02X (balanced)", c.SP, startSP)
	}
}

func TestPHPPLPPreservesUnusedClearsBreak(t *testing.T) {
	c, m := newChip(t, 0x0200)
	m.addr[0x0200] = 0x08 // PHP
	m.addr[0x0201] = 0x28 // PLP
	if _, err := c.Step(); err != nil {
		t.Fatalf("PHP: %v", err)
	}
	if _, err := c.Step(); err != nil {
		t.Fatalf("PLP: %v", err)
	}
	if c.P&FlagBreak != 0 {
		t.Error("Break flag leaked into P after PLP")
	}
	if c.P&FlagUnused == 0 {
		t.Error("Unused flag not set after PLP")
	}
}

func TestBRKRTIRoundTrip(t *testing.T) {
	c, m := newChip(t, 0x0200)
	m.setWord(IRQVectorLow, 0x0400)
	m.addr[0x0200] = 0x00 // BRK
	m.addr[0x0400] = 0x40 // RTI
	startP := c.P
	if _, err := c.Step(); err != nil {
		t.Fatalf("BRK: %v", err)
	}
	if c.PC != 0x0400 {
		t.Errorf("PC after BRK = 0x%04X, want 0x0400", c.PC)
	}
	if !c.flag(FlagInterruptDisable) {
		t.Error("I flag not set after BRK")
	}
	if _, err := c.Step(); err != nil {
		t.Fatalf("RTI: %v", err)
	}
	if c.PC != 0x0202 {
		t.Errorf("PC after RTI = 0x%04X, want 0x0202", c.PC)
	}
	if c.P != startP {
		t.Errorf("P after RTI = 0x%02X, want restored 0x%02X", c.P, startP)
	}
}

func TestIndirectJMPPageWrapBug(t *testing.T) {
	c, m := newChip(t, 0x0500)
	m.addr[0x0500] = 0x6C // JMP (ind)
	m.addr[0x0501] = 0xFF
	m.addr[0x0502] = 0x02 // pointer = 0x02FF, low byte on the page boundary
	m.addr[0x02FF] = 0x34 // low byte of target
	m.addr[0x0300] = 0x12 // correct (unbugged) next-page high byte; must NOT be used
	m.addr[0x0200] = 0x78 // buggy high byte: read wraps to the start of page 0x02
	if _, err := c.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	want := uint16(0x78)<<8 | 0x34
	if c.PC != want {
		t.Errorf("PC = 0x%04X, want 0x%04X (page-wrap bug)", c.PC, want)
	}
}

func TestIllegalOpcode(t *testing.T) {
	c, m := newChip(t, 0x0200)
	m.addr[0x0200] = 0x02 // unassigned in opcodeTable
	_, err := c.Step()
	if _, ok := err.(IllegalOpcodeError); !ok {
		t.Fatalf("err = %v, want IllegalOpcodeError", err)
	}
}

func TestRun(t *testing.T) {
	c, m := newChip(t, 0x0200)
	m.addr[0x0200] = 0xA9 // LDA #1
	m.addr[0x0201] = 0x01
	m.addr[0x0202] = 0xE8 // INX
	m.addr[0x0203] = 0xE8 // INX
	m.addr[0x0204] = 0xEA // NOP
	cycles, err := c.Run(func(s State) bool { return s.PC < 0x0204 })
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if c.X != 2 {
		t.Errorf("X = %d, want 2", c.X)
	}
	if cycles != 2+2+2 {
		t.Errorf("cycles = %d, want 6", cycles)
	}
}

func TestSetBusNil(t *testing.T) {
	c, _ := newChip(t, 0x0200)
	if err := c.SetBus(nil); err == nil {
		t.Fatal("SetBus(nil) succeeded, want NullDependencyError")
	}
}
