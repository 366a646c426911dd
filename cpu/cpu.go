// Package cpu implements an atomic (non-cycle-accurate) MOS 6502 core: one
// Step call fetches, decodes and fully executes a single instruction against
// a memory.Accessor bus, returning the cycle count it would have taken on
// real silicon.
package cpu

import (
	"fmt"

	"github.com/retrocore/m6502basic/memory"
)

// Processor status flag bits, in P register order.
const (
	FlagCarry            = uint8(0x01)
	FlagZero             = uint8(0x02)
	FlagInterruptDisable = uint8(0x04)
	FlagDecimal          = uint8(0x08)
	FlagBreak            = uint8(0x10)
	FlagUnused           = uint8(0x20)
	FlagOverflow         = uint8(0x40)
	FlagNegative         = uint8(0x80)
)

// Vector addresses read on Reset and BRK/IRQ.
const (
	ResetVectorLow = uint16(0xFFFC)
	IRQVectorLow   = uint16(0xFFFE)
)

// NullDependencyError is returned when New or SetBus is given a nil bus.
type NullDependencyError struct {
	Reason string
}

func (e NullDependencyError) Error() string {
	return fmt.Sprintf("cpu: missing dependency: %s", e.Reason)
}

// IllegalOpcodeError is returned by Step when the fetched opcode byte has no
// entry in the dispatch table.
type IllegalOpcodeError struct {
	Opcode uint8
}

func (e IllegalOpcodeError) Error() string {
	return fmt.Sprintf("cpu: illegal opcode 0x%02X", e.Opcode)
}

// InvalidAddressingModeError guards against an executor being invoked with
// an addressing mode it does not support. A correct dispatch table never
// triggers it; it exists so a dispatch-table bug fails loudly instead of
// corrupting register state silently.
type InvalidAddressingModeError struct {
	Mode AddrMode
}

func (e InvalidAddressingModeError) Error() string {
	return fmt.Sprintf("cpu: invalid addressing mode %v for this executor", e.Mode)
}

// State is an immutable snapshot of the register file.
type State struct {
	A, X, Y, SP, P uint8
	PC             uint16
}

// Chip is a single 6502 core bound to a bus.
type Chip struct {
	A, X, Y uint8
	SP      uint8
	P       uint8
	PC      uint16

	bus memory.Accessor

	// pageCrossed and branchTaken are scratch flags set by the current
	// instruction's addressing/execution and consumed by Step to compute
	// the final cycle count.
	pageCrossed bool
	branchTaken bool
}

// New creates a Chip bound to bus and performs a Reset. bus must not be nil.
func New(bus memory.Accessor) (*Chip, error) {
	if bus == nil {
		return nil, NullDependencyError{Reason: "bus"}
	}
	c := &Chip{bus: bus}
	c.Reset()
	return c, nil
}

// Reset restores the deterministic power-on/reset register state: A, X, Y
// cleared, SP = 0xFD, P = InterruptDisable|Unused, and PC loaded from the
// reset vector. Reset performs no writes to the bus.
func (c *Chip) Reset() {
	c.A, c.X, c.Y = 0, 0, 0
	c.SP = 0xFD
	c.P = FlagInterruptDisable | FlagUnused
	lo := c.bus.Read(ResetVectorLow)
	hi := c.bus.Read(ResetVectorLow + 1)
	c.PC = uint16(hi)<<8 | uint16(lo)
}

// Bus returns the currently bound bus.
func (c *Chip) Bus() memory.Accessor {
	return c.bus
}

// SetBus rebinds the chip to a different bus. bus must not be nil; register
// state is left untouched.
func (c *Chip) SetBus(bus memory.Accessor) error {
	if bus == nil {
		return NullDependencyError{Reason: "bus"}
	}
	c.bus = bus
	return nil
}

// State returns a snapshot of the register file.
func (c *Chip) State() State {
	return State{A: c.A, X: c.X, Y: c.Y, SP: c.SP, P: c.P, PC: c.PC}
}

// Step fetches, decodes and executes exactly one instruction, returning the
// number of cycles it would have consumed on real hardware. An illegal
// opcode leaves PC past the offending byte and returns IllegalOpcodeError.
func (c *Chip) Step() (uint32, error) {
	c.pageCrossed = false
	c.branchTaken = false

	opcode := c.bus.Read(c.PC)
	c.PC++

	entry := &opcodeTable[opcode]
	if entry.exec == nil {
		return 0, IllegalOpcodeError{Opcode: opcode}
	}
	if err := entry.exec(c, entry.mode); err != nil {
		return 0, err
	}

	cycles := uint32(entry.cycles)
	if entry.pageCrossAdds && c.pageCrossed {
		cycles++
	}
	if entry.branchAdds && c.branchTaken {
		cycles++
		if c.pageCrossed {
			cycles++
		}
	}
	return cycles, nil
}

// Run steps the chip until predicate returns false when given the state
// observed before each Step, or until Step returns an error. It returns the
// total cycle count consumed.
func (c *Chip) Run(predicate func(State) bool) (uint64, error) {
	var total uint64
	for predicate(c.State()) {
		cycles, err := c.Step()
		total += uint64(cycles)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// setFlag sets or clears mask in P, always keeping the unused bit set.
func (c *Chip) setFlag(mask uint8, set bool) {
	if set {
		c.P |= mask
	} else {
		c.P &^= mask
	}
	c.P |= FlagUnused
}

func (c *Chip) flag(mask uint8) bool {
	return c.P&mask != 0
}

func (c *Chip) zeroCheck(v uint8)     { c.setFlag(FlagZero, v == 0) }
func (c *Chip) negativeCheck(v uint8) { c.setFlag(FlagNegative, v&0x80 != 0) }
func (c *Chip) overflowCheck(a, m, result uint8) {
	c.setFlag(FlagOverflow, (a^result)&(m^result)&0x80 != 0)
}

// loadRegister stores val into reg and updates Z/N from it, the pattern
// shared by every load, transfer and increment/decrement instruction.
func (c *Chip) loadRegister(reg *uint8, val uint8) {
	*reg = val
	c.zeroCheck(val)
	c.negativeCheck(val)
}

// compare implements CMP/CPX/CPY: Z/N/C set from reg-val without storing the
// result anywhere.
func (c *Chip) compare(reg, val uint8) {
	diff := reg - val
	c.zeroCheck(diff)
	c.negativeCheck(diff)
	c.setFlag(FlagCarry, reg >= val)
}

func (c *Chip) pushStack(v uint8) {
	c.bus.Write(0x0100|uint16(c.SP), v)
	c.SP--
}

func (c *Chip) popStack() uint8 {
	c.SP++
	return c.bus.Read(0x0100 | uint16(c.SP))
}

// adc implements ADC, including full BCD correction when the Decimal flag
// is set. Overflow always reflects the binary computation, in both modes;
// only Carry and the stored result differ between binary and decimal.
func (c *Chip) adc(m uint8) {
	carry := uint8(0)
	if c.flag(FlagCarry) {
		carry = 1
	}

	binSum := uint16(c.A) + uint16(m) + uint16(carry)
	c.overflowCheck(c.A, m, uint8(binSum))

	if !c.flag(FlagDecimal) {
		c.setFlag(FlagCarry, binSum > 0xFF)
		c.loadRegister(&c.A, uint8(binSum))
		return
	}

	lo := (c.A & 0x0F) + (m & 0x0F) + carry
	if lo >= 0x0A {
		lo = ((lo + 0x06) & 0x0F) + 0x10
	}
	sum := uint16(c.A&0xF0) + uint16(m&0xF0) + uint16(lo)
	c.setFlag(FlagCarry, sum >= 0xA0)
	if sum >= 0xA0 {
		sum += 0x60
	}
	c.loadRegister(&c.A, uint8(sum))
}

// sbc implements SBC. The binary path reuses adc on the ones' complement of
// the operand, the identity that makes carry double as "not borrow" on this
// architecture; the decimal path subtracts BCD digit pairs directly.
// Overflow, like ADC, always reflects the binary computation.
func (c *Chip) sbc(m uint8) {
	if !c.flag(FlagDecimal) {
		c.adc(^m)
		return
	}

	carry := uint8(0)
	if c.flag(FlagCarry) {
		carry = 1
	}
	binSum := c.A + ^m + carry
	c.overflowCheck(c.A, ^m, binSum)

	lo := int16(c.A&0x0F) - int16(m&0x0F) - int16(1-carry)
	if lo < 0 {
		lo = ((lo - 0x06) & 0x0F) - 0x10
	}
	sum := int16(c.A&0xF0) - int16(m&0xF0) + lo
	borrowed := sum < 0
	if borrowed {
		sum -= 0x60
	}
	c.setFlag(FlagCarry, !borrowed)
	c.loadRegister(&c.A, uint8(sum))
}
