package cpu

// AddrMode identifies one of the 6502's addressing modes.
type AddrMode int

const (
	ModeImplicit AddrMode = iota
	ModeAccumulator
	ModeImmediate
	ModeZeroPage
	ModeZeroPageX
	ModeZeroPageY
	ModeRelative
	ModeAbsolute
	ModeAbsoluteX
	ModeAbsoluteY
	ModeIndirect
	ModeIndexedIndirect
	ModeIndirectIndexed
)

func (m AddrMode) String() string {
	switch m {
	case ModeImplicit:
		return "implicit"
	case ModeAccumulator:
		return "accumulator"
	case ModeImmediate:
		return "immediate"
	case ModeZeroPage:
		return "zeropage"
	case ModeZeroPageX:
		return "zeropage,x"
	case ModeZeroPageY:
		return "zeropage,y"
	case ModeRelative:
		return "relative"
	case ModeAbsolute:
		return "absolute"
	case ModeAbsoluteX:
		return "absolute,x"
	case ModeAbsoluteY:
		return "absolute,y"
	case ModeIndirect:
		return "indirect"
	case ModeIndexedIndirect:
		return "(zeropage,x)"
	case ModeIndirectIndexed:
		return "(zeropage),y"
	default:
		return "unknown"
	}
}

// fetchAddress computes the effective address for mode, advancing PC past
// the instruction's operand bytes and setting pageCrossed where the mode
// can incur a page-boundary penalty. It never reads the effective address
// itself, only whatever bytes the mode's encoding requires (operand bytes,
// or for indirect modes the pointer table) — that matters for modes used by
// stores and jumps, where reading the destination would be an observable,
// unwanted side effect on a memory-mapped device.
func (c *Chip) fetchAddress(mode AddrMode) (uint16, error) {
	switch mode {
	case ModeZeroPage:
		b := c.bus.Read(c.PC)
		c.PC++
		return uint16(b), nil

	case ModeZeroPageX:
		b := c.bus.Read(c.PC)
		c.PC++
		return uint16(b + c.X), nil

	case ModeZeroPageY:
		b := c.bus.Read(c.PC)
		c.PC++
		return uint16(b + c.Y), nil

	case ModeAbsolute:
		lo := c.bus.Read(c.PC)
		c.PC++
		hi := c.bus.Read(c.PC)
		c.PC++
		return uint16(hi)<<8 | uint16(lo), nil

	case ModeAbsoluteX:
		return c.fetchAbsoluteIndexed(c.X), nil

	case ModeAbsoluteY:
		return c.fetchAbsoluteIndexed(c.Y), nil

	case ModeIndirect:
		lo := c.bus.Read(c.PC)
		c.PC++
		hi := c.bus.Read(c.PC)
		c.PC++
		ptr := uint16(hi)<<8 | uint16(lo)
		return c.readWordBug(ptr), nil

	case ModeIndexedIndirect:
		b := c.bus.Read(c.PC)
		c.PC++
		zp := b + c.X
		lo := c.bus.Read(uint16(zp))
		hi := c.bus.Read(uint16(zp + 1))
		return uint16(hi)<<8 | uint16(lo), nil

	case ModeIndirectIndexed:
		zp := c.bus.Read(c.PC)
		c.PC++
		lo := c.bus.Read(uint16(zp))
		hi := c.bus.Read(uint16(zp + 1))
		base := uint16(hi)<<8 | uint16(lo)
		addr := base + uint16(c.Y)
		c.pageCrossed = (addr & 0xFF00) != (base & 0xFF00)
		return addr, nil

	default:
		return 0, InvalidAddressingModeError{Mode: mode}
	}
}

func (c *Chip) fetchAbsoluteIndexed(reg uint8) uint16 {
	lo := c.bus.Read(c.PC)
	c.PC++
	hi := c.bus.Read(c.PC)
	c.PC++
	base := uint16(hi)<<8 | uint16(lo)
	addr := base + uint16(reg)
	c.pageCrossed = (addr & 0xFF00) != (base & 0xFF00)
	return addr
}

// readWordBug reproduces the indirect-jump page-wrap hardware quirk: when
// ptr's low byte is 0xFF, the high byte of the target is fetched from the
// start of the same page rather than the next one.
func (c *Chip) readWordBug(ptr uint16) uint16 {
	lo := c.bus.Read(ptr)
	hiAddr := (ptr & 0xFF00) | uint16(uint8(ptr)+1)
	hi := c.bus.Read(hiAddr)
	return uint16(hi)<<8 | uint16(lo)
}

// loadOperand reads the value an instruction operates on, for every mode
// that can appear on a load/compute opcode (Accumulator, Immediate, or any
// address-bearing mode).
func (c *Chip) loadOperand(mode AddrMode) (uint8, error) {
	switch mode {
	case ModeAccumulator:
		return c.A, nil
	case ModeImmediate:
		v := c.bus.Read(c.PC)
		c.PC++
		return v, nil
	default:
		addr, err := c.fetchAddress(mode)
		if err != nil {
			return 0, err
		}
		return c.bus.Read(addr), nil
	}
}

// store writes val to the effective address of mode. mode must be an
// address-bearing mode.
func (c *Chip) store(mode AddrMode, val uint8) error {
	addr, err := c.fetchAddress(mode)
	if err != nil {
		return err
	}
	c.bus.Write(addr, val)
	return nil
}

// execRMW implements the read-modify-write shape shared by ASL/LSR/ROL/ROR/
// INC/DEC: read the operand, transform it with fn, write the result back to
// the same place it came from (the accumulator or the effective address).
func (c *Chip) execRMW(mode AddrMode, fn func(uint8) uint8) error {
	if mode == ModeAccumulator {
		c.A = fn(c.A)
		return nil
	}
	addr, err := c.fetchAddress(mode)
	if err != nil {
		return err
	}
	val := c.bus.Read(addr)
	c.bus.Write(addr, fn(val))
	return nil
}
