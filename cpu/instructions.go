package cpu

// Each executor has the signature demanded by the opcode table regardless
// of whether it uses mode; branch and implicit-mode instructions ignore it.

func execLDA(c *Chip, mode AddrMode) error {
	v, err := c.loadOperand(mode)
	if err != nil {
		return err
	}
	c.loadRegister(&c.A, v)
	return nil
}

func execLDX(c *Chip, mode AddrMode) error {
	v, err := c.loadOperand(mode)
	if err != nil {
		return err
	}
	c.loadRegister(&c.X, v)
	return nil
}

func execLDY(c *Chip, mode AddrMode) error {
	v, err := c.loadOperand(mode)
	if err != nil {
		return err
	}
	c.loadRegister(&c.Y, v)
	return nil
}

func execSTA(c *Chip, mode AddrMode) error { return c.store(mode, c.A) }
func execSTX(c *Chip, mode AddrMode) error { return c.store(mode, c.X) }
func execSTY(c *Chip, mode AddrMode) error { return c.store(mode, c.Y) }

func execTAX(c *Chip, mode AddrMode) error { c.loadRegister(&c.X, c.A); return nil }
func execTAY(c *Chip, mode AddrMode) error { c.loadRegister(&c.Y, c.A); return nil }
func execTXA(c *Chip, mode AddrMode) error { c.loadRegister(&c.A, c.X); return nil }
func execTYA(c *Chip, mode AddrMode) error { c.loadRegister(&c.A, c.Y); return nil }
func execTSX(c *Chip, mode AddrMode) error { c.loadRegister(&c.X, c.SP); return nil }
func execTXS(c *Chip, mode AddrMode) error { c.SP = c.X; return nil }

func execADC(c *Chip, mode AddrMode) error {
	v, err := c.loadOperand(mode)
	if err != nil {
		return err
	}
	c.adc(v)
	return nil
}

func execSBC(c *Chip, mode AddrMode) error {
	v, err := c.loadOperand(mode)
	if err != nil {
		return err
	}
	c.sbc(v)
	return nil
}

func execAND(c *Chip, mode AddrMode) error {
	v, err := c.loadOperand(mode)
	if err != nil {
		return err
	}
	c.loadRegister(&c.A, c.A&v)
	return nil
}

func execORA(c *Chip, mode AddrMode) error {
	v, err := c.loadOperand(mode)
	if err != nil {
		return err
	}
	c.loadRegister(&c.A, c.A|v)
	return nil
}

func execEOR(c *Chip, mode AddrMode) error {
	v, err := c.loadOperand(mode)
	if err != nil {
		return err
	}
	c.loadRegister(&c.A, c.A^v)
	return nil
}

func execBIT(c *Chip, mode AddrMode) error {
	v, err := c.loadOperand(mode)
	if err != nil {
		return err
	}
	c.setFlag(FlagZero, (c.A&v) == 0)
	c.setFlag(FlagNegative, v&0x80 != 0)
	c.setFlag(FlagOverflow, v&0x40 != 0)
	return nil
}

func execASL(c *Chip, mode AddrMode) error {
	return c.execRMW(mode, func(v uint8) uint8 {
		c.setFlag(FlagCarry, v&0x80 != 0)
		res := v << 1
		c.zeroCheck(res)
		c.negativeCheck(res)
		return res
	})
}

func execLSR(c *Chip, mode AddrMode) error {
	return c.execRMW(mode, func(v uint8) uint8 {
		c.setFlag(FlagCarry, v&0x01 != 0)
		res := v >> 1
		c.zeroCheck(res)
		c.negativeCheck(res)
		return res
	})
}

func execROL(c *Chip, mode AddrMode) error {
	return c.execRMW(mode, func(v uint8) uint8 {
		carryIn := uint8(0)
		if c.flag(FlagCarry) {
			carryIn = 1
		}
		c.setFlag(FlagCarry, v&0x80 != 0)
		res := (v << 1) | carryIn
		c.zeroCheck(res)
		c.negativeCheck(res)
		return res
	})
}

func execROR(c *Chip, mode AddrMode) error {
	return c.execRMW(mode, func(v uint8) uint8 {
		carryIn := uint8(0)
		if c.flag(FlagCarry) {
			carryIn = 0x80
		}
		c.setFlag(FlagCarry, v&0x01 != 0)
		res := (v >> 1) | carryIn
		c.zeroCheck(res)
		c.negativeCheck(res)
		return res
	})
}

func execINC(c *Chip, mode AddrMode) error {
	return c.execRMW(mode, func(v uint8) uint8 {
		res := v + 1
		c.zeroCheck(res)
		c.negativeCheck(res)
		return res
	})
}

func execDEC(c *Chip, mode AddrMode) error {
	return c.execRMW(mode, func(v uint8) uint8 {
		res := v - 1
		c.zeroCheck(res)
		c.negativeCheck(res)
		return res
	})
}

func execINX(c *Chip, mode AddrMode) error { c.loadRegister(&c.X, c.X+1); return nil }
func execINY(c *Chip, mode AddrMode) error { c.loadRegister(&c.Y, c.Y+1); return nil }
func execDEX(c *Chip, mode AddrMode) error { c.loadRegister(&c.X, c.X-1); return nil }
func execDEY(c *Chip, mode AddrMode) error { c.loadRegister(&c.Y, c.Y-1); return nil }

func execCMP(c *Chip, mode AddrMode) error {
	v, err := c.loadOperand(mode)
	if err != nil {
		return err
	}
	c.compare(c.A, v)
	return nil
}

func execCPX(c *Chip, mode AddrMode) error {
	v, err := c.loadOperand(mode)
	if err != nil {
		return err
	}
	c.compare(c.X, v)
	return nil
}

func execCPY(c *Chip, mode AddrMode) error {
	v, err := c.loadOperand(mode)
	if err != nil {
		return err
	}
	c.compare(c.Y, v)
	return nil
}

// branch implements the shared relative-branch mechanics: the offset byte
// is always consumed, even when the branch is not taken.
func (c *Chip) branch(taken bool) error {
	offset := int8(c.bus.Read(c.PC))
	c.PC++
	if !taken {
		return nil
	}
	c.branchTaken = true
	old := c.PC
	newPC := uint16(int32(old) + int32(offset))
	c.pageCrossed = (newPC & 0xFF00) != (old & 0xFF00)
	c.PC = newPC
	return nil
}

func execBPL(c *Chip, mode AddrMode) error { return c.branch(!c.flag(FlagNegative)) }
func execBMI(c *Chip, mode AddrMode) error { return c.branch(c.flag(FlagNegative)) }
func execBVC(c *Chip, mode AddrMode) error { return c.branch(!c.flag(FlagOverflow)) }
func execBVS(c *Chip, mode AddrMode) error { return c.branch(c.flag(FlagOverflow)) }
func execBCC(c *Chip, mode AddrMode) error { return c.branch(!c.flag(FlagCarry)) }
func execBCS(c *Chip, mode AddrMode) error { return c.branch(c.flag(FlagCarry)) }
func execBNE(c *Chip, mode AddrMode) error { return c.branch(!c.flag(FlagZero)) }
func execBEQ(c *Chip, mode AddrMode) error { return c.branch(c.flag(FlagZero)) }

func execJMP(c *Chip, mode AddrMode) error {
	addr, err := c.fetchAddress(mode)
	if err != nil {
		return err
	}
	c.PC = addr
	return nil
}

func execJSR(c *Chip, mode AddrMode) error {
	addr, err := c.fetchAddress(ModeAbsolute)
	if err != nil {
		return err
	}
	ret := c.PC - 1
	c.pushStack(uint8(ret >> 8))
	c.pushStack(uint8(ret))
	c.PC = addr
	return nil
}

func execRTS(c *Chip, mode AddrMode) error {
	lo := c.popStack()
	hi := c.popStack()
	c.PC = (uint16(hi)<<8 | uint16(lo)) + 1
	return nil
}

func execPHA(c *Chip, mode AddrMode) error { c.pushStack(c.A); return nil }

func execPLA(c *Chip, mode AddrMode) error {
	c.loadRegister(&c.A, c.popStack())
	return nil
}

func execPHP(c *Chip, mode AddrMode) error {
	c.pushStack(c.P | FlagBreak | FlagUnused)
	return nil
}

func execPLP(c *Chip, mode AddrMode) error {
	c.P = (c.popStack() | FlagUnused) &^ FlagBreak
	return nil
}

func execBRK(c *Chip, mode AddrMode) error {
	c.PC++ // the byte following BRK's opcode is a padding/signature byte.
	c.pushStack(uint8(c.PC >> 8))
	c.pushStack(uint8(c.PC))
	c.pushStack(c.P | FlagBreak | FlagUnused)
	c.setFlag(FlagInterruptDisable, true)
	lo := c.bus.Read(IRQVectorLow)
	hi := c.bus.Read(IRQVectorLow + 1)
	c.PC = uint16(hi)<<8 | uint16(lo)
	return nil
}

func execRTI(c *Chip, mode AddrMode) error {
	c.P = (c.popStack() | FlagUnused) &^ FlagBreak
	lo := c.popStack()
	hi := c.popStack()
	c.PC = uint16(hi)<<8 | uint16(lo)
	return nil
}

func execCLC(c *Chip, mode AddrMode) error { c.setFlag(FlagCarry, false); return nil }
func execSEC(c *Chip, mode AddrMode) error { c.setFlag(FlagCarry, true); return nil }
func execCLI(c *Chip, mode AddrMode) error { c.setFlag(FlagInterruptDisable, false); return nil }
func execSEI(c *Chip, mode AddrMode) error { c.setFlag(FlagInterruptDisable, true); return nil }
func execCLD(c *Chip, mode AddrMode) error { c.setFlag(FlagDecimal, false); return nil }
func execSED(c *Chip, mode AddrMode) error { c.setFlag(FlagDecimal, true); return nil }
func execCLV(c *Chip, mode AddrMode) error { c.setFlag(FlagOverflow, false); return nil }

func execNOP(c *Chip, mode AddrMode) error { return nil }
