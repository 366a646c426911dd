package cpu

// instruction describes one opcode: its mnemonic (for diagnostics), the
// addressing mode its operand is encoded in, the executor that performs it,
// the base cycle count, and whether that count can grow (a page-crossing
// load/compute, or a taken branch).
type instruction struct {
	mnemonic      string
	mode          AddrMode
	exec          func(c *Chip, mode AddrMode) error
	cycles        uint8
	pageCrossAdds bool
	branchAdds    bool
}

// opcodeTable is indexed directly by opcode byte. Entries left at the zero
// value (exec == nil) are the 105 undocumented/illegal 6502 opcodes; Step
// reports these via IllegalOpcodeError rather than emulating their
// unofficial behavior.
var opcodeTable = [256]instruction{
	0x00: {"BRK", ModeImplicit, execBRK, 7, false, false},
	0x01: {"ORA", ModeIndexedIndirect, execORA, 6, false, false},
	0x05: {"ORA", ModeZeroPage, execORA, 3, false, false},
	0x06: {"ASL", ModeZeroPage, execASL, 5, false, false},
	0x08: {"PHP", ModeImplicit, execPHP, 3, false, false},
	0x09: {"ORA", ModeImmediate, execORA, 2, false, false},
	0x0A: {"ASL", ModeAccumulator, execASL, 2, false, false},
	0x0D: {"ORA", ModeAbsolute, execORA, 4, false, false},
	0x0E: {"ASL", ModeAbsolute, execASL, 6, false, false},
	0x10: {"BPL", ModeRelative, execBPL, 2, false, true},
	0x11: {"ORA", ModeIndirectIndexed, execORA, 5, true, false},
	0x15: {"ORA", ModeZeroPageX, execORA, 4, false, false},
	0x16: {"ASL", ModeZeroPageX, execASL, 6, false, false},
	0x18: {"CLC", ModeImplicit, execCLC, 2, false, false},
	0x19: {"ORA", ModeAbsoluteY, execORA, 4, true, false},
	0x1D: {"ORA", ModeAbsoluteX, execORA, 4, true, false},
	0x1E: {"ASL", ModeAbsoluteX, execASL, 7, false, false},

	0x20: {"JSR", ModeAbsolute, execJSR, 6, false, false},
	0x21: {"AND", ModeIndexedIndirect, execAND, 6, false, false},
	0x24: {"BIT", ModeZeroPage, execBIT, 3, false, false},
	0x25: {"AND", ModeZeroPage, execAND, 3, false, false},
	0x26: {"ROL", ModeZeroPage, execROL, 5, false, false},
	0x28: {"PLP", ModeImplicit, execPLP, 4, false, false},
	0x29: {"AND", ModeImmediate, execAND, 2, false, false},
	0x2A: {"ROL", ModeAccumulator, execROL, 2, false, false},
	0x2C: {"BIT", ModeAbsolute, execBIT, 4, false, false},
	0x2D: {"AND", ModeAbsolute, execAND, 4, false, false},
	0x2E: {"ROL", ModeAbsolute, execROL, 6, false, false},
	0x30: {"BMI", ModeRelative, execBMI, 2, false, true},
	0x31: {"AND", ModeIndirectIndexed, execAND, 5, true, false},
	0x35: {"AND", ModeZeroPageX, execAND, 4, false, false},
	0x36: {"ROL", ModeZeroPageX, execROL, 6, false, false},
	0x38: {"SEC", ModeImplicit, execSEC, 2, false, false},
	0x39: {"AND", ModeAbsoluteY, execAND, 4, true, false},
	0x3D: {"AND", ModeAbsoluteX, execAND, 4, true, false},
	0x3E: {"ROL", ModeAbsoluteX, execROL, 7, false, false},

	0x40: {"RTI", ModeImplicit, execRTI, 6, false, false},
	0x41: {"EOR", ModeIndexedIndirect, execEOR, 6, false, false},
	0x45: {"EOR", ModeZeroPage, execEOR, 3, false, false},
	0x46: {"LSR", ModeZeroPage, execLSR, 5, false, false},
	0x48: {"PHA", ModeImplicit, execPHA, 3, false, false},
	0x49: {"EOR", ModeImmediate, execEOR, 2, false, false},
	0x4A: {"LSR", ModeAccumulator, execLSR, 2, false, false},
	0x4C: {"JMP", ModeAbsolute, execJMP, 3, false, false},
	0x4D: {"EOR", ModeAbsolute, execEOR, 4, false, false},
	0x4E: {"LSR", ModeAbsolute, execLSR, 6, false, false},
	0x50: {"BVC", ModeRelative, execBVC, 2, false, true},
	0x51: {"EOR", ModeIndirectIndexed, execEOR, 5, true, false},
	0x55: {"EOR", ModeZeroPageX, execEOR, 4, false, false},
	0x56: {"LSR", ModeZeroPageX, execLSR, 6, false, false},
	0x58: {"CLI", ModeImplicit, execCLI, 2, false, false},
	0x59: {"EOR", ModeAbsoluteY, execEOR, 4, true, false},
	0x5D: {"EOR", ModeAbsoluteX, execEOR, 4, true, false},
	0x5E: {"LSR", ModeAbsoluteX, execLSR, 7, false, false},

	0x60: {"RTS", ModeImplicit, execRTS, 6, false, false},
	0x61: {"ADC", ModeIndexedIndirect, execADC, 6, false, false},
	0x65: {"ADC", ModeZeroPage, execADC, 3, false, false},
	0x66: {"ROR", ModeZeroPage, execROR, 5, false, false},
	0x68: {"PLA", ModeImplicit, execPLA, 4, false, false},
	0x69: {"ADC", ModeImmediate, execADC, 2, false, false},
	0x6A: {"ROR", ModeAccumulator, execROR, 2, false, false},
	0x6C: {"JMP", ModeIndirect, execJMP, 5, false, false},
	0x6D: {"ADC", ModeAbsolute, execADC, 4, false, false},
	0x6E: {"ROR", ModeAbsolute, execROR, 6, false, false},
	0x70: {"BVS", ModeRelative, execBVS, 2, false, true},
	0x71: {"ADC", ModeIndirectIndexed, execADC, 5, true, false},
	0x75: {"ADC", ModeZeroPageX, execADC, 4, false, false},
	0x76: {"ROR", ModeZeroPageX, execROR, 6, false, false},
	0x78: {"SEI", ModeImplicit, execSEI, 2, false, false},
	0x79: {"ADC", ModeAbsoluteY, execADC, 4, true, false},
	0x7D: {"ADC", ModeAbsoluteX, execADC, 4, true, false},
	0x7E: {"ROR", ModeAbsoluteX, execROR, 7, false, false},

	0x81: {"STA", ModeIndexedIndirect, execSTA, 6, false, false},
	0x84: {"STY", ModeZeroPage, execSTY, 3, false, false},
	0x85: {"STA", ModeZeroPage, execSTA, 3, false, false},
	0x86: {"STX", ModeZeroPage, execSTX, 3, false, false},
	0x88: {"DEY", ModeImplicit, execDEY, 2, false, false},
	0x8A: {"TXA", ModeImplicit, execTXA, 2, false, false},
	0x8C: {"STY", ModeAbsolute, execSTY, 4, false, false},
	0x8D: {"STA", ModeAbsolute, execSTA, 4, false, false},
	0x8E: {"STX", ModeAbsolute, execSTX, 4, false, false},
	0x90: {"BCC", ModeRelative, execBCC, 2, false, true},
	0x91: {"STA", ModeIndirectIndexed, execSTA, 6, false, false},
	0x94: {"STY", ModeZeroPageX, execSTY, 4, false, false},
	0x95: {"STA", ModeZeroPageX, execSTA, 4, false, false},
	0x96: {"STX", ModeZeroPageY, execSTX, 4, false, false},
	0x98: {"TYA", ModeImplicit, execTYA, 2, false, false},
	0x99: {"STA", ModeAbsoluteY, execSTA, 5, false, false},
	0x9A: {"TXS", ModeImplicit, execTXS, 2, false, false},
	0x9D: {"STA", ModeAbsoluteX, execSTA, 5, false, false},

	0xA0: {"LDY", ModeImmediate, execLDY, 2, false, false},
	0xA1: {"LDA", ModeIndexedIndirect, execLDA, 6, false, false},
	0xA2: {"LDX", ModeImmediate, execLDX, 2, false, false},
	0xA4: {"LDY", ModeZeroPage, execLDY, 3, false, false},
	0xA5: {"LDA", ModeZeroPage, execLDA, 3, false, false},
	0xA6: {"LDX", ModeZeroPage, execLDX, 3, false, false},
	0xA8: {"TAY", ModeImplicit, execTAY, 2, false, false},
	0xA9: {"LDA", ModeImmediate, execLDA, 2, false, false},
	0xAA: {"TAX", ModeImplicit, execTAX, 2, false, false},
	0xAC: {"LDY", ModeAbsolute, execLDY, 4, false, false},
	0xAD: {"LDA", ModeAbsolute, execLDA, 4, false, false},
	0xAE: {"LDX", ModeAbsolute, execLDX, 4, false, false},
	0xB0: {"BCS", ModeRelative, execBCS, 2, false, true},
	0xB1: {"LDA", ModeIndirectIndexed, execLDA, 5, true, false},
	0xB4: {"LDY", ModeZeroPageX, execLDY, 4, false, false},
	0xB5: {"LDA", ModeZeroPageX, execLDA, 4, false, false},
	0xB6: {"LDX", ModeZeroPageY, execLDX, 4, false, false},
	0xB8: {"CLV", ModeImplicit, execCLV, 2, false, false},
	0xB9: {"LDA", ModeAbsoluteY, execLDA, 4, true, false},
	0xBA: {"TSX", ModeImplicit, execTSX, 2, false, false},
	0xBC: {"LDY", ModeAbsoluteX, execLDY, 4, true, false},
	0xBD: {"LDA", ModeAbsoluteX, execLDA, 4, true, false},
	0xBE: {"LDX", ModeAbsoluteY, execLDX, 4, true, false},

	0xC0: {"CPY", ModeImmediate, execCPY, 2, false, false},
	0xC1: {"CMP", ModeIndexedIndirect, execCMP, 6, false, false},
	0xC4: {"CPY", ModeZeroPage, execCPY, 3, false, false},
	0xC5: {"CMP", ModeZeroPage, execCMP, 3, false, false},
	0xC6: {"DEC", ModeZeroPage, execDEC, 5, false, false},
	0xC8: {"INY", ModeImplicit, execINY, 2, false, false},
	0xC9: {"CMP", ModeImmediate, execCMP, 2, false, false},
	0xCA: {"DEX", ModeImplicit, execDEX, 2, false, false},
	0xCC: {"CPY", ModeAbsolute, execCPY, 4, false, false},
	0xCD: {"CMP", ModeAbsolute, execCMP, 4, false, false},
	0xCE: {"DEC", ModeAbsolute, execDEC, 6, false, false},
	0xD0: {"BNE", ModeRelative, execBNE, 2, false, true},
	0xD1: {"CMP", ModeIndirectIndexed, execCMP, 5, true, false},
	0xD5: {"CMP", ModeZeroPageX, execCMP, 4, false, false},
	0xD6: {"DEC", ModeZeroPageX, execDEC, 6, false, false},
	0xD8: {"CLD", ModeImplicit, execCLD, 2, false, false},
	0xD9: {"CMP", ModeAbsoluteY, execCMP, 4, true, false},
	0xDD: {"CMP", ModeAbsoluteX, execCMP, 4, true, false},
	0xDE: {"DEC", ModeAbsoluteX, execDEC, 7, false, false},

	0xE0: {"CPX", ModeImmediate, execCPX, 2, false, false},
	0xE1: {"SBC", ModeIndexedIndirect, execSBC, 6, false, false},
	0xE4: {"CPX", ModeZeroPage, execCPX, 3, false, false},
	0xE5: {"SBC", ModeZeroPage, execSBC, 3, false, false},
	0xE6: {"INC", ModeZeroPage, execINC, 5, false, false},
	0xE8: {"INX", ModeImplicit, execINX, 2, false, false},
	0xE9: {"SBC", ModeImmediate, execSBC, 2, false, false},
	0xEA: {"NOP", ModeImplicit, execNOP, 2, false, false},
	0xEC: {"CPX", ModeAbsolute, execCPX, 4, false, false},
	0xED: {"SBC", ModeAbsolute, execSBC, 4, false, false},
	0xEE: {"INC", ModeAbsolute, execINC, 6, false, false},
	0xF0: {"BEQ", ModeRelative, execBEQ, 2, false, true},
	0xF1: {"SBC", ModeIndirectIndexed, execSBC, 5, true, false},
	0xF5: {"SBC", ModeZeroPageX, execSBC, 4, false, false},
	0xF6: {"INC", ModeZeroPageX, execINC, 6, false, false},
	0xF8: {"SED", ModeImplicit, execSED, 2, false, false},
	0xF9: {"SBC", ModeAbsoluteY, execSBC, 4, true, false},
	0xFD: {"SBC", ModeAbsoluteX, execSBC, 4, true, false},
	0xFE: {"INC", ModeAbsoluteX, execINC, 7, false, false},
}
