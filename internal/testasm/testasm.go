// Package testasm hand-assembles whitespace-separated hex opcode/operand
// bytes into a machine code sequence for use in tests, the same token
// format (one instruction's bytes per line, split on spaces) as the
// disassembly-listing hand-assembler this is descended from.
package testasm

import (
	"strconv"
	"strings"
)

// Assemble parses src, a newline-separated sequence of lines each holding
// one to three whitespace-separated two-digit hex byte tokens, into a flat
// byte slice in source order. It panics on a malformed token since it is
// only ever used to build fixtures inline in test source.
func Assemble(src string) []uint8 {
	var out []uint8
	for _, line := range strings.Split(src, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		for _, tok := range strings.Fields(line) {
			v, err := strconv.ParseUint(tok, 16, 8)
			if err != nil {
				panic("testasm: bad hex token " + tok + ": " + err.Error())
			}
			out = append(out, uint8(v))
		}
	}
	return out
}

// Bus is the minimal write target Load needs.
type Bus interface {
	Write(addr uint16, val uint8)
}

// Load assembles src and writes it into bus starting at addr, returning the
// address immediately past the last byte written.
func Load(bus Bus, addr uint16, src string) uint16 {
	code := Assemble(src)
	for i, b := range code {
		bus.Write(addr+uint16(i), b)
	}
	return addr + uint16(len(code))
}
