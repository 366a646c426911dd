// Package basiclist lists a tokenized Microsoft/CBM BASIC program stored in
// memory: a linked list of lines, each holding a little-endian pointer to
// the next line, a little-endian line number, a NUL-terminated stream of
// tokens and raw ASCII, and a final empty line (next-pointer 0) marking the
// end of the program.
package basiclist

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/retrocore/m6502basic/memory"
)

// ErrSyntax is returned by List when it encounters a token byte outside the
// defined 0x00-0xCB range.
var ErrSyntax = errors.New("?SYNTAX  ERROR")

func readAddr(r memory.Accessor, addr uint16) uint16 {
	return uint16(r.Read(addr+1))<<8 | uint16(r.Read(addr))
}

// List disassembles the BASIC line at pc, returning its textual rendering
// and the address of the next line. On normal end of program (next-line
// pointer of 0x0000) it returns an empty string and a next address of
// 0x0000. On a token outside the known table it returns as much of the
// line as tokenized along with ErrSyntax; a caller should not continue
// listing past that point since real BASIC doesn't either.
func List(pc uint16, r memory.Accessor) (string, uint16, error) {
	newPC := readAddr(r, pc)
	pc += 2
	if newPC == 0x0000 {
		return "", 0x0000, nil
	}

	lineNum := readAddr(r, pc)
	pc += 2

	var b bytes.Buffer
	fmt.Fprintf(&b, "%d ", lineNum)

	for {
		tok := r.Read(pc)
		pc++
		if tok == 0x00 {
			break
		}
		if tok > 0xCB {
			return b.String(), 0, ErrSyntax
		}
		if tok < 0x80 {
			b.WriteByte(tok)
			continue
		}
		b.WriteString(tokenTable[tok])
	}
	return b.String(), newPC, nil
}

// Program lists every line of a BASIC program starting at start, stopping
// at the program's own end marker or after max lines, whichever comes
// first — the loop guard a caller needs since a malformed or
// self-referential program's next-line pointer is not otherwise checked.
func Program(start uint16, r memory.Accessor, max int) ([]string, error) {
	var lines []string
	pc := start
	for i := 0; i < max && pc != 0; i++ {
		line, next, err := List(pc, r)
		if line != "" {
			lines = append(lines, line)
		}
		if err != nil {
			return lines, err
		}
		pc = next
	}
	return lines, nil
}

// tokenTable maps a Microsoft BASIC token byte (0x80-0xCB) to its keyword or
// operator text.
var tokenTable = map[uint8]string{
	0x80: "END", 0x81: "FOR", 0x82: "NEXT", 0x83: "DATA", 0x84: "INPUT#",
	0x85: "INPUT", 0x86: "DIM", 0x87: "READ", 0x88: "LET", 0x89: "GOTO",
	0x8A: "RUN", 0x8B: "IF", 0x8C: "RESTORE", 0x8D: "GOSUB", 0x8E: "RETURN",
	0x8F: "REM", 0x90: "STOP", 0x91: "ON", 0x92: "WAIT", 0x93: "LOAD",
	0x94: "SAVE", 0x95: "VERIFY", 0x96: "DEF", 0x97: "POKE", 0x98: "PRINT#",
	0x99: "PRINT", 0x9A: "CONT", 0x9B: "LIST", 0x9C: "CLR", 0x9D: "CMD",
	0x9E: "SYS", 0x9F: "OPEN", 0xA0: "CLOSE", 0xA1: "GET", 0xA2: "NEW",
	0xA3: "TAB(", 0xA4: "TO", 0xA5: "FN", 0xA6: "SPC(", 0xA7: "THEN",
	0xA8: "NOT", 0xA9: "STEP", 0xAA: "+", 0xAB: "-", 0xAC: "*", 0xAD: "/",
	0xAE: "^", 0xAF: "AND", 0xB0: "OR", 0xB1: ">", 0xB2: "=", 0xB3: "<",
	0xB4: "SGN", 0xB5: "INT", 0xB6: "ABS", 0xB7: "USR", 0xB8: "FRE",
	0xB9: "POS", 0xBA: "SQR", 0xBB: "RND", 0xBC: "LOG", 0xBD: "EXP",
	0xBE: "COS", 0xBF: "SIN", 0xC0: "TAN", 0xC1: "ATN", 0xC2: "PEEK",
	0xC3: "LEN", 0xC4: "STR$", 0xC5: "VAL", 0xC6: "ASC", 0xC7: "CHR$",
	0xC8: "LEFT$", 0xC9: "RIGHT$", 0xCA: "MID$", 0xCB: "GO",
}
