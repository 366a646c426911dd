// Package rom loads program images into a memory.Bus: raw flat binaries at
// an explicit address, and PRG-style images carrying their own 2-byte
// little-endian load address, the format used by Commodore-style program
// files.
package rom

import (
	"fmt"

	"github.com/retrocore/m6502basic/memory"
)

// FormatError reports a malformed program image.
type FormatError struct {
	Reason string
}

func (e FormatError) Error() string {
	return fmt.Sprintf("rom: %s", e.Reason)
}

// LoadRaw writes data into bus starting at addr, with no header parsing.
func LoadRaw(bus *memory.Bus, addr uint16, data []uint8) error {
	return bus.Load(addr, data)
}

// LoadPRG parses a PRG-style image: the first two bytes are the load
// address in little-endian order, and everything after that is the payload
// to place starting at that address. It returns the load address actually
// used, so callers can set up a start vector relative to it.
func LoadPRG(bus *memory.Bus, image []uint8) (uint16, error) {
	if len(image) < 2 {
		return 0, FormatError{Reason: "image shorter than the 2-byte load address header"}
	}
	addr := uint16(image[1])<<8 | uint16(image[0])
	if err := bus.Load(addr, image[2:]); err != nil {
		return 0, err
	}
	return addr, nil
}
