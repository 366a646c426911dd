// Package console implements reference memory-mapped peripherals for a
// 6502 core: a text console bridge (the primary I/O surface a host uses to
// observe program output and inject keyboard input) and a small interval
// timer demonstrating that the bus supports more than one attached device
// at once.
package console

import (
	"io"
	"sync"
)

// InputSource is a fallback consulted by Bridge.Read when its own input
// buffer is empty. Modeled on the teacher corpus's io.PortIn8, narrowed to
// report availability explicitly instead of always returning a byte.
type InputSource interface {
	// Input returns the next available byte and true, or (0, false) if
	// nothing is currently available.
	Input() (uint8, bool)
}

// Addrs configures the three memory addresses a Bridge answers to. The zero
// value is not useful; use DefaultAddrs or specify all three explicitly.
type Addrs struct {
	OutputData  uint16
	InputStatus uint16
	InputData   uint16
}

// DefaultAddrs returns the conventional addresses used by BASIC ROMs built
// against this bridge.
func DefaultAddrs() Addrs {
	return Addrs{
		OutputData:  0xF001,
		InputStatus: 0xF004,
		InputData:   0xF005,
	}
}

// Bridge is a reference console peripheral: a write-only output latch and a
// read-only input port backed by a FIFO the host feeds via SubmitInput. It
// implements memory.Device.
type Bridge struct {
	addrs    Addrs
	out      io.ByteWriter
	fallback InputSource

	mu     sync.Mutex
	inputQ []byte
}

// NewBridge creates a Bridge at addrs, writing output bytes to out. out may
// be nil to discard output. fallback may be nil, in which case InputData
// simply returns 0 when the buffer is empty and no other input source is
// available.
func NewBridge(addrs Addrs, out io.ByteWriter, fallback InputSource) *Bridge {
	return &Bridge{addrs: addrs, out: out, fallback: fallback}
}

// Handles implements memory.Device.
func (b *Bridge) Handles(addr uint16) bool {
	return addr == b.addrs.OutputData || addr == b.addrs.InputStatus || addr == b.addrs.InputData
}

// Read implements memory.Device.
func (b *Bridge) Read(addr uint16) uint8 {
	switch addr {
	case b.addrs.InputStatus:
		b.mu.Lock()
		defer b.mu.Unlock()
		if len(b.inputQ) > 0 {
			return 1
		}
		return 0
	case b.addrs.InputData:
		return b.nextInputByte()
	default:
		// OutputData is write-only; reads are a well-behaved no-op.
		return 0
	}
}

// Write implements memory.Device.
func (b *Bridge) Write(addr uint16, val uint8) {
	if addr != b.addrs.OutputData {
		// InputStatus/InputData are read-only; writes are a no-op.
		return
	}
	if b.out != nil {
		_ = b.out.WriteByte(val)
	}
}

// SubmitInput appends every byte of text to the input FIFO, to be dequeued
// one at a time by subsequent InputData reads. Safe to call concurrently
// with CPU-driven reads.
func (b *Bridge) SubmitInput(text string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.inputQ = append(b.inputQ, []byte(text)...)
}

// nextInputByte dequeues one byte from the FIFO if present, otherwise
// consults the fallback input source, otherwise returns 0.
func (b *Bridge) nextInputByte() uint8 {
	b.mu.Lock()
	if len(b.inputQ) > 0 {
		v := b.inputQ[0]
		b.inputQ = b.inputQ[1:]
		b.mu.Unlock()
		return v
	}
	b.mu.Unlock()

	if b.fallback != nil {
		if v, ok := b.fallback.Input(); ok {
			return v
		}
	}
	return 0
}
