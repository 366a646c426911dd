package console

import (
	"bytes"
	"testing"
)

func TestBridgeOutput(t *testing.T) {
	var buf bytes.Buffer
	b := NewBridge(DefaultAddrs(), &buf, nil)

	if !b.Handles(0xF001) {
		t.Fatalf("Handles(OutputData) = false")
	}
	b.Write(0xF001, 'A')
	if got := buf.String(); got != "A" {
		t.Errorf("output = %q, want %q", got, "A")
	}
	// Reads from OutputData are a no-op.
	if got := b.Read(0xF001); got != 0 {
		t.Errorf("Read(OutputData) = %d, want 0", got)
	}
}

func TestBridgeInputFIFO(t *testing.T) {
	b := NewBridge(DefaultAddrs(), nil, nil)

	if got := b.Read(0xF004); got != 0 {
		t.Fatalf("InputStatus with empty buffer = %d, want 0", got)
	}

	b.SubmitInput("HI")

	if got := b.Read(0xF004); got != 1 {
		t.Fatalf("InputStatus with buffered input = %d, want 1", got)
	}
	if got := b.Read(0xF005); got != 'H' {
		t.Errorf("InputData = %q, want 'H'", got)
	}
	if got := b.Read(0xF005); got != 'I' {
		t.Errorf("InputData = %q, want 'I'", got)
	}
	if got := b.Read(0xF004); got != 0 {
		t.Errorf("InputStatus after drain = %d, want 0", got)
	}
	if got := b.Read(0xF005); got != 0 {
		t.Errorf("InputData after drain = %d, want 0", got)
	}
}

type fallbackSource struct {
	bytes []byte
}

func (f *fallbackSource) Input() (uint8, bool) {
	if len(f.bytes) == 0 {
		return 0, false
	}
	v := f.bytes[0]
	f.bytes = f.bytes[1:]
	return v, true
}

func TestBridgeFallbackInput(t *testing.T) {
	fb := &fallbackSource{bytes: []byte("Z")}
	b := NewBridge(DefaultAddrs(), nil, fb)

	// Buffer is empty so the fallback should be consulted.
	if got := b.Read(0xF005); got != 'Z' {
		t.Errorf("InputData from fallback = %q, want 'Z'", got)
	}
	if got := b.Read(0xF005); got != 0 {
		t.Errorf("InputData after fallback drained = %d, want 0", got)
	}

	// Buffered input takes priority over the fallback.
	b.SubmitInput("Q")
	fb.bytes = []byte("R")
	if got := b.Read(0xF005); got != 'Q' {
		t.Errorf("InputData = %q, want buffered 'Q' ahead of fallback", got)
	}
}

func TestBridgeWritesIgnoredOnInputAddrs(t *testing.T) {
	b := NewBridge(DefaultAddrs(), nil, nil)
	b.Write(0xF004, 1)
	b.Write(0xF005, 'x')
	if got := b.Read(0xF004); got != 0 {
		t.Errorf("InputStatus after writes = %d, want 0 (writes are no-ops)", got)
	}
}

func TestTimer(t *testing.T) {
	tm := NewTimer(DefaultTimerAddrs())
	if !tm.Handles(0xF010) || !tm.Handles(0xF011) {
		t.Fatalf("Handles() false for configured addresses")
	}
	tm.Write(0xF010, 3)
	if got := tm.Read(0xF011); got != 3 {
		t.Fatalf("Read after latch = %d, want 3", got)
	}
	tm.Tick()
	tm.Tick()
	if got := tm.Read(0xF010); got != 1 {
		t.Errorf("Read after two ticks = %d, want 1", got)
	}
	tm.Tick()
	tm.Tick()
	if got := tm.Read(0xF010); got != 0 {
		t.Errorf("Read after underflow ticks = %d, want 0 (saturates)", got)
	}
}
