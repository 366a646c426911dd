package rom

import (
	"testing"

	"github.com/retrocore/m6502basic/memory"
)

func TestLoadRaw(t *testing.T) {
	bus, err := memory.NewBus(64)
	if err != nil {
		t.Fatalf("NewBus: %v", err)
	}
	if err := LoadRaw(bus, 0x10, []uint8{1, 2, 3}); err != nil {
		t.Fatalf("LoadRaw: %v", err)
	}
	if got := bus.Read(0x11); got != 2 {
		t.Errorf("Read(0x11) = %d, want 2", got)
	}
}

func TestLoadPRG(t *testing.T) {
	bus, err := memory.NewBus(1 << 16)
	if err != nil {
		t.Fatalf("NewBus: %v", err)
	}
	image := []uint8{0x01, 0x08, 0xAA, 0xBB, 0xCC} // load addr 0x0801
	addr, err := LoadPRG(bus, image)
	if err != nil {
		t.Fatalf("LoadPRG: %v", err)
	}
	if addr != 0x0801 {
		t.Errorf("addr = 0x%04X, want 0x0801", addr)
	}
	if got := bus.Read(0x0801); got != 0xAA {
		t.Errorf("Read(0x0801) = 0x%02X, want 0xAA", got)
	}
	if got := bus.Read(0x0803); got != 0xCC {
		t.Errorf("Read(0x0803) = 0x%02X, want 0xCC", got)
	}
}

func TestLoadPRGTooShort(t *testing.T) {
	bus, _ := memory.NewBus(64)
	if _, err := LoadPRG(bus, []uint8{0x01}); err == nil {
		t.Fatal("LoadPRG with 1-byte image succeeded, want FormatError")
	}
}
