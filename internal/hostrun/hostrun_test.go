package hostrun

import (
	"context"
	"testing"

	"github.com/retrocore/m6502basic/cpu"
)

type flatMem [65536]uint8

func (m *flatMem) Read(addr uint16) uint8      { return m[addr] }
func (m *flatMem) Write(addr uint16, v uint8) { m[addr] = v }

func TestRunStopsOnCancel(t *testing.T) {
	m := &flatMem{}
	// NOP at every address so the chip never halts on its own.
	for i := range m {
		m[i] = 0xEA
	}
	chip, err := cpu.New(m)
	if err != nil {
		t.Fatalf("cpu.New: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	total, err := Run(ctx, chip, func(cpu.State) bool { return true })
	if err != context.Canceled {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if total != 0 {
		t.Errorf("total = %d, want 0", total)
	}
}

func TestRunStopsOnPredicate(t *testing.T) {
	m := &flatMem{}
	for i := range m {
		m[i] = 0xEA
	}
	chip, err := cpu.New(m)
	if err != nil {
		t.Fatalf("cpu.New: %v", err)
	}

	steps := 0
	_, err = Run(context.Background(), chip, func(cpu.State) bool {
		steps++
		return steps <= 5
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if steps != 6 {
		t.Errorf("steps = %d, want 6", steps)
	}
}
