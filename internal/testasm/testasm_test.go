package testasm

import (
	"reflect"
	"testing"
)

type stubBus struct {
	mem [32]uint8
}

func (s *stubBus) Write(addr uint16, v uint8) { s.mem[addr] = v }

func TestAssemble(t *testing.T) {
	got := Assemble("A9 01\nE8\n# a comment\n4C 00 02")
	want := []uint8{0xA9, 0x01, 0xE8, 0x4C, 0x00, 0x02}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Assemble = %v, want %v", got, want)
	}
}

func TestLoad(t *testing.T) {
	b := &stubBus{}
	end := Load(b, 2, "A9 01\nE8")
	if end != 5 {
		t.Errorf("end = %d, want 5", end)
	}
	if b.mem[2] != 0xA9 || b.mem[3] != 0x01 || b.mem[4] != 0xE8 {
		t.Errorf("mem = %v", b.mem[2:5])
	}
}
