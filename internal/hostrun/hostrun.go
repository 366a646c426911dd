// Package hostrun layers context.Context cancellation on top of cpu.Chip's
// Run predicate, the way a host is expected to when it needs a second party
// — a signal handler, a UI close button — to interrupt a long run from a
// different goroutine.
package hostrun

import (
	"context"

	"github.com/retrocore/m6502basic/cpu"
)

// Run steps chip until predicate returns false, Step errors, or ctx is
// cancelled, whichever comes first. ctx is polled between steps, never
// inside one; this does not replace the predicate, it only adds a second
// way to stop.
func Run(ctx context.Context, chip *cpu.Chip, predicate func(cpu.State) bool) (uint64, error) {
	var total uint64
	for predicate(chip.State()) {
		select {
		case <-ctx.Done():
			return total, ctx.Err()
		default:
		}
		cycles, err := chip.Step()
		total += uint64(cycles)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
