// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"context"
	"log"
	"os"

	"github.com/ezrec/lc3/cpu"
)

// Emulator is the machine aggregate: the processor core plus the host
// streams it is wired to. Each Emulator owns its machine state outright,
// so independent instances can run side by side.
type Emulator struct {
	Verbose bool // If set, enables verbose logging.

	*cpu.Cpu // The processor core.
}

// NewEmulator creates a machine with display output on stdout and no
// keyboard attached. Callers wire Memory.Keyboard before running
// programs that read input.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Cpu: cpu.NewCpu(),
	}

	emu.Cpu.Display = os.Stdout

	return
}

// Run steps the machine until it halts or faults. Cancelling ctx stops
// the loop between instructions; the machine never observes a partially
// executed instruction.
func (emu *Emulator) Run(ctx context.Context) (err error) {
	emu.Cpu.Verbose = emu.Verbose

	for emu.Cpu.State == cpu.StateRunning {
		if err = ctx.Err(); err != nil {
			return
		}

		if err = emu.Cpu.Step(); err != nil {
			if emu.Verbose {
				log.Printf("lc3: fault:\n%v", emu.Cpu.String())
			}
			return
		}
	}

	return
}
