// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"

	"github.com/ezrec/lc3/device"
	"github.com/ezrec/lc3/emulator"
)

func main() {
	var verbose bool

	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() == 0 {
		log.Fatalf("usage: %v [-v] image-file ...", os.Args[0])
	}

	emu := emulator.NewEmulator()
	emu.Verbose = verbose

	// Load every image, in order, before touching the terminal. Any
	// failure aborts the run before execution starts.
	for _, path := range flag.Args() {
		if err := emu.LoadImageFile(path); err != nil {
			log.Fatalf("%v: %v", os.Args[0], err)
		}
	}

	os.Exit(run(emu))
}

// run owns the raw-terminal scope: the terminal is restored on every exit
// path, including faults and interrupts.
func run(emu *emulator.Emulator) (rc int) {
	emu.Cpu.Memory.Keyboard = device.NewConsole(os.Stdin)

	restore, err := rawTerminal(os.Stdin)
	if err != nil {
		log.Printf("terminal: %v", err)
		return 1
	}
	defer restore()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// The run loop gets its own goroutine so an interrupt arriving
	// during a blocking input trap still unwinds through the terminal
	// restore.
	done := make(chan error, 1)
	go func() { done <- emu.Run(ctx) }()

	select {
	case err = <-done:
	case <-ctx.Done():
		err = ctx.Err()
	}

	if err != nil {
		log.Printf("%v", err)
		return 1
	}

	return 0
}
