package cpu

import (
	"github.com/ezrec/lc3/device"
)

// Keyboard is the host keyboard attached to the memory-mapped registers
// and the input traps.
type Keyboard device.Keyboard

// Memory-mapped device registers. Reads at or above MMIO_BASE dispatch
// to the device path rather than plain storage.
const (
	MMIO_BASE = uint16(0xFE00)
	MR_KBSR   = uint16(0xFE00) // keyboard status
	MR_KBDR   = uint16(0xFE02) // keyboard data
)

// KBSR_READY is set in the status register while a keystroke is pending.
const KBSR_READY = uint16(1 << 15)

// Memory is the 65536-word address space of the machine.
type Memory struct {
	Keyboard Keyboard // Host keyboard, nil when no input is attached.

	words [1 << 16]uint16
}

// Read returns the word at addr. Device addresses go through readDevice;
// every other address is plain storage.
func (mem *Memory) Read(addr uint16) uint16 {
	if addr >= MMIO_BASE {
		return mem.readDevice(addr)
	}

	return mem.words[addr]
}

// Write stores value at addr. No address is read-only.
func (mem *Memory) Write(addr uint16, value uint16) {
	mem.words[addr] = value
}

// readDevice models the keyboard registers. Reading KBSR polls the
// keyboard without blocking: a pending keystroke sets the ready bit and
// latches the key into KBDR; otherwise the status reads zero. The poll is
// skipped while a latched key is still unread, and reading KBDR clears
// the ready bit, so each keystroke is observed exactly once.
func (mem *Memory) readDevice(addr uint16) uint16 {
	switch addr {
	case MR_KBSR:
		if mem.words[MR_KBSR]&KBSR_READY == 0 {
			if key, ok := mem.poll(); ok {
				mem.words[MR_KBSR] = KBSR_READY
				mem.words[MR_KBDR] = uint16(key)
			} else {
				mem.words[MR_KBSR] = 0
			}
		}
	case MR_KBDR:
		mem.words[MR_KBSR] &^= KBSR_READY
	}

	return mem.words[addr]
}

func (mem *Memory) poll() (key byte, ok bool) {
	if mem.Keyboard == nil {
		return
	}

	return mem.Keyboard.Poll()
}
