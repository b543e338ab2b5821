// Package device provides host device models for the LC-3 emulator.
// The keyboard feeds both the memory-mapped status/data registers
// (non-blocking probe) and the input traps (blocking read).
package device

// Keyboard is the host keyboard as seen by the machine. Poll backs the
// memory-mapped status register and must never block; Key backs the GETC
// and IN traps and blocks until a keystroke arrives.
type Keyboard interface {
	// Poll reports a pending keystroke without blocking.
	Poll() (key byte, ok bool)
	// Key blocks until a keystroke arrives.
	Key() (key byte, err error)
}

// Script is a deterministic keyboard fed from a fixed key sequence, for
// tests and scripted input.
type Script struct {
	Keys []byte

	next int
}

var _ Keyboard = (*Script)(nil)

// Poll reports the next scripted keystroke, if any remain.
func (sc *Script) Poll() (key byte, ok bool) {
	if sc.next >= len(sc.Keys) {
		return
	}

	key = sc.Keys[sc.next]
	sc.next++
	ok = true
	return
}

// Key returns the next scripted keystroke. A script never blocks; once
// exhausted it reports ErrKeyboardClosed.
func (sc *Script) Key() (key byte, err error) {
	key, ok := sc.Poll()
	if !ok {
		err = ErrKeyboardClosed
	}
	return
}

// Rewind restarts the script from the first keystroke.
func (sc *Script) Rewind() {
	sc.next = 0
}
