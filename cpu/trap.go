package cpu

import (
	"io"
)

// trap dispatches a system trap vector. Trap routines run natively and
// synchronously: GETC and IN block until the host delivers a keystroke,
// which is acceptable here (an explicit program request for input) where
// the status-register poll is not. Trap routines never touch the
// condition flag.
func (cp *Cpu) trap(vector uint16) (err error) {
	switch vector {
	case TRAP_GETC:
		var key byte
		key, err = cp.key()
		if err != nil {
			return
		}

		cp.Register[0] = uint16(key)

	case TRAP_OUT:
		err = cp.putc(byte(cp.Register[0]))

	case TRAP_PUTS:
		// One character per word, low 8 bits; a zero word terminates.
		for addr := cp.Register[0]; ; addr++ {
			word := cp.Memory.Read(addr)
			if word == 0 {
				break
			}

			if err = cp.putc(byte(word)); err != nil {
				return
			}
		}

	case TRAP_IN:
		if err = cp.print("Enter a character: "); err != nil {
			return
		}

		var key byte
		key, err = cp.key()
		if err != nil {
			return
		}

		if err = cp.putc(key); err != nil {
			return
		}

		cp.Register[0] = uint16(key)

	case TRAP_PUTSP:
		// Two characters per word, low byte first; a zero byte in either
		// position terminates.
		for addr := cp.Register[0]; ; addr++ {
			word := cp.Memory.Read(addr)
			if byte(word) == 0 {
				break
			}

			if err = cp.putc(byte(word)); err != nil {
				return
			}

			if byte(word>>8) == 0 {
				break
			}

			if err = cp.putc(byte(word >> 8)); err != nil {
				return
			}
		}

	case TRAP_HALT:
		if err = cp.print("HALT\n"); err != nil {
			return
		}

		cp.State = StateHalted

	default:
		err = ErrTrapVector(vector)
	}

	return
}

// key blocks for one keystroke from the attached keyboard.
func (cp *Cpu) key() (key byte, err error) {
	if cp.Memory.Keyboard == nil {
		err = ErrNoKeyboard
		return
	}

	return cp.Memory.Keyboard.Key()
}

func (cp *Cpu) putc(c byte) (err error) {
	if cp.Display == nil {
		return
	}

	_, err = cp.Display.Write([]byte{c})
	return
}

func (cp *Cpu) print(s string) (err error) {
	if cp.Display == nil {
		return
	}

	_, err = io.WriteString(cp.Display, s)
	return
}
