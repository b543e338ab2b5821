package cpu

import (
	"errors"

	"github.com/ezrec/lc3/translate"
)

var f = translate.From

var (
	// ErrNoKeyboard indicates an input trap on a machine with no
	// keyboard attached.
	ErrNoKeyboard = errors.New(f("no keyboard attached"))
)

// ErrOpcode is an illegal-instruction fault carrying the fetched word.
type ErrOpcode uint16

func (eo ErrOpcode) Error() string {
	return f("illegal instruction 0x%04x (%v)", uint16(eo), Opcode(uint16(eo)>>12))
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}

// ErrTrapVector is an illegal-trap fault carrying the requested vector.
type ErrTrapVector uint16

func (et ErrTrapVector) Error() string {
	return f("illegal trap vector 0x%02x", uint16(et))
}

func (et ErrTrapVector) Is(err error) (ok bool) {
	_, ok = err.(ErrTrapVector)
	return
}
