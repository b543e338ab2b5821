package cpu

import (
	"fmt"
)

// Opcode is the 4-bit instruction class in bits 15-12 of every word.
// The remaining operand bits are opcode-specific.
type Opcode uint16

const (
	OP_BR   = Opcode(0x0) // conditional branch
	OP_ADD  = Opcode(0x1) // add
	OP_LD   = Opcode(0x2) // load
	OP_ST   = Opcode(0x3) // store
	OP_JSR  = Opcode(0x4) // jump to subroutine
	OP_AND  = Opcode(0x5) // bitwise and
	OP_LDR  = Opcode(0x6) // load base+offset
	OP_STR  = Opcode(0x7) // store base+offset
	OP_RTI  = Opcode(0x8) // reserved (illegal)
	OP_NOT  = Opcode(0x9) // bitwise complement
	OP_LDI  = Opcode(0xA) // load indirect
	OP_STI  = Opcode(0xB) // store indirect
	OP_JMP  = Opcode(0xC) // jump
	OP_RES  = Opcode(0xD) // reserved (illegal)
	OP_LEA  = Opcode(0xE) // load effective address
	OP_TRAP = Opcode(0xF) // system trap
)

var opcodeNames = [...]string{
	"br", "add", "ld", "st", "jsr", "and", "ldr", "str",
	"rti", "not", "ldi", "sti", "jmp", "res", "lea", "trap",
}

func (op Opcode) String() string {
	if int(op) < len(opcodeNames) {
		return opcodeNames[op]
	}

	return fmt.Sprintf("op_%x", uint16(op))
}

// Flag is the condition flag state. Exactly one value is set at any
// time; the bit layout matches the n/z/p mask bits of the BR opcode.
type Flag uint16

const (
	FL_POS = Flag(1 << 0) // last register write was positive
	FL_ZRO = Flag(1 << 1) // last register write was zero
	FL_NEG = Flag(1 << 2) // last register write was negative
)

func (fl Flag) String() string {
	switch fl {
	case FL_POS:
		return "pos"
	case FL_ZRO:
		return "zro"
	case FL_NEG:
		return "neg"
	}

	return fmt.Sprintf("flag_%x", uint16(fl))
}

// Trap vectors reachable through OP_TRAP.
const (
	TRAP_GETC  = uint16(0x20) // read one key, no echo
	TRAP_OUT   = uint16(0x21) // write one character
	TRAP_PUTS  = uint16(0x22) // write a word-per-character string
	TRAP_IN    = uint16(0x23) // prompt, read one key, echo
	TRAP_PUTSP = uint16(0x24) // write a packed byte string
	TRAP_HALT  = uint16(0x25) // stop the machine
)

// SignExtend widens an n-bit two's-complement field to 16 bits by
// replicating its sign bit.
func SignExtend(value uint16, bits uint16) uint16 {
	if (value>>(bits-1))&0x1 == 1 {
		value |= 0xFFFF << bits
	}

	return value
}
