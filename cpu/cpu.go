package cpu

import (
	"fmt"
	"io"
	"log"
)

// PC_START is the fixed program entry point.
const PC_START = uint16(0x3000)

// State is the machine run state.
type State int

const (
	StateRunning = State(iota) // executing instructions
	StateHalted                // stopped by the HALT trap
	StateFaulted               // stopped by an illegal instruction or trap
)

func (st State) String() string {
	switch st {
	case StateRunning:
		return "running"
	case StateHalted:
		return "halted"
	case StateFaulted:
		return "faulted"
	}

	return fmt.Sprintf("state_%d", int(st))
}

// Cpu is the LC-3 processor: register file, condition flag, memory, and
// the host devices the trap routines talk to.
type Cpu struct {
	Verbose bool // Set to enable verbose execution logging.

	Register [8]uint16 // General registers r0-r7.
	Pc       uint16    // Program counter.
	Cond     Flag      // Condition flag from the last register write.
	State    State     // Run state.

	Memory  Memory    // Word-addressed memory, including device registers.
	Display io.Writer // Character output for the display traps, nil discards.
}

// NewCpu creates a machine with zeroed memory, ready to load at PC_START.
func NewCpu() (cp *Cpu) {
	cp = &Cpu{}
	cp.Reset()

	return
}

// Reset clears the registers and memory and restores the entry point.
func (cp *Cpu) Reset() {
	if cp.Verbose {
		log.Printf("lc3: reset")
	}

	clear(cp.Register[:])
	clear(cp.Memory.words[:])

	cp.Pc = PC_START
	cp.Cond = FL_ZRO
	cp.State = StateRunning
}

// String returns the current register state as a string.
func (cp *Cpu) String() (text string) {
	for n, value := range cp.Register {
		text += fmt.Sprintf("   r%d: 0x%04X\n", n, value)
	}
	text += fmt.Sprintf("   pc: 0x%04X\n", cp.Pc)
	text += fmt.Sprintf(" cond: %v\n", cp.Cond)
	text += fmt.Sprintf("state: %v\n", cp.State)

	return
}

// setFlags derives the condition flag from the value just written to
// register r. No other path writes the flag.
func (cp *Cpu) setFlags(r uint16) {
	switch value := cp.Register[r]; {
	case value == 0:
		cp.Cond = FL_ZRO
	case value>>15 == 1:
		cp.Cond = FL_NEG
	default:
		cp.Cond = FL_POS
	}
}

// Step fetches, decodes, and executes a single instruction. The program
// counter moves past the instruction before execution, so PC-relative
// offsets are relative to the following word. Any execute error is a
// fatal fault.
func (cp *Cpu) Step() (err error) {
	instr := cp.Memory.Read(cp.Pc)
	cp.Pc++

	err = cp.Execute(instr)
	if err != nil {
		cp.State = StateFaulted
	}

	return
}

// Execute runs a single fetched instruction word against the registers
// and memory. All address and ALU arithmetic wraps modulo 2^16.
func (cp *Cpu) Execute(instr uint16) (err error) {
	op := Opcode(instr >> 12)

	if cp.Verbose {
		log.Printf("lc3: %04x: %04x %v", cp.Pc-1, instr, op)
	}

	switch op {
	// ADD  |0001|DR |SR1|0|00|SR2 | Register  addition
	// ADD  |0001|DR |SR1|1|imm5   | Immediate addition
	case OP_ADD:
		dr := (instr >> 9) & 0x7
		sr1 := (instr >> 6) & 0x7

		if (instr>>5)&0x1 == 1 {
			cp.Register[dr] = cp.Register[sr1] + SignExtend(instr&0x1F, 5)
		} else {
			cp.Register[dr] = cp.Register[sr1] + cp.Register[instr&0x7]
		}

		cp.setFlags(dr)

	// AND  |0101|DR |SR1|0|00|SR2 | Register  bitwise and
	// AND  |0101|DR |SR1|1|imm5   | Immediate bitwise and
	case OP_AND:
		dr := (instr >> 9) & 0x7
		sr1 := (instr >> 6) & 0x7

		if (instr>>5)&0x1 == 1 {
			cp.Register[dr] = cp.Register[sr1] & SignExtend(instr&0x1F, 5)
		} else {
			cp.Register[dr] = cp.Register[sr1] & cp.Register[instr&0x7]
		}

		cp.setFlags(dr)

	// NOT  |1001|DR |SR |111111   | Bitwise complement
	case OP_NOT:
		dr := (instr >> 9) & 0x7
		sr := (instr >> 6) & 0x7

		cp.Register[dr] = ^cp.Register[sr]

		cp.setFlags(dr)

	// BR   |0000|N|Z|P|PCoffset9  | Conditional branch
	case OP_BR:
		mask := Flag((instr >> 9) & 0x7)

		if mask&cp.Cond != 0 {
			cp.Pc += SignExtend(instr&0x1FF, 9)
		}

	// JMP  |1100|000|BaseR|000000 | Jump (BaseR=r7 is return)
	case OP_JMP:
		cp.Pc = cp.Register[(instr>>6)&0x7]

	// JSR  |0100|1|PCoffset11     | Jump to subroutine
	// JSRR |0100|0|00|BaseR|000000| Jump to subroutine register
	case OP_JSR:
		cp.Register[7] = cp.Pc

		if (instr>>11)&0x1 == 1 {
			cp.Pc += SignExtend(instr&0x7FF, 11)
		} else {
			cp.Pc = cp.Register[(instr>>6)&0x7]
		}

	// LD   |0010|DR |PCoffset9    | Load
	case OP_LD:
		dr := (instr >> 9) & 0x7

		cp.Register[dr] = cp.Memory.Read(cp.Pc + SignExtend(instr&0x1FF, 9))

		cp.setFlags(dr)

	// LDI  |1010|DR |PCoffset9    | Load indirect
	case OP_LDI:
		dr := (instr >> 9) & 0x7
		addr := cp.Memory.Read(cp.Pc + SignExtend(instr&0x1FF, 9))

		cp.Register[dr] = cp.Memory.Read(addr)

		cp.setFlags(dr)

	// LDR  |0110|DR |BaseR|offset6| Load base+offset
	case OP_LDR:
		dr := (instr >> 9) & 0x7
		base := (instr >> 6) & 0x7

		cp.Register[dr] = cp.Memory.Read(
			cp.Register[base] + SignExtend(instr&0x3F, 6))

		cp.setFlags(dr)

	// LEA  |1110|DR |PCoffset9    | Load effective address
	case OP_LEA:
		dr := (instr >> 9) & 0x7

		cp.Register[dr] = cp.Pc + SignExtend(instr&0x1FF, 9)

		cp.setFlags(dr)

	// ST   |0011|SR |PCoffset9    | Store
	case OP_ST:
		cp.Memory.Write(
			cp.Pc+SignExtend(instr&0x1FF, 9), cp.Register[(instr>>9)&0x7])

	// STI  |1011|SR |PCoffset9    | Store indirect
	case OP_STI:
		addr := cp.Memory.Read(cp.Pc + SignExtend(instr&0x1FF, 9))

		cp.Memory.Write(addr, cp.Register[(instr>>9)&0x7])

	// STR  |0111|SR |BaseR|offset6| Store base+offset
	case OP_STR:
		base := (instr >> 6) & 0x7

		cp.Memory.Write(
			cp.Register[base]+SignExtend(instr&0x3F, 6),
			cp.Register[(instr>>9)&0x7])

	// TRAP |1111|0000|trapvect8   | System trap
	case OP_TRAP:
		err = cp.trap(instr & 0xFF)

	// RTI  |1000| and RES |1101|  | Reserved (illegal)
	case OP_RTI, OP_RES:
		err = ErrOpcode(instr)
	}

	return
}
