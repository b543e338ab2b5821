// Package cpu implements the LC-3 processor core.
//
// The core consists of eight 16-bit general registers (r0-r7), a program
// counter, a three-way condition flag derived from the last register
// write, and 65536 words of memory. Two memory addresses are intercepted
// as keyboard device registers rather than plain storage. System services
// (character I/O and halt) are provided natively through the TRAP opcode.
package cpu
