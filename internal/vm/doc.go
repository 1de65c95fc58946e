/*
Package vm implements the LC-3 instruction-execution engine: a ten-register file, a flat 64K-word
memory with memory-mapped keyboard I/O, and the fetch/decode/dispatch loop that interprets the
fourteen executable LC-3 opcodes (RTI and the reserved opcode are fatal).

# Registers #

The register file holds exactly ten 16-bit words: R0 through R7 are general purpose, R7
conventionally holding subroutine return linkage after JSR/TRAP; index 8 holds the program
counter (PC); index 9 holds the condition register (COND), of which exactly one of the N/Z/P
bits is set once any instruction has updated it.

# Memory #

Memory is a flat array of 2^16 words. Two addresses are reserved for the keyboard: KBSR (status)
and KBDR (data). Every read of KBSR polls the attached terminal for a waiting keystroke and, if
one is ready, latches it into KBDR - apart from the GETC and IN traps, which read the terminal
directly, this is the only way loaded programs observe keyboard input, and every load instruction (LD, LDR, LDI's both accesses) goes through the same accessor, so none
of them need special-case MMIO.

# Instruction cycle #

Each cycle fetches the word at PC into the instruction register, decodes the top 4 bits into an
opcode, and executes exactly one operation; sign-extension and condition-flag updates are
implemented once and shared across every instruction semantics needs them.

# Traps #

Opcode 15, TRAP, dispatches to one of six fixed service routines implemented directly
against the register file, memory and the attached terminal: GETC, OUT, PUTS, IN, PUTSP and HALT.
There is no trap vector table in memory; trap vectors select a Go function.
*/
package vm
