package vm

import (
	"fmt"

	"github.com/waxwing-systems/lc3vm/internal/log"
)

// Trap vectors, the low 8 bits of a TRAP instruction.
const (
	trapGETC  = Word(0x20)
	trapOUT   = Word(0x21)
	trapPUTS  = Word(0x22)
	trapIN    = Word(0x23)
	trapPUTSP = Word(0x24)
	trapHALT  = Word(0x25)
)

// dispatchTrap runs the service routine named by vector against vm. Unknown
// vectors are silent no-ops, matching the spec's chosen resolution of the
// original's inconsistent handling of bad vectors.
func dispatchTrap(vm *LC3, vector Word) {
	switch vector {
	case trapGETC:
		trapGetc(vm)
	case trapOUT:
		trapOut(vm)
	case trapPUTS:
		trapPuts(vm)
	case trapIN:
		trapIn(vm)
	case trapPUTSP:
		trapPutsp(vm)
	case trapHALT:
		trapHaltRoutine(vm)
	default:
		vm.log.Warn("unknown trap vector", log.String("vector", vector.String()))
	}
}

// trapGetc blocks for one character from the terminal. No prompt, no echo.
func trapGetc(vm *LC3) {
	c := vm.readTerminal()
	vm.REG[R0] = Word(c) & 0xff
	vm.UpdateFlags(R0)
}

// trapOut writes the low byte of R0 to stdout.
func trapOut(vm *LC3) {
	vm.Stdout.Write([]byte{byte(vm.REG[R0])})
}

// trapPuts writes one byte per word, starting at R0, until a zero word.
func trapPuts(vm *LC3) {
	for addr := vm.REG[R0]; ; addr++ {
		w := vm.Mem.Read(addr)
		if w == 0 {
			break
		}

		vm.Stdout.Write([]byte{byte(w)})
	}
}

// trapIn prompts, blocks for one character, echoes it, and sets R0.
func trapIn(vm *LC3) {
	fmt.Fprint(vm.Stdout, "Enter a character: ")

	c := vm.readTerminal()

	vm.Stdout.Write([]byte{c})

	vm.REG[R0] = Word(c) & 0xff
	vm.UpdateFlags(R0)
}

// trapPutsp writes two packed bytes per word, low byte first, starting at
// R0, until a zero word. The high byte of each word is only emitted if it is
// non-zero, so a string of odd length can end in a low-byte-only word.
func trapPutsp(vm *LC3) {
	for addr := vm.REG[R0]; ; addr++ {
		w := vm.Mem.Read(addr)
		if w == 0 {
			break
		}

		lo := byte(w & 0xff)
		hi := byte(w >> 8)

		vm.Stdout.Write([]byte{lo})

		if hi != 0 {
			vm.Stdout.Write([]byte{hi})
		}
	}
}

// trapHaltRoutine prints "HALT" and clears the running flag; Step/Run exit
// on their next check of it.
func trapHaltRoutine(vm *LC3) {
	fmt.Fprint(vm.Stdout, "HALT\n")
	vm.Running = false
}

// readTerminal blocks for one character. With no terminal attached (as in
// most tests), it returns 0 rather than panicking.
func (vm *LC3) readTerminal() byte {
	if vm.Mem.term == nil {
		return 0
	}

	return vm.Mem.term.ReadChar()
}
