package vm

import (
	"errors"

	"github.com/waxwing-systems/lc3vm/internal/log"
)

// ErrIllegalOpcode is returned when the fetched instruction decodes to RTI
// or the reserved opcode, neither of which this subset implements. Spec
// treats this as fatal: the machine does not attempt to continue.
var ErrIllegalOpcode = errors.New("illegal opcode")

// ErrHalted is returned by Step once the HALT trap has cleared the running
// flag; Run treats it as a normal, successful stop.
var ErrHalted = errors.New("halted")

// Step executes exactly one instruction cycle: fetch, decode, dispatch. It
// returns ErrHalted after HALT has run, and ErrIllegalOpcode if the fetched
// instruction cannot be decoded.
func (vm *LC3) Step() error {
	if !vm.Running {
		return ErrHalted
	}

	vm.IR = Instruction(vm.Mem.Read(vm.REG[PC]))
	vm.REG[PC]++

	vm.log.Debug("fetched instruction",
		log.String("ir", Word(vm.IR).String()),
		log.Any("op", vm.IR.Opcode()),
	)

	op := decode(vm.IR)
	if op == nil {
		vm.log.Error("illegal opcode", log.Any("op", vm.IR.Opcode()))
		return ErrIllegalOpcode
	}

	op.execute(vm)

	if !vm.Running {
		return ErrHalted
	}

	return nil
}

// Run executes instructions until HALT clears the running flag or an
// illegal opcode is decoded. A nil return means the machine halted
// normally; any other return is fatal and the caller should not resume the
// loop.
func (vm *LC3) Run() error {
	vm.log.Info("machine running", log.String("pc", vm.REG[PC].String()))

	for {
		err := vm.Step()

		switch {
		case err == nil:
			continue
		case errors.Is(err, ErrHalted):
			vm.log.Info("machine halted")
			return nil
		default:
			vm.log.Error("machine aborted", log.Any("err", err))
			return err
		}
	}
}
