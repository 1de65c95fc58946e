package vm

import (
	"io"
	"os"

	"github.com/waxwing-systems/lc3vm/internal/log"
)

// UserSpaceAddr is the default program counter at VM start, the conventional
// origin of user address space in the LC-3 ISA.
const UserSpaceAddr = Word(0x3000)

// RegisterFile holds the ten words the ISA addresses by index: R0..R7
// general purpose, PC, then COND.
type RegisterFile [10]Word

// Register indices into RegisterFile for the two special registers; the
// general-purpose registers are indexed directly by GPR.
const (
	PC   = 8
	COND = 9
)

func (r RegisterFile) LogValue() log.Value {
	return log.GroupValue(
		log.String("r0", r[R0].String()),
		log.String("r1", r[R1].String()),
		log.String("r2", r[R2].String()),
		log.String("r3", r[R3].String()),
		log.String("r4", r[R4].String()),
		log.String("r5", r[R5].String()),
		log.String("r6", r[R6].String()),
		log.String("r7", r[R7].String()),
		log.String("pc", r[PC].String()),
		log.Any("cond", Condition(r[COND])),
	)
}

// LC3 is the whole machine: registers, memory, the running flag, the
// instruction register holding the most recently fetched word, and the
// collaborators (terminal, logger) the core consults but does not own.
type LC3 struct {
	REG     RegisterFile
	Mem     *Memory
	IR      Instruction
	Running bool
	Stdout  io.Writer

	log *log.Logger
}

// Option configures an LC3 at construction time.
type Option func(*LC3)

// New builds a machine with registers and memory in their documented
// start-of-run state: PC at UserSpaceAddr, COND at ZRO, every other
// register zero, running true.
func New(opts ...Option) *LC3 {
	vm := &LC3{
		Mem:    NewMemory(),
		Stdout: os.Stdout,
		log:    log.DefaultLogger(),
	}

	vm.REG[PC] = UserSpaceAddr
	vm.REG[COND] = Word(ConditionZero)
	vm.Running = true

	for _, opt := range opts {
		opt(vm)
	}

	return vm
}

// WithLogger attaches the logger that Step, Run and the trap dispatcher use.
// Memory holds no logger, and a Loader keeps its own.
func WithLogger(l *log.Logger) Option {
	return func(vm *LC3) {
		vm.log = l
	}
}

// WithTerminal attaches the terminal adapter that backs KBSR/KBDR polling
// and the GETC/IN traps' blocking reads.
func WithTerminal(t Terminal) Option {
	return func(vm *LC3) {
		vm.Mem.term = t
	}
}

// WithStdout overrides where trap output is written; tests use it to
// capture OUT/PUTS/PUTSP/HALT output without touching the real stdout.
func WithStdout(w io.Writer) Option {
	return func(vm *LC3) {
		vm.Stdout = w
	}
}

// WithOrigin overrides the program counter's start-of-run value, mostly
// useful in tests that load an image at an address other than
// UserSpaceAddr.
func WithOrigin(origin Word) Option {
	return func(vm *LC3) {
		vm.REG[PC] = origin
	}
}

// UpdateFlags sets COND to exactly one of ZRO, NEG or POS, examining the
// 16-bit value currently held in register r.
func (vm *LC3) UpdateFlags(r GPR) {
	v := vm.REG[r]

	switch {
	case v == 0:
		vm.REG[COND] = Word(ConditionZero)
	case v&0x8000 != 0:
		vm.REG[COND] = Word(ConditionNegative)
	default:
		vm.REG[COND] = Word(ConditionPositive)
	}
}
