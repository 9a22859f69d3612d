package cpu

import (
	"iter"
	"maps"

	"github.com/mmonicaama/Cpu-simulator/internal"
)

// State is the execution context of the CPU. Every instruction handler
// receives it by pointer and is its only mutator.
type State struct {
	Register RegisterSet // Register bank.
	Memory   Memory      // Instruction and data cells.
	InstSize int         // Number of instruction cells; the rest is data.
	Labels   LabelTable  // Program labels.
	Fault    error       // Set once execution has failed.
}

// NewState creates an execution context with memorySize cells.
func NewState(memorySize int) (st *State) {
	st = &State{
		Memory: NewMemory(memorySize),
	}
	return
}

// Clear resets the registers, instruction count and fault.
// Memory and labels are left alone until the next Load.
func (st *State) Clear() {
	st.Register.Reset()
	st.InstSize = 0
	st.Fault = nil
}

// Faulted returns true if execution has failed.
func (st *State) Faulted() bool {
	return st.Fault != nil
}

// Ip returns the program counter.
func (st *State) Ip() int {
	return int(st.Register[REG_PC])
}

// Load places a program in memory, one line per cell starting at address 0.
// The remaining cells become zero data cells.
func (st *State) Load(prog *Program) (err error) {
	st.Memory.Reset()
	st.Labels.Reset()
	st.InstSize = 0

	if prog == nil {
		return
	}

	if prog.Len() > len(st.Memory) {
		err = ErrCapacity
		return
	}

	// Labels first, so that expressions may refer to any of them.
	for n, line := range prog.Lines {
		label, _ := splitLabel(line.Text)
		if len(label) > 0 {
			st.Labels.Define(label, n)
		}
	}

	st.InstSize = prog.Len()

	dec := newDecoder(st.Defines())
	for n, line := range prog.Lines {
		st.Memory[n] = CodeCell(line.Text, dec.decode(line.Text))
	}

	return
}

// Defines iterates over the names usable in $(...) expressions: the memory
// layout, then every label address.
func (st *State) Defines() iter.Seq2[string, int] {
	layout := map[string]int{
		"MEMORY_SIZE": len(st.Memory),
		"INST_SIZE":   st.InstSize,
	}
	return internal.IterSeq2Concat(maps.All(layout), st.Labels.All())
}

// Fetch returns the instruction at the program counter.
func (st *State) Fetch() (inst *Instruction, err error) {
	ip := st.Ip()
	if ip >= st.InstSize {
		err = ErrIpEmpty
		return
	}
	if ip < 0 {
		err = ErrIpRange
		return
	}

	inst = st.Memory[ip].Inst
	return
}

// check verifies that addr is in the data region.
func (st *State) check(addr int) (err error) {
	switch {
	case addr < st.InstSize:
		err = ErrAddressProtected
	case addr >= len(st.Memory):
		err = ErrAddressRange
	}
	return
}

// Value resolves an operand to its current value.
func (st *State) Value(op Operand) (value int32, err error) {
	switch op.Kind {
	case OPERAND_REGISTER:
		value = st.Register[op.Register]
	case OPERAND_MEMORY:
		err = st.check(op.Address)
		if err != nil {
			return
		}
		value = st.Memory[op.Address].Value
	case OPERAND_IMMEDIATE:
		value = op.Value
	default:
		panic("unknown operand kind")
	}
	return
}

// Store writes a value to a register or data cell operand.
func (st *State) Store(op Operand, value int32) (err error) {
	switch op.Kind {
	case OPERAND_REGISTER:
		st.Register[op.Register] = value
	case OPERAND_MEMORY:
		err = st.check(op.Address)
		if err != nil {
			return
		}
		st.Memory[op.Address] = DataCell(value)
	default:
		err = ErrTargetInvalid
	}
	return
}
