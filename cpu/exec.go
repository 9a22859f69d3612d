package cpu

import (
	"math"
)

// Exec executes a single decoded instruction against the state.
// If the instruction transferred control, jumped is set and the program
// counter already holds the target address.
func (st *State) Exec(inst *Instruction) (jumped bool, err error) {
	if inst.Err != nil {
		err = inst.Err
		return
	}

	switch inst.Op {
	case OP_MOV, OP_ADD, OP_SUB, OP_MUL, OP_DIV, OP_AND, OP_OR:
		err = st.binary(inst.Op, inst.Operands[0], inst.Operands[1])
	case OP_NOT:
		err = st.not(inst.Operands[0])
	case OP_CMP:
		err = st.compare(inst.Operands[0], inst.Operands[1])
	case OP_JMP, OP_JG, OP_JL, OP_JE:
		jumped, err = st.jump(inst.Op, inst.Target)
	default:
		err = ErrInstructionInvalid
	}

	return
}

// binary performs the two operand data instructions: dst <- dst op src.
func (st *State) binary(op Opcode, dst, src Operand) (err error) {
	switch {
	case op.RegisterOnly() && dst.Kind != OPERAND_REGISTER:
		// Memory destinations are not supported; the instruction does nothing.
		return
	case dst.Kind == OPERAND_IMMEDIATE:
		err = ErrTargetInvalid
		return
	case dst.Kind == OPERAND_MEMORY:
		err = st.check(dst.Address)
		if err != nil {
			return
		}
	}

	value, err := st.Value(src)
	if err != nil {
		return
	}

	if op == OP_MOV {
		return st.Store(dst, value)
	}

	input, err := st.Value(dst)
	if err != nil {
		return
	}

	output, overflow, err := doAlu(op, input, value)
	if err != nil {
		return
	}
	if overflow {
		st.Register[REG_FLAG] = 1
	}

	return st.Store(dst, output)
}

// not complements a register or data cell.
func (st *State) not(dst Operand) (err error) {
	if dst.Kind == OPERAND_IMMEDIATE {
		err = ErrTargetInvalid
		return
	}

	input, err := st.Value(dst)
	if err != nil {
		return
	}

	return st.Store(dst, ^input)
}

// compare sets the comparison register to the sign of a - b.
func (st *State) compare(a, b Operand) (err error) {
	if a.Kind == OPERAND_MEMORY {
		err = st.check(a.Address)
		if err != nil {
			return
		}
	}

	b_v, err := st.Value(b)
	if err != nil {
		return
	}
	a_v, err := st.Value(a)
	if err != nil {
		return
	}

	switch diff := int64(a_v) - int64(b_v); {
	case diff < 0:
		st.Register[REG_CMP] = -1
	case diff > 0:
		st.Register[REG_CMP] = 1
	default:
		st.Register[REG_CMP] = 0
	}

	return
}

// jump resolves a label and transfers control to it when the opcode's
// condition holds. The label is resolved and checked even when the jump
// is not taken.
func (st *State) jump(op Opcode, label string) (jumped bool, err error) {
	addr, ok := st.Labels.Resolve(label)
	if !ok {
		err = ErrLabelMissing(label)
		return
	}

	st.Labels.Visit(addr, label)

	target := st.Memory[addr].Inst
	if target == nil || len(target.Mnemonic) == 0 {
		err = ErrJumpTarget
		return
	}

	switch op {
	case OP_JMP:
		jumped = true
	case OP_JG:
		jumped = st.Register[REG_CMP] == 1
	case OP_JL:
		jumped = st.Register[REG_CMP] == -1
	case OP_JE:
		jumped = st.Register[REG_CMP] == 0
	}

	if jumped {
		st.Register[REG_PC] = int32(addr)
	}

	return
}

// doAlu performs the requested arithmetic or bitwise operation.
// Arithmetic is done in 64 bits; overflow is set if the result does not
// fit in 32 bits, and the output is truncated.
func doAlu(op Opcode, input int32, value int32) (output int32, overflow bool, err error) {
	a := int64(input)
	b := int64(value)

	var result int64
	switch op {
	case OP_ADD:
		result = a + b
	case OP_SUB:
		result = a - b
	case OP_MUL:
		result = a * b
	case OP_DIV:
		if b == 0 {
			err = ErrDivideByZero
			return
		}
		result = a / b
	case OP_AND:
		output = input & value
		return
	case OP_OR:
		output = input | value
		return
	default:
		err = ErrInstructionInvalid
		return
	}

	output = int32(result)
	overflow = result > math.MaxInt32 || result < math.MinInt32

	return
}
