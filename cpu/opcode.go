package cpu

// Opcode is an instruction operation type.
type Opcode int

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_INVALID = Opcode(0)  // ?
	OP_MOV     = Opcode(1)  // MOV
	OP_ADD     = Opcode(2)  // ADD
	OP_SUB     = Opcode(3)  // SUB
	OP_MUL     = Opcode(4)  // MUL
	OP_DIV     = Opcode(5)  // DIV
	OP_AND     = Opcode(6)  // AND
	OP_OR      = Opcode(7)  // OR
	OP_NOT     = Opcode(8)  // NOT
	OP_CMP     = Opcode(9)  // CMP
	OP_JMP     = Opcode(10) // JMP
	OP_JG      = Opcode(11) // JG
	OP_JL      = Opcode(12) // JL
	OP_JE      = Opcode(13) // JE
)

// opcodeMap maps mnemonics to opcodes.
var opcodeMap = map[string]Opcode{
	"MOV": OP_MOV,
	"ADD": OP_ADD,
	"SUB": OP_SUB,
	"MUL": OP_MUL,
	"DIV": OP_DIV,
	"AND": OP_AND,
	"OR":  OP_OR,
	"NOT": OP_NOT,
	"CMP": OP_CMP,
	"JMP": OP_JMP,
	"JG":  OP_JG,
	"JL":  OP_JL,
	"JE":  OP_JE,
}

// LookupOpcode returns the opcode for a mnemonic, or OP_INVALID.
func LookupOpcode(mnemonic string) Opcode {
	return opcodeMap[mnemonic]
}

// Arity returns the number of operands the opcode takes.
func (op Opcode) Arity() int {
	switch op {
	case OP_INVALID:
		return 0
	case OP_NOT, OP_JMP, OP_JG, OP_JL, OP_JE:
		return 1
	default:
		return 2
	}
}

// IsJump returns true for control transfer opcodes.
func (op Opcode) IsJump() bool {
	return op >= OP_JMP && op <= OP_JE
}

// RegisterOnly returns true if the opcode only acts on a register
// destination. Other destinations make the instruction a no-op.
func (op Opcode) RegisterOnly() bool {
	return op == OP_MUL || op == OP_DIV
}
