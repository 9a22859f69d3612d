package cpu

import (
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// OperandKind is the addressing mode of an operand.
type OperandKind int

//go:generate go tool stringer -linecomment -type=OperandKind
const (
	OPERAND_REGISTER  = OperandKind(0) // reg
	OPERAND_MEMORY    = OperandKind(1) // mem
	OPERAND_IMMEDIATE = OperandKind(2) // imm
)

// Operand is a classified instruction operand.
type Operand struct {
	Kind     OperandKind
	Register Register // OPERAND_REGISTER
	Address  int      // OPERAND_MEMORY
	Value    int32    // OPERAND_IMMEDIATE
	Token    string   // Operand text as written.
}

// String returns the operand as written.
func (op Operand) String() string {
	return op.Token
}

// isMemoryRef is true for `[N]` tokens, where N is at most two characters.
func isMemoryRef(word string) bool {
	return len(word) >= 3 && len(word) <= 4 && word[0] == '[' && word[len(word)-1] == ']'
}

// isExpression is true for `$(...)` tokens.
func isExpression(word string) bool {
	return len(word) >= 3 && strings.HasPrefix(word, "$(") && word[len(word)-1] == ')'
}

// ParseOperand classifies a single operand token.
// Expressions are evaluated without any predeclared names.
func ParseOperand(word string) (op Operand, err error) {
	return parseOperand(word, nil)
}

func parseOperand(word string, predeclared starlark.StringDict) (op Operand, err error) {
	op.Token = word

	if reg, ok := LookupRegister(word); ok {
		op.Kind = OPERAND_REGISTER
		op.Register = reg
		return
	}

	if isMemoryRef(word) {
		var addr int
		addr, err = strconv.Atoi(word[1 : len(word)-1])
		if err != nil {
			err = ErrParseNumber(word)
			return
		}
		op.Kind = OPERAND_MEMORY
		op.Address = addr
		return
	}

	op.Kind = OPERAND_IMMEDIATE

	if isExpression(word) {
		op.Value, err = evalExpression(word[2:len(word)-1], predeclared)
		return
	}

	v64, err := strconv.ParseInt(word, 10, 32)
	if err != nil {
		err = ErrParseNumber(word)
		return
	}
	op.Value = int32(v64)

	return
}

// EXPR_MAX_STEPS bounds the work of a single $(...) evaluation.
const EXPR_MAX_STEPS = 10000

// evalExpression does load-time $(...) evaluations.
func evalExpression(expr string, predeclared starlark.StringDict) (value int32, err error) {
	thread := starlark.Thread{Name: "expr"}
	thread.SetMaxExecutionSteps(EXPR_MAX_STEPS)
	opts := syntax.FileOptions{}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, predeclared)
	if err != nil {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := dict["rc"].(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok || st_int64 > 0x7fffffff || st_int64 < -0x80000000 {
		err = ErrParseExpression(expr)
		return
	}
	value = int32(st_int64)
	return
}
