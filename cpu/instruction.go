package cpu

import (
	"iter"
	"regexp"
	"strings"
	"unicode"

	"go.starlark.net/starlark"
)

// Instruction is a decoded program line.
type Instruction struct {
	Label    string    // Label defined by the line, without the ':'.
	Mnemonic string    // Opcode as written.
	Op       Opcode    // Decoded opcode.
	Operands []Operand // Data operands.
	Target   string    // Jump target label.
	Text     string    // Instruction text, without the label.
	Err      error     // Decode error, raised when the instruction executes.
}

// String returns the instruction text.
func (inst *Instruction) String() string {
	return inst.Text
}

// cutSpace splits text at its first run of whitespace.
func cutSpace(text string) (first string, rest string) {
	n := strings.IndexFunc(text, unicode.IsSpace)
	if n < 0 {
		return text, ""
	}
	return text[:n], strings.TrimSpace(text[n:])
}

// splitLabel splits a leading `name:` token from a line.
func splitLabel(line string) (label string, text string) {
	text = strings.TrimSpace(line)
	first, rest := cutSpace(text)
	if len(first) > 1 && strings.HasSuffix(first, ":") {
		label = first[:len(first)-1]
		text = rest
	}
	return
}

// splitOperands splits operand text on commas. Text without a comma is split
// on whitespace. Neither splits inside a $(...) expression.
func splitOperands(text string) (words []string) {
	text = strings.TrimSpace(text)
	if len(text) == 0 {
		return
	}

	split := func(sep func(r rune) bool) (parts []string) {
		depth := 0
		start := 0
		for n, r := range text {
			switch {
			case r == '(':
				depth++
			case r == ')' && depth > 0:
				depth--
			case depth == 0 && sep(r):
				parts = append(parts, text[start:n])
				start = n + len(string(r))
			}
		}
		return append(parts, text[start:])
	}

	parts := split(func(r rune) bool { return r == ',' })
	if len(parts) > 1 {
		// Empty operands are kept, so `MOV AYB ,` is short an operand.
		for _, part := range parts {
			words = append(words, strings.TrimSpace(part))
		}
		return
	}

	for _, part := range split(unicode.IsSpace) {
		if len(part) > 0 {
			words = append(words, part)
		}
	}

	return
}

var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// decoder turns program lines into instructions.
type decoder struct {
	predeclared starlark.StringDict
}

// newDecoder creates a decoder whose $(...) expressions can refer to the
// given names. The first binding of a name wins.
func newDecoder(defines iter.Seq2[string, int]) (dec *decoder) {
	dec = &decoder{
		predeclared: starlark.StringDict{},
	}
	for name, value := range defines {
		if !identRe.MatchString(name) {
			continue
		}
		if _, ok := dec.predeclared[name]; ok {
			continue
		}
		dec.predeclared[name] = starlark.MakeInt(value)
	}
	return
}

// Decode decodes a single program line. Errors are kept in the instruction
// rather than returned, as they only matter if the line is executed.
func Decode(line string) (inst Instruction) {
	dec := &decoder{}
	return dec.decode(line)
}

func (dec *decoder) decode(line string) (inst Instruction) {
	inst.Label, inst.Text = splitLabel(line)

	mnemonic, rest := cutSpace(inst.Text)
	inst.Mnemonic = mnemonic
	inst.Op = LookupOpcode(mnemonic)
	if inst.Op == OP_INVALID {
		inst.Err = ErrInstructionInvalid
		return
	}

	words := splitOperands(rest)
	switch {
	case len(words) < inst.Op.Arity():
		inst.Err = ErrOperandMissing
		return
	case len(words) > inst.Op.Arity():
		inst.Err = ErrOperandExtra
		return
	}

	if inst.Op.IsJump() {
		inst.Target = strings.TrimSuffix(words[0], ":")
		return
	}

	for _, word := range words {
		if len(word) == 0 {
			inst.Err = ErrOperandMissing
			return
		}
		op, err := parseOperand(word, dec.predeclared)
		if err != nil {
			inst.Err = err
			return
		}
		inst.Operands = append(inst.Operands, op)
	}

	return
}
