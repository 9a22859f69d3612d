package cpu

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"
)

// Line is a single line of program text.
type Line struct {
	LineNo int    // 1-based line number in the source.
	Text   string // Line text, verbatim.
}

// Program is the text of a program, one instruction per line.
type Program struct {
	Lines []Line
}

// NewProgram creates a program from lines of text.
func NewProgram(lines ...string) (prog *Program) {
	prog = &Program{}
	for n, text := range lines {
		prog.Lines = append(prog.Lines, Line{LineNo: n + 1, Text: text})
	}
	return
}

// ParseProgram reads a program from an input stream.
func ParseProgram(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	prog = &Program{}

	var lineno int
	for scanner.Scan() {
		lineno += 1
		text := strings.TrimSuffix(scanner.Text(), "\r")
		prog.Lines = append(prog.Lines, Line{LineNo: lineno, Text: text})
	}

	err = scanner.Err()
	return
}

// LoadFile reads a program from a file.
func LoadFile(path string) (prog *Program, err error) {
	inf, err := os.Open(path)
	if err != nil {
		err = errors.Join(ErrProgramOpen, err)
		return
	}
	defer inf.Close()

	return ParseProgram(inf)
}

// Len returns the number of lines in the program.
func (prog *Program) Len() int {
	if prog == nil {
		return 0
	}
	return len(prog.Lines)
}

// LineNo returns the source line number for an instruction address, or 0.
func (prog *Program) LineNo(ip int) int {
	if ip < 0 || ip >= prog.Len() {
		return 0
	}
	return prog.Lines[ip].LineNo
}
