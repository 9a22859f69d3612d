package cpu

import (
	"strconv"
)

const (
	MEMORY_SIZE = 32 // Default memory capacity, in cells.
)

// CellKind is the contents type of a memory cell.
type CellKind int

//go:generate go tool stringer -linecomment -type=CellKind
const (
	CELL_DATA = CellKind(0) // data
	CELL_CODE = CellKind(1) // code
)

// Cell is a single memory cell, holding either an instruction or an integer.
type Cell struct {
	Kind  CellKind
	Value int32        // CELL_DATA value.
	Line  string       // CELL_CODE source line.
	Inst  *Instruction // CELL_CODE decoded instruction.
}

// DataCell creates a data cell.
func DataCell(value int32) Cell {
	return Cell{Kind: CELL_DATA, Value: value}
}

// CodeCell creates an instruction cell.
func CodeCell(line string, inst Instruction) Cell {
	return Cell{Kind: CELL_CODE, Line: line, Inst: &inst}
}

// String returns the source line of a code cell, or the decimal value of
// a data cell.
func (cell Cell) String() string {
	if cell.Kind == CELL_CODE {
		return cell.Line
	}
	return strconv.FormatInt(int64(cell.Value), 10)
}

// Memory is a fixed size array of cells.
type Memory []Cell

// NewMemory creates a zeroed memory of size cells.
func NewMemory(size int) (mem Memory) {
	mem = make(Memory, size)
	mem.Reset()
	return
}

// Reset sets every cell to a zero data cell.
func (mem Memory) Reset() {
	for n := range mem {
		mem[n] = DataCell(0)
	}
}
