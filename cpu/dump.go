package cpu

import (
	"bufio"
	"fmt"
	"io"
)

// CellText returns the dump text of a memory cell. Code cells reached by a
// jump are shown with their label.
func (st *State) CellText(addr int) string {
	cell := st.Memory[addr]
	if cell.Kind == CELL_CODE {
		if label, ok := st.Labels.Name(addr); ok {
			return label + ": " + cell.Inst.Text
		}
	}
	return cell.String()
}

// DumpMemory writes every memory cell by address.
// Nothing is written if execution faulted; the fault is returned instead.
func (st *State) DumpMemory(w io.Writer) (err error) {
	if st.Faulted() {
		return st.Fault
	}

	out := bufio.NewWriter(w)
	fmt.Fprintf(out, "Memory:\n")
	for addr := range st.Memory {
		fmt.Fprintf(out, "[%d] : %s\n", addr, st.CellText(addr))
	}

	return out.Flush()
}
