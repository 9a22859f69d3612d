package emulator

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/mmonicaama/Cpu-simulator/cpu"
)

// DumpStyle selects the memory dump format.
type DumpStyle int

//go:generate go tool stringer -linecomment -type=DumpStyle
const (
	DUMP_NONE  = DumpStyle(0) // none
	DUMP_PLAIN = DumpStyle(1) // plain
	DUMP_TABLE = DumpStyle(2) // table
)

// ParseDumpStyle looks up a dump style by name.
func ParseDumpStyle(name string) (style DumpStyle, err error) {
	for _, style = range []DumpStyle{DUMP_NONE, DUMP_PLAIN, DUMP_TABLE} {
		if style.String() == name {
			return
		}
	}

	style = DUMP_NONE
	err = fmt.Errorf("%w: %q", ErrDumpStyle, name)
	return
}

// Dump writes the memory and register state in the requested style.
// Nothing is written if execution faulted; the fault is returned instead.
func (emu *Emulator) Dump(w io.Writer, style DumpStyle) (err error) {
	if emu.Faulted() {
		return emu.Fault
	}

	switch style {
	case DUMP_NONE:
	case DUMP_PLAIN:
		err = emu.DumpMemory(w)
	case DUMP_TABLE:
		_, err = fmt.Fprintln(w, emu.memoryTable().Render())
		if err != nil {
			return
		}
		_, err = fmt.Fprintln(w, emu.registerTable().Render())
	default:
		err = ErrDumpStyle
	}

	return
}

func (emu *Emulator) memoryTable() table.Writer {
	memTable := table.NewWriter()
	memTable.SetTitle("Memory")
	memTable.AppendHeader(table.Row{"Addr", "Line", "Label", "Kind", "Contents"})

	for addr, cell := range emu.Memory {
		row := table.Row{addr, "", "", cell.Kind, cell.String()}
		if cell.Kind == cpu.CELL_CODE {
			if lineno := emu.Program.LineNo(addr); lineno > 0 {
				row[1] = lineno
			}
			row[2] = cell.Inst.Label
			row[4] = cell.Inst.Text
		}
		memTable.AppendRow(row)
	}

	return memTable
}

func (emu *Emulator) registerTable() table.Writer {
	regTable := table.NewWriter()
	regTable.SetTitle("Registers")
	regTable.AppendHeader(table.Row{"Register", "Value"})

	for n := range cpu.REG_COUNT {
		reg := cpu.Register(n)
		regTable.AppendRow(table.Row{reg, emu.Register[reg]})
	}
	regTable.AppendFooter(table.Row{"Ticks", emu.Ticks()})

	return regTable
}
