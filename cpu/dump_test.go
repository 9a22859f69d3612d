package cpu

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDumpMemory(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu(5)
	err := cpu.Execute(NewProgram("JMP skip", "MOV AYB , 99", "skip: MOV BEN , 1"))
	assert.NoError(err)

	var out strings.Builder
	assert.NoError(cpu.DumpMemory(&out))
	assert.Equal("Memory:\n"+
		"[0] : JMP skip\n"+
		"[1] : MOV AYB , 99\n"+
		"[2] : skip: MOV BEN , 1\n"+
		"[3] : 0\n"+
		"[4] : 0\n", out.String())
}

func TestDumpMemoryData(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu(4)
	err := cpu.Execute(NewProgram("here:   MOV [2] , -3", "NOT [3]"))
	assert.NoError(err)

	// A label no jump resolved is shown as written.
	assert.Equal("here:   MOV [2] , -3", cpu.CellText(0))
	assert.Equal("-3", cpu.CellText(2))
	assert.Equal("-1", cpu.CellText(3))
}

func TestDumpMemoryFaulted(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu(MEMORY_SIZE)
	err := cpu.Execute(NewProgram("DIV AYB , 0"))
	assert.Error(err)

	var out strings.Builder
	assert.Equal(err, cpu.DumpMemory(&out))
	assert.Empty(out.String())
}
