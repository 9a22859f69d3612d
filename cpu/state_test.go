package cpu

import (
	"maps"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateLoad(t *testing.T) {
	assert := assert.New(t)

	st := NewState(8)
	st.Memory[6] = DataCell(42)

	err := st.Load(NewProgram("top: MOV AYB , 1", "JMP top", "bad-name: NOT AYB"))
	assert.NoError(err)
	assert.Equal(3, st.InstSize)
	assert.Equal(CELL_CODE, st.Memory[2].Kind)
	assert.Equal("bad-name: NOT AYB", st.Memory[2].Line)
	assert.Equal("NOT AYB", st.Memory[2].Inst.Text)
	assert.Equal(DataCell(0), st.Memory[6])

	defines := maps.Collect(st.Defines())
	assert.Equal(map[string]int{
		"MEMORY_SIZE": 8,
		"INST_SIZE":   3,
		"top":         0,
		"bad-name":    2,
	}, defines)

	err = st.Load(NewProgram("1", "2", "3", "4", "5", "6", "7", "8", "9"))
	assert.Equal(ErrCapacity, err)
	assert.Equal(0, st.InstSize)
	assert.Equal(DataCell(0), st.Memory[0])
	_, ok := st.Labels.Resolve("top")
	assert.False(ok)
}

func TestStateFetch(t *testing.T) {
	assert := assert.New(t)

	st := NewState(4)
	assert.NoError(st.Load(NewProgram("MOV AYB , 1")))

	inst, err := st.Fetch()
	assert.NoError(err)
	assert.Equal(OP_MOV, inst.Op)

	st.Register[REG_PC] = 1
	_, err = st.Fetch()
	assert.Equal(ErrIpEmpty, err)

	st.Register[REG_PC] = -1
	_, err = st.Fetch()
	assert.Equal(ErrIpRange, err)
}

func TestStateValueStore(t *testing.T) {
	assert := assert.New(t)

	st := NewState(4)
	assert.NoError(st.Load(NewProgram("NOT AYB")))

	mem, _ := ParseOperand("[2]")
	code, _ := ParseOperand("[0]")
	outside, _ := ParseOperand("[4]")
	reg, _ := ParseOperand("ECH")
	imm, _ := ParseOperand("7")

	assert.NoError(st.Store(mem, 5))
	assert.NoError(st.Store(reg, 6))
	assert.Equal(ErrTargetInvalid, st.Store(imm, 1))
	assert.Equal(ErrAddressProtected, st.Store(code, 1))
	assert.Equal(ErrAddressRange, st.Store(outside, 1))

	value, err := st.Value(mem)
	assert.NoError(err)
	assert.Equal(int32(5), value)

	value, err = st.Value(reg)
	assert.NoError(err)
	assert.Equal(int32(6), value)

	value, err = st.Value(imm)
	assert.NoError(err)
	assert.Equal(int32(7), value)

	_, err = st.Value(code)
	assert.Equal(ErrAddressProtected, err)
}
