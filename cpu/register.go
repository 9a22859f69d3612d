package cpu

// Register is a register index.
type Register int

//go:generate go tool stringer -linecomment -type=Register
const (
	REG_AYB = Register(0) // AYB
	REG_BEN = Register(1) // BEN
	REG_GIM = Register(2) // GIM
	REG_DA  = Register(3) // DA
	REG_ECH = Register(4) // ECH
	REG_ZA  = Register(5) // ZA
	REG_GH  = Register(6) // GH

	REG_COUNT = 7 // Number of registers.
)

// Register roles.
const (
	REG_ACC  = REG_AYB // Accumulator.
	REG_CMP  = REG_DA  // Comparison result, one of -1, 0, 1.
	REG_FLAG = REG_ZA  // Overflow flag.
	REG_PC   = REG_GH  // Program counter.
)

// registerMap maps register names to indexes.
var registerMap = map[string]Register{
	"AYB": REG_AYB,
	"BEN": REG_BEN,
	"GIM": REG_GIM,
	"DA":  REG_DA,
	"ECH": REG_ECH,
	"ZA":  REG_ZA,
	"GH":  REG_GH,
}

// LookupRegister returns the register with the exact name given.
func LookupRegister(name string) (reg Register, ok bool) {
	reg, ok = registerMap[name]
	return
}

// RegisterSet is the register bank.
type RegisterSet [REG_COUNT]int32

// Reset zeros every register, including the program counter.
func (rs *RegisterSet) Reset() {
	clear(rs[:])
}
