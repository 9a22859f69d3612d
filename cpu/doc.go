// Package cpu implements a small register machine that executes textual
// programs.
//
// A program is loaded one line per memory cell starting at address 0. The
// cells after the program form the data region, addressed by `[N]` operands.
// The CPU has seven 32-bit registers: the accumulator AYB, general purpose
// registers BEN, GIM and ECH, the comparison register DA, the overflow flag
// ZA, and the program counter GH.
//
// Execution stops when the program counter runs past the last instruction,
// or at the first fault. A fault is latched until the CPU is cleared.
package cpu
