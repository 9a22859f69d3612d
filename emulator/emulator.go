// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/mmonicaama/Cpu-simulator/cpu"
)

// Emulator state. CPU + the program listing it runs.
type Emulator struct {
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Reference to the currently loaded program listing.

	logger *zap.Logger
}

// NewEmulator creates a new emulator with memorySize cells of memory.
// A nil logger uses the global zap logger.
func NewEmulator(memorySize int, logger *zap.Logger) (emu *Emulator) {
	if logger == nil {
		logger = zap.L()
	}

	emu = &Emulator{
		Cpu:     cpu.NewCpu(memorySize, cpu.WithLogger(logger)),
		Program: &cpu.Program{},
		logger:  logger.Named("emulator"),
	}

	return
}

// LoadFile reads a program listing and resets the emulator to run it.
func (emu *Emulator) LoadFile(path string) (err error) {
	prog, err := cpu.LoadFile(path)
	if err != nil {
		emu.Program = &cpu.Program{}
		emu.Reset()
		emu.Cpu.SetFault(err)
		return
	}

	emu.Program = prog
	emu.logger.Info("program", zap.String("path", path), zap.Int("lines", prog.Len()))

	return emu.Reset()
}

// Reset clears the CPU and reloads the current program.
func (emu *Emulator) Reset() (err error) {
	emu.Cpu.Clear()

	return emu.Cpu.Load(emu.Program)
}

// Ticks returns the total ticks since a reset.
func (emu *Emulator) Ticks() int {
	return emu.Cpu.Ticks
}

// LineNo returns the current line number for the executing instruction.
func (emu *Emulator) LineNo() int {
	return emu.Program.LineNo(emu.Cpu.Ip())
}

// Tick performs a single tick of the emulator.
func (emu *Emulator) Tick() (done bool, err error) {
	lineno := emu.LineNo()
	defer func() {
		if err != nil {
			err = &ErrRuntime{LineNo: lineno, Err: err}
		}
	}()

	err = emu.Cpu.Tick()
	if errors.Is(err, cpu.ErrIpEmpty) {
		err = nil
		done = true
		return
	}

	return
}

// Run ticks the emulator until the program ends, faults, or ctx is done.
func (emu *Emulator) Run(ctx context.Context) (err error) {
	for {
		err = ctx.Err()
		if err != nil {
			emu.logger.Warn("stopped", zap.Int("line", emu.LineNo()), zap.Error(err))
			return
		}

		var done bool
		done, err = emu.Tick()
		if err != nil || done {
			break
		}
	}

	emu.logger.Info("halt", zap.Int("ticks", emu.Ticks()), zap.Bool("faulted", emu.Faulted()))

	return
}
