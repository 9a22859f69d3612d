package cpu

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Option configures a Cpu.
type Option func(*Cpu) *Cpu

// WithLogger sets the logger used for execution tracing.
func WithLogger(l *zap.Logger) Option {
	return func(cpu *Cpu) *Cpu {
		cpu.logger = l
		return cpu
	}
}

// Cpu is the simulation context for the CPU.
type Cpu struct {
	State // Execution context.

	Ticks int // Instructions executed since the last Clear.

	logger *zap.Logger
}

// NewCpu creates a new CPU with memorySize cells of memory.
func NewCpu(memorySize int, opts ...Option) (cpu *Cpu) {
	cpu = &Cpu{
		State:  *NewState(memorySize),
		logger: zap.L(),
	}

	for _, opt := range opts {
		cpu = opt(cpu)
	}

	cpu.logger = cpu.logger.Named("cpu")

	return
}

// String returns the current register state as a string.
func (cpu *Cpu) String() (text string) {
	for n := range REG_COUNT {
		reg := Register(n)
		text += fmt.Sprintf("% 5s: %v\n", reg, cpu.Register[reg])
	}
	text += fmt.Sprintf("% 5s: %v\n", "ticks", cpu.Ticks)

	return
}

// Clear resets the CPU registers, instruction count and fault.
func (cpu *Cpu) Clear() {
	cpu.State.Clear()
	cpu.Ticks = 0
}

// SetFault latches a fault. Execution stops until the next Clear.
func (cpu *Cpu) SetFault(err error) {
	cpu.Fault = err
	cpu.logger.Warn("fault", zap.Error(err))
}

// Load places a program into memory. A load failure faults the CPU.
func (cpu *Cpu) Load(prog *Program) (err error) {
	err = cpu.State.Load(prog)
	if err != nil {
		cpu.SetFault(err)
		return
	}

	cpu.logger.Debug("load",
		zap.Int("instructions", cpu.InstSize),
		zap.Int("memory", len(cpu.Memory)),
	)

	return
}

// LoadFile reads a program file into memory. A load failure faults the CPU.
func (cpu *Cpu) LoadFile(path string) (err error) {
	prog, err := LoadFile(path)
	if err != nil {
		cpu.State.Load(nil)
		cpu.SetFault(err)
		return
	}

	return cpu.Load(prog)
}

// Tick executes a single instruction.
// Returns ErrIpEmpty once the program counter has left the program.
func (cpu *Cpu) Tick() (err error) {
	if cpu.Faulted() {
		return cpu.Fault
	}

	ip := cpu.Ip()
	inst, err := cpu.Fetch()
	if errors.Is(err, ErrIpEmpty) {
		return
	}
	if err != nil {
		err = &ErrFault{Ip: ip, Err: err}
		cpu.SetFault(err)
		return
	}

	cpu.logger.Debug("execute",
		zap.Int("ip", ip),
		zap.Stringer("op", inst.Op),
		zap.String("text", inst.Text),
	)

	jumped, err := cpu.Exec(inst)
	if err != nil {
		err = &ErrFault{Ip: ip, Line: cpu.Memory[ip].Line, Err: err}
		cpu.SetFault(err)
		return
	}

	if !jumped {
		cpu.Register[REG_PC]++
	}
	cpu.Ticks += 1

	return
}

// Run executes instructions until the program ends or faults.
func (cpu *Cpu) Run() (err error) {
	for {
		err = cpu.Tick()
		if errors.Is(err, ErrIpEmpty) {
			return nil
		}
		if err != nil {
			return
		}
	}
}

// Execute clears the CPU, loads the program and runs it.
func (cpu *Cpu) Execute(prog *Program) (err error) {
	cpu.Clear()

	err = cpu.Load(prog)
	if err != nil {
		return
	}

	return cpu.Run()
}

// ExecuteFile clears the CPU, loads the program file and runs it.
func (cpu *Cpu) ExecuteFile(path string) (err error) {
	cpu.Clear()

	err = cpu.LoadFile(path)
	if err != nil {
		return
	}

	return cpu.Run()
}
