package cpu

import (
	"errors"

	"github.com/mmonicaama/Cpu-simulator/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrIpEmpty = errors.New(f("ip empty"))
	ErrIpRange = errors.New(f("ip out of range"))

	// Loader errors
	ErrProgramOpen = errors.New(f("error while opening file"))
	ErrCapacity    = errors.New(f("instructions exceed program memory"))

	// Memory errors
	ErrAddressProtected = errors.New(f("address occupied by instructions"))
	ErrAddressRange     = errors.New(f("address exceeds memory"))

	// Execution errors
	ErrDivideByZero       = errors.New(f("divide by zero"))
	ErrJumpTarget         = errors.New(f("jump target has no instruction"))
	ErrInstructionInvalid = errors.New(f("incorrect instruction"))
	ErrOperandMissing     = errors.New(f("operand missing"))
	ErrOperandExtra       = errors.New(f("excessive operands"))
	ErrTargetInvalid      = errors.New(f("target invalid"))
)

type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

// ErrFault locates an execution fault at an instruction address.
type ErrFault struct {
	Ip   int
	Line string
	Err  error
}

func (err *ErrFault) Error() string {
	return f("[%v] '%v' %v", err.Ip, err.Line, err.Err)
}

func (err *ErrFault) Unwrap() error {
	return err.Err
}
