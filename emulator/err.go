package emulator

import (
	"errors"

	"github.com/ezrec/picpulse/pic"
	"github.com/ezrec/picpulse/translate"
)

var f = translate.From

var (
	ErrProgramMissing = errors.New(f("no program loaded"))
	ErrNotReset       = errors.New(f("emulator not reset"))
	ErrVectorEmpty    = errors.New(f("interrupt with no handler"))
	ErrHandlerTooLong = errors.New(f("handler too long"))
	ErrHandlerReturn  = errors.New(f("handler must end with retfie"))
)

// ErrRuntime indicates the cycle and context of a runtime error.
type ErrRuntime struct {
	Cycle   int
	Context pic.Context
	Err     error
}

func (err *ErrRuntime) Error() string {
	return f("cycle %d %v: %v", err.Cycle, err.Context, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}

// ErrOwnership is a mainline write to a register the handler owns.
type ErrOwnership struct {
	Register    pic.Register
	Instruction pic.Instruction
}

func (err *ErrOwnership) Error() string {
	return f("%v: %v is owned by the handler once armed", err.Instruction, err.Register)
}
