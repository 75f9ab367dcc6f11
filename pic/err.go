package pic

import (
	"errors"

	"github.com/ezrec/picpulse/translate"
)

var f = translate.From

var (
	ErrClockStopped     = errors.New(f("no oscillator running"))
	ErrRegisterInvalid  = errors.New(f("register invalid"))
	ErrBitInvalid       = errors.New(f("bit invalid"))
	ErrOpcodeInvalid    = errors.New(f("opcode invalid"))
	ErrContextInvalid   = errors.New(f("instruction not allowed in this context"))
	ErrDispatchDisarmed = errors.New(f("dispatch without pending interrupt"))
)

// ErrInstruction reports an instruction the device could not execute.
type ErrInstruction struct {
	Instruction Instruction
	Err         error
}

func (err *ErrInstruction) Error() string {
	return f("%v: %v", err.Instruction, err.Err)
}

func (err *ErrInstruction) Unwrap() error {
	return err.Err
}
