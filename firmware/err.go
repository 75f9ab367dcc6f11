package firmware

import (
	"errors"

	"github.com/ezrec/picpulse/translate"
)

var f = translate.From

var (
	ErrClockFrequency = errors.New(f("internal oscillator frequency not available"))
	ErrPrescale       = errors.New(f("prescale must be a power of two from 2 to 256"))
	ErrPinInvalid     = errors.New(f("pin invalid"))
	ErrDelayInvalid   = errors.New(f("handler delay invalid"))
	ErrSourceInvalid  = errors.New(f("interrupt source invalid"))
)

// ErrProgramUnknown names a program that does not exist.
type ErrProgramUnknown string

func (err ErrProgramUnknown) Error() string {
	return f("program %v unknown", string(err))
}
