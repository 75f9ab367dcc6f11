package firmware

import (
	"iter"

	"github.com/ezrec/picpulse/pic"
)

// FOSC_HZ is the operating frequency of the pulse firmware.
const FOSC_HZ = 8_000_000

// Clock selects the internal oscillator at a fixed frequency.
type Clock struct {
	Hz int
}

// Validate checks the frequency is one of the internal oscillator taps.
func (c Clock) Validate() (err error) {
	if _, ok := pic.InternalFrequencyBits(c.Hz); !ok {
		err = ErrClockFrequency
	}
	return
}

// Code sets IRCF<2:0>, then switches the system clock to the internal
// oscillator.
func (c Clock) Code() iter.Seq[pic.Instruction] {
	ircf, _ := pic.InternalFrequencyBits(c.Hz)

	return func(yield func(pic.Instruction) bool) {
		for n, bit := range []pic.Bit{pic.BIT_IRCF2, pic.BIT_IRCF1, pic.BIT_IRCF0} {
			ins := pic.BCF(bit)
			if ircf&(0b100>>n) != 0 {
				ins = pic.BSF(bit)
			}
			if !yield(ins) {
				return
			}
		}

		yield(pic.BSF(pic.BIT_SCS))
	}
}
