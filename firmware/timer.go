package firmware

import (
	"iter"
	"math/bits"

	"github.com/ezrec/picpulse/pic"
)

// Timer runs Timer0 from the instruction clock.
type Timer struct {
	Prescale int // Zero assigns the prescaler to the watchdog.
}

// Validate checks the prescale ratio.
func (t Timer) Validate() (err error) {
	if t.Prescale == 0 {
		return
	}

	if t.Prescale < 2 || t.Prescale > 256 || bits.OnesCount(uint(t.Prescale)) != 1 {
		err = ErrPrescale
	}

	return
}

// Period returns the overflow period in instruction cycles.
func (t Timer) Period() int {
	if t.Prescale == 0 {
		return pic.TIMER0_PERIOD
	}
	return pic.TIMER0_PERIOD * t.Prescale
}

// Code selects the instruction clock, assigns the prescaler and zeroes
// TMR0.
func (t Timer) Code() iter.Seq[pic.Instruction] {
	return func(yield func(pic.Instruction) bool) {
		if !yield(pic.BCF(pic.BIT_T0CS)) {
			return
		}

		if t.Prescale == 0 {
			if !yield(pic.BSF(pic.BIT_PSA)) {
				return
			}
		} else {
			if !yield(pic.BCF(pic.BIT_PSA)) {
				return
			}
			ps := bits.TrailingZeros(uint(t.Prescale)) - 1
			for n, bit := range []pic.Bit{pic.BIT_PS2, pic.BIT_PS1, pic.BIT_PS0} {
				ins := pic.BCF(bit)
				if ps&(0b100>>n) != 0 {
					ins = pic.BSF(bit)
				}
				if !yield(ins) {
					return
				}
			}
		}

		yield(pic.CLRF(pic.REG_TMR0))
	}
}
