package firmware

import (
	"iter"

	"github.com/ezrec/picpulse/pic"
)

// PulseHandler acknowledges the interrupt and pulses a pin high for one
// instruction cycle.
type PulseHandler struct {
	Source pic.Source
	Pin    pic.Pin
	Delay  int // NOPs between the pulse and RETFIE.
}

// Code clears the pending flag first, so an overflow during the rest of the
// handler is latched rather than merged with the one being served.
func (ph PulseHandler) Code() iter.Seq[pic.Instruction] {
	latch := ph.Pin.Latch()

	return func(yield func(pic.Instruction) bool) {
		code := []pic.Instruction{
			pic.BCF(ph.Source.Flag()),
			pic.BCF(latch),
			pic.BSF(latch),
			pic.BCF(latch),
		}
		for _, ins := range code {
			if !yield(ins) {
				return
			}
		}

		for range ph.Delay {
			if !yield(pic.NOP()) {
				return
			}
		}

		yield(pic.RETFIE())
	}
}
