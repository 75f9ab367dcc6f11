package firmware

import (
	"iter"

	"github.com/ezrec/picpulse/pic"
)

// Interrupts arms exactly one interrupt source.
type Interrupts struct {
	Source pic.Source
}

// Code clears every enable and flag, then sets GIE and the source enable.
// The source enable is the last write of the startup sequence that can
// arm the handler.
func (in Interrupts) Code() iter.Seq[pic.Instruction] {
	return func(yield func(pic.Instruction) bool) {
		_ = yield(pic.CLRF(pic.REG_INTCON)) &&
			yield(pic.BSF(pic.BIT_GIE)) &&
			yield(pic.BSF(in.Source.Enable()))
	}
}
