package pic

import (
	"time"
)

// Internal oscillator frequencies selected by OSCCON.IRCF<2:0>.
var internalHz = [8]int{
	31_000,
	125_000,
	250_000,
	500_000,
	1_000_000,
	2_000_000,
	4_000_000,
	8_000_000,
}

// CLOCKS_PER_CYCLE is the number of oscillator clocks per instruction cycle.
const CLOCKS_PER_CYCLE = 4

// InternalFrequencyBits returns the IRCF<2:0> value for an internal
// oscillator frequency.
func InternalFrequencyBits(hz int) (ircf uint8, ok bool) {
	for n, freq := range internalHz {
		if freq == hz {
			return uint8(n), true
		}
	}
	return
}

// Fosc returns the current system clock in Hz, or zero if no clock runs.
//
// OSCCON.SCS set selects the internal oscillator; clear defers to the FOSC
// bits of the configuration word.
func (dev *Device) Fosc() int {
	osccon := dev.file[REG_OSCCON]
	if osccon&BIT_SCS.Mask() != 0 || dev.Config.Oscillator.Internal() {
		return internalHz[(osccon>>BIT_IRCF0.Pos)&0b111]
	}

	return dev.ExternalHz
}

// CyclePeriod returns the duration of one instruction cycle.
func (dev *Device) CyclePeriod() time.Duration {
	hz := dev.Fosc()
	if hz == 0 {
		return 0
	}
	return CLOCKS_PER_CYCLE * time.Second / time.Duration(hz)
}
