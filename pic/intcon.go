package pic

import (
	"log"
)

// DISPATCH_CYCLES is the cost of vectoring to the interrupt handler.
const DISPATCH_CYCLES = 2

// IntState is the state of the interrupt controller as seen by the firmware.
// While DISARMED the Timer0 interrupt cannot preempt the mainline. ARMED
// means GIE and T0IE are both set. DISPATCHING means the handler is running.
type IntState int

//go:generate go tool stringer -linecomment -type=IntState
const (
	INT_DISARMED    = IntState(0) // DISARMED
	INT_ARMED       = IntState(1) // ARMED
	INT_DISPATCHING = IntState(2) // DISPATCHING
)

// Source is an interrupt source with an enable and a flag bit in INTCON.
type Source int

//go:generate go tool stringer -linecomment -type=Source
const (
	SOURCE_TIMER0 = Source(0) // TMR0
	SOURCE_INT    = Source(1) // INT
	SOURCE_RAB    = Source(2) // RAB
)

var sourceBits = [...]struct {
	enable Bit
	flag   Bit
}{
	SOURCE_TIMER0: {BIT_T0IE, BIT_T0IF},
	SOURCE_INT:    {BIT_INTE, BIT_INTF},
	SOURCE_RAB:    {BIT_RABIE, BIT_RABIF},
}

// Enable returns the source enable bit.
func (src Source) Enable() Bit {
	return sourceBits[src].enable
}

// Flag returns the source pending flag bit.
func (src Source) Flag() Bit {
	return sourceBits[src].flag
}

// Valid returns true if the source exists.
func (src Source) Valid() bool {
	return src >= 0 && int(src) < len(sourceBits)
}

// State returns the interrupt controller state.
func (dev *Device) State() IntState {
	if dev.context == CONTEXT_HANDLER {
		return INT_DISPATCHING
	}

	intcon := dev.file[REG_INTCON]
	armed := BIT_GIE.Mask() | BIT_T0IE.Mask()
	if intcon&armed == armed {
		return INT_ARMED
	}

	return INT_DISARMED
}

// Armed returns true once the Timer0 interrupt has been armed.
func (dev *Device) Armed() bool {
	return dev.ArmedAt >= 0
}

// Pending returns the source that would be dispatched at the next
// instruction boundary.
func (dev *Device) Pending() (src Source, ok bool) {
	intcon := dev.file[REG_INTCON]
	if intcon&BIT_GIE.Mask() == 0 {
		return
	}

	for n, bits := range sourceBits {
		if intcon&bits.enable.Mask() != 0 && intcon&bits.flag.Mask() != 0 {
			return Source(n), true
		}
	}

	return
}

// Dispatch vectors to the interrupt handler. GIE is cleared so the handler
// cannot be preempted.
func (dev *Device) Dispatch() (src Source, err error) {
	src, ok := dev.Pending()
	if !ok {
		err = ErrDispatchDisarmed
		return
	}

	if dev.Fosc() == 0 {
		err = ErrClockStopped
		return
	}

	dev.file[REG_INTCON] &^= BIT_GIE.Mask()
	dev.context = CONTEXT_HANDLER
	dev.Dispatches++
	dev.record(Event{Kind: EVENT_DISPATCH})

	if dev.Verbose {
		log.Printf("pic: dispatch %v at cycle %d", src, dev.Cycles)
	}

	for range DISPATCH_CYCLES {
		dev.cycle()
	}

	return
}

// retfie returns from the handler.
func (dev *Device) retfie() {
	dev.record(Event{Kind: EVENT_RETURN})
	dev.file[REG_INTCON] |= BIT_GIE.Mask()
	dev.context = CONTEXT_MAINLINE
}

// checkArmed records the first transition to INT_ARMED.
func (dev *Device) checkArmed() {
	if dev.Armed() || dev.State() != INT_ARMED {
		return
	}

	dev.ArmedAt = dev.Cycles
	dev.record(Event{Kind: EVENT_ARMED})

	if dev.Verbose {
		log.Printf("pic: armed at cycle %d", dev.Cycles)
	}
}
