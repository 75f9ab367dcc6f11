package pic

import (
	"fmt"
	"iter"
	"time"
)

// Context is the execution context of the core.
type Context int

//go:generate go tool stringer -linecomment -type=Context
const (
	CONTEXT_MAINLINE = Context(0) // mainline
	CONTEXT_HANDLER  = Context(1) // handler
)

// EventKind classifies trace events. A missed event is a Timer0 overflow
// that found T0IF already set; armed is recorded once, the first time GIE
// and T0IE are both set.
type EventKind int

//go:generate go tool stringer -linecomment -type=EventKind
const (
	EVENT_WRITE    = EventKind(0) // write
	EVENT_PIN      = EventKind(1) // pin
	EVENT_OVERFLOW = EventKind(2) // overflow
	EVENT_MISSED   = EventKind(3) // missed
	EVENT_DISPATCH = EventKind(4) // dispatch
	EVENT_RETURN   = EventKind(5) // return
	EVENT_ARMED    = EventKind(6) // armed
)

// Event is a single trace record. Cycle is the count of completed
// instruction cycles when the event became visible.
type Event struct {
	Kind     EventKind
	Cycle    int
	Time     time.Duration
	Context  Context
	Register Register // EVENT_WRITE
	Old      uint8    // EVENT_WRITE
	New      uint8    // EVENT_WRITE
	Pin      Pin      // EVENT_PIN
	Level    bool     // EVENT_PIN
}

func (ev Event) String() string {
	head := fmt.Sprintf("%8d %12v %-8v %-8v", ev.Cycle, ev.Time, ev.Context, ev.Kind)
	switch ev.Kind {
	case EVENT_WRITE:
		return fmt.Sprintf("%v %v 0x%02x -> 0x%02x", head, ev.Register, ev.Old, ev.New)
	case EVENT_PIN:
		level := 0
		if ev.Level {
			level = 1
		}
		return fmt.Sprintf("%v %v=%d", head, ev.Pin, level)
	default:
		return head
	}
}

// Trace records device events in order.
type Trace struct {
	Events []Event
}

// Record appends an event.
func (tr *Trace) Record(ev Event) {
	tr.Events = append(tr.Events, ev)
}

// Reset discards all events.
func (tr *Trace) Reset() {
	tr.Events = tr.Events[:0]
}

// Kind iterates over events of one kind.
func (tr *Trace) Kind(kind EventKind) iter.Seq[Event] {
	return func(yield func(Event) bool) {
		for _, ev := range tr.Events {
			if ev.Kind == kind && !yield(ev) {
				return
			}
		}
	}
}

// Count returns the number of events of a kind.
func (tr *Trace) Count(kind EventKind) (count int) {
	for range tr.Kind(kind) {
		count++
	}
	return
}

// First returns the first event of a kind.
func (tr *Trace) First(kind EventKind) (ev Event, ok bool) {
	for ev = range tr.Kind(kind) {
		return ev, true
	}
	return Event{}, false
}

// Writes iterates over the software writes to a register.
func (tr *Trace) Writes(reg Register) iter.Seq[Event] {
	return func(yield func(Event) bool) {
		for ev := range tr.Kind(EVENT_WRITE) {
			if ev.Register == reg && !yield(ev) {
				return
			}
		}
	}
}

// Pulse is a high period of a pin, in instruction cycles.
type Pulse struct {
	Rise int
	Fall int
}

// Width returns the high time in instruction cycles.
func (p Pulse) Width() int {
	return p.Fall - p.Rise
}

// Pulses returns the completed high pulses seen on a pin.
func (tr *Trace) Pulses(pin Pin) (pulses []Pulse) {
	rise := -1
	for ev := range tr.Kind(EVENT_PIN) {
		if ev.Pin != pin {
			continue
		}
		switch {
		case ev.Level:
			rise = ev.Cycle
		case rise >= 0:
			pulses = append(pulses, Pulse{Rise: rise, Fall: ev.Cycle})
			rise = -1
		}
	}
	return
}
