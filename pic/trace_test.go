package pic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrace_Pulses(t *testing.T) {
	assert := assert.New(t)

	rc1 := Pin{PORT_C, 1}
	tr := &Trace{Events: []Event{
		{Kind: EVENT_PIN, Pin: PIN_RC2, Level: false, Cycle: 1},
		{Kind: EVENT_PIN, Pin: PIN_RC2, Level: true, Cycle: 10},
		{Kind: EVENT_PIN, Pin: rc1, Level: true, Cycle: 11},
		{Kind: EVENT_PIN, Pin: PIN_RC2, Level: false, Cycle: 12},
		{Kind: EVENT_OVERFLOW, Cycle: 13},
		{Kind: EVENT_PIN, Pin: PIN_RC2, Level: true, Cycle: 20},
	}}

	pulses := tr.Pulses(PIN_RC2)
	assert.Equal([]Pulse{{Rise: 10, Fall: 12}}, pulses)
	assert.Equal(2, pulses[0].Width())
	assert.Empty(tr.Pulses(rc1))
}

func TestTrace_Kind(t *testing.T) {
	assert := assert.New(t)

	tr := &Trace{}
	tr.Record(Event{Kind: EVENT_WRITE, Register: REG_TMR0, Cycle: 1})
	tr.Record(Event{Kind: EVENT_OVERFLOW, Cycle: 2})
	tr.Record(Event{Kind: EVENT_WRITE, Register: REG_PORTC, Cycle: 3})

	assert.Equal(2, tr.Count(EVENT_WRITE))
	assert.Equal(0, tr.Count(EVENT_MISSED))

	ev, ok := tr.First(EVENT_OVERFLOW)
	assert.True(ok)
	assert.Equal(2, ev.Cycle)

	_, ok = tr.First(EVENT_DISPATCH)
	assert.False(ok)

	var cycles []int
	for ev := range tr.Writes(REG_PORTC) {
		cycles = append(cycles, ev.Cycle)
	}
	assert.Equal([]int{3}, cycles)

	tr.Reset()
	assert.Empty(tr.Events)
}

func TestEvent_String(t *testing.T) {
	assert := assert.New(t)

	ev := Event{Kind: EVENT_WRITE, Cycle: 7, Register: REG_PORTC, Old: 0, New: 4, Context: CONTEXT_HANDLER}
	assert.Contains(ev.String(), "handler")
	assert.Contains(ev.String(), "PORTC 0x00 -> 0x04")

	ev = Event{Kind: EVENT_PIN, Pin: PIN_RC2, Level: true}
	assert.Contains(ev.String(), "RC2=1")
}
