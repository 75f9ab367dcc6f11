package emulator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/picpulse/pic"
)

func TestReport_NoTrace(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	emu.Program = pulseProgram(t, 0)
	assert.NoError(emu.Reset())
	defer emu.Close()

	_, err := emu.Run(3 * pic.TIMER0_PERIOD)
	assert.NoError(err)

	rep := emu.Report(pic.PIN_RC2)
	assert.Equal("pulse", rep.Program)
	assert.Equal(emu.Overflows, rep.Overflows)
	assert.Equal(emu.Dispatches, rep.Dispatches)
	assert.Equal(0, rep.Pulses)
	assert.Contains(rep.String(), "program:    pulse")
}
