package pic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigWord_Word(t *testing.T) {
	assert := assert.New(t)

	cw := ConfigWord{Oscillator: OSC_INTOSC, BrownOut: BOR_OFF}
	assert.Equal(uint16(0x30D5), cw.Word())

	// Erased part.
	assert.Equal(uint16(0x3FFF), ParseConfigWord(0x3FFF).Word())
}

func TestConfigWord_Parse(t *testing.T) {
	assert := assert.New(t)

	cw := ParseConfigWord(0x3FFF)
	assert.Equal(OSC_EXTRC, cw.Oscillator)
	assert.True(cw.Watchdog)
	assert.False(cw.PowerUpTimer)
	assert.True(cw.MasterClear)
	assert.False(cw.CodeProtect)
	assert.False(cw.DataProtect)
	assert.Equal(BOR_ON, cw.BrownOut)
	assert.True(cw.Switchover)
	assert.True(cw.FailSafe)

	cw = ParseConfigWord(0x30D5)
	assert.Equal(ConfigWord{Oscillator: OSC_INTOSC, BrownOut: BOR_OFF}, cw)
}

func TestConfigWord_ActiveLow(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		name string
		cw   ConfigWord
		bit  uint16
	}{
		{"pwrte", ConfigWord{PowerUpTimer: true}, config_pwrte},
		{"cp", ConfigWord{CodeProtect: true}, config_cp},
		{"cpd", ConfigWord{DataProtect: true}, config_cpd},
	}

	for _, entry := range table {
		assert.Zero(entry.cw.Word()&entry.bit, entry.name)
		assert.Equal(entry.cw, ParseConfigWord(entry.cw.Word()), entry.name)
	}
}

func TestConfigWord_String(t *testing.T) {
	assert := assert.New(t)

	cw := ParseConfigWord(0x30D5)
	assert.Equal("FOSC_INTOSC & WDTE_OFF & PWRTE_OFF & MCLRE_OFF & CP_OFF & CPD_OFF & BOR_OFF & IESO_OFF & FCMEN_OFF", cw.String())
}
