package pic

import (
	"strings"
)

// CONFIG_ADDRESS is the program memory address of the configuration word.
const CONFIG_ADDRESS = 0x2007

// Oscillator is the FOSC<2:0> oscillator selection. The IO variants free
// RA4 for I/O; the others drive CLKOUT on it.
type Oscillator uint8

//go:generate go tool stringer -linecomment -type=Oscillator
const (
	OSC_LP       = Oscillator(0b000) // LP
	OSC_XT       = Oscillator(0b001) // XT
	OSC_HS       = Oscillator(0b010) // HS
	OSC_EC       = Oscillator(0b011) // EC
	OSC_INTOSCIO = Oscillator(0b100) // INTOSCIO
	OSC_INTOSC   = Oscillator(0b101) // INTOSC
	OSC_EXTRCIO  = Oscillator(0b110) // EXTRCIO
	OSC_EXTRC    = Oscillator(0b111) // EXTRC
)

// Internal returns true if the oscillator selection is the internal oscillator.
func (osc Oscillator) Internal() bool {
	return osc == OSC_INTOSCIO || osc == OSC_INTOSC
}

// BrownOut is the BOREN<1:0> brown-out reset selection.
type BrownOut uint8

//go:generate go tool stringer -linecomment -type=BrownOut
const (
	BOR_OFF    = BrownOut(0b00) // OFF
	BOR_SBODEN = BrownOut(0b01) // SBODEN
	BOR_NSLEEP = BrownOut(0b10) // NSLEEP
	BOR_ON     = BrownOut(0b11) // ON
)

// ConfigWord is the device configuration word, written once when the part
// is programmed. Each field states the option as enabled (true) or disabled,
// regardless of the polarity of its bit.
type ConfigWord struct {
	Oscillator   Oscillator
	Watchdog     bool // WDTE
	PowerUpTimer bool // PWRTE, active low
	MasterClear  bool // MCLRE
	CodeProtect  bool // CP, active low
	DataProtect  bool // CPD, active low
	BrownOut     BrownOut
	Switchover   bool // IESO
	FailSafe     bool // FCMEN
}

const (
	config_wdte       = 1 << 3
	config_pwrte      = 1 << 4
	config_mclre      = 1 << 5
	config_cp         = 1 << 6
	config_cpd        = 1 << 7
	config_boren_pos  = 8
	config_ieso       = 1 << 10
	config_fcmen      = 1 << 11
	config_unused     = 0b11 << 12
	config_word_width = 0x3fff
)

// Word assembles the 14-bit configuration word.
func (cw ConfigWord) Word() (word uint16) {
	word = config_unused
	word |= uint16(cw.Oscillator & 0b111)
	word |= uint16(cw.BrownOut&0b11) << config_boren_pos

	set := func(on bool, mask uint16) {
		if on {
			word |= mask
		}
	}

	set(cw.Watchdog, config_wdte)
	set(!cw.PowerUpTimer, config_pwrte)
	set(cw.MasterClear, config_mclre)
	set(!cw.CodeProtect, config_cp)
	set(!cw.DataProtect, config_cpd)
	set(cw.Switchover, config_ieso)
	set(cw.FailSafe, config_fcmen)

	return
}

// ParseConfigWord splits a 14-bit configuration word into its fields.
func ParseConfigWord(word uint16) (cw ConfigWord) {
	word &= config_word_width

	cw = ConfigWord{
		Oscillator:   Oscillator(word & 0b111),
		Watchdog:     word&config_wdte != 0,
		PowerUpTimer: word&config_pwrte == 0,
		MasterClear:  word&config_mclre != 0,
		CodeProtect:  word&config_cp == 0,
		DataProtect:  word&config_cpd == 0,
		BrownOut:     BrownOut(word>>config_boren_pos) & 0b11,
		Switchover:   word&config_ieso != 0,
		FailSafe:     word&config_fcmen != 0,
	}

	return
}

func (cw ConfigWord) String() string {
	onoff := func(name string, on bool) string {
		if on {
			return name + "_ON"
		}
		return name + "_OFF"
	}

	parts := []string{
		"FOSC_" + cw.Oscillator.String(),
		onoff("WDTE", cw.Watchdog),
		onoff("PWRTE", cw.PowerUpTimer),
		onoff("MCLRE", cw.MasterClear),
		onoff("CP", cw.CodeProtect),
		onoff("CPD", cw.DataProtect),
		"BOR_" + cw.BrownOut.String(),
		onoff("IESO", cw.Switchover),
		onoff("FCMEN", cw.FailSafe),
	}

	return strings.Join(parts, " & ")
}
