package pic

import (
	"fmt"
	"iter"
	"maps"
)

// Register is a special function register file address, including the bank
// bits (0x000-0x1FF).
type Register uint16

// Special function registers used by the pulse firmware.
const (
	REG_TMR0       = Register(0x001)
	REG_STATUS     = Register(0x003)
	REG_PORTA      = Register(0x005)
	REG_PORTB      = Register(0x006)
	REG_PORTC      = Register(0x007)
	REG_INTCON     = Register(0x00B)
	REG_OPTION_REG = Register(0x081)
	REG_TRISA      = Register(0x085)
	REG_TRISB      = Register(0x086)
	REG_TRISC      = Register(0x087)
	REG_OSCCON     = Register(0x08F)
	REG_ANSEL      = Register(0x11E)
	REG_ANSELH     = Register(0x11F)
)

var registerName = map[Register]string{
	REG_TMR0:       "TMR0",
	REG_STATUS:     "STATUS",
	REG_PORTA:      "PORTA",
	REG_PORTB:      "PORTB",
	REG_PORTC:      "PORTC",
	REG_INTCON:     "INTCON",
	REG_OPTION_REG: "OPTION_REG",
	REG_TRISA:      "TRISA",
	REG_TRISB:      "TRISB",
	REG_TRISC:      "TRISC",
	REG_OSCCON:     "OSCCON",
	REG_ANSEL:      "ANSEL",
	REG_ANSELH:     "ANSELH",
}

// registerSpec holds the power-on value and the software writable bits.
type registerSpec struct {
	reset    uint8
	writable uint8
}

var registerSpecs = map[Register]registerSpec{
	REG_TMR0:       {0x00, 0xff},
	REG_STATUS:     {0x18, 0xe7}, // TO and PD are read-only.
	REG_PORTA:      {0x00, 0x3f},
	REG_PORTB:      {0x00, 0xf0},
	REG_PORTC:      {0x00, 0xff},
	REG_INTCON:     {0x00, 0xff},
	REG_OPTION_REG: {0xff, 0xff},
	REG_TRISA:      {0x3f, 0x37}, // RA3 is input only.
	REG_TRISB:      {0xf0, 0xf0},
	REG_TRISC:      {0xff, 0xff},
	REG_OSCCON:     {0x60, 0x71}, // OSTS, HTS and LTS are status.
	REG_ANSEL:      {0xff, 0xff},
	REG_ANSELH:     {0x0f, 0x0f},
}

// Valid returns true if the register is modelled.
func (reg Register) Valid() bool {
	_, ok := registerSpecs[reg]
	return ok
}

// Writable returns the mask of bits software may change.
func (reg Register) Writable() uint8 {
	return registerSpecs[reg].writable
}

func (reg Register) String() string {
	name, ok := registerName[reg]
	if !ok {
		return fmt.Sprintf("0x%03x", uint16(reg))
	}
	return name
}

// Bit is a single named bit of a register.
type Bit struct {
	Register Register
	Pos      uint8
}

// Mask returns the bit as a register mask.
func (b Bit) Mask() uint8 {
	return 1 << b.Pos
}

// Valid returns true if the bit is a writable bit of a modelled register.
func (b Bit) Valid() bool {
	return b.Pos < 8 && b.Register.Valid() && (b.Register.Writable()&b.Mask()) != 0
}

func (b Bit) String() string {
	name, ok := bitName[b]
	if ok {
		return name
	}
	return fmt.Sprintf("%v,%d", b.Register, b.Pos)
}

// Named bits.
var (
	BIT_Z = Bit{REG_STATUS, 2}

	BIT_GIE   = Bit{REG_INTCON, 7}
	BIT_PEIE  = Bit{REG_INTCON, 6}
	BIT_T0IE  = Bit{REG_INTCON, 5}
	BIT_INTE  = Bit{REG_INTCON, 4}
	BIT_RABIE = Bit{REG_INTCON, 3}
	BIT_T0IF  = Bit{REG_INTCON, 2}
	BIT_INTF  = Bit{REG_INTCON, 1}
	BIT_RABIF = Bit{REG_INTCON, 0}

	BIT_T0CS = Bit{REG_OPTION_REG, 5}
	BIT_T0SE = Bit{REG_OPTION_REG, 4}
	BIT_PSA  = Bit{REG_OPTION_REG, 3}
	BIT_PS2  = Bit{REG_OPTION_REG, 2}
	BIT_PS1  = Bit{REG_OPTION_REG, 1}
	BIT_PS0  = Bit{REG_OPTION_REG, 0}

	BIT_IRCF2 = Bit{REG_OSCCON, 6}
	BIT_IRCF1 = Bit{REG_OSCCON, 5}
	BIT_IRCF0 = Bit{REG_OSCCON, 4}
	BIT_SCS   = Bit{REG_OSCCON, 0}
)

var bitName = map[Bit]string{
	BIT_Z:     "Z",
	BIT_GIE:   "GIE",
	BIT_PEIE:  "PEIE",
	BIT_T0IE:  "T0IE",
	BIT_INTE:  "INTE",
	BIT_RABIE: "RABIE",
	BIT_T0IF:  "T0IF",
	BIT_INTF:  "INTF",
	BIT_RABIF: "RABIF",
	BIT_T0CS:  "T0CS",
	BIT_T0SE:  "T0SE",
	BIT_PSA:   "PSA",
	BIT_PS2:   "PS2",
	BIT_PS1:   "PS1",
	BIT_PS0:   "PS0",
	BIT_IRCF2: "IRCF2",
	BIT_IRCF1: "IRCF1",
	BIT_IRCF0: "IRCF0",
	BIT_SCS:   "SCS",
}

var _register_defines = func() map[string]string {
	defines := map[string]string{}
	for reg, name := range registerName {
		defines[name] = fmt.Sprintf("0x%03x", uint16(reg))
	}
	for bit, name := range bitName {
		defines[name] = fmt.Sprintf("%d", bit.Pos)
	}
	return defines
}()

// Defines returns the register addresses and bit positions by name.
func Defines() iter.Seq2[string, string] {
	return maps.All(_register_defines)
}
