package pic

import (
	"fmt"
)

// Port is one of the general purpose I/O ports.
type Port int

//go:generate go tool stringer -linecomment -type=Port
const (
	PORT_A = Port(0) // PORTA
	PORT_B = Port(1) // PORTB
	PORT_C = Port(2) // PORTC
)

var portRegisters = [...]struct {
	data        Register
	tris        Register
	implemented uint8
	name        string
}{
	PORT_A: {REG_PORTA, REG_TRISA, 0x3f, "A"},
	PORT_B: {REG_PORTB, REG_TRISB, 0xf0, "B"},
	PORT_C: {REG_PORTC, REG_TRISC, 0xff, "C"},
}

// Ports lists every port of the device.
var Ports = []Port{PORT_A, PORT_B, PORT_C}

// Data returns the port latch register.
func (p Port) Data() Register {
	return portRegisters[p].data
}

// Tris returns the port direction register.
func (p Port) Tris() Register {
	return portRegisters[p].tris
}

// Implemented returns the mask of pins present on the port.
func (p Port) Implemented() uint8 {
	return portRegisters[p].implemented
}

// Outputs returns the mask of pins that can be driven. RA3 shares its pad
// with MCLR and is input only.
func (p Port) Outputs() uint8 {
	return p.Tris().Writable()
}

// Valid returns true if the port exists.
func (p Port) Valid() bool {
	return p >= 0 && int(p) < len(portRegisters)
}

// Pin is a single I/O pin.
type Pin struct {
	Port  Port
	Index uint8
}

// Named pins.
var (
	PIN_RC2 = Pin{PORT_C, 2}
)

// Valid returns true if the pin is present on the device.
func (p Pin) Valid() bool {
	return p.Port.Valid() && p.Index < 8 && p.Port.Implemented()&(1<<p.Index) != 0
}

// Output returns true if the pin can be driven.
func (p Pin) Output() bool {
	return p.Valid() && p.Port.Outputs()&(1<<p.Index) != 0
}

// Latch returns the data latch bit driving the pin.
func (p Pin) Latch() Bit {
	return Bit{p.Port.Data(), p.Index}
}

// Direction returns the TRIS bit for the pin.
func (p Pin) Direction() Bit {
	return Bit{p.Port.Tris(), p.Index}
}

// Analog returns the ANSEL/ANSELH bit of the pin, if the pin has an analog
// channel.
func (p Pin) Analog() (bit Bit, ok bool) {
	channel, ok := analogChannel[p]
	if !ok {
		return
	}

	if channel < 8 {
		bit = Bit{REG_ANSEL, channel}
	} else {
		bit = Bit{REG_ANSELH, channel - 8}
	}

	return
}

func (p Pin) String() string {
	return fmt.Sprintf("R%v%d", portRegisters[p.Port].name, p.Index)
}

// analogChannel maps pins to their ANx channel.
var analogChannel = map[Pin]uint8{
	{PORT_A, 0}: 0,
	{PORT_A, 1}: 1,
	{PORT_A, 2}: 2,
	{PORT_A, 4}: 3,
	{PORT_C, 0}: 4,
	{PORT_C, 1}: 5,
	{PORT_C, 2}: 6,
	{PORT_C, 3}: 7,
	{PORT_C, 6}: 8,
	{PORT_C, 7}: 9,
	{PORT_B, 4}: 10,
	{PORT_B, 5}: 11,
}

// Pins returns the implemented pins of the port.
func (p Port) Pins() (pins []Pin) {
	for index := range uint8(8) {
		if p.Implemented()&(1<<index) != 0 {
			pins = append(pins, Pin{p, index})
		}
	}
	return
}

// Direction of a pin.
type Direction int

//go:generate go tool stringer -linecomment -type=Direction
const (
	DIR_OUT = Direction(0) // out
	DIR_IN  = Direction(1) // in
)

// Mode of a pin's input buffer.
type Mode int

//go:generate go tool stringer -linecomment -type=Mode
const (
	MODE_DIGITAL = Mode(0) // digital
	MODE_ANALOG  = Mode(1) // analog
)

// PinState is the observable configuration and level of a pin.
type PinState struct {
	Direction Direction
	Mode      Mode
	Level     bool // Driven level; false when the pin is an input.
}

// Driven returns true if the pin is driven by its latch.
func (ps PinState) Driven() bool {
	return ps.Direction == DIR_OUT
}

func (ps PinState) String() string {
	level := "z"
	if ps.Driven() {
		level = "0"
		if ps.Level {
			level = "1"
		}
	}
	return fmt.Sprintf("%v/%v/%v", ps.Direction, ps.Mode, level)
}
