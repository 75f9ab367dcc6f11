// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package pic

import (
	"fmt"
	"log"
	"time"
)

// FILE_SIZE is the size of the register file address space, all banks.
const FILE_SIZE = 0x200

// Device is the simulation context for a PIC16F690.
type Device struct {
	Verbose    bool       // If set, enables verbose logging.
	Config     ConfigWord // Configuration word the part was programmed with.
	ExternalHz int        // Clock on OSC1 when FOSC selects an external source.
	Trace      *Trace     // If set, receives every device event.

	W       uint8         // Working register.
	Cycles  int           // Instruction cycles since reset.
	Elapsed time.Duration // Time since reset.

	Overflows  int // Timer0 overflows since reset.
	Missed     int // Timer0 overflows lost to a still set T0IF.
	Dispatches int // Handler dispatches since reset.
	ArmedAt    int // Cycle of the first arming, or -1.

	file      [FILE_SIZE]uint8
	input     [3]uint8 // Externally driven levels, per port.
	context   Context
	prescaler int
	t0cki     bool
	tmr0Hold  bool
	inflight  int // Cycles of the executing instruction not yet elapsed.
}

// NewDevice creates a device programmed with a configuration word.
func NewDevice(config ConfigWord) (dev *Device) {
	dev = &Device{
		Config: config,
	}

	dev.Reset()

	return
}

// Reset performs a power-on reset. No state survives.
func (dev *Device) Reset() {
	if dev.Verbose {
		log.Printf("pic: reset, config 0x%04x (%v)", dev.Config.Word(), dev.Config)
	}

	clear(dev.file[:])
	for reg, spec := range registerSpecs {
		dev.file[reg] = spec.reset
	}

	dev.W = 0
	dev.Cycles = 0
	dev.Elapsed = 0
	dev.Overflows = 0
	dev.Missed = 0
	dev.Dispatches = 0
	dev.ArmedAt = -1
	dev.context = CONTEXT_MAINLINE
	dev.prescaler = 0
	dev.t0cki = false
	dev.tmr0Hold = false
	dev.inflight = 0

	if dev.Trace != nil {
		dev.Trace.Reset()
	}
}

// Context returns the context executing instructions.
func (dev *Device) Context() Context {
	return dev.context
}

// Register returns the raw content of a register.
func (dev *Device) Register(reg Register) uint8 {
	return dev.file[reg%FILE_SIZE]
}

// Pin returns the configuration and driven level of a pin.
func (dev *Device) Pin(pin Pin) (ps PinState) {
	ps.Direction = DIR_OUT
	if dev.file[pin.Port.Tris()]&(1<<pin.Index) != 0 {
		ps.Direction = DIR_IN
	}

	ps.Mode = MODE_DIGITAL
	if bit, ok := pin.Analog(); ok && dev.file[bit.Register]&bit.Mask() != 0 {
		ps.Mode = MODE_ANALOG
	}

	if ps.Direction == DIR_OUT {
		ps.Level = dev.file[pin.Port.Data()]&(1<<pin.Index) != 0
	}

	return
}

// SetInput drives a pin from outside the device. The level is only seen
// while the pin is a digital input.
func (dev *Device) SetInput(pin Pin, level bool) {
	if level {
		dev.input[pin.Port] |= 1 << pin.Index
	} else {
		dev.input[pin.Port] &^= 1 << pin.Index
	}
}

// port returns the port a data or direction register belongs to.
func port(reg Register) (p Port, ok bool) {
	for _, p = range Ports {
		if reg == p.Data() || reg == p.Tris() {
			return p, true
		}
	}
	return
}

// read returns a register as an instruction sees it. Port reads return the
// pin levels, not the latch.
func (dev *Device) read(reg Register) uint8 {
	p, ok := port(reg)
	if !ok || reg != p.Data() {
		return dev.file[reg]
	}

	tris := dev.file[p.Tris()]
	value := dev.file[reg] &^ tris

	for _, pin := range p.Pins() {
		if tris&(1<<pin.Index) == 0 {
			continue
		}
		if dev.Pin(pin).Mode == MODE_ANALOG {
			continue
		}
		value |= dev.input[p] & (1 << pin.Index)
	}

	return value & p.Implemented()
}

// write performs a software write of a register.
func (dev *Device) write(reg Register, value uint8) {
	writable := reg.Writable()
	old := dev.file[reg]
	value = (old &^ writable) | (value & writable)

	p, isPort := port(reg)
	var before []PinState
	if isPort {
		for _, pin := range p.Pins() {
			before = append(before, dev.Pin(pin))
		}
	}

	dev.file[reg] = value

	switch reg {
	case REG_TMR0:
		if dev.PrescaleRatio() > 1 {
			dev.prescaler = 0
		}
		dev.tmr0Hold = true
	case REG_OSCCON:
		if dev.Verbose && old != value {
			log.Printf("pic: fosc %d Hz", dev.Fosc())
		}
	}

	dev.record(Event{Kind: EVENT_WRITE, Register: reg, Old: old, New: value})

	if isPort {
		for n, pin := range p.Pins() {
			after := dev.Pin(pin)
			if after.Level != before[n].Level {
				dev.record(Event{Kind: EVENT_PIN, Pin: pin, Level: after.Level})
			}
		}
	}
}

// validate checks the operands of an instruction.
func (dev *Device) validate(ins Instruction) (err error) {
	switch ins.Op {
	case OP_NOP, OP_MOVLW, OP_GOTO:
	case OP_RETFIE:
		if dev.context != CONTEXT_HANDLER {
			err = ErrContextInvalid
		}
	case OP_BCF, OP_BSF:
		if !ins.Bit().Valid() {
			err = ErrBitInvalid
		}
	case OP_CLRF, OP_MOVWF:
		if !ins.Register.Valid() {
			err = ErrRegisterInvalid
		}
	default:
		err = ErrOpcodeInvalid
	}

	if err != nil {
		err = &ErrInstruction{Instruction: ins, Err: err}
	}

	return
}

// Execute runs one instruction in the current context, then advances the
// oscillator and Timer0 by the instruction's cycles.
func (dev *Device) Execute(ins Instruction) (err error) {
	err = dev.validate(ins)
	if err != nil {
		return
	}

	if dev.Fosc() == 0 {
		err = ErrClockStopped
		return
	}

	cycles := ins.Cycles()

	// Effects are stamped at the end of the instruction.
	dev.inflight = cycles
	switch ins.Op {
	case OP_BCF:
		dev.write(ins.Register, dev.read(ins.Register)&^ins.Bit().Mask())
	case OP_BSF:
		dev.write(ins.Register, dev.read(ins.Register)|ins.Bit().Mask())
	case OP_CLRF:
		dev.write(ins.Register, 0)
		dev.file[REG_STATUS] |= BIT_Z.Mask()
	case OP_MOVLW:
		dev.W = ins.Literal
	case OP_MOVWF:
		dev.write(ins.Register, dev.W)
	case OP_RETFIE:
		dev.retfie()
	}
	dev.inflight = 0

	for range cycles {
		dev.cycle()
	}

	dev.checkArmed()

	return
}

// cycle advances one instruction cycle.
func (dev *Device) cycle() {
	dev.Cycles++
	dev.Elapsed += dev.CyclePeriod()
	dev.timerCycle()
}

// record stamps and appends an event to the trace.
func (dev *Device) record(ev Event) {
	if dev.Trace == nil {
		return
	}

	ev.Cycle = dev.Cycles + dev.inflight
	ev.Time = dev.Elapsed + time.Duration(dev.inflight)*dev.CyclePeriod()
	ev.Context = dev.context
	dev.Trace.Record(ev)
}

// String returns the device state as a string.
func (dev *Device) String() (text string) {
	text += fmt.Sprintf("%10s: %d Hz\n", "fosc", dev.Fosc())
	text += fmt.Sprintf("%10s: %d\n", "cycles", dev.Cycles)
	text += fmt.Sprintf("%10s: %v\n", "elapsed", dev.Elapsed)
	text += fmt.Sprintf("%10s: %v\n", "context", dev.context)
	text += fmt.Sprintf("%10s: %v\n", "state", dev.State())
	text += fmt.Sprintf("%10s: 0x%02x\n", "W", dev.W)

	regs := []Register{
		REG_OSCCON, REG_OPTION_REG, REG_TMR0, REG_INTCON,
		REG_ANSEL, REG_ANSELH,
		REG_TRISA, REG_TRISB, REG_TRISC,
		REG_PORTA, REG_PORTB, REG_PORTC,
	}
	for _, reg := range regs {
		text += fmt.Sprintf("%10v: 0x%02x\n", reg, dev.file[reg])
	}

	return
}
