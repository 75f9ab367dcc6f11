// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package firmware

import (
	"iter"
	"maps"
	"slices"

	"github.com/ezrec/picpulse/internal"
	"github.com/ezrec/picpulse/pic"
)

// CONFIG is the configuration word every program is built with: internal
// oscillator, watchdog, power-up timer, MCLR, code protection, brown-out,
// switchover and fail-safe clock monitor all disabled.
var CONFIG = pic.ConfigWord{
	Oscillator: pic.OSC_INTOSC,
	BrownOut:   pic.BOR_OFF,
}

// Handler is an interrupt handler bound to a source at build time.
type Handler struct {
	Source pic.Source
	Code   iter.Seq[pic.Instruction]
}

// Program is a built firmware image.
type Program struct {
	Name     string
	Config   pic.ConfigWord
	Mainline iter.Seq[pic.Instruction] // Startup entry point. Never ends.
	Handler  *Handler                  // Nil if interrupts are not used.
	Owned    []pic.Register            // Registers the mainline may not write once armed.
}

// Options are the build-time parameters of a program.
type Options struct {
	Hz       int     // Internal oscillator frequency.
	Pin      pic.Pin // Output pin.
	Delay    int     // Extra handler cycles after the pulse.
	Prescale int     // Timer0 prescale, zero for none.
}

// DefaultOptions returns the options of the shipped firmware.
func DefaultOptions() Options {
	return Options{
		Hz:  FOSC_HZ,
		Pin: pic.PIN_RC2,
	}
}

// validate checks the options shared by all programs.
func (opts Options) validate() (err error) {
	err = Clock{Hz: opts.Hz}.Validate()
	if err != nil {
		return
	}

	if !opts.Pin.Output() {
		err = ErrPinInvalid
		return
	}

	if opts.Delay < 0 {
		err = ErrDelayInvalid
		return
	}

	err = Timer{Prescale: opts.Prescale}.Validate()

	return
}

// Idle is the loop the mainline parks in: GOTO $, forever.
func Idle() iter.Seq[pic.Instruction] {
	return func(yield func(pic.Instruction) bool) {
		for yield(pic.GOTO()) {
		}
	}
}

// Pulse builds the timer interrupt pulse generator.
func Pulse(opts Options) (prog *Program, err error) {
	err = opts.validate()
	if err != nil {
		return
	}

	handler := PulseHandler{Source: pic.SOURCE_TIMER0, Pin: opts.Pin, Delay: opts.Delay}

	prog = &Program{
		Name:   "pulse",
		Config: CONFIG,
		Mainline: internal.IterSeqConcat(
			Clock{Hz: opts.Hz}.Code(),
			Pins{Groups: []pic.Port{opts.Pin.Port}}.Code(),
			Timer{Prescale: opts.Prescale}.Code(),
			Interrupts{Source: handler.Source}.Code(),
			Idle(),
		),
		Handler: &Handler{
			Source: handler.Source,
			Code:   handler.Code(),
		},
		Owned: []pic.Register{opts.Pin.Port.Data(), pic.REG_INTCON},
	}

	err = prog.Validate()

	return
}

// Toggle builds the busy loop generator: the pin is set and cleared by the
// mainline with no interrupt involved.
func Toggle(opts Options) (prog *Program, err error) {
	err = opts.validate()
	if err != nil {
		return
	}

	latch := opts.Pin.Latch()
	var loop iter.Seq[pic.Instruction] = func(yield func(pic.Instruction) bool) {
		for yield(pic.BSF(latch)) && yield(pic.BCF(latch)) && yield(pic.GOTO()) {
		}
	}

	prog = &Program{
		Name:   "toggle",
		Config: CONFIG,
		Mainline: internal.IterSeqConcat(
			Clock{Hz: opts.Hz}.Code(),
			Pins{Groups: pic.Ports}.Code(),
			loop,
		),
	}

	return
}

// ClockOnly builds a program that only configures the oscillator.
func ClockOnly(opts Options) (prog *Program, err error) {
	err = Clock{Hz: opts.Hz}.Validate()
	if err != nil {
		return
	}

	prog = &Program{
		Name:     "clock",
		Config:   CONFIG,
		Mainline: internal.IterSeqConcat(Clock{Hz: opts.Hz}.Code(), Idle()),
	}

	return
}

var programs = map[string]func(Options) (*Program, error){
	"pulse":  Pulse,
	"toggle": Toggle,
	"clock":  ClockOnly,
}

// Names returns the names of the available programs.
func Names() []string {
	return slices.Sorted(maps.Keys(programs))
}

// New builds a program by name.
func New(name string, opts Options) (prog *Program, err error) {
	build, ok := programs[name]
	if !ok {
		err = ErrProgramUnknown(name)
		return
	}

	return build(opts)
}

// Validate checks the handler binding of a program.
func (prog *Program) Validate() (err error) {
	if prog.Handler == nil {
		return
	}

	if prog.Handler.Source != pic.SOURCE_TIMER0 || prog.Handler.Code == nil {
		err = ErrSourceInvalid
	}

	return
}

// Owns returns true if the handler owns a register once armed.
func (prog *Program) Owns(reg pic.Register) bool {
	return slices.Contains(prog.Owned, reg)
}
