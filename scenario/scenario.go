// Package scenario loads simulation runs described in Starlark.
//
// A scenario file assigns any of the settings below as globals. Register
// addresses, bit positions and emulator constants are predeclared, so
// settings can be computed:
//
//	program = "pulse"
//	cycles = 100 * TIMER0_PERIOD
//	delay = TIMER0_PERIOD + 8
//	trace = True
//
// Globals starting with an underscore are private to the file.
package scenario

import (
	"io"
	"iter"
	"log"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/picpulse/firmware"
	"github.com/ezrec/picpulse/pic"
)

// Scenario is one simulation run.
type Scenario struct {
	Program  string // Firmware program name.
	Cycles   int    // Instruction cycles to run.
	Hz       int    // Internal oscillator frequency.
	Pin      string // Output pin, e.g. "RC2".
	Delay    int    // Extra handler cycles after the pulse.
	Prescale int    // Timer0 prescale, zero for none.
	Trace    bool   // Record and print the event trace.
}

// Default returns the scenario of the shipped firmware.
func Default() Scenario {
	opts := firmware.DefaultOptions()

	return Scenario{
		Program: "pulse",
		Cycles:  100 * pic.TIMER0_PERIOD,
		Hz:      opts.Hz,
		Pin:     opts.Pin.String(),
	}
}

// ParsePin parses a pin name such as "RC2".
func ParsePin(name string) (pin pic.Pin, err error) {
	name = strings.ToUpper(strings.TrimSpace(name))
	if len(name) != 3 || name[0] != 'R' || name[2] < '0' || name[2] > '7' {
		err = ErrPinSyntax
		return
	}

	switch name[1] {
	case 'A':
		pin.Port = pic.PORT_A
	case 'B':
		pin.Port = pic.PORT_B
	case 'C':
		pin.Port = pic.PORT_C
	default:
		err = ErrPinSyntax
		return
	}

	pin.Index = name[2] - '0'

	return
}

// Options returns the firmware build options of the scenario.
func (sc Scenario) Options() (opts firmware.Options, err error) {
	pin, err := ParsePin(sc.Pin)
	if err != nil {
		return
	}

	opts = firmware.Options{
		Hz:       sc.Hz,
		Pin:      pin,
		Delay:    sc.Delay,
		Prescale: sc.Prescale,
	}

	return
}

// Build builds the scenario's firmware program.
func (sc Scenario) Build() (prog *firmware.Program, err error) {
	opts, err := sc.Options()
	if err != nil {
		return
	}

	return firmware.New(sc.Program, opts)
}

// Parse evaluates a scenario file on top of the defaults. Every define
// with an integer value is predeclared.
func Parse(name string, r io.Reader, defines iter.Seq2[string, string]) (sc Scenario, err error) {
	sc = Default()

	defer func() {
		if err != nil {
			err = &ErrScenario{Name: name, Err: err}
		}
	}()

	src, err := io.ReadAll(r)
	if err != nil {
		return
	}

	pred := starlark.StringDict{}
	for key, str := range defines {
		value, perr := strconv.ParseInt(str, 0, 64)
		if perr != nil {
			// Not every define is a number.
			continue
		}
		pred[key] = starlark.MakeInt64(value)
	}

	thread := &starlark.Thread{
		Name: name,
		Print: func(_ *starlark.Thread, msg string) {
			log.Printf("%v: %v", name, msg)
		},
	}

	opts := syntax.FileOptions{}
	globals, err := starlark.ExecFileOptions(&opts, thread, name, src, pred)
	if err != nil {
		return
	}

	for _, key := range globals.Keys() {
		if strings.HasPrefix(key, "_") {
			continue
		}
		err = sc.set(key, globals[key])
		if err != nil {
			return
		}
	}

	return
}

// set assigns one setting from a Starlark value.
func (sc *Scenario) set(key string, value starlark.Value) (err error) {
	asInt := func(dst *int) error {
		i, ok := value.(starlark.Int)
		if !ok {
			return ErrKeyType{Key: key, Want: "int"}
		}
		i64, ok := i.Int64()
		if !ok {
			return ErrKeyType{Key: key, Want: "int"}
		}
		*dst = int(i64)
		return nil
	}

	asString := func(dst *string) error {
		s, ok := starlark.AsString(value)
		if !ok {
			return ErrKeyType{Key: key, Want: "string"}
		}
		*dst = s
		return nil
	}

	switch key {
	case "program":
		err = asString(&sc.Program)
	case "pin":
		err = asString(&sc.Pin)
	case "cycles":
		err = asInt(&sc.Cycles)
	case "hz":
		err = asInt(&sc.Hz)
	case "delay":
		err = asInt(&sc.Delay)
	case "prescale":
		err = asInt(&sc.Prescale)
	case "trace":
		b, ok := value.(starlark.Bool)
		if !ok {
			err = ErrKeyType{Key: key, Want: "bool"}
			break
		}
		sc.Trace = bool(b)
	default:
		err = ErrKeyUnknown(key)
	}

	return
}
