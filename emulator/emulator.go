// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"fmt"
	"iter"
	"log"
	"maps"

	"github.com/ezrec/picpulse/firmware"
	"github.com/ezrec/picpulse/internal"
	"github.com/ezrec/picpulse/pic"
)

const (
	HANDLER_LIMIT = 1024 // Maximum instructions in a handler.
)

var _emulator_defines = map[string]string{
	"HANDLER_LIMIT":   fmt.Sprintf("%v", HANDLER_LIMIT),
	"TIMER0_PERIOD":   fmt.Sprintf("%v", pic.TIMER0_PERIOD),
	"DISPATCH_CYCLES": fmt.Sprintf("%v", pic.DISPATCH_CYCLES),
	"FOSC_HZ":         fmt.Sprintf("%v", firmware.FOSC_HZ),
}

// Emulator runs a firmware program on a device. The mainline and the
// handler are two instruction streams sharing one core; the handler runs
// whenever the device has an interrupt pending at an instruction boundary.
type Emulator struct {
	Verbose     bool              // If set, enables verbose logging.
	*pic.Device                   // Reference to the device simulation.
	Program     *firmware.Program // Reference to the program being run.

	handler []pic.Instruction // Handler code, fixed at reset.
	hip     int               // Next handler instruction, -1 in the mainline.
	next    func() (pic.Instruction, bool)
	stop    func()
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Device: pic.NewDevice(firmware.CONFIG),
		hip:    -1,
	}

	return
}

// Defines returns an iterator over all of the symbols a scenario can use.
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(maps.All(_emulator_defines), pic.Defines())
}

// Close releases the mainline.
func (emu *Emulator) Close() (err error) {
	if emu.stop != nil {
		emu.stop()
		emu.stop = nil
		emu.next = nil
	}

	return
}

// Reset powers up the device with the program's configuration word and
// restarts the mainline from its entry point.
func (emu *Emulator) Reset() (err error) {
	emu.Close()

	prog := emu.Program
	if prog == nil {
		err = ErrProgramMissing
		return
	}

	err = prog.Validate()
	if err != nil {
		return
	}

	emu.handler = nil
	emu.hip = -1
	if prog.Handler != nil {
		code, ok := internal.IterSeqLimit(prog.Handler.Code, HANDLER_LIMIT)
		if !ok {
			err = ErrHandlerTooLong
			return
		}
		for n, ins := range code {
			if (ins.Op == pic.OP_RETFIE) != (n == len(code)-1) {
				err = ErrHandlerReturn
				return
			}
		}
		if len(code) == 0 {
			err = ErrHandlerReturn
			return
		}
		emu.handler = code
	}

	emu.Device.Verbose = emu.Verbose
	emu.Device.Config = prog.Config
	emu.Device.Reset()

	emu.next, emu.stop = iter.Pull(prog.Mainline)

	if emu.Verbose {
		log.Printf("emulator: reset %v", prog.Name)
	}

	return
}

// InHandler returns true while the handler is running.
func (emu *Emulator) InHandler() bool {
	return emu.hip >= 0
}

// Tick executes one instruction or one interrupt dispatch.
func (emu *Emulator) Tick() (done bool, err error) {
	dev := emu.Device
	dev.Verbose = emu.Verbose

	cycle := dev.Cycles
	context := dev.Context()
	defer func() {
		if err != nil {
			err = &ErrRuntime{Cycle: cycle, Context: context, Err: err}
		}
	}()

	if emu.next == nil {
		err = ErrNotReset
		return
	}

	if emu.InHandler() {
		ins := emu.handler[emu.hip]
		emu.hip++
		emu.trace(cycle, ins)
		err = dev.Execute(ins)
		if ins.Op == pic.OP_RETFIE {
			emu.hip = -1
		}
		return
	}

	if _, ok := dev.Pending(); ok {
		if emu.handler == nil {
			err = ErrVectorEmpty
			return
		}
		_, err = dev.Dispatch()
		if err != nil {
			return
		}
		emu.hip = 0
		return
	}

	ins, ok := emu.next()
	if !ok {
		done = true
		return
	}

	if reg, ok := ins.Writes(); ok && dev.Armed() && emu.Program.Owns(reg) {
		err = &ErrOwnership{Register: reg, Instruction: ins}
		return
	}

	emu.trace(cycle, ins)
	err = dev.Execute(ins)

	return
}

// Run ticks until the device has run for the given number of cycles, and
// then until the handler has returned.
func (emu *Emulator) Run(cycles int) (done bool, err error) {
	for !done && (emu.Device.Cycles < cycles || emu.InHandler()) {
		done, err = emu.Tick()
		if err != nil {
			return
		}
	}

	return
}

func (emu *Emulator) trace(cycle int, ins pic.Instruction) {
	if emu.Verbose {
		log.Printf("emulator: %8d %-8v %v", cycle, emu.Device.Context(), ins)
	}
}
