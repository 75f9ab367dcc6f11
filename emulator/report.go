package emulator

import (
	"strings"
	"time"

	"github.com/ezrec/picpulse/pic"
)

// Report summarizes a run.
type Report struct {
	Program    string
	Fosc       int
	Cycles     int
	Elapsed    time.Duration
	Overflows  int
	Dispatches int
	Missed     int
	Pulses     int
	MinWidth   int // Narrowest pulse, in instruction cycles.
	MaxWidth   int // Widest pulse, in instruction cycles.
	MinPeriod  int // Shortest rise to rise interval, in instruction cycles.
	MaxPeriod  int // Longest rise to rise interval, in instruction cycles.
}

// Report summarizes the run so far. Pulse figures need a trace.
func (emu *Emulator) Report(pin pic.Pin) (rep Report) {
	dev := emu.Device

	rep = Report{
		Fosc:       dev.Fosc(),
		Cycles:     dev.Cycles,
		Elapsed:    dev.Elapsed,
		Overflows:  dev.Overflows,
		Dispatches: dev.Dispatches,
		Missed:     dev.Missed,
	}

	if emu.Program != nil {
		rep.Program = emu.Program.Name
	}

	if dev.Trace == nil {
		return
	}

	pulses := dev.Trace.Pulses(pin)
	rep.Pulses = len(pulses)
	for n, pulse := range pulses {
		width := pulse.Width()
		if n == 0 || width < rep.MinWidth {
			rep.MinWidth = width
		}
		if width > rep.MaxWidth {
			rep.MaxWidth = width
		}
		if n == 0 {
			continue
		}
		period := pulse.Rise - pulses[n-1].Rise
		if n == 1 || period < rep.MinPeriod {
			rep.MinPeriod = period
		}
		if period > rep.MaxPeriod {
			rep.MaxPeriod = period
		}
	}

	return
}

func (rep Report) String() string {
	lines := []string{
		f("program:    %v", rep.Program),
		f("fosc:       %d Hz", rep.Fosc),
		f("cycles:     %d", rep.Cycles),
		f("elapsed:    %v", rep.Elapsed),
		f("overflows:  %d", rep.Overflows),
		f("dispatches: %d", rep.Dispatches),
		f("missed:     %d", rep.Missed),
		f("pulses:     %d", rep.Pulses),
		f("width:      %d..%d cycles", rep.MinWidth, rep.MaxWidth),
		f("period:     %d..%d cycles", rep.MinPeriod, rep.MaxPeriod),
	}

	return strings.Join(lines, "\n") + "\n"
}
