// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/pkg/profile"

	"github.com/ezrec/picpulse/emulator"
	"github.com/ezrec/picpulse/firmware"
	"github.com/ezrec/picpulse/pic"
	"github.com/ezrec/picpulse/scenario"
)

var ErrProfileMode = errors.New(f("-profile must be cpu or mem"))

// config holds the command line settings.
type config struct {
	scenarioPath string
	program      string
	cycles       int
	delay        int
	trace        bool
	interactive  bool
	verbose      bool
	profiling    string
	profileDir   string
	set          map[string]bool // Flags given explicitly.
}

func main() {
	cfg := config{profileDir: ".", set: map[string]bool{}}

	flag.StringVar(&cfg.scenarioPath, "s", "", ".star scenario file to run")
	flag.StringVar(&cfg.program, "p", "pulse", "Program to run: "+strings.Join(firmware.Names(), ", "))
	flag.IntVar(&cfg.cycles, "n", 100*pic.TIMER0_PERIOD, "Instruction cycles to run")
	flag.IntVar(&cfg.delay, "d", 0, "Extra handler cycles after the pulse")
	flag.BoolVar(&cfg.trace, "t", false, "Print the event trace")
	flag.BoolVar(&cfg.interactive, "i", false, "Step interactively")
	flag.BoolVar(&cfg.verbose, "v", false, "Verbose mode")
	flag.StringVar(&cfg.profiling, "profile", "", "Write a cpu or mem profile")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	flag.Visit(func(fl *flag.Flag) {
		cfg.set[fl.Name] = true
	})

	err := run(cfg, os.Stdout)
	if err != nil {
		log.Printf("%v: %v", os.Args[0], err)
		os.Exit(1)
	}
}

// run executes one emulation. Errors are returned so that the profile and
// the emulator are always closed.
func run(cfg config, out io.Writer) (err error) {
	switch cfg.profiling {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(cfg.profileDir), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath(cfg.profileDir), profile.NoShutdownHook).Stop()
	default:
		err = ErrProfileMode
		return
	}

	emu := emulator.NewEmulator()
	defer emu.Close()

	sc := scenario.Default()
	if len(cfg.scenarioPath) != 0 {
		var inf *os.File
		inf, err = os.Open(cfg.scenarioPath)
		if err != nil {
			return
		}
		sc, err = scenario.Parse(cfg.scenarioPath, inf, emu.Defines())
		inf.Close()
		if err != nil {
			return
		}
	}

	// Explicit flags override the scenario.
	if cfg.set["p"] {
		sc.Program = cfg.program
	}
	if cfg.set["n"] {
		sc.Cycles = cfg.cycles
	}
	if cfg.set["d"] {
		sc.Delay = cfg.delay
	}
	if cfg.set["t"] {
		sc.Trace = cfg.trace
	}

	opts, err := sc.Options()
	if err != nil {
		return
	}

	prog, err := firmware.New(sc.Program, opts)
	if err != nil {
		return
	}

	emu.Program = prog
	emu.Verbose = cfg.verbose
	if sc.Trace || cfg.interactive {
		emu.Device.Trace = &pic.Trace{}
	}

	err = emu.Reset()
	if err != nil {
		return
	}

	if cfg.interactive {
		err = interact(emu, sc.Cycles)
	} else {
		_, err = emu.Run(sc.Cycles)
	}
	if err != nil {
		return
	}

	if sc.Trace {
		for _, ev := range emu.Device.Trace.Events {
			fmt.Fprintln(out, ev)
		}
	}

	fmt.Fprint(out, emu.Report(opts.Pin))

	return
}
