package main

import (
	"fmt"

	"github.com/mattn/go-tty"

	"github.com/ezrec/picpulse/emulator"
	"github.com/ezrec/picpulse/translate"
)

var f = translate.From

// interact single steps the emulator from the keyboard.
func interact(emu *emulator.Emulator, cycles int) (err error) {
	term, err := tty.Open()
	if err != nil {
		return
	}
	defer term.Close()

	fmt.Println(f("s: step, o: run to next overflow, r: run to the end, q: quit"))

	shown := 0
	show := func() {
		events := emu.Device.Trace.Events
		for _, ev := range events[shown:] {
			fmt.Println(ev)
		}
		shown = len(events)
	}

	for {
		var key rune
		key, err = term.ReadRune()
		if err != nil {
			return
		}

		switch key {
		case 's':
			_, err = emu.Tick()
			show()
			fmt.Print(emu.Device.String())
		case 'o':
			overflows := emu.Overflows
			done := false
			for err == nil && !done && emu.Overflows == overflows && emu.Cycles < cycles {
				done, err = emu.Tick()
			}
			show()
		case 'r':
			_, err = emu.Run(cycles)
			return
		case 'q':
			return
		}

		if err != nil {
			return
		}
	}
}
