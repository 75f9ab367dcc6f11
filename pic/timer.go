package pic

import (
	"log"
)

// TIMER0_PERIOD is the Timer0 overflow period in counts.
const TIMER0_PERIOD = 256

// PrescaleRatio returns the divide ratio applied to Timer0 counts; one when
// the prescaler is assigned to the watchdog.
func (dev *Device) PrescaleRatio() int {
	option := dev.file[REG_OPTION_REG]
	if option&BIT_PSA.Mask() != 0 {
		return 1
	}
	return 2 << (option & 0b111)
}

// timerExternal returns true if Timer0 counts T0CKI edges.
func (dev *Device) timerExternal() bool {
	return dev.file[REG_OPTION_REG]&BIT_T0CS.Mask() != 0
}

// T0CKI drives the Timer0 external clock input.
func (dev *Device) T0CKI(level bool) {
	falling := dev.file[REG_OPTION_REG]&BIT_T0SE.Mask() != 0
	edge := level != dev.t0cki && level != falling
	dev.t0cki = level

	if edge && dev.timerExternal() {
		dev.timerClock()
	}
}

// timerCycle runs Timer0 for one instruction cycle.
func (dev *Device) timerCycle() {
	if dev.tmr0Hold {
		dev.tmr0Hold = false
		return
	}

	if !dev.timerExternal() {
		dev.timerClock()
	}
}

// timerClock feeds one count into the prescaler and Timer0.
func (dev *Device) timerClock() {
	ratio := dev.PrescaleRatio()
	if ratio > 1 {
		dev.prescaler++
		if dev.prescaler < ratio {
			return
		}
		dev.prescaler = 0
	}

	dev.file[REG_TMR0]++
	if dev.file[REG_TMR0] == 0 {
		dev.overflow()
	}
}

// overflow latches T0IF. An overflow that finds T0IF still set is lost.
func (dev *Device) overflow() {
	dev.Overflows++

	if dev.file[REG_INTCON]&BIT_T0IF.Mask() != 0 {
		dev.Missed++
		dev.record(Event{Kind: EVENT_MISSED})
		if dev.Verbose {
			log.Printf("pic: timer0 overflow missed at cycle %d", dev.Cycles)
		}
	}

	dev.file[REG_INTCON] |= BIT_T0IF.Mask()
	dev.record(Event{Kind: EVENT_OVERFLOW})
}
