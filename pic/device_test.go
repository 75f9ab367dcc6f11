package pic

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var testConfig = ConfigWord{Oscillator: OSC_INTOSC}

func newTestDevice() (dev *Device) {
	dev = NewDevice(testConfig)
	dev.Trace = &Trace{}
	return
}

func doExecute(t *testing.T, dev *Device, program ...Instruction) {
	for _, ins := range program {
		err := dev.Execute(ins)
		if err != nil {
			t.Fatalf("%v: %v", ins, err)
		}
	}
}

func lastWrite(tr *Trace, reg Register) (last Event) {
	for ev := range tr.Writes(reg) {
		last = ev
	}
	return
}

func TestDevice_Reset(t *testing.T) {
	assert := assert.New(t)

	dev := newTestDevice()

	assert.Equal(4_000_000, dev.Fosc())
	assert.Equal(INT_DISARMED, dev.State())
	assert.False(dev.Armed())
	assert.Equal(uint8(0xff), dev.Register(REG_TRISC))
	assert.Equal(PinState{Direction: DIR_IN, Mode: MODE_ANALOG}, dev.Pin(PIN_RC2))
	assert.Equal(1, dev.PrescaleRatio()) // PSA set at reset

	doExecute(t, dev, NOP(), BSF(BIT_SCS))
	dev.Reset()
	assert.Equal(0, dev.Cycles)
	assert.Empty(dev.Trace.Events)
	assert.Equal(uint8(0x60), dev.Register(REG_OSCCON))
}

func TestDevice_Clock(t *testing.T) {
	assert := assert.New(t)

	dev := newTestDevice()
	assert.Equal(250*time.Nanosecond*4, dev.CyclePeriod())

	doExecute(t, dev, BSF(BIT_IRCF2), BSF(BIT_IRCF1), BSF(BIT_IRCF0), BSF(BIT_SCS))
	assert.Equal(8_000_000, dev.Fosc())
	assert.Equal(500*time.Nanosecond, dev.CyclePeriod())

	// The clock switches in the cycle that writes IRCF0.
	assert.Equal(4, dev.Cycles)
	assert.Equal(3*time.Microsecond, dev.Elapsed)
}

func TestDevice_ClockStopped(t *testing.T) {
	assert := assert.New(t)

	dev := NewDevice(ConfigWord{Oscillator: OSC_EC})
	err := dev.Execute(NOP())
	assert.ErrorIs(err, ErrClockStopped)

	dev.ExternalHz = 20_000_000
	err = dev.Execute(NOP())
	assert.NoError(err)
	assert.Equal(200*time.Nanosecond, dev.Elapsed)
}

func TestDevice_TimerPeriod(t *testing.T) {
	assert := assert.New(t)

	dev := newTestDevice()
	doExecute(t, dev,
		BSF(BIT_IRCF0), BSF(BIT_SCS),
		BCF(BIT_T0CS), BSF(BIT_PSA), CLRF(REG_TMR0),
	)

	for dev.Overflows == 0 {
		doExecute(t, dev, NOP())
	}

	start := lastWrite(dev.Trace, REG_TMR0)
	overflow, ok := dev.Trace.First(EVENT_OVERFLOW)
	assert.True(ok)
	assert.Equal(TIMER0_PERIOD, overflow.Cycle-start.Cycle)
	assert.Equal(128*time.Microsecond, overflow.Time-start.Time)
	assert.NotZero(dev.Register(REG_INTCON) & BIT_T0IF.Mask())
	assert.Equal(0, dev.Missed)
}

func TestDevice_TimerPrescale(t *testing.T) {
	assert := assert.New(t)

	dev := newTestDevice()
	doExecute(t, dev,
		BCF(BIT_T0CS), BCF(BIT_PSA),
		BCF(BIT_PS2), BCF(BIT_PS1), BSF(BIT_PS0),
		CLRF(REG_TMR0),
	)
	assert.Equal(4, dev.PrescaleRatio())

	for dev.Overflows == 0 {
		doExecute(t, dev, NOP())
	}

	start := lastWrite(dev.Trace, REG_TMR0)
	overflow, _ := dev.Trace.First(EVENT_OVERFLOW)
	assert.Equal(4*TIMER0_PERIOD, overflow.Cycle-start.Cycle)
}

func TestDevice_TimerExternal(t *testing.T) {
	assert := assert.New(t)

	dev := newTestDevice()

	// T0CS and T0SE are set at reset: count falling T0CKI edges.
	doExecute(t, dev, NOP(), NOP(), NOP())
	assert.Equal(uint8(0), dev.Register(REG_TMR0))

	dev.T0CKI(true)
	assert.Equal(uint8(0), dev.Register(REG_TMR0))
	dev.T0CKI(false)
	assert.Equal(uint8(1), dev.Register(REG_TMR0))

	doExecute(t, dev, BCF(BIT_T0SE))
	dev.T0CKI(true)
	assert.Equal(uint8(2), dev.Register(REG_TMR0))
}

func TestDevice_Interrupt(t *testing.T) {
	assert := assert.New(t)

	dev := newTestDevice()
	doExecute(t, dev, BCF(BIT_T0CS), CLRF(REG_TMR0), CLRF(REG_INTCON), BSF(BIT_GIE))
	assert.Equal(INT_DISARMED, dev.State())

	doExecute(t, dev, BSF(BIT_T0IE))
	assert.Equal(INT_ARMED, dev.State())
	assert.Equal(5, dev.ArmedAt)
	assert.Equal(1, dev.Trace.Count(EVENT_ARMED))

	_, ok := dev.Pending()
	assert.False(ok)

	for dev.Overflows == 0 {
		doExecute(t, dev, NOP())
	}

	src, ok := dev.Pending()
	assert.True(ok)
	assert.Equal(SOURCE_TIMER0, src)

	cycles := dev.Cycles
	src, err := dev.Dispatch()
	assert.NoError(err)
	assert.Equal(SOURCE_TIMER0, src)
	assert.Equal(cycles+DISPATCH_CYCLES, dev.Cycles)
	assert.Equal(INT_DISPATCHING, dev.State())
	assert.Equal(CONTEXT_HANDLER, dev.Context())
	assert.Zero(dev.Register(REG_INTCON) & BIT_GIE.Mask())

	// No nesting while the handler runs.
	_, ok = dev.Pending()
	assert.False(ok)

	doExecute(t, dev, BCF(BIT_T0IF), RETFIE())
	assert.Equal(INT_ARMED, dev.State())
	assert.Equal(CONTEXT_MAINLINE, dev.Context())
	assert.Equal(1, dev.Dispatches)
	assert.Equal(1, dev.Trace.Count(EVENT_RETURN))
	assert.Equal(1, dev.Trace.Count(EVENT_ARMED))

	_, err = dev.Dispatch()
	assert.ErrorIs(err, ErrDispatchDisarmed)
}

func TestDevice_RetfieMainline(t *testing.T) {
	assert := assert.New(t)

	dev := newTestDevice()
	err := dev.Execute(RETFIE())
	assert.ErrorIs(err, ErrContextInvalid)

	var ei *ErrInstruction
	assert.ErrorAs(err, &ei)
	assert.Equal(OP_RETFIE, ei.Instruction.Op)
}

func TestDevice_Missed(t *testing.T) {
	assert := assert.New(t)

	dev := newTestDevice()
	doExecute(t, dev, BCF(BIT_T0CS), CLRF(REG_TMR0))

	for dev.Overflows < 2 {
		doExecute(t, dev, NOP())
	}

	assert.Equal(1, dev.Missed)
	assert.Equal(1, dev.Trace.Count(EVENT_MISSED))
}

func TestDevice_PinEdges(t *testing.T) {
	assert := assert.New(t)

	dev := newTestDevice()
	doExecute(t, dev, CLRF(REG_TRISC), CLRF(REG_PORTC))
	assert.Equal(0, dev.Trace.Count(EVENT_PIN))
	assert.Equal(DIR_OUT, dev.Pin(PIN_RC2).Direction)

	latch := PIN_RC2.Latch()
	doExecute(t, dev, BCF(latch), BSF(latch), BCF(latch))
	assert.Equal(2, dev.Trace.Count(EVENT_PIN))

	pulses := dev.Trace.Pulses(PIN_RC2)
	assert.Len(pulses, 1)
	assert.Equal(1, pulses[0].Width())
	assert.False(dev.Pin(PIN_RC2).Level)
}

func TestDevice_InputOnly(t *testing.T) {
	assert := assert.New(t)

	dev := newTestDevice()
	ra3 := Pin{PORT_A, 3}

	doExecute(t, dev, CLRF(REG_ANSEL), CLRF(REG_TRISA), CLRF(REG_PORTA))
	assert.Equal(uint8(0x08), dev.Register(REG_TRISA))
	assert.Equal(DIR_IN, dev.Pin(ra3).Direction)
	assert.Equal(DIR_OUT, dev.Pin(Pin{PORT_A, 2}).Direction)

	err := dev.Execute(BCF(ra3.Direction()))
	assert.ErrorIs(err, ErrBitInvalid)
}

func TestDevice_ReadModifyWrite(t *testing.T) {
	assert := assert.New(t)

	dev := newTestDevice()
	rc3 := Pin{PORT_C, 3}

	// RC3 stays a digital input, driven high from outside.
	doExecute(t, dev, MOVLW(0x08), MOVWF(REG_TRISC), CLRF(REG_ANSEL), CLRF(REG_PORTC))
	dev.SetInput(rc3, true)

	doExecute(t, dev, BSF(PIN_RC2.Latch()))
	assert.Equal(uint8(0x0c), dev.Register(REG_PORTC))
	assert.Equal(DIR_IN, dev.Pin(rc3).Direction)
	assert.False(dev.Pin(rc3).Level)
}

func TestDevice_Invalid(t *testing.T) {
	assert := assert.New(t)

	dev := newTestDevice()

	err := dev.Execute(BSF(Bit{REG_OSCCON, 3}))
	assert.ErrorIs(err, ErrBitInvalid)

	err = dev.Execute(CLRF(Register(0x050)))
	assert.ErrorIs(err, ErrRegisterInvalid)

	err = dev.Execute(Instruction{Op: Opcode(42)})
	assert.ErrorIs(err, ErrOpcodeInvalid)

	assert.Equal(0, dev.Cycles)
}
