package pic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func FuzzConfigWord(f *testing.F) {
	f.Add(uint16(0x30D5))
	f.Add(uint16(0x3fff))
	f.Add(uint16(0))
	f.Add(uint16(0xffff))

	f.Fuzz(func(t *testing.T, word uint16) {
		assert := assert.New(t)

		cw := ParseConfigWord(word)
		assert.Equal((word&config_word_width)|config_unused, cw.Word())
		assert.Equal(cw, ParseConfigWord(cw.Word()))
		assert.NotEmpty(cw.String())
	})
}

// fuzzRegisters are the operands an encoded instruction may select; the last
// one is not modelled.
var fuzzRegisters = []Register{
	REG_TMR0, REG_STATUS, REG_PORTA, REG_PORTB, REG_PORTC, REG_INTCON,
	REG_OPTION_REG, REG_TRISA, REG_TRISB, REG_TRISC, REG_OSCCON,
	REG_ANSEL, REG_ANSELH, Register(0x050),
}

// fuzzDecode turns three bytes into an instruction. Opcode 8 is invalid.
func fuzzDecode(code []byte) Instruction {
	return Instruction{
		Op:       Opcode(code[0] % 9),
		Register: fuzzRegisters[int(code[1])%len(fuzzRegisters)],
		Pos:      code[2] & 7,
		Literal:  code[2],
	}
}

func FuzzDevice(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte{3, 7, 0, 3, 9, 0, 2, 5, 7})
	f.Add([]byte{4, 0, 0xff, 5, 0, 0, 6, 0, 0, 7, 0, 0, 8, 0, 0})
	f.Add([]byte{2, 10, 4, 2, 10, 5, 2, 10, 6, 2, 1, 0, 1, 6, 7})

	f.Fuzz(func(t *testing.T, program []byte) {
		assert := assert.New(t)

		dev := newTestDevice()

		for len(program) >= 3 && dev.Cycles < 4*TIMER0_PERIOD {
			ins := fuzzDecode(program)
			program = program[3:]

			cycles := dev.Cycles
			err := dev.Execute(ins)
			if err != nil {
				var ei *ErrInstruction
				assert.ErrorAs(err, &ei, ins.String())
				assert.Equal(cycles, dev.Cycles, ins.String())
				continue
			}
			assert.Equal(cycles+ins.Cycles(), dev.Cycles, ins.String())

			for _, reg := range []Register{REG_PORTA, REG_PORTB, REG_TRISA, REG_TRISB, REG_ANSELH} {
				fixed := ^reg.Writable()
				assert.Equal(registerSpecs[reg].reset&fixed, dev.Register(reg)&fixed, reg.String())
			}
			assert.Equal(DIR_IN, dev.Pin(Pin{PORT_A, 3}).Direction)
		}

		assert.Equal(dev.Overflows, dev.Trace.Count(EVENT_OVERFLOW))
		assert.Equal(dev.Missed, dev.Trace.Count(EVENT_MISSED))
		assert.LessOrEqual(dev.Missed, dev.Overflows)
		assert.Equal(CONTEXT_MAINLINE, dev.Context())
		assert.NotEmpty(dev.State().String())
		assert.NotEmpty(dev.String())
	})
}
