package firmware

import (
	"iter"
	"slices"

	"github.com/ezrec/picpulse/pic"
)

// Pins configures whole ports as digital outputs driven low.
type Pins struct {
	Groups []pic.Port
}

// analogMasks returns the ANSEL and ANSELH bits of every pin in the groups.
func (p Pins) analogMasks() (masks map[pic.Register]uint8) {
	masks = map[pic.Register]uint8{}
	for _, port := range p.Groups {
		for _, pin := range port.Pins() {
			if bit, ok := pin.Analog(); ok {
				masks[bit.Register] |= bit.Mask()
			}
		}
	}
	return
}

// Code disables analog input, then clears the direction registers, then the
// latches. An analog select register is cleared with one CLRF when every one
// of its bits belongs to the groups.
func (p Pins) Code() iter.Seq[pic.Instruction] {
	masks := p.analogMasks()

	var code []pic.Instruction
	for _, reg := range []pic.Register{pic.REG_ANSEL, pic.REG_ANSELH} {
		mask := masks[reg]
		switch {
		case mask == 0:
		case mask == reg.Writable():
			code = append(code, pic.CLRF(reg))
		default:
			for pos := range uint8(8) {
				if mask&(1<<pos) != 0 {
					code = append(code, pic.BCF(pic.Bit{Register: reg, Pos: pos}))
				}
			}
		}
	}

	for _, port := range p.Groups {
		code = append(code, pic.CLRF(port.Tris()))
	}

	for _, port := range p.Groups {
		code = append(code, pic.CLRF(port.Data()))
	}

	return slices.Values(code)
}
