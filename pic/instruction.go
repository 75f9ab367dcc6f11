package pic

import (
	"fmt"
)

// Opcode is the subset of the mid-range instruction set the firmware uses.
type Opcode int

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_NOP    = Opcode(0) // nop
	OP_BCF    = Opcode(1) // bcf
	OP_BSF    = Opcode(2) // bsf
	OP_CLRF   = Opcode(3) // clrf
	OP_MOVLW  = Opcode(4) // movlw
	OP_MOVWF  = Opcode(5) // movwf
	OP_GOTO   = Opcode(6) // goto
	OP_RETFIE = Opcode(7) // retfie
)

// Instruction is a single decoded instruction.
type Instruction struct {
	Op       Opcode
	Register Register // File register operand.
	Pos      uint8    // Bit operand of bcf/bsf.
	Literal  uint8    // Literal operand of movlw.
}

// NOP does nothing for one cycle.
func NOP() Instruction {
	return Instruction{Op: OP_NOP}
}

// BCF clears a bit.
func BCF(bit Bit) Instruction {
	return Instruction{Op: OP_BCF, Register: bit.Register, Pos: bit.Pos}
}

// BSF sets a bit.
func BSF(bit Bit) Instruction {
	return Instruction{Op: OP_BSF, Register: bit.Register, Pos: bit.Pos}
}

// CLRF clears a register.
func CLRF(reg Register) Instruction {
	return Instruction{Op: OP_CLRF, Register: reg}
}

// MOVLW loads W with a literal.
func MOVLW(literal uint8) Instruction {
	return Instruction{Op: OP_MOVLW, Literal: literal}
}

// MOVWF stores W to a register.
func MOVWF(reg Register) Instruction {
	return Instruction{Op: OP_MOVWF, Register: reg}
}

// GOTO branches back to itself; it is the only branch an idle or busy loop
// needs.
func GOTO() Instruction {
	return Instruction{Op: OP_GOTO}
}

// RETFIE returns from the interrupt handler and sets GIE.
func RETFIE() Instruction {
	return Instruction{Op: OP_RETFIE}
}

// Bit returns the bit operand of a bcf or bsf.
func (ins Instruction) Bit() Bit {
	return Bit{ins.Register, ins.Pos}
}

// Cycles returns the instruction cycles taken.
func (ins Instruction) Cycles() int {
	switch ins.Op {
	case OP_GOTO, OP_RETFIE:
		return 2
	default:
		return 1
	}
}

// Writes returns the register written, if any.
func (ins Instruction) Writes() (reg Register, ok bool) {
	switch ins.Op {
	case OP_BCF, OP_BSF, OP_CLRF, OP_MOVWF:
		return ins.Register, true
	}
	return
}

func (ins Instruction) String() string {
	switch ins.Op {
	case OP_BCF, OP_BSF:
		return fmt.Sprintf("%v %v", ins.Op, ins.Bit())
	case OP_CLRF, OP_MOVWF:
		return fmt.Sprintf("%v %v", ins.Op, ins.Register)
	case OP_MOVLW:
		return fmt.Sprintf("%v 0x%02x", ins.Op, ins.Literal)
	case OP_GOTO:
		return fmt.Sprintf("%v $", ins.Op)
	default:
		return ins.Op.String()
	}
}
