// Package pic models the parts of a PIC16F690 that the pulse firmware drives.
//
// The Device holds the special function registers, the internal oscillator,
// Timer0 with its shared prescaler, the INTCON interrupt logic and the port
// latches. Firmware talks to the device only through Instruction values; each
// instruction is a read-modify-write of a named register or bit and costs the
// same number of instruction cycles as on the silicon.
//
// Every register write, pin edge and interrupt event can be recorded into a
// Trace, which is the observation surface used by tests and the command line.
package pic
