// Package firmware is the control routine for the PIC16F690 pulse generator.
//
// A Program is built once from Options, the equivalent of compiling and
// programming the part. Its mainline is the startup entry point: the clock,
// pin, timer and interrupt stages run in that order and the sequence then
// diverges into an idle loop that never ends. Its handler is bound to the
// Timer0 overflow source and emits a one instruction cycle pulse on the
// output pin each time the timer wraps.
//
// Stages are expressed as instruction sequences (iter.Seq[pic.Instruction]);
// a scheduler such as the emulator package pulls them one instruction at a
// time so the handler can preempt the mainline at any instruction boundary.
package firmware
