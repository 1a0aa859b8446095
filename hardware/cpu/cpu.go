// This file is part of Chippy8.
//
// Chippy8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Chippy8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Chippy8.  If not, see <https://www.gnu.org/licenses/>.

// Package cpu implements the instruction interpreter of the CHIP-8
// machine: the register file, the call stack and the decoder/executor.
//
// One call to Step() fetches, decodes and executes a single instruction.
// Stepping is entirely passive with respect to time; how often Step() is
// called is the host's business (see the Run() function in the hardware
// package for a host that paces itself).
//
// The wait-for-key instruction does not block. It moves the CPU into the
// AwaitingKey status and Step() becomes a cheap no-op until the keypad
// reports a fresh key press, leaving the host free to keep ticking the
// timers at the proper rate while the machine waits.
package cpu

import (
	"fmt"
	"strings"

	"github.com/julienr/chippy8/hardware/keypad"
	"github.com/julienr/chippy8/hardware/memory"
	"github.com/julienr/chippy8/hardware/preferences"
	"github.com/julienr/chippy8/hardware/timer"
	"github.com/julienr/chippy8/hardware/video"
	"github.com/julienr/chippy8/random"
)

// NumRegisters is the number of general purpose registers.
const NumRegisters = 16

// StackDepth is the maximum number of nested subroutine calls.
const StackDepth = 16

// Sentinel errors for the cpu package.
const (
	// InvalidOpcode is returned by Step() for bit patterns that do not
	// decode to an instruction.
	InvalidOpcode = "cpu: invalid opcode (%#04x)"

	// StackOverflow is returned by a subroutine call at full stack depth.
	StackOverflow = "cpu: stack overflow (call at %#04x)"

	// StackUnderflow is returned by a subroutine return with nothing on
	// the stack.
	StackUnderflow = "cpu: stack underflow (return at %#04x)"

	// MisalignedProgramCounter is returned when control flow targets an
	// odd address. The program counter is required to stay even-aligned.
	MisalignedProgramCounter = "cpu: misaligned program counter (%#04x)"
)

// Status describes the execution status of the CPU.
type Status int

// The CPU is either running normally or suspended waiting for a key
// press. AwaitingKey is entered by the wait-for-key instruction and left
// when the keypad reports a fresh key press.
const (
	Running Status = iota
	AwaitingKey
)

func (s Status) String() string {
	switch s {
	case Running:
		return "running"
	case AwaitingKey:
		return "awaiting key"
	}
	return "unknown"
}

// CPU implements the CHIP-8 instruction interpreter.
type CPU struct {
	prefs *preferences.Preferences

	// the register file. V[0xf] is the flag register, written by the
	// arithmetic, shift and draw instructions.
	V  [NumRegisters]uint8
	I  uint16
	PC uint16

	// the call stack. SP points one past the most recent return address
	// and so doubles as the current call depth.
	Stack [StackDepth]uint16
	SP    int

	Status Status

	// the register that receives the key once an AwaitingKey status is
	// resolved.
	waitRegister uint8

	mem *memory.Memory
	vid *video.Video
	kp  *keypad.Keypad
	tmr *timer.Timer
	rnd *random.Random
}

// NewCPU is the preferred method of initialisation for the CPU type.
func NewCPU(prefs *preferences.Preferences, mem *memory.Memory, vid *video.Video,
	kp *keypad.Keypad, tmr *timer.Timer, rnd *random.Random) *CPU {
	return &CPU{
		prefs: prefs,
		mem:   mem,
		vid:   vid,
		kp:    kp,
		tmr:   tmr,
		rnd:   rnd,
		PC:    memory.LoadOrigin,
	}
}

// Snapshot creates a copy of the CPU in its current state. The references
// to the other parts of the machine are carried over unchanged; use
// Plumb() to point the copy at its own machine.
func (mc *CPU) Snapshot() *CPU {
	n := *mc
	return &n
}

// Plumb the CPU into a machine. Used after restoring a snapshot.
func (mc *CPU) Plumb(mem *memory.Memory, vid *video.Video, kp *keypad.Keypad,
	tmr *timer.Timer, rnd *random.Random) {
	mc.mem = mem
	mc.vid = vid
	mc.kp = kp
	mc.tmr = tmr
	mc.rnd = rnd
}

// Reset the CPU. Registers and stack are zeroed and the program counter
// returns to the conventional load address.
func (mc *CPU) Reset() {
	for i := range mc.V {
		mc.V[i] = 0
	}
	mc.I = 0
	mc.PC = memory.LoadOrigin
	mc.SP = 0
	mc.Status = Running
	mc.waitRegister = 0
}

func (mc *CPU) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("PC=%#04x I=%#04x SP=%d (%s)\n", mc.PC, mc.I, mc.SP, mc.Status))
	for i, v := range mc.V {
		s.WriteString(fmt.Sprintf("V%X=%02x", i, v))
		if i == 7 {
			s.WriteString("\n")
		} else if i < NumRegisters-1 {
			s.WriteString(" ")
		}
	}
	return s.String()
}
