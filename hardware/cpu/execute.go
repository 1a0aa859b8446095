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

package cpu

import (
	"github.com/julienr/chippy8/curated"
	"github.com/julienr/chippy8/hardware/memory"
)

// setPC is the single point through which the program counter changes.
// The program counter must stay even-aligned and must leave room for a
// two byte fetch.
func (mc *CPU) setPC(address uint16) error {
	if address&0x0001 == 0x0001 {
		return curated.Errorf(MisalignedProgramCounter, address)
	}
	if address >= memory.TopAddress {
		return curated.Errorf(memory.AccessOutOfBounds, address)
	}
	mc.PC = address
	return nil
}

// advance the program counter to the next instruction, or over the next
// instruction for a satisfied skip condition.
func (mc *CPU) advance(skip bool) error {
	if skip {
		return mc.setPC(mc.PC + 4)
	}
	return mc.setPC(mc.PC + 2)
}

// Step executes one instruction;  fetch, decode, execute.
//
// In the AwaitingKey status no instruction is executed. The keypad latch
// is polled and, if it has caught a key, the waiting register receives it
// and the machine resumes. Otherwise the step is a no-op: the program
// counter still points at the wait instruction and machine state is
// untouched.
//
// Errors are fatal to the step that raised them and the machine makes no
// attempt at recovery. The caller decides whether to halt, reset or carry
// on regardless.
func (mc *CPU) Step() error {
	if mc.Status == AwaitingKey {
		key, ok := mc.kp.CheckWait()
		if !ok {
			return nil
		}
		mc.V[mc.waitRegister] = key
		mc.Status = Running
		return mc.advance(false)
	}

	opcode, err := mc.mem.Read16(mc.PC)
	if err != nil {
		return err
	}

	return mc.execute(opcode)
}

func (mc *CPU) execute(opcode uint16) error {
	// operand fields per the standard encoding. not every instruction
	// uses every field
	x := uint8(opcode >> 8 & 0x000f)
	y := uint8(opcode >> 4 & 0x000f)
	n := uint8(opcode & 0x000f)
	nn := uint8(opcode & 0x00ff)
	nnn := opcode & 0x0fff

	switch opcode & 0xf000 {
	case 0x0000:
		switch opcode {
		case 0x00e0: // CLS
			mc.vid.Clear()
			return mc.advance(false)

		case 0x00ee: // RET
			if mc.SP == 0 {
				return curated.Errorf(StackUnderflow, mc.PC)
			}
			mc.SP--
			return mc.setPC(mc.Stack[mc.SP])
		}

		// the machine language subroutine call of the original
		// interpreter (0nnn) is not supported
		return curated.Errorf(InvalidOpcode, opcode)

	case 0x1000: // JP nnn
		return mc.setPC(nnn)

	case 0x2000: // CALL nnn
		if mc.SP == StackDepth {
			return curated.Errorf(StackOverflow, mc.PC)
		}
		mc.Stack[mc.SP] = mc.PC + 2
		mc.SP++
		return mc.setPC(nnn)

	case 0x3000: // SE Vx, nn
		return mc.advance(mc.V[x] == nn)

	case 0x4000: // SNE Vx, nn
		return mc.advance(mc.V[x] != nn)

	case 0x5000: // SE Vx, Vy
		if n != 0x0 {
			return curated.Errorf(InvalidOpcode, opcode)
		}
		return mc.advance(mc.V[x] == mc.V[y])

	case 0x6000: // LD Vx, nn
		mc.V[x] = nn
		return mc.advance(false)

	case 0x7000: // ADD Vx, nn
		mc.V[x] += nn
		return mc.advance(false)

	case 0x8000:
		return mc.executeALU(opcode, x, y, n)

	case 0x9000: // SNE Vx, Vy
		if n != 0x0 {
			return curated.Errorf(InvalidOpcode, opcode)
		}
		return mc.advance(mc.V[x] != mc.V[y])

	case 0xa000: // LD I, nnn
		mc.I = nnn
		return mc.advance(false)

	case 0xb000: // JP V0, nnn
		return mc.setPC(nnn + uint16(mc.V[0]))

	case 0xc000: // RND Vx, nn
		mc.V[x] = mc.rnd.Uint8() & nn
		return mc.advance(false)

	case 0xd000: // DRW Vx, Vy, n
		return mc.executeDraw(x, y, n)

	case 0xe000:
		switch nn {
		case 0x9e: // SKP Vx
			return mc.advance(mc.kp.IsPressed(mc.V[x]))
		case 0xa1: // SKNP Vx
			return mc.advance(!mc.kp.IsPressed(mc.V[x]))
		}
		return curated.Errorf(InvalidOpcode, opcode)

	case 0xf000:
		return mc.executeMisc(opcode, x, nn)
	}

	return curated.Errorf(InvalidOpcode, opcode)
}

// the 8xyN family. arithmetic and logic between two registers.
//
// the flag register is always written last: when Vx is itself the flag
// register the carry/borrow information wins over the arithmetic result.
func (mc *CPU) executeALU(opcode uint16, x uint8, y uint8, n uint8) error {
	switch n {
	case 0x0: // LD Vx, Vy
		mc.V[x] = mc.V[y]

	case 0x1: // OR Vx, Vy
		mc.V[x] |= mc.V[y]

	case 0x2: // AND Vx, Vy
		mc.V[x] &= mc.V[y]

	case 0x3: // XOR Vx, Vy
		mc.V[x] ^= mc.V[y]

	case 0x4: // ADD Vx, Vy
		sum := uint16(mc.V[x]) + uint16(mc.V[y])
		var flag uint8
		if sum > 0xff {
			flag = 1
		}
		mc.V[x] = uint8(sum)
		mc.V[0xf] = flag

	case 0x5: // SUB Vx, Vy
		// the flag is NOT borrow
		var flag uint8
		if mc.V[x] >= mc.V[y] {
			flag = 1
		}
		mc.V[x] -= mc.V[y]
		mc.V[0xf] = flag

	case 0x6: // SHR Vx {, Vy}
		src := mc.V[x]
		if mc.prefs.ShiftSourceY.Get().(bool) {
			src = mc.V[y]
		}
		flag := src & 0x01
		mc.V[x] = src >> 1
		mc.V[0xf] = flag

	case 0x7: // SUBN Vx, Vy
		var flag uint8
		if mc.V[y] >= mc.V[x] {
			flag = 1
		}
		mc.V[x] = mc.V[y] - mc.V[x]
		mc.V[0xf] = flag

	case 0xe: // SHL Vx {, Vy}
		src := mc.V[x]
		if mc.prefs.ShiftSourceY.Get().(bool) {
			src = mc.V[y]
		}
		flag := src >> 7
		mc.V[x] = src << 1
		mc.V[0xf] = flag

	default:
		return curated.Errorf(InvalidOpcode, opcode)
	}

	return mc.advance(false)
}

// the Dxyn instruction. n sprite rows are read from memory at the index
// register and XORed onto the framebuffer.
func (mc *CPU) executeDraw(x uint8, y uint8, n uint8) error {
	sprite := make([]uint8, 0, n)
	for r := uint16(0); r < uint16(n); r++ {
		b, err := mc.mem.Read8(mc.I + r)
		if err != nil {
			return err
		}
		sprite = append(sprite, b)
	}

	collision := mc.vid.DrawSprite(mc.V[x], mc.V[y],
		sprite, mc.prefs.SpriteClipping.Get().(bool))

	if collision {
		mc.V[0xf] = 1
	} else {
		mc.V[0xf] = 0
	}

	return mc.advance(false)
}

// the Fxnn family. timers, the keypad latch, the index register and the
// memory transfer instructions.
func (mc *CPU) executeMisc(opcode uint16, x uint8, nn uint8) error {
	switch nn {
	case 0x07: // LD Vx, DT
		mc.V[x] = mc.tmr.Delay
		return mc.advance(false)

	case 0x0a: // LD Vx, K
		mc.kp.BeginWait()
		mc.Status = AwaitingKey
		mc.waitRegister = x

		// the program counter stays on this instruction until the wait
		// is resolved
		return nil

	case 0x15: // LD DT, Vx
		mc.tmr.Delay = mc.V[x]
		return mc.advance(false)

	case 0x18: // LD ST, Vx
		mc.tmr.Sound = mc.V[x]
		return mc.advance(false)

	case 0x1e: // ADD I, Vx
		i := uint32(mc.I) + uint32(mc.V[x])
		mc.I = uint16(i)
		if mc.prefs.IndexOverflow.Get().(bool) {
			if i > memory.TopAddress {
				mc.V[0xf] = 1
			} else {
				mc.V[0xf] = 0
			}
		}
		return mc.advance(false)

	case 0x29: // LD F, Vx
		mc.I = mc.mem.GlyphAddress(mc.V[x])
		return mc.advance(false)

	case 0x33: // LD B, Vx
		v := mc.V[x]
		if err := mc.mem.Write8(mc.I, v/100); err != nil {
			return err
		}
		if err := mc.mem.Write8(mc.I+1, v/10%10); err != nil {
			return err
		}
		if err := mc.mem.Write8(mc.I+2, v%10); err != nil {
			return err
		}
		return mc.advance(false)

	case 0x55: // LD [I], Vx
		for r := uint16(0); r <= uint16(x); r++ {
			if err := mc.mem.Write8(mc.I+r, mc.V[r]); err != nil {
				return err
			}
		}
		if mc.prefs.IndexIncrement.Get().(bool) {
			mc.I += uint16(x) + 1
		}
		return mc.advance(false)

	case 0x65: // LD Vx, [I]
		for r := uint16(0); r <= uint16(x); r++ {
			b, err := mc.mem.Read8(mc.I + r)
			if err != nil {
				return err
			}
			mc.V[r] = b
		}
		if mc.prefs.IndexIncrement.Get().(bool) {
			mc.I += uint16(x) + 1
		}
		return mc.advance(false)
	}

	return curated.Errorf(InvalidOpcode, opcode)
}
