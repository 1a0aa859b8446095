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

package cpu_test

import (
	"testing"

	"github.com/julienr/chippy8/curated"
	"github.com/julienr/chippy8/hardware/cpu"
	"github.com/julienr/chippy8/hardware/keypad"
	"github.com/julienr/chippy8/hardware/memory"
	"github.com/julienr/chippy8/hardware/preferences"
	"github.com/julienr/chippy8/hardware/timer"
	"github.com/julienr/chippy8/hardware/video"
	"github.com/julienr/chippy8/random"
	"github.com/julienr/chippy8/test"
)

// a stand-in for the machine the CPU is normally a part of.
type testMachine struct {
	mc    *cpu.CPU
	mem   *memory.Memory
	vid   *video.Video
	kp    *keypad.Keypad
	tmr   *timer.Timer
	prefs *preferences.Preferences

	steps uint64
}

func (m *testMachine) StepCount() uint64 {
	return m.steps
}

func newTestMachine(t *testing.T) *testMachine {
	t.Helper()

	m := &testMachine{
		mem:   memory.NewMemory(),
		vid:   video.NewVideo(),
		kp:    keypad.NewKeypad(),
		tmr:   timer.NewTimer(),
		prefs: &preferences.Preferences{},
	}
	m.prefs.SetDefaults()

	rnd := random.NewRandom(m)
	rnd.ZeroSeed = true

	m.mc = cpu.NewCPU(m.prefs, m.mem, m.vid, m.kp, m.tmr, rnd)

	return m
}

// reset the machine and poke a fresh program into it, one 16bit opcode at
// a time starting at the load origin.
func (m *testMachine) putProgram(t *testing.T, opcodes ...uint16) {
	t.Helper()

	m.mem.Reset()
	m.vid.Reset()
	m.kp.Reset()
	m.tmr.Reset()
	m.mc.Reset()
	m.steps = 0

	address := uint16(memory.LoadOrigin)
	for _, op := range opcodes {
		if err := m.mem.Poke(address, uint8(op>>8)); err != nil {
			t.Fatal(err)
		}
		if err := m.mem.Poke(address+1, uint8(op)); err != nil {
			t.Fatal(err)
		}
		address += 2
	}
}

func (m *testMachine) step(t *testing.T) {
	t.Helper()
	if err := m.mc.Step(); err != nil {
		t.Fatal(err)
	}
	m.steps++
}

// step and expect an error matching the pattern.
func (m *testMachine) stepErr(t *testing.T, pattern string) {
	t.Helper()
	err := m.mc.Step()
	if err == nil {
		t.Fatal("expected the step to fail")
	}
	if !curated.Is(err, pattern) {
		t.Fatalf("step failed with the wrong error (%v)", err)
	}
}

func testLoadAndAdd(t *testing.T, m *testMachine) {
	m.putProgram(t, 0x6005, 0x6103, 0x8014)
	m.step(t) // LD V0, 0x05
	m.step(t) // LD V1, 0x03
	m.step(t) // ADD V0, V1
	test.Equate(t, m.mc.V[0], uint8(8))
	test.Equate(t, m.mc.V[1], uint8(3))
	test.Equate(t, m.mc.V[0xf], uint8(0))
	test.Equate(t, m.mc.PC, uint16(0x206))

	// ADD Vx, nn wraps and never touches the flag
	m.putProgram(t, 0x60ff, 0x6f07, 0x7002)
	m.step(t) // LD V0, 0xFF
	m.step(t) // LD VF, 0x07
	m.step(t) // ADD V0, 0x02
	test.Equate(t, m.mc.V[0], uint8(1))
	test.Equate(t, m.mc.V[0xf], uint8(7))

	// ADD Vx, Vy sets the flag on carry
	m.putProgram(t, 0x60ff, 0x6101, 0x8014)
	m.step(t)
	m.step(t)
	m.step(t) // ADD V0, V1
	test.Equate(t, m.mc.V[0], uint8(0))
	test.Equate(t, m.mc.V[0xf], uint8(1))

	// the flag wins over the arithmetic result when VF is the target
	m.putProgram(t, 0x6fff, 0x6001, 0x8f04)
	m.step(t)
	m.step(t)
	m.step(t) // ADD VF, V0
	test.Equate(t, m.mc.V[0xf], uint8(1))
}

func testSubtract(t *testing.T, m *testMachine) {
	// SUB with no borrow
	m.putProgram(t, 0x600a, 0x6103, 0x8015)
	m.step(t)
	m.step(t)
	m.step(t) // SUB V0, V1
	test.Equate(t, m.mc.V[0], uint8(7))
	test.Equate(t, m.mc.V[0xf], uint8(1))

	// SUB with borrow
	m.putProgram(t, 0x6003, 0x610a, 0x8015)
	m.step(t)
	m.step(t)
	m.step(t) // SUB V0, V1
	test.Equate(t, m.mc.V[0], uint8(0xf9))
	test.Equate(t, m.mc.V[0xf], uint8(0))

	// SUB of equal values leaves the flag set
	m.putProgram(t, 0x6005, 0x6105, 0x8015)
	m.step(t)
	m.step(t)
	m.step(t) // SUB V0, V1
	test.Equate(t, m.mc.V[0], uint8(0))
	test.Equate(t, m.mc.V[0xf], uint8(1))

	// SUBN reverses the operands
	m.putProgram(t, 0x6003, 0x610a, 0x8017)
	m.step(t)
	m.step(t)
	m.step(t) // SUBN V0, V1
	test.Equate(t, m.mc.V[0], uint8(7))
	test.Equate(t, m.mc.V[0xf], uint8(1))

	m.putProgram(t, 0x600a, 0x6103, 0x8017)
	m.step(t)
	m.step(t)
	m.step(t) // SUBN V0, V1
	test.Equate(t, m.mc.V[0], uint8(0xf9))
	test.Equate(t, m.mc.V[0xf], uint8(0))
}

func testBitwise(t *testing.T, m *testMachine) {
	m.putProgram(t, 0x60f0, 0x610f, 0x8101)
	m.step(t)
	m.step(t)
	m.step(t) // OR V1, V0
	test.Equate(t, m.mc.V[1], uint8(0xff))

	m.putProgram(t, 0x60cc, 0x61aa, 0x8102)
	m.step(t)
	m.step(t)
	m.step(t) // AND V1, V0
	test.Equate(t, m.mc.V[1], uint8(0x88))

	m.putProgram(t, 0x60cc, 0x61aa, 0x8103)
	m.step(t)
	m.step(t)
	m.step(t) // XOR V1, V0
	test.Equate(t, m.mc.V[1], uint8(0x66))

	m.putProgram(t, 0x60cc, 0x8100)
	m.step(t)
	m.step(t) // LD V1, V0
	test.Equate(t, m.mc.V[1], uint8(0xcc))
}

func testShifts(t *testing.T, m *testMachine) {
	// by default the shift reads and writes Vx, ignoring Vy
	m.putProgram(t, 0x6085, 0x61ff, 0x8016)
	m.step(t)
	m.step(t)
	m.step(t) // SHR V0
	test.Equate(t, m.mc.V[0], uint8(0x42))
	test.Equate(t, m.mc.V[0xf], uint8(1))

	m.putProgram(t, 0x6085, 0x61ff, 0x801e)
	m.step(t)
	m.step(t)
	m.step(t) // SHL V0
	test.Equate(t, m.mc.V[0], uint8(0x0a))
	test.Equate(t, m.mc.V[0xf], uint8(1))

	// the flag register can be the shift target
	m.putProgram(t, 0x6f02, 0x8f06)
	m.step(t)
	m.step(t) // SHR VF
	test.Equate(t, m.mc.V[0xf], uint8(0))

	// with the quirk enabled the shift source is Vy
	m.prefs.ShiftSourceY.Set(true)
	defer m.prefs.ShiftSourceY.Set(false)

	m.putProgram(t, 0x6000, 0x6181, 0x8016)
	m.step(t)
	m.step(t)
	m.step(t) // SHR V0, V1
	test.Equate(t, m.mc.V[0], uint8(0x40))
	test.Equate(t, m.mc.V[1], uint8(0x81))
	test.Equate(t, m.mc.V[0xf], uint8(1))

	m.putProgram(t, 0x6000, 0x6181, 0x801e)
	m.step(t)
	m.step(t)
	m.step(t) // SHL V0, V1
	test.Equate(t, m.mc.V[0], uint8(0x02))
	test.Equate(t, m.mc.V[0xf], uint8(1))
}

func testSkips(t *testing.T, m *testMachine) {
	// SE Vx, nn skips when equal
	m.putProgram(t, 0x6007, 0x3007)
	m.step(t)
	m.step(t)
	test.Equate(t, m.mc.PC, uint16(0x206))

	// and does not skip otherwise
	m.putProgram(t, 0x6007, 0x3008)
	m.step(t)
	m.step(t)
	test.Equate(t, m.mc.PC, uint16(0x204))

	// SNE Vx, nn is the complement
	m.putProgram(t, 0x6007, 0x4008)
	m.step(t)
	m.step(t)
	test.Equate(t, m.mc.PC, uint16(0x206))

	m.putProgram(t, 0x6007, 0x4007)
	m.step(t)
	m.step(t)
	test.Equate(t, m.mc.PC, uint16(0x204))

	// SE Vx, Vy
	m.putProgram(t, 0x6009, 0x6109, 0x5010)
	m.step(t)
	m.step(t)
	m.step(t)
	test.Equate(t, m.mc.PC, uint16(0x208))

	// SNE Vx, Vy
	m.putProgram(t, 0x6009, 0x6108, 0x9010)
	m.step(t)
	m.step(t)
	m.step(t)
	test.Equate(t, m.mc.PC, uint16(0x208))
}

func testJumps(t *testing.T, m *testMachine) {
	m.putProgram(t, 0x1300)
	m.step(t) // JP 0x300
	test.Equate(t, m.mc.PC, uint16(0x300))

	// JP V0, nnn
	m.putProgram(t, 0x6010, 0xb300)
	m.step(t)
	m.step(t) // JP V0, 0x300
	test.Equate(t, m.mc.PC, uint16(0x310))

	// a jump to an odd address is an error
	m.putProgram(t, 0x1301)
	m.stepErr(t, cpu.MisalignedProgramCounter)

	// as is a jump past the end of memory
	m.putProgram(t, 0x60ff, 0xbf01)
	m.step(t)
	m.stepErr(t, memory.AccessOutOfBounds)
}

func testSubroutines(t *testing.T, m *testMachine) {
	m.putProgram(t, 0x2300)
	m.step(t) // CALL 0x300
	test.Equate(t, m.mc.PC, uint16(0x300))
	test.Equate(t, m.mc.SP, 1)
	test.Equate(t, m.mc.Stack[0], uint16(0x202))

	if err := m.mem.Poke(0x300, 0x00); err != nil {
		t.Fatal(err)
	}
	if err := m.mem.Poke(0x301, 0xee); err != nil {
		t.Fatal(err)
	}
	m.step(t) // RET
	test.Equate(t, m.mc.PC, uint16(0x202))
	test.Equate(t, m.mc.SP, 0)

	// a return with an empty stack is an error
	m.putProgram(t, 0x00ee)
	m.stepErr(t, cpu.StackUnderflow)

	// the stack holds sixteen return addresses; the seventeenth call is
	// an error. the subroutine at 0x300 calls itself
	m.putProgram(t, 0x2300)
	if err := m.mem.Poke(0x300, 0x23); err != nil {
		t.Fatal(err)
	}
	if err := m.mem.Poke(0x301, 0x00); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < cpu.StackDepth; i++ {
		m.step(t)
	}
	test.Equate(t, m.mc.SP, cpu.StackDepth)
	m.stepErr(t, cpu.StackOverflow)
}

func testIndexRegister(t *testing.T, m *testMachine) {
	m.putProgram(t, 0xa123)
	m.step(t) // LD I, 0x123
	test.Equate(t, m.mc.I, uint16(0x123))

	// ADD I, Vx. the overflow quirk is off by default and the flag is
	// untouched
	m.putProgram(t, 0xaffe, 0x6005, 0x6f09, 0xf01e)
	m.step(t)
	m.step(t)
	m.step(t)
	m.step(t) // ADD I, V0
	test.Equate(t, m.mc.I, uint16(0x1003))
	test.Equate(t, m.mc.V[0xf], uint8(9))

	// with the quirk enabled the flag records the overflow
	m.prefs.IndexOverflow.Set(true)
	defer m.prefs.IndexOverflow.Set(false)

	m.putProgram(t, 0xaffe, 0x6005, 0xf01e)
	m.step(t)
	m.step(t)
	m.step(t) // ADD I, V0
	test.Equate(t, m.mc.I, uint16(0x1003))
	test.Equate(t, m.mc.V[0xf], uint8(1))

	m.putProgram(t, 0xa100, 0x6005, 0xf01e)
	m.step(t)
	m.step(t)
	m.step(t) // ADD I, V0
	test.Equate(t, m.mc.I, uint16(0x105))
	test.Equate(t, m.mc.V[0xf], uint8(0))
}

func testFontAndBCD(t *testing.T, m *testMachine) {
	m.putProgram(t, 0x600a, 0xf029)
	m.step(t)
	m.step(t) // LD F, V0
	test.Equate(t, m.mc.I, m.mem.GlyphAddress(0x0a))

	// LD B, Vx writes the decimal digits of Vx to memory
	m.putProgram(t, 0x609d, 0xa300, 0xf033)
	m.step(t) // LD V0, 157
	m.step(t) // LD I, 0x300
	m.step(t) // LD B, V0
	hundreds, err := m.mem.Peek(0x300)
	if err != nil {
		t.Fatal(err)
	}
	tens, err := m.mem.Peek(0x301)
	if err != nil {
		t.Fatal(err)
	}
	ones, err := m.mem.Peek(0x302)
	if err != nil {
		t.Fatal(err)
	}
	test.Equate(t, hundreds, uint8(1))
	test.Equate(t, tens, uint8(5))
	test.Equate(t, ones, uint8(7))
	test.Equate(t, m.mc.I, uint16(0x300))
}

func testDumpAndLoad(t *testing.T, m *testMachine) {
	// LD [I], Vx stores registers V0 to Vx inclusive. by default I moves
	// past the stored block
	m.putProgram(t, 0x6011, 0x6122, 0x6233, 0xa300, 0xf255)
	m.step(t)
	m.step(t)
	m.step(t)
	m.step(t)
	m.step(t) // LD [I], V2
	for i, v := range []uint8{0x11, 0x22, 0x33} {
		b, err := m.mem.Peek(uint16(0x300 + i))
		if err != nil {
			t.Fatal(err)
		}
		test.Equate(t, b, v)
	}
	test.Equate(t, m.mc.I, uint16(0x303))

	// LD Vx, [I] is the reverse
	m.putProgram(t, 0xa300, 0xf165)
	if err := m.mem.Poke(0x300, 0x44); err != nil {
		t.Fatal(err)
	}
	if err := m.mem.Poke(0x301, 0x55); err != nil {
		t.Fatal(err)
	}
	m.step(t)
	m.step(t) // LD V1, [I]
	test.Equate(t, m.mc.V[0], uint8(0x44))
	test.Equate(t, m.mc.V[1], uint8(0x55))
	test.Equate(t, m.mc.I, uint16(0x302))

	// with the increment quirk disabled I is left alone
	m.prefs.IndexIncrement.Set(false)
	defer m.prefs.IndexIncrement.Set(true)

	m.putProgram(t, 0x6011, 0xa300, 0xf055)
	m.step(t)
	m.step(t)
	m.step(t) // LD [I], V0
	test.Equate(t, m.mc.I, uint16(0x300))

	m.putProgram(t, 0xa300, 0xf065)
	m.step(t)
	m.step(t) // LD V0, [I]
	test.Equate(t, m.mc.I, uint16(0x300))

	// a dump that runs off the end of memory is an error
	m.putProgram(t, 0x6011, 0xafff, 0xf155)
	m.step(t)
	m.step(t)
	m.stepErr(t, memory.AccessOutOfBounds)
}

func testTimers(t *testing.T, m *testMachine) {
	m.putProgram(t, 0x603c, 0xf015, 0xf018, 0xf107)
	m.step(t) // LD V0, 60
	m.step(t) // LD DT, V0
	m.step(t) // LD ST, V0
	test.Equate(t, m.tmr.Delay, uint8(60))
	test.Equate(t, m.tmr.Sound, uint8(60))
	test.Equate(t, m.tmr.SoundActive(), true)

	m.tmr.Tick()
	m.step(t) // LD V1, DT
	test.Equate(t, m.mc.V[1], uint8(59))
}

func testRandom(t *testing.T, m *testMachine) {
	// the generator is seeded by the step count so the same program gives
	// the same values on every run. the mask limits the result
	m.putProgram(t, 0xc00f, 0xc100)
	m.step(t) // RND V0, 0x0F
	test.Equate(t, m.mc.V[0]&0xf0, uint8(0))
	m.step(t) // RND V1, 0x00
	test.Equate(t, m.mc.V[1], uint8(0))

	// two machines at the same moment agree
	n := newTestMachine(t)
	n.putProgram(t, 0xc0ff)
	n.step(t)
	m.putProgram(t, 0xc0ff)
	m.step(t)
	test.Equate(t, m.mc.V[0], n.mc.V[0])
}

func testDraw(t *testing.T, m *testMachine) {
	// draw the glyph for zero at (0, 0)
	m.putProgram(t, 0x6000, 0xf029, 0x6105, 0xd115)
	m.step(t)
	m.step(t) // LD F, V0
	m.step(t) // LD V1, 0x05
	m.step(t) // DRW V1, V1, 0x5
	test.Equate(t, m.mc.V[0xf], uint8(0))
	test.Equate(t, m.vid.Pixel(5, 5), true)

	// drawing the same sprite again erases it, with the flag reporting
	// the collision
	if err := m.mem.Poke(0x208, 0xd1); err != nil {
		t.Fatal(err)
	}
	if err := m.mem.Poke(0x209, 0x15); err != nil {
		t.Fatal(err)
	}
	m.step(t) // DRW V1, V1, 0x5
	test.Equate(t, m.mc.V[0xf], uint8(1))
	fb := m.vid.Pixels()
	for i, p := range fb {
		if p {
			t.Fatalf("pixel %d still lit after the sprite erased itself", i)
		}
	}

	// sprites wrap around both edges by default
	m.putProgram(t, 0x6000, 0xf029, 0x613e, 0x621e, 0xd125)
	m.step(t)
	m.step(t) // LD F, V0
	m.step(t) // LD V1, 62
	m.step(t) // LD V2, 30
	m.step(t) // DRW V1, V2, 0x5
	test.Equate(t, m.mc.V[0xf], uint8(0))
	test.Equate(t, m.vid.Pixel(62, 30), true)
	test.Equate(t, m.vid.Pixel(1, 1), true)

	// with the clipping quirk rows and columns past the edge are dropped
	m.prefs.SpriteClipping.Set(true)
	defer m.prefs.SpriteClipping.Set(false)

	m.putProgram(t, 0x6000, 0xf029, 0x613e, 0x621e, 0xd125)
	m.step(t)
	m.step(t)
	m.step(t)
	m.step(t)
	m.step(t) // DRW V1, V2, 0x5
	test.Equate(t, m.vid.Pixel(62, 30), true)
	test.Equate(t, m.vid.Pixel(1, 1), false)
}

func testKeypad(t *testing.T, m *testMachine) {
	// SKP skips when the key in Vx is down
	m.putProgram(t, 0x6007, 0xe09e)
	m.step(t)
	if err := m.kp.SetKey(7, true); err != nil {
		t.Fatal(err)
	}
	m.step(t) // SKP V0
	test.Equate(t, m.mc.PC, uint16(0x206))

	// SKNP skips when it is not
	m.putProgram(t, 0x6007, 0xe0a1)
	m.step(t)
	m.step(t) // SKNP V0
	test.Equate(t, m.mc.PC, uint16(0x206))
}

func testAwaitKey(t *testing.T, m *testMachine) {
	m.putProgram(t, 0x603c, 0xf015, 0xf20a)
	m.step(t) // LD V0, 60
	m.step(t) // LD DT, V0
	m.step(t) // LD V2, K
	test.Equate(t, m.mc.Status.String(), "awaiting key")
	test.Equate(t, m.mc.PC, uint16(0x204))

	// the machine is suspended, not halted. steps do nothing but the
	// timers, ticked from outside, continue to fall
	m.step(t)
	m.step(t)
	test.Equate(t, m.mc.PC, uint16(0x204))
	m.tmr.Tick()
	m.tmr.Tick()
	test.Equate(t, m.tmr.Delay, uint8(58))

	// a key that was already down when the wait began does not count
	m.putProgram(t, 0xf20a)
	if err := m.kp.SetKey(5, true); err != nil {
		t.Fatal(err)
	}
	m.step(t) // LD V2, K
	m.step(t)
	test.Equate(t, m.mc.Status.String(), "awaiting key")
	test.Equate(t, m.mc.PC, uint16(0x200))

	// releasing and pressing again satisfies the wait
	if err := m.kp.SetKey(5, false); err != nil {
		t.Fatal(err)
	}
	if err := m.kp.SetKey(5, true); err != nil {
		t.Fatal(err)
	}
	m.step(t)
	test.Equate(t, m.mc.Status.String(), "running")
	test.Equate(t, m.mc.V[2], uint8(5))
	test.Equate(t, m.mc.PC, uint16(0x202))
}

func testInvalidOpcodes(t *testing.T, m *testMachine) {
	for _, op := range []uint16{0x0000, 0x0123, 0x5011, 0x8008, 0x801f, 0x9011, 0xe000, 0xe0ff, 0xf000, 0xf0ff} {
		m.putProgram(t, op)
		m.stepErr(t, cpu.InvalidOpcode)
	}
}

func TestCPU(t *testing.T) {
	m := newTestMachine(t)

	testLoadAndAdd(t, m)
	testSubtract(t, m)
	testBitwise(t, m)
	testShifts(t, m)
	testSkips(t, m)
	testJumps(t, m)
	testSubroutines(t, m)
	testIndexRegister(t, m)
	testFontAndBCD(t, m)
	testDumpAndLoad(t, m)
	testTimers(t, m)
	testRandom(t, m)
	testDraw(t, m)
	testKeypad(t, m)
	testAwaitKey(t, m)
	testInvalidOpcodes(t, m)
}
