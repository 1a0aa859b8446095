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

package hardware_test

import (
	"os"
	"testing"

	"github.com/julienr/chippy8/curated"
	"github.com/julienr/chippy8/display"
	"github.com/julienr/chippy8/hardware"
	"github.com/julienr/chippy8/romloader"
	"github.com/julienr/chippy8/test"
)

// run the tests against a portable resource directory so preferences do
// not touch the user's real config directory.
func TestMain(m *testing.M) {
	d, err := os.MkdirTemp("", "chippy8_test")
	if err != nil {
		os.Exit(1)
	}
	defer os.RemoveAll(d)

	if err := os.Chdir(d); err != nil {
		os.Exit(1)
	}
	if err := os.Mkdir(".chippy8", 0700); err != nil {
		os.Exit(1)
	}

	os.Exit(m.Run())
}

// a new machine with the frame limiter off, attached to the given ROM.
func newTestChip8(t *testing.T, rom []uint8, origin uint16) *hardware.Chip8 {
	t.Helper()

	disp := display.NewDisplay()
	disp.SetFPSCap(false)

	ch8, err := hardware.NewChip8(disp)
	if err != nil {
		t.Fatal(err)
	}

	err = ch8.AttachROM(romloader.Loader{
		Filename: "test.ch8",
		Data:     rom,
		Origin:   origin,
	})
	if err != nil {
		t.Fatal(err)
	}

	return ch8
}

// the two byte values of a program given as 16bit opcodes.
func romBytes(opcodes ...uint16) []uint8 {
	b := make([]uint8, 0, len(opcodes)*2)
	for _, op := range opcodes {
		b = append(b, uint8(op>>8), uint8(op))
	}
	return b
}

func TestAttachROM(t *testing.T) {
	ch8 := newTestChip8(t, romBytes(0x1200), 0)
	test.Equate(t, ch8.CPU.PC, uint16(0x200))

	b, err := ch8.Mem.Peek(0x200)
	if err != nil {
		t.Fatal(err)
	}
	test.Equate(t, b, uint8(0x12))

	// a ROM can ask for a different origin
	ch8 = newTestChip8(t, romBytes(0x1300), 0x300)
	test.Equate(t, ch8.CPU.PC, uint16(0x300))

	b, err = ch8.Mem.Peek(0x300)
	if err != nil {
		t.Fatal(err)
	}
	test.Equate(t, b, uint8(0x13))

	// but not an odd one
	disp := display.NewDisplay()
	ch8, err = hardware.NewChip8(disp)
	if err != nil {
		t.Fatal(err)
	}
	err = ch8.AttachROM(romloader.Loader{
		Filename: "test.ch8",
		Data:     romBytes(0x1200),
		Origin:   0x301,
	})
	if err == nil {
		t.Fatal("expected attach to fail")
	}
	if !curated.Is(err, hardware.OddOrigin) {
		t.Fatalf("attach failed with the wrong error (%v)", err)
	}
}

func TestRunForTicks(t *testing.T) {
	// a counting loop. half the executed instructions are the ADD
	ch8 := newTestChip8(t, romBytes(0x7001, 0x1200), 0)

	if err := ch8.RunForTicks(5, nil); err != nil {
		t.Fatal(err)
	}

	// 700 instructions per second shared over five of the sixty ticks
	test.Equate(t, ch8.StepCount(), uint64(58))
	test.Equate(t, ch8.CPU.V[0], uint8(29))
	test.Equate(t, ch8.Disp.GetFrameNum(), 5)
}

func TestRun(t *testing.T) {
	ch8 := newTestChip8(t, romBytes(0x7001, 0x1200), 0)

	ticks := 0
	err := ch8.Run(func() (bool, error) {
		ticks++
		return ticks < 5, nil
	})
	if err != nil {
		t.Fatal(err)
	}

	test.Equate(t, ticks, 5)
	test.Equate(t, ch8.StepCount(), uint64(58))
}

func TestTimerDecay(t *testing.T) {
	// load the delay timer then spin
	ch8 := newTestChip8(t, romBytes(0x600a, 0xf015, 0x1204), 0)

	if err := ch8.RunForTicks(3, nil); err != nil {
		t.Fatal(err)
	}
	test.Equate(t, ch8.Timer.Delay, uint8(7))
}

func TestSound(t *testing.T) {
	// load the sound timer then spin
	ch8 := newTestChip8(t, romBytes(0x6003, 0xf018, 0x1204), 0)

	if err := ch8.RunForTicks(1, nil); err != nil {
		t.Fatal(err)
	}
	test.Equate(t, ch8.SoundActive(), true)

	if err := ch8.RunForTicks(2, nil); err != nil {
		t.Fatal(err)
	}
	test.Equate(t, ch8.SoundActive(), false)
}

func TestSnapshotRestore(t *testing.T) {
	ch8 := newTestChip8(t, romBytes(0x7001, 0x1200), 0)

	if err := ch8.RunForTicks(2, nil); err != nil {
		t.Fatal(err)
	}

	s := ch8.Snapshot()
	v0 := ch8.CPU.V[0]
	pc := ch8.CPU.PC
	steps := ch8.StepCount()

	if err := ch8.RunForTicks(2, nil); err != nil {
		t.Fatal(err)
	}
	if ch8.CPU.V[0] == v0 {
		t.Fatal("machine did not move on after the snapshot")
	}

	ch8.Restore(s)
	test.Equate(t, ch8.CPU.V[0], v0)
	test.Equate(t, ch8.CPU.PC, pc)
	test.Equate(t, ch8.StepCount(), steps)

	// the restored machine must be runnable
	if err := ch8.RunForTicks(1, nil); err != nil {
		t.Fatal(err)
	}
}

func TestReset(t *testing.T) {
	ch8 := newTestChip8(t, romBytes(0x7001, 0x1200), 0)

	if err := ch8.RunForTicks(2, nil); err != nil {
		t.Fatal(err)
	}
	if err := ch8.Reset(); err != nil {
		t.Fatal(err)
	}

	test.Equate(t, ch8.CPU.PC, uint16(0x200))
	test.Equate(t, ch8.CPU.V[0], uint8(0))
	test.Equate(t, ch8.StepCount(), uint64(0))

	// the ROM is still in place after the reset
	b, err := ch8.Mem.Peek(0x200)
	if err != nil {
		t.Fatal(err)
	}
	test.Equate(t, b, uint8(0x70))
}
