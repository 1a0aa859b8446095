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

package main_test

import (
	"os"
	"testing"

	"github.com/julienr/chippy8/display"
	"github.com/julienr/chippy8/hardware"
	"github.com/julienr/chippy8/romloader"
)

// run from a temporary working directory so machine creation does not touch
// the user's real config directory.
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

func BenchmarkStep(b *testing.B) {
	disp := display.NewDisplay()
	disp.SetFPSCap(false)

	ch8, err := hardware.NewChip8(disp)
	if err != nil {
		b.Fatal(err)
	}

	// a two instruction program. the add keeps the interpreter busy and the
	// jump sends it back to the start
	err = ch8.AttachROM(romloader.Loader{
		Filename: "bench.ch8",
		Data:     []uint8{0x70, 0x01, 0x12, 0x00},
	})
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		if err := ch8.Step(); err != nil {
			b.Fatal(err)
		}
	}
}
