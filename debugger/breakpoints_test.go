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

package debugger_test

import (
	"testing"

	"github.com/julienr/chippy8/debugger"
	"github.com/julienr/chippy8/display"
	"github.com/julienr/chippy8/romloader"
	"github.com/julienr/chippy8/test"
)

// breakpoint and trap bookkeeping needs no ROM. the machine simply sits
// at the load origin while conditions are added and removed.
func TestBreakpointsAndTraps(t *testing.T) {
	trm := newMockTerm(t)

	disp := display.NewDisplay()
	disp.SetFPSCap(false)

	dbg, err := debugger.NewDebugger(disp, &mockGUI{}, trm)
	if err != nil {
		t.Fatalf(err.Error())
	}

	done := make(chan error, 1)
	go func() {
		done <- dbg.Start("", romloader.NewLoader(""))
	}()

	test.Equate(t, trm.lastLine("LIST BREAKS"), "no breakpoints")

	// the default target is the program counter
	test.Equate(t, trm.lastLine("BREAK 0x300"), "")
	test.Equate(t, trm.lastLine("LIST BREAKS"), " 0: PC->0x0300")

	// a duplicate breakpoint is rejected, whether the target is implied
	// or named
	test.Equate(t, trm.lastLine("BREAK PC 0x300"), "already exists (PC->0x0300)")

	test.Equate(t, trm.lastLine("DROP BREAK 0"), "breakpoint #0 dropped")

	test.Equate(t, trm.lastLine("BREAK V0 10"), "")
	test.Equate(t, trm.lastLine("LIST BREAKS"), " 0: V0->0x0a")

	// conditions chained with & land in a single breakpoint
	test.Equate(t, trm.lastLine("BREAK DT 2 & PC 0x300"), "")
	test.Equate(t, trm.lastLine("LIST BREAKS"), " 1: DT->0x02 & PC->0x0300")

	test.Equate(t, trm.lastLine("CLEAR ALL"), "breakpoints and traps cleared")
	test.Equate(t, trm.lastLine("LIST ALL"), "no traps")

	test.Equate(t, trm.lastLine("TRAP DT"), "")
	test.Equate(t, trm.lastLine("LIST TRAPS"), " 0: DT")
	test.Equate(t, trm.lastLine("TRAP DT"), "already exists (DT)")

	// several targets can be trapped with one command
	test.Equate(t, trm.lastLine("TRAP ST PC"), "")
	test.Equate(t, trm.lastLine("LIST TRAPS"), " 2: PC")

	test.Equate(t, trm.lastLine("BREAK XYZ"), "invalid target (XYZ)")

	trm.inp <- "QUIT"
	if err := <-done; err != nil {
		t.Fatalf(err.Error())
	}
}
