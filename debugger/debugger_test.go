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
	"io"
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/julienr/chippy8/debugger"
	"github.com/julienr/chippy8/debugger/terminal"
	"github.com/julienr/chippy8/display"
	"github.com/julienr/chippy8/gui"
	"github.com/julienr/chippy8/romloader"
	"github.com/julienr/chippy8/test"
)

// mockGUI is a GUI that accepts any feature request and does nothing.
type mockGUI struct{}

func (g *mockGUI) SetFeature(request gui.FeatureReq, args ...gui.FeatureReqData) error {
	return nil
}

func (g *mockGUI) SetFeatureNoError(request gui.FeatureReq, args ...gui.FeatureReqData) {
}

func (g *mockGUI) GetFeature(request gui.FeatureReq) (gui.FeatureReqData, error) {
	return nil, nil
}

// mockTerm is a terminal fed by the test over a pair of channels.
type mockTerm struct {
	t   *testing.T
	inp chan string
	out chan string
}

func newMockTerm(t *testing.T) *mockTerm {
	return &mockTerm{
		t:   t,
		inp: make(chan string),
		out: make(chan string, 100),
	}
}

func (trm *mockTerm) Initialise() error {
	return nil
}

func (trm *mockTerm) CleanUp() {
}

func (trm *mockTerm) RegisterTabCompletion(terminal.TabCompletion) {
}

func (trm *mockTerm) Silence(_ bool) {
}

func (trm *mockTerm) TermPrintLine(sty terminal.Style, s string) {
	// the echo of the input would confuse the output comparison
	if sty == terminal.StyleEcho {
		return
	}
	trm.out <- s
}

func (trm *mockTerm) TermRead(buffer []byte, _ terminal.Prompt, _ *terminal.ReadEvents) (int, error) {
	s, ok := <-trm.inp
	if !ok {
		return 0, io.EOF
	}
	n := copy(buffer, s)
	return n + 1, nil
}

func (trm *mockTerm) TermReadCheck() bool {
	return false
}

func (trm *mockTerm) IsInteractive() bool {
	return false
}

// sendCommand waits for the debugger to accept the command and returns
// every line the command printed.
func (trm *mockTerm) sendCommand(command string) []string {
	trm.inp <- command

	// a comment line produces no output and has no side effects. the send
	// completing means the debugger is back at the input loop, so all
	// output from the command above has been delivered
	trm.inp <- "# sync"

	lines := make([]string, 0, 10)
	for {
		select {
		case s := <-trm.out:
			lines = append(lines, s)
		default:
			return lines
		}
	}
}

// lastLine is a convenience for commands where only the final line of
// output is interesting.
func (trm *mockTerm) lastLine(command string) string {
	lines := trm.sendCommand(command)
	if len(lines) == 0 {
		return ""
	}
	return lines[len(lines)-1]
}

func TestDebugger(t *testing.T) {
	romFile := filepath.Join(t.TempDir(), "loop.ch8")

	// a two byte program that jumps to itself
	err := ioutil.WriteFile(romFile, []byte{0x12, 0x00}, 0644)
	if err != nil {
		t.Fatalf(err.Error())
	}

	trm := newMockTerm(t)

	disp := display.NewDisplay()
	disp.SetFPSCap(false)

	dbg, err := debugger.NewDebugger(disp, &mockGUI{}, trm)
	if err != nil {
		t.Fatalf(err.Error())
	}

	done := make(chan error, 1)
	go func() {
		done <- dbg.Start("", romloader.NewLoader(romFile))
	}()

	// the default ONSTEP command echoes the instruction just executed
	test.Equate(t, trm.lastLine("STEP"), "0x200 JP 0x200")

	// the jump is to itself so the program counter never moves
	test.Equate(t, trm.lastLine("STEP"), "0x200 JP 0x200")

	test.Equate(t, trm.lastLine("TIMERS"), "DT=0x00 ST=0x00")

	test.Equate(t, trm.lastLine("REGISTERS"),
		"PC=0x0200 I=0x0000 SP=0 (running)\n"+
			"V0=00 V1=00 V2=00 V3=00 V4=00 V5=00 V6=00 V7=00\n"+
			"V8=00 V9=00 VA=00 VB=00 VC=00 VD=00 VE=00 VF=00")

	// two instructions have been executed already. break on the third
	test.Equate(t, trm.lastLine("BREAK STEPS 3"), "")

	// the default ONHALT command list ends with the TIMERS report
	lines := trm.sendCommand("RUN")
	if len(lines) < 3 {
		t.Fatalf("unexpected output from RUN (%v)", lines)
	}
	test.Equate(t, lines[0], "break on STEPS->3")
	test.Equate(t, lines[len(lines)-1], "DT=0x00 ST=0x00")

	// rewind one instruction
	test.Equate(t, trm.lastLine("STEP BACK"), "0x200 JP 0x200")

	// the LAST command has nothing to show after a rewind
	test.Equate(t, trm.lastLine("LAST"), "no instruction decoded yet")

	// poking changes what the disassembly sees
	test.Equate(t, trm.lastLine("POKE 0x300 0xe0"), "0x300 <- 0xe0")
	test.Equate(t, trm.lastLine("PEEK 0x300"), "0x300 -> 0xe0")

	trm.inp <- "QUIT"
	if err := <-done; err != nil {
		t.Fatalf(err.Error())
	}
}
