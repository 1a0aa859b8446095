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

package playmode_test

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/julienr/chippy8/display"
	"github.com/julienr/chippy8/gui"
	"github.com/julienr/chippy8/hardware"
	"github.com/julienr/chippy8/playmode"
	"github.com/julienr/chippy8/recorder"
	"github.com/julienr/chippy8/romloader"
	"github.com/julienr/chippy8/test"
)

// mockGUI plays the part of the screen. when the playmode loop registers
// its event channel the mock posts the scripted events followed by a
// window close, which ends the loop.
type mockGUI struct {
	script []gui.Event
}

func (scr *mockGUI) SetFeature(request gui.FeatureReq, args ...gui.FeatureReqData) error {
	if request == gui.ReqSetPlaymode {
		events := args[1].(chan gui.Event)
		go func() {
			for _, ev := range scr.script {
				events <- ev
			}
			events <- gui.Event{ID: gui.EventWindowClose}
		}()
	}
	return nil
}

func (scr *mockGUI) SetFeatureNoError(request gui.FeatureReq, args ...gui.FeatureReqData) {
}

func (scr *mockGUI) GetFeature(request gui.FeatureReq) (gui.FeatureReqData, error) {
	return nil, nil
}

func TestKeyboardEventHandler(t *testing.T) {
	disp := display.NewDisplay()
	disp.SetFPSCap(false)

	ch8, err := hardware.NewChip8(disp)
	if err != nil {
		t.Fatal(err)
	}

	scr := &mockGUI{}

	handled, err := playmode.KeyboardEventHandler(gui.EventDataKeyboard{Key: "X", Down: true}, scr, ch8)
	test.ExpectedSuccess(t, err)
	test.ExpectedSuccess(t, handled)
	test.Equate(t, ch8.Keypad.String(), "held: 0")

	handled, err = playmode.KeyboardEventHandler(gui.EventDataKeyboard{Key: "X", Down: false}, scr, ch8)
	test.ExpectedSuccess(t, err)
	test.ExpectedSuccess(t, handled)
	test.Equate(t, ch8.Keypad.String(), "no keys held")

	// Y doubles for Z on keyboards where the two are swapped
	handled, err = playmode.KeyboardEventHandler(gui.EventDataKeyboard{Key: "Y", Down: true}, scr, ch8)
	test.ExpectedSuccess(t, err)
	test.ExpectedSuccess(t, handled)
	test.Equate(t, ch8.Keypad.String(), "held: A")

	// keys that aren't part of the keypad are left alone
	handled, err = playmode.KeyboardEventHandler(gui.EventDataKeyboard{Key: "G", Down: true}, scr, ch8)
	test.ExpectedSuccess(t, err)
	test.ExpectedFailure(t, handled)

	// as are keypad keys with a modifier held
	handled, err = playmode.KeyboardEventHandler(gui.EventDataKeyboard{Key: "W", Down: true, Mod: gui.KeyModShift}, scr, ch8)
	test.ExpectedSuccess(t, err)
	test.ExpectedFailure(t, handled)
	test.Equate(t, ch8.Keypad.String(), "held: A")
}

func TestPlayTranscript(t *testing.T) {
	dir := t.TempDir()

	// jump-to-self program. runs forever without touching the screen
	romFile := filepath.Join(dir, "loop.ch8")
	if err := ioutil.WriteFile(romFile, []byte{0x12, 0x00}, 0644); err != nil {
		t.Fatal(err)
	}

	transcript := filepath.Join(dir, "transcript")

	scr := &mockGUI{script: []gui.Event{
		{ID: gui.EventKeyboard, Data: gui.EventDataKeyboard{Key: "W", Down: true}},
		{ID: gui.EventKeyboard, Data: gui.EventDataKeyboard{Key: "W", Down: false}},
	}}

	disp := display.NewDisplay()
	disp.SetFPSCap(false)

	err := playmode.Play(disp, scr, true, transcript, romloader.NewLoader(romFile), "")
	if err != nil {
		t.Fatal(err)
	}

	// the recorded transcript must reperform cleanly on a fresh machine
	plb, err := recorder.NewPlayback(transcript)
	if err != nil {
		t.Fatal(err)
	}
	test.Equate(t, plb.ROMLoad.Filename, romFile)

	disp = display.NewDisplay()
	disp.SetFPSCap(false)

	ch8, err := hardware.NewChip8(disp)
	if err != nil {
		t.Fatal(err)
	}
	ch8.Rnd.ZeroSeed = true

	if err := plb.AttachToChip8(ch8); err != nil {
		t.Fatal(err)
	}
	if err := ch8.AttachROM(plb.ROMLoad); err != nil {
		t.Fatal(err)
	}

	err = ch8.Run(func() (bool, error) {
		ended, err := plb.EndFrame()
		return !ended, err
	})
	if err != nil {
		t.Fatal(err)
	}
}
