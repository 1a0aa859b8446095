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

package display_test

import (
	"testing"

	"github.com/julienr/chippy8/display"
	"github.com/julienr/chippy8/test"
)

type testRenderer struct {
	width      int
	height     int
	resizes    int
	frames     int
	lastPixels []bool
}

func (r *testRenderer) Resize(width int, height int) error {
	r.width = width
	r.height = height
	r.resizes++
	return nil
}

func (r *testRenderer) NewFrame(pixels []bool, frameNum int) error {
	r.frames = frameNum
	r.lastPixels = pixels
	return nil
}

type testMixer struct {
	buzzer bool
	ended  bool
}

func (m *testMixer) SetBuzzer(active bool) error {
	m.buzzer = active
	return nil
}

func (m *testMixer) EndMixing() error {
	m.ended = true
	return nil
}

func TestDisplay(t *testing.T) {
	dsp := display.NewDisplay()
	dsp.SetFPSCap(false)

	r := &testRenderer{}
	m := &testMixer{}

	if err := dsp.AddPixelRenderer(r); err != nil {
		t.Fatal(err)
	}
	dsp.AddAudioMixer(m)

	// frames are forwarded to the renderer. the first frame carries the
	// geometry with it
	if err := dsp.NewFrame(make([]bool, 64*32), 64, 32, true); err != nil {
		t.Fatal(err)
	}
	test.Equate(t, r.resizes, 1)
	test.Equate(t, r.width, 64)
	test.Equate(t, r.height, 32)
	test.Equate(t, r.frames, 1)
	test.Equate(t, len(r.lastPixels), 64*32)
	test.Equate(t, m.buzzer, true)

	// an unchanged geometry does not resize again
	if err := dsp.NewFrame(make([]bool, 64*32), 64, 32, false); err != nil {
		t.Fatal(err)
	}
	test.Equate(t, r.resizes, 1)
	test.Equate(t, r.frames, 2)
	test.Equate(t, m.buzzer, false)

	// a changed geometry does
	if err := dsp.NewFrame(make([]bool, 128*64), 128, 64, false); err != nil {
		t.Fatal(err)
	}
	test.Equate(t, r.resizes, 2)
	test.Equate(t, r.width, 128)
	test.Equate(t, r.height, 64)
	test.Equate(t, dsp.GetFrameNum(), 3)

	// a renderer added late learns the geometry immediately
	late := &testRenderer{}
	if err := dsp.AddPixelRenderer(late); err != nil {
		t.Fatal(err)
	}
	test.Equate(t, late.resizes, 1)
	test.Equate(t, late.width, 128)

	// shutting down tells the mixers
	if err := dsp.End(); err != nil {
		t.Fatal(err)
	}
	test.Equate(t, m.ended, true)
}

func TestReset(t *testing.T) {
	dsp := display.NewDisplay()
	dsp.SetFPSCap(false)

	if err := dsp.NewFrame(make([]bool, 64*32), 64, 32, false); err != nil {
		t.Fatal(err)
	}
	test.Equate(t, dsp.GetFrameNum(), 1)

	dsp.Reset()
	test.Equate(t, dsp.GetFrameNum(), 0)
}
