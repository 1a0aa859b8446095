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

package display

import (
	"fmt"
)

// FPS is the natural frame rate of the machine. Frames are pushed on
// every timer tick and the timers fall at sixty hertz.
const FPS = 60

// PixelRenderer implementations present, or otherwise work with, the
// frames pushed to the Display.
//
// Resize() is called when the renderer is added and again whenever the
// framebuffer geometry changes. The pixels slice given to NewFrame() is
// width*height long, row after row, and is not reused by the caller; the
// renderer may keep it.
type PixelRenderer interface {
	Resize(width int, height int) error
	NewFrame(pixels []bool, frameNum int) error
}

// AudioMixer implementations sound, or otherwise work with, the buzzer.
// The buzzer state arrives with every frame. EndMixing() is called once,
// when the machine is being shut down.
type AudioMixer interface {
	SetBuzzer(active bool) error
	EndMixing() error
}

// Display is the fan-out point between the machine and whatever is
// watching it. It has no screen of its own.
type Display struct {
	width  int
	height int

	frameNum int
	buzzer   bool

	// list of renderer implementations to consult
	renderers []PixelRenderer

	// list of audio mixers to consult
	mixers []AudioMixer

	lmtr limiter
}

// NewDisplay is the preferred method of initialisation for the Display
// type.
func NewDisplay() *Display {
	dsp := &Display{
		renderers: make([]PixelRenderer, 0),
		mixers:    make([]AudioMixer, 0),
	}
	dsp.lmtr.init()
	dsp.lmtr.setRate(FPS)
	return dsp
}

func (dsp *Display) String() string {
	return fmt.Sprintf("FR=%d %dx%d", dsp.frameNum, dsp.width, dsp.height)
}

// AddPixelRenderer adds a renderer implementation to the list. The
// renderer is told the current framebuffer geometry straight away.
func (dsp *Display) AddPixelRenderer(r PixelRenderer) error {
	dsp.renderers = append(dsp.renderers, r)
	if dsp.width > 0 && dsp.height > 0 {
		return r.Resize(dsp.width, dsp.height)
	}
	return nil
}

// AddAudioMixer adds an audio mixer implementation to the list.
func (dsp *Display) AddAudioMixer(m AudioMixer) {
	dsp.mixers = append(dsp.mixers, m)
}

// Reset the frame count. Renderers and mixers stay attached.
func (dsp *Display) Reset() {
	dsp.frameNum = 0
	dsp.buzzer = false
}

// NewFrame passes a frame and the buzzer state to every attached
// renderer and mixer. The frame limiter slows the caller to the target
// rate, which makes this function the heartbeat of the whole emulation.
func (dsp *Display) NewFrame(pixels []bool, width int, height int, buzzer bool) error {
	if width != dsp.width || height != dsp.height {
		dsp.width = width
		dsp.height = height
		for f := range dsp.renderers {
			if err := dsp.renderers[f].Resize(width, height); err != nil {
				return err
			}
		}
	}

	dsp.frameNum++
	for f := range dsp.renderers {
		if err := dsp.renderers[f].NewFrame(pixels, dsp.frameNum); err != nil {
			return err
		}
	}

	dsp.buzzer = buzzer
	for f := range dsp.mixers {
		if err := dsp.mixers[f].SetBuzzer(buzzer); err != nil {
			return err
		}
	}

	dsp.lmtr.checkRate()

	return nil
}

// End shuts the display down cleanly. All attached mixers receive
// EndMixing.
func (dsp *Display) End() error {
	var err error
	for f := range dsp.mixers {
		if e := dsp.mixers[f].EndMixing(); e != nil && err == nil {
			err = e
		}
	}
	return err
}

// SetFPSCap turns the frame limiter on or off. With the limiter off the
// machine runs as fast as the host allows; the regression suite and the
// performance profiler want this.
func (dsp *Display) SetFPSCap(limit bool) {
	dsp.lmtr.limit = limit
}

// ReqFPS requests a frame rate other than the natural sixty hertz.
// Useful as a crude speed control.
func (dsp *Display) ReqFPS(fps float32) {
	dsp.lmtr.setRate(fps)
}

// GetReqFPS returns the currently requested frame rate.
func (dsp *Display) GetReqFPS() float32 {
	return dsp.lmtr.requested
}

// GetActualFPS returns the frame rate being achieved. The value is
// only updated every second or so.
func (dsp *Display) GetActualFPS() float32 {
	return dsp.lmtr.actual
}

// GetFrameNum returns the number of frames pushed since the last reset.
func (dsp *Display) GetFrameNum() int {
	return dsp.frameNum
}

// Dim returns the framebuffer geometry of the most recent frame.
func (dsp *Display) Dim() (int, int) {
	return dsp.width, dsp.height
}
