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

package sdlimgui

import (
	"fmt"

	"github.com/julienr/chippy8/gui"

	"github.com/inkyblackness/imgui-go/v4"
)

const winControlID = "Control"

const (
	runButtonLabel  = "Run"
	haltButtonLabel = "Halt"
	rateLabel       = "Rate"
)

type winControl struct {
	windowManagement
	img *SdlImgui

	// required dimensions of size sensitive widgets
	runButtonDim imgui.Vec2
	rateLabelDim imgui.Vec2
}

func newWinControl(img *SdlImgui) (window, error) {
	win := &winControl{
		img: img,
	}
	return win, nil
}

func (win *winControl) init() {
	win.runButtonDim = imguiGetFrameDim(runButtonLabel, haltButtonLabel)
	win.rateLabelDim = imguiGetFrameDim(rateLabel)
}

func (win *winControl) id() string {
	return winControlID
}

func (win *winControl) draw() {
	if !win.open {
		return
	}

	imgui.SetNextWindowPosV(imgui.Vec2{X: 651, Y: 228}, imgui.ConditionFirstUseEver, imgui.Vec2{})
	imgui.BeginV(win.id(), &win.open, imgui.WindowFlagsAlwaysAutoResize)

	if win.img.state == gui.StateRunning {
		imgui.PushStyleColor(imgui.StyleColorButton, win.img.cols.ControlHalt)
		imgui.PushStyleColor(imgui.StyleColorButtonHovered, win.img.cols.ControlHaltHovered)
		imgui.PushStyleColor(imgui.StyleColorButtonActive, win.img.cols.ControlHaltActive)
		if imgui.ButtonV(haltButtonLabel, win.runButtonDim) {
			win.img.term.pushCommand("HALT")
		}
	} else {
		imgui.PushStyleColor(imgui.StyleColorButton, win.img.cols.ControlRun)
		imgui.PushStyleColor(imgui.StyleColorButtonHovered, win.img.cols.ControlRunHovered)
		imgui.PushStyleColor(imgui.StyleColorButtonActive, win.img.cols.ControlRunActive)
		if imgui.ButtonV(runButtonLabel, win.runButtonDim) {
			win.img.term.pushCommand("RUN")
		}
	}
	imgui.PopStyleColorV(3)

	imgui.Spacing()

	imgui.AlignTextToFramePadding()
	imgui.Text("Step:")
	imgui.SameLine()
	if imgui.Button("Instruction") {
		win.img.term.pushCommand("STEP")
	}
	imgui.SameLine()
	if imgui.Button("Back") {
		win.img.term.pushCommand("STEP BACK")
	}

	imgui.Spacing()

	if imgui.Button("Reset") {
		win.img.term.pushCommand("RESET")
	}

	imgui.Spacing()

	// figuring the width of the rate slider requires some care. we need to
	// take into account the width of the label and of the padding and inner
	// spacing
	w := imgui.WindowWidth()
	w -= (imgui.CurrentStyle().FramePadding().X * 2) + (imgui.CurrentStyle().ItemInnerSpacing().X * 2)
	w -= win.rateLabelDim.X
	imgui.PushItemWidth(w)

	// the instruction rate is an atomically backed preference so reading it
	// directly from the gui goroutine is fine. the change is made through
	// the terminal so that it echoes in the session like any other command
	rate := int32(win.img.ch8.Prefs.InstRate.Get().(int))
	if imgui.SliderIntV(rateLabel, &rate, 100, 2000, "%d/s", imgui.SliderFlagsNone) {
		win.img.term.pushCommand(fmt.Sprintf("RATE %d", rate))
	}
	imgui.PopItemWidth()

	imgui.End()
}
