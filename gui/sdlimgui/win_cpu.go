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
	"strconv"

	"github.com/julienr/chippy8/hardware/cpu"

	"github.com/inkyblackness/imgui-go/v4"
)

const winCPUID = "CPU"

type winCPU struct {
	windowManagement
	img *SdlImgui
}

func newWinCPU(img *SdlImgui) (window, error) {
	win := &winCPU{
		img: img,
	}
	return win, nil
}

func (win *winCPU) init() {
}

func (win *winCPU) id() string {
	return winCPUID
}

func (win *winCPU) draw() {
	if !win.open {
		return
	}

	imgui.SetNextWindowPosV(imgui.Vec2{X: 632, Y: 46}, imgui.ConditionFirstUseEver, imgui.Vec2{})
	imgui.BeginV(win.id(), &win.open, imgui.WindowFlagsAlwaysAutoResize)

	win.drawRegister16("PC", win.img.lz.CPU.PC, func(v uint16) {
		win.img.dbg.Chip8().CPU.PC = v
	})
	imgui.SameLine()
	win.drawRegister16(" I", win.img.lz.CPU.I, func(v uint16) {
		win.img.dbg.Chip8().CPU.I = v
	})

	imgui.Spacing()

	// general purpose registers in a four by four arrangement
	for row := 0; row < cpu.NumRegisters/4; row++ {
		for col := 0; col < 4; col++ {
			if col > 0 {
				imgui.SameLine()
			}
			r := (row * 4) + col
			win.drawRegister8(fmt.Sprintf("V%X", r), win.img.lz.CPU.V[r], func(v uint8) {
				win.img.dbg.Chip8().CPU.V[r] = v
			})
		}
	}

	imguiSeparator()

	win.drawRegister8("Delay", win.img.lz.Timer.Delay, func(v uint8) {
		win.img.dbg.Chip8().Timer.Delay = v
	})
	imgui.SameLine()
	win.drawRegister8("Sound", win.img.lz.Timer.Sound, func(v uint8) {
		win.img.dbg.Chip8().Timer.Sound = v
	})

	imguiSeparator()

	imgui.Text(fmt.Sprintf("%d steps", win.img.lz.Debugger.Steps))
	if win.img.lz.CPU.Status == cpu.AwaitingKey {
		imgui.SameLine()
		imgui.PushStyleColor(imgui.StyleColorText, win.img.cols.TermStyleError)
		imgui.Text("(awaiting key)")
		imgui.PopStyleColor()
	}

	win.drawStack()

	imgui.End()
}

// the stack is drawn newest entry first. the label includes the count so
// that the header shows useful information even when collapsed.
func (win *winCPU) drawStack() {
	sp := win.img.lz.CPU.SP
	if sp < 0 || sp > cpu.StackDepth {
		return
	}

	if !imgui.CollapsingHeader(fmt.Sprintf("Stack (%d)##stack", sp)) {
		return
	}

	if sp == 0 {
		imgui.Text("empty")
		return
	}

	for i := sp - 1; i >= 0; i-- {
		imgui.Text(fmt.Sprintf("%2d: 0x%03x", i, win.img.lz.CPU.Stack[i]))
	}
}

// drawRegister16 is used for the program counter and the index register.
// the value is committed on the debugger goroutine.
func (win *winCPU) drawRegister16(label string, value uint16, commit func(uint16)) {
	imguiLabel(label)

	content := fmt.Sprintf("%03x", value)
	if imguiHexInput(fmt.Sprintf("##%s", label), 3, &content) {
		if v, err := strconv.ParseUint(content, 16, 16); err == nil {
			win.img.dbg.PushRawEvent(func() {
				commit(uint16(v))
			})
		}
	}
}

func (win *winCPU) drawRegister8(label string, value uint8, commit func(uint8)) {
	imguiLabel(label)

	content := fmt.Sprintf("%02x", value)
	if imguiHexInput(fmt.Sprintf("##%s", label), 2, &content) {
		if v, err := strconv.ParseUint(content, 16, 8); err == nil {
			win.img.dbg.PushRawEvent(func() {
				commit(uint8(v))
			})
		}
	}
}
