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
	"github.com/inkyblackness/imgui-go/v4"
)

const winRAMID = "RAM"

type winRAM struct {
	windowManagement
	img *SdlImgui
}

func newWinRAM(img *SdlImgui) (window, error) {
	win := &winRAM{img: img}
	return win, nil
}

func (win *winRAM) init() {
}

func (win *winRAM) id() string {
	return winRAMID
}

func (win *winRAM) draw() {
	if !win.open {
		return
	}

	imgui.SetNextWindowPosV(imgui.Vec2{X: 890, Y: 29}, imgui.ConditionFirstUseEver, imgui.Vec2{})
	imgui.SetNextWindowSizeV(imgui.Vec2{X: 478, Y: 271}, imgui.ConditionFirstUseEver)
	imgui.BeginV(win.id(), &win.open, 0)

	// the lazy system hasn't acquired the memory yet
	ram := win.img.lz.RAM.RAM
	if ram == nil {
		imgui.End()
		return
	}

	pc := int(win.img.lz.CPU.PC)

	// number of colors to pop in after()
	popColor := 0

	before := func(idx int) {
		// highlight the instruction at the current program counter
		if idx == pc || idx == pc+1 {
			imgui.PushStyleColor(imgui.StyleColorFrameBg, win.img.cols.RAMInstruction)
			popColor++
		}
	}

	after := func(_ int) {
		imgui.PopStyleColorV(popColor)
		popColor = 0
	}

	commit := func(idx int, v uint8) {
		addr := uint16(idx)
		win.img.dbg.PushRawEvent(func() {
			// the address is always inside the addressable range so the
			// error can be ignored
			_ = win.img.dbg.Chip8().Mem.Poke(addr, v)
		})
	}

	drawByteGrid("##ram", ram, 0, before, after, commit)

	imgui.End()
}
