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

	"github.com/julienr/chippy8/disassembly"
	"github.com/julienr/chippy8/gui"

	"github.com/inkyblackness/imgui-go/v4"
)

const winDisasmID = "Disassembly"

type winDisasm struct {
	windowManagement
	img *SdlImgui

	// centre the listing on the program counter when the emulation is
	// running. see comment at the end of draw()
	followPC bool
}

func newWinDisasm(img *SdlImgui) (window, error) {
	win := &winDisasm{
		img:      img,
		followPC: true,
	}
	return win, nil
}

func (win *winDisasm) init() {
}

func (win *winDisasm) id() string {
	return winDisasmID
}

func (win *winDisasm) draw() {
	if !win.open {
		return
	}

	imgui.SetNextWindowPosV(imgui.Vec2{X: 174, Y: 204}, imgui.ConditionFirstUseEver, imgui.Vec2{})
	imgui.SetNextWindowSizeV(imgui.Vec2{X: 354, Y: 387}, imgui.ConditionFirstUseEver)
	imgui.BeginV(win.id(), &win.open, 0)

	dsm := win.img.lz.Debugger.Disasm
	if dsm != nil {
		pc := win.img.lz.CPU.PC

		imgui.BeginChildV("##entries", imgui.Vec2{}, false, 0)
		for _, e := range dsm.Entries {
			win.drawEntry(e, pc)
		}
		imgui.EndChild()
	}

	imgui.End()

	// followPC is still true on the first frame after the emulation
	// pauses, meaning the centring happens once more after a STEP. which
	// is exactly what we want
	win.followPC = win.img.state != gui.StatePaused
}

// a single line of the listing. a click on the address toggles a breakpoint
// for that address.
func (win *winDisasm) drawEntry(e *disassembly.Entry, pc uint16) {
	onPC := e.Address == pc

	if win.img.lz.Breakpoints.HasPCBreak(e.Address) {
		imgui.PushStyleColor(imgui.StyleColorText, win.img.cols.DisasmBreakpoint)
		imgui.Text("*")
		imgui.PopStyleColor()
	} else {
		imgui.Text(" ")
	}
	imgui.SameLine()

	addressCol := win.img.cols.DisasmAddress
	byteCodeCol := win.img.cols.DisasmByteCode
	mnemonicCol := win.img.cols.DisasmMnemonic
	operandCol := win.img.cols.DisasmOperand
	if onPC {
		addressCol = win.img.cols.DisasmCurrentPC
		byteCodeCol = win.img.cols.DisasmCurrentPC
		mnemonicCol = win.img.cols.DisasmCurrentPC
		operandCol = win.img.cols.DisasmCurrentPC
	}

	imgui.PushStyleColor(imgui.StyleColorText, addressCol)
	imgui.Text(fmt.Sprintf("0x%03x", e.Address))
	imgui.PopStyleColor()

	if imgui.IsItemClicked() {
		addr := e.Address
		win.img.dbg.PushRawEvent(func() {
			win.img.dbg.TogglePCBreak(addr)
		})
	}

	imgui.SameLine()
	imgui.PushStyleColor(imgui.StyleColorText, byteCodeCol)
	imgui.Text(fmt.Sprintf("%4s", e.ByteCode))
	imgui.PopStyleColor()

	imgui.SameLine()
	imgui.PushStyleColor(imgui.StyleColorText, mnemonicCol)
	imgui.Text(fmt.Sprintf("%-4s", e.Mnemonic))
	imgui.PopStyleColor()

	if e.Operand != "" {
		imgui.SameLine()
		imgui.PushStyleColor(imgui.StyleColorText, operandCol)
		imgui.Text(e.Operand)
		imgui.PopStyleColor()
	}

	if onPC && win.followPC {
		imgui.SetScrollHereY(0.5)
	}
}
