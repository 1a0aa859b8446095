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

	"github.com/julienr/chippy8/hardware/keypad"

	"github.com/inkyblackness/imgui-go/v4"
)

const winKeypadID = "Keypad"

// the physical arrangement of the sixteen keys.
var keypadLayout = [4][4]uint8{
	{0x1, 0x2, 0x3, 0xc},
	{0x4, 0x5, 0x6, 0xd},
	{0x7, 0x8, 0x9, 0xe},
	{0xa, 0x0, 0xb, 0xf},
}

type winKeypad struct {
	windowManagement
	img *SdlImgui

	// which keys the gui itself is holding down through the mouse. used
	// to notice press and release transitions
	held [keypad.NumKeys]bool
}

func newWinKeypad(img *SdlImgui) (window, error) {
	win := &winKeypad{img: img}
	return win, nil
}

func (win *winKeypad) init() {
}

func (win *winKeypad) id() string {
	return winKeypadID
}

func (win *winKeypad) draw() {
	if !win.open {
		return
	}

	imgui.SetNextWindowPosV(imgui.Vec2{X: 651, Y: 389}, imgui.ConditionFirstUseEver, imgui.Vec2{})
	imgui.BeginV(win.id(), &win.open, imgui.WindowFlagsAlwaysAutoResize)

	// square keys. sized from the font so the window looks right at any
	// font scale
	sz := imgui.FrameHeight() * 1.5
	dim := imgui.Vec2{X: sz, Y: sz}

	for _, row := range keypadLayout {
		for i, key := range row {
			if i > 0 {
				imgui.SameLine()
			}
			win.drawKey(key, dim)
		}
	}

	if win.img.lz.Keypad.Waiting {
		imgui.Spacing()
		imgui.PushStyleColor(imgui.StyleColorText, win.img.cols.TermStyleError)
		imgui.Text("waiting for key press")
		imgui.PopStyleColor()
	}

	imgui.End()
}

func (win *winKeypad) drawKey(key uint8, dim imgui.Vec2) {
	down := win.img.lz.Keypad.Keys[key]

	if down {
		imgui.PushStyleColor(imgui.StyleColorButton, win.img.cols.KeypadDown)
		imgui.PushStyleColor(imgui.StyleColorButtonHovered, win.img.cols.KeypadDownHovered)
		imgui.PushStyleColor(imgui.StyleColorButtonActive, win.img.cols.KeypadDownActive)
	}

	imgui.ButtonV(fmt.Sprintf("%X", key), dim)

	if down {
		imgui.PopStyleColorV(3)
	}

	// note the transition, not the absolute state. the key may also be
	// held through the physical keyboard and we don't want to fight with
	// that
	active := imgui.IsItemActive()
	if active != win.held[key] {
		win.held[key] = active
		win.img.dbg.PushRawEvent(func() {
			_ = win.img.dbg.Chip8().SetKey(key, active)
		})
	}
}
