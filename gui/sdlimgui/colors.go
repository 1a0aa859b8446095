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

// imguiColors defines all the colors used by the gui.
type imguiColors struct {
	// default colors
	MenuBarBg     imgui.Vec4
	WindowBg      imgui.Vec4
	TitleBg       imgui.Vec4
	TitleBgActive imgui.Vec4
	Border        imgui.Vec4

	// an explicitly transparent color
	Transparent imgui.Vec4

	// the run/halt button of the control window
	ControlRun         imgui.Vec4
	ControlRunHovered  imgui.Vec4
	ControlRunActive   imgui.Vec4
	ControlHalt        imgui.Vec4
	ControlHaltHovered imgui.Vec4
	ControlHaltActive  imgui.Vec4

	// disassembly window
	DisasmAddress    imgui.Vec4
	DisasmByteCode   imgui.Vec4
	DisasmMnemonic   imgui.Vec4
	DisasmOperand    imgui.Vec4
	DisasmCurrentPC  imgui.Vec4
	DisasmBreakpoint imgui.Vec4

	// keypad window. used when the emulated key is down
	KeypadDown        imgui.Vec4
	KeypadDownHovered imgui.Vec4
	KeypadDownActive  imgui.Vec4

	// RAM window. cell background of the instruction at the program counter
	RAMInstruction imgui.Vec4

	// terminal window
	TermBackground       imgui.Vec4
	TermStylePrompt      imgui.Vec4
	TermStyleEcho        imgui.Vec4
	TermStyleStep        imgui.Vec4
	TermStyleMachineInfo imgui.Vec4
	TermStyleHelp        imgui.Vec4
	TermStyleFeedback    imgui.Vec4
	TermStyleLog         imgui.Vec4
	TermStyleError       imgui.Vec4

	// log window
	LogBackground imgui.Vec4

	// ROM selector
	ROMSelectDir  imgui.Vec4
	ROMSelectFile imgui.Vec4
}

// newColors initialises the colors and pokes the defaults into the imgui
// style.
func newColors() *imguiColors {
	cols := imguiColors{
		MenuBarBg:     imgui.Vec4{X: 0.075, Y: 0.08, Z: 0.09, W: 1.0},
		WindowBg:      imgui.Vec4{X: 0.075, Y: 0.08, Z: 0.09, W: 1.0},
		TitleBg:       imgui.Vec4{X: 0.075, Y: 0.08, Z: 0.09, W: 1.0},
		TitleBgActive: imgui.Vec4{X: 0.16, Y: 0.29, Z: 0.48, W: 1.0},
		Border:        imgui.Vec4{X: 0.14, Y: 0.14, Z: 0.29, W: 1.0},

		Transparent: imgui.Vec4{X: 0.0, Y: 0.0, Z: 0.0, W: 0.0},

		ControlRun:         imgui.Vec4{X: 0.3, Y: 0.6, Z: 0.3, W: 1.0},
		ControlRunHovered:  imgui.Vec4{X: 0.3, Y: 0.65, Z: 0.3, W: 1.0},
		ControlRunActive:   imgui.Vec4{X: 0.3, Y: 0.65, Z: 0.3, W: 1.0},
		ControlHalt:        imgui.Vec4{X: 0.6, Y: 0.3, Z: 0.3, W: 1.0},
		ControlHaltHovered: imgui.Vec4{X: 0.65, Y: 0.3, Z: 0.3, W: 1.0},
		ControlHaltActive:  imgui.Vec4{X: 0.65, Y: 0.3, Z: 0.3, W: 1.0},

		DisasmAddress:    imgui.Vec4{X: 0.8, Y: 0.4, Z: 0.4, W: 1.0},
		DisasmByteCode:   imgui.Vec4{X: 0.5, Y: 0.5, Z: 0.5, W: 1.0},
		DisasmMnemonic:   imgui.Vec4{X: 0.4, Y: 0.4, Z: 0.8, W: 1.0},
		DisasmOperand:    imgui.Vec4{X: 0.8, Y: 0.8, Z: 0.3, W: 1.0},
		DisasmCurrentPC:  imgui.Vec4{X: 0.5, Y: 1.0, Z: 1.0, W: 1.0},
		DisasmBreakpoint: imgui.Vec4{X: 0.9, Y: 0.4, Z: 0.4, W: 1.0},

		KeypadDown:        imgui.Vec4{X: 0.3, Y: 0.6, Z: 0.3, W: 1.0},
		KeypadDownHovered: imgui.Vec4{X: 0.3, Y: 0.65, Z: 0.3, W: 1.0},
		KeypadDownActive:  imgui.Vec4{X: 0.3, Y: 0.65, Z: 0.3, W: 1.0},

		RAMInstruction: imgui.Vec4{X: 0.2, Y: 0.4, Z: 0.5, W: 1.0},

		TermBackground:       imgui.Vec4{X: 0.1, Y: 0.1, Z: 0.2, W: 0.9},
		TermStylePrompt:      imgui.Vec4{X: 0.8, Y: 0.8, Z: 0.8, W: 1.0},
		TermStyleEcho:        imgui.Vec4{X: 0.8, Y: 0.8, Z: 0.8, W: 1.0},
		TermStyleStep:        imgui.Vec4{X: 0.9, Y: 0.9, Z: 0.5, W: 1.0},
		TermStyleMachineInfo: imgui.Vec4{X: 0.5, Y: 0.8, Z: 0.8, W: 1.0},
		TermStyleHelp:        imgui.Vec4{X: 1.0, Y: 1.0, Z: 1.0, W: 1.0},
		TermStyleFeedback:    imgui.Vec4{X: 0.8, Y: 0.8, Z: 0.8, W: 1.0},
		TermStyleLog:         imgui.Vec4{X: 0.8, Y: 0.7, Z: 0.3, W: 1.0},
		TermStyleError:       imgui.Vec4{X: 0.8, Y: 0.3, Z: 0.3, W: 1.0},

		LogBackground: imgui.Vec4{X: 0.2, Y: 0.2, Z: 0.3, W: 0.9},

		ROMSelectDir:  imgui.Vec4{X: 1.0, Y: 0.5, Z: 0.5, W: 1.0},
		ROMSelectFile: imgui.Vec4{X: 1.0, Y: 1.0, Z: 1.0, W: 1.0},
	}

	// set default colors
	style := imgui.CurrentStyle()
	style.SetColor(imgui.StyleColorMenuBarBg, cols.MenuBarBg)
	style.SetColor(imgui.StyleColorWindowBg, cols.WindowBg)
	style.SetColor(imgui.StyleColorTitleBg, cols.TitleBg)
	style.SetColor(imgui.StyleColorTitleBgActive, cols.TitleBgActive)
	style.SetColor(imgui.StyleColorBorder, cols.Border)

	return &cols
}
