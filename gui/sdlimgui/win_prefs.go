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

	"github.com/inkyblackness/imgui-go/v4"
)

const winPrefsID = "Preferences"

type winPrefs struct {
	windowManagement
	img *SdlImgui
}

func newWinPrefs(img *SdlImgui) (window, error) {
	win := &winPrefs{img: img}
	return win, nil
}

func (win *winPrefs) init() {
}

func (win *winPrefs) id() string {
	return winPrefsID
}

func (win *winPrefs) draw() {
	if !win.open {
		return
	}

	imgui.SetNextWindowPosV(imgui.Vec2{X: 10, Y: 10}, imgui.ConditionFirstUseEver, imgui.Vec2{})
	imgui.BeginV(win.id(), &win.open, imgui.WindowFlagsAlwaysAutoResize)

	// the quirk preferences are atomically backed so reading them from
	// the gui goroutine is fine. changes are made through the terminal so
	// that they echo in the session like any other command
	win.drawQuirk("Shift instructions read Vy", "SHIFTSOURCEY", win.img.ch8.Prefs.ShiftSourceY.Get().(bool))
	win.drawQuirk("Add-to-index overflow sets VF", "INDEXOVERFLOW", win.img.ch8.Prefs.IndexOverflow.Get().(bool))
	win.drawQuirk("Dump and load advance index", "INDEXINCREMENT", win.img.ch8.Prefs.IndexIncrement.Get().(bool))
	win.drawQuirk("Sprites clip at screen edges", "SPRITECLIPPING", win.img.ch8.Prefs.SpriteClipping.Get().(bool))
	win.drawQuirk("High resolution (128x64)", "HIRES", win.img.ch8.Prefs.HighRes.Get().(bool))

	imguiSeparator()

	if imgui.Button("Save") {
		win.img.term.pushCommand("PREFS SAVE")
	}
	imgui.SameLine()
	if imgui.Button("Restore") {
		win.img.term.pushCommand("PREFS LOAD")
	}
	imgui.SameLine()
	if imgui.Button("Defaults") {
		win.img.term.pushCommand("PREFS DEFAULTS")
	}

	imgui.End()
}

func (win *winPrefs) drawQuirk(label string, name string, set bool) {
	if imgui.Checkbox(label, &set) {
		if set {
			win.img.term.pushCommand(fmt.Sprintf("QUIRKS SET %s", name))
		} else {
			win.img.term.pushCommand(fmt.Sprintf("QUIRKS NO %s", name))
		}
	}
}
