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
	"path/filepath"

	"github.com/inkyblackness/imgui-go/v4"
)

func (wm *manager) drawMenu() {
	if !imgui.BeginMainMenuBar() {
		return
	}
	defer imgui.EndMainMenuBar()

	if imgui.BeginMenu("Debugger") {
		if imgui.Selectable("Select ROM...") {
			wm.windows[winSelectROMID].setOpen(true)
		}
		if imgui.Selectable("Preferences...") {
			wm.windows[winPrefsID].setOpen(true)
		}

		imguiSeparator()

		if imgui.Selectable("Quit") {
			wm.img.term.pushCommand("QUIT")
		}
		imgui.EndMenu()
	}

	if imgui.BeginMenu("Machine") {
		wm.drawMenuEntry(winControlID)
		wm.drawMenuEntry(winCPUID)
		wm.drawMenuEntry(winRAMID)
		wm.drawMenuEntry(winDisasmID)
		wm.drawMenuEntry(winKeypadID)
		wm.drawMenuEntry(winScreenID)
		wm.drawMenuEntry(winTermID)
		wm.drawMenuEntry(winLogID)
		imgui.EndMenu()
	}

	// the name of the attached ROM is displayed in the remaining space of
	// the menu bar, right justified
	rom := filepath.Base(wm.img.lz.Debugger.ROM)
	if rom != "" && rom != "." {
		w := imgui.WindowWidth()
		w -= imgui.CalcTextSize(rom, false, 0).X + imgui.CurrentStyle().FramePadding().X*2
		imgui.SameLineV(w, 0)
		imgui.Text(rom)
	}
}

func (wm *manager) drawMenuEntry(winID string) {
	w, ok := wm.windows[winID]
	if !ok {
		return
	}

	// the dot prefix indicates an open window
	label := fmt.Sprintf("  %s", winID)
	if w.isOpen() {
		label = fmt.Sprintf("· %s", winID)
	}

	if imgui.Selectable(label) {
		w.setOpen(!w.isOpen())
	}
}
