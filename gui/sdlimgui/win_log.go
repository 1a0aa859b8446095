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
	"strings"

	"github.com/julienr/chippy8/logger"

	"github.com/inkyblackness/imgui-go/v4"
)

const winLogID = "Log"

type winLog struct {
	windowManagement
	img *SdlImgui

	// number of log entries seen at the last draw. used to notice new
	// entries and scroll to them
	lastLen int
}

func newWinLog(img *SdlImgui) (window, error) {
	win := &winLog{img: img}
	return win, nil
}

func (win *winLog) init() {
}

func (win *winLog) id() string {
	return winLogID
}

func (win *winLog) draw() {
	if !win.open {
		return
	}

	imgui.SetNextWindowPosV(imgui.Vec2{X: 500, Y: 480}, imgui.ConditionFirstUseEver, imgui.Vec2{})
	imgui.SetNextWindowSizeV(imgui.Vec2{X: 400, Y: 400}, imgui.ConditionFirstUseEver)

	imgui.PushStyleColor(imgui.StyleColorWindowBg, win.img.cols.LogBackground)
	imgui.BeginV(win.id(), &win.open, 0)
	imgui.PopStyleColor()

	logger.BorrowLog(func(log []logger.Entry) {
		// only draw elements that will be visible
		var clipper imgui.ListClipper
		clipper.Begin(len(log))
		for clipper.Step() {
			for i := clipper.DisplayStart; i < clipper.DisplayEnd; i++ {
				imgui.Text(strings.TrimSuffix(log[i].String(), "\n"))
			}
		}

		// scroll to the end if the log has grown
		if len(log) != win.lastLen {
			win.lastLen = len(log)
			imgui.SetScrollHereY(1.0)
		}
	})

	imgui.End()
}
