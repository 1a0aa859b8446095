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
	"os"
	"path/filepath"
	"strings"

	"github.com/julienr/chippy8/logger"
	"github.com/julienr/chippy8/romloader"

	"github.com/inkyblackness/imgui-go/v4"
)

const winSelectROMID = "Select ROM"

type winSelectROM struct {
	img  *SdlImgui
	open bool

	currPath string
	entries  []os.DirEntry

	selectedFile string
	showAllFiles bool
	showHidden   bool

	scrollToTop bool

	// height of options line at bottom of window. valid after first frame
	controlHeight float32
}

func newWinSelectROM(img *SdlImgui) (window, error) {
	win := &winSelectROM{
		img:         img,
		scrollToTop: true,
	}

	path, err := os.Getwd()
	if err != nil {
		path = "."
	}
	if err := win.setPath(path); err != nil {
		return nil, err
	}

	return win, nil
}

func (win *winSelectROM) init() {
}

func (win *winSelectROM) id() string {
	return winSelectROMID
}

func (win *winSelectROM) isOpen() bool {
	return win.open
}

// setOpen is a deviation from the windowManagement implementation. on
// opening, the selector navigates to the directory of the attached ROM.
func (win *winSelectROM) setOpen(open bool) {
	win.open = open
	if !open {
		return
	}

	f := win.img.lz.Debugger.ROM
	if f == "" {
		return
	}

	if abs, err := filepath.Abs(f); err == nil {
		f = abs
	}

	d := filepath.Dir(f)
	if err := win.setPath(d); err != nil {
		logger.Logf("sdlimgui", "error setting path (%s)", d)
		return
	}
	win.selectedFile = f
}

func (win *winSelectROM) draw() {
	if !win.open {
		return
	}

	imgui.SetNextWindowPosV(imgui.Vec2{X: 20, Y: 20}, imgui.ConditionFirstUseEver, imgui.Vec2{})
	imgui.BeginV(win.id(), &win.open, imgui.WindowFlagsAlwaysAutoResize)

	if imgui.Button("Parent") {
		d := filepath.Dir(win.currPath)
		if err := win.setPath(d); err != nil {
			logger.Logf("sdlimgui", "error setting path (%s)", d)
		}
		win.scrollToTop = true
	}

	imgui.SameLine()
	imgui.Text(win.currPath)

	height := imgui.WindowHeight() - imgui.CursorPosY() - win.controlHeight -
		imgui.CurrentStyle().FramePadding().Y*2 - imgui.CurrentStyle().ItemInnerSpacing().Y
	imgui.BeginChildV("##selector", imgui.Vec2{X: 300, Y: height}, true, 0)

	if win.scrollToTop {
		imgui.SetScrollY(0)
		win.scrollToTop = false
	}

	// list directories
	imgui.PushStyleColor(imgui.StyleColorText, win.img.cols.ROMSelectDir)
	for _, f := range win.entries {
		// ignore dot files
		if !win.showHidden && strings.HasPrefix(f.Name(), ".") {
			continue
		}

		// os.Stat() rather than f.Info() so that symlinks are resolved
		fi, err := os.Stat(filepath.Join(win.currPath, f.Name()))
		if err != nil {
			continue
		}

		if fi.Mode().IsDir() {
			if imgui.Selectable(fmt.Sprintf("%s [dir]", f.Name())) {
				d := filepath.Join(win.currPath, f.Name())
				if err := win.setPath(d); err != nil {
					logger.Logf("sdlimgui", "error setting path (%s)", d)
				}
				win.scrollToTop = true
			}
		}
	}
	imgui.PopStyleColor()

	// list files
	imgui.PushStyleColor(imgui.StyleColorText, win.img.cols.ROMSelectFile)
	for _, f := range win.entries {
		// ignore dot files
		if !win.showHidden && strings.HasPrefix(f.Name(), ".") {
			continue
		}

		fi, err := os.Stat(filepath.Join(win.currPath, f.Name()))
		if err != nil {
			continue
		}

		if !fi.Mode().IsRegular() {
			continue
		}

		// ignore unrecognised file extensions unless showAllFiles is set
		if !win.showAllFiles {
			ext := strings.ToLower(filepath.Ext(f.Name()))
			hasExt := false
			for _, e := range romloader.FileExtensions {
				if e == ext {
					hasExt = true
					break
				}
			}
			if !hasExt {
				continue // to next file
			}
		}

		selected := f.Name() == filepath.Base(win.selectedFile)
		if imgui.SelectableV(f.Name(), selected, 0, imgui.Vec2{}) {
			win.selectedFile = filepath.Join(win.currPath, f.Name())
		}
	}
	imgui.PopStyleColor()

	imgui.EndChild()

	// control buttons. start controlHeight measurement
	win.controlHeight = imguiMeasureHeight(func() {
		imgui.Checkbox("Show all files", &win.showAllFiles)
		imgui.SameLine()
		imgui.Checkbox("Show hidden entries", &win.showHidden)

		imgui.Spacing()

		if imgui.Button("Cancel") {
			win.setOpen(false)
		}

		if win.selectedFile != "" {
			imgui.SameLine()

			var s string

			// load or reload button
			if win.selectedFile == win.img.lz.Debugger.ROM {
				s = fmt.Sprintf("Reload %s", filepath.Base(win.selectedFile))
			} else {
				s = fmt.Sprintf("Load %s", filepath.Base(win.selectedFile))
			}

			if imgui.Button(s) {
				filename := win.selectedFile
				win.img.dbg.PushRawEvent(func() {
					if err := win.img.dbg.InsertROM(filename); err != nil {
						logger.Logf("sdlimgui", err.Error())
					}
				})
				win.setOpen(false)
			}
		}
	})

	imgui.End()
}

func (win *winSelectROM) setPath(path string) error {
	var err error
	win.currPath = filepath.Clean(path)
	win.entries, err = os.ReadDir(win.currPath)
	if err != nil {
		return err
	}
	win.selectedFile = ""
	return nil
}
