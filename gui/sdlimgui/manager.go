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

// window represents the windows managed by the manager type.
type window interface {
	// initialisation function. called by the manager before the first
	// draw. not to be confused with a windows creation function
	init()

	// id should return a unique identifier for the window. note that the
	// window title and any menu entry do not have to be the same value as
	// the id (although it's probably a good idea if they are)
	id() string

	isOpen() bool
	setOpen(bool)

	// draw is called every frame, open or not. the window decides for
	// itself whether anything needs to happen
	draw()
}

// windowManagement is embedded by the window implementations to give them
// the common parts of the window interface.
type windowManagement struct {
	open bool
}

func (wm *windowManagement) isOpen() bool {
	return wm.open
}

func (wm *windowManagement) setOpen(open bool) {
	wm.open = open
}

// manager keeps track of the debugging windows.
type manager struct {
	img *SdlImgui

	// has the window manager gone through its initialisation sequence
	hasInitialised bool

	windows map[string]window

	// typed references to windows that are accessed from outside the
	// manager
	scr *winScreen
}

func newManager(img *SdlImgui) (*manager, error) {
	wm := &manager{
		img:     img,
		windows: make(map[string]window),
	}

	addWindow := func(create func(img *SdlImgui) (window, error), open bool) error {
		w, err := create(img)
		if err != nil {
			return err
		}

		wm.windows[w.id()] = w
		w.setOpen(open)

		return nil
	}

	if err := addWindow(newWinControl, true); err != nil {
		return nil, err
	}
	if err := addWindow(newWinCPU, true); err != nil {
		return nil, err
	}
	if err := addWindow(newWinRAM, true); err != nil {
		return nil, err
	}
	if err := addWindow(newWinDisasm, true); err != nil {
		return nil, err
	}
	if err := addWindow(newWinKeypad, true); err != nil {
		return nil, err
	}
	if err := addWindow(newWinScreen, true); err != nil {
		return nil, err
	}
	if err := addWindow(newWinTerm, true); err != nil {
		return nil, err
	}
	if err := addWindow(newWinLog, false); err != nil {
		return nil, err
	}
	if err := addWindow(newWinSelectROM, false); err != nil {
		return nil, err
	}
	if err := addWindow(newWinPrefs, false); err != nil {
		return nil, err
	}

	wm.scr = wm.windows[winScreenID].(*winScreen)

	return wm, nil
}

// draw the windows and the menu bar. nothing happens in playmode; the
// playscreen is not under the remit of the manager.
func (wm *manager) draw() {
	if wm.img.isPlaymode() {
		return
	}

	// no debugger to serve yet
	if wm.img.dbg == nil {
		return
	}

	if !wm.hasInitialised {
		for w := range wm.windows {
			wm.windows[w].init()
		}
		wm.hasInitialised = true
	}

	wm.drawMenu()

	for w := range wm.windows {
		wm.windows[w].draw()
	}
}

// toggleOpen opens or closes the window. the argument is the window id.
func (wm *manager) toggleOpen(winID string) bool {
	w, ok := wm.windows[winID]
	if !ok {
		return false
	}
	w.setOpen(!w.isOpen())
	return w.isOpen()
}
