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

package playmode

import (
	"github.com/julienr/chippy8/curated"
	"github.com/julienr/chippy8/gui"
	"github.com/julienr/chippy8/hardware"
)

// the conventional mapping of the 4x4 keypad onto the left hand side of a
// modern keyboard:
//
//	1 2 3 4        1 2 3 C
//	Q W E R   ->   4 5 6 D
//	A S D F        7 8 9 E
//	Z X C V        A 0 B F
var keypadKeys = map[string]uint8{
	"1": 0x01, "2": 0x02, "3": 0x03, "4": 0x0c,
	"Q": 0x04, "W": 0x05, "E": 0x06, "R": 0x0d,
	"A": 0x07, "S": 0x08, "D": 0x09, "F": 0x0e,
	"Z": 0x0a, "X": 0x00, "C": 0x0b, "V": 0x0f,

	// QWERTZ layouts
	"Y": 0x0a,
}

// KeyboardEventHandler handles keyboard events sent from the gui. Keys
// that are not part of the keypad are quietly dropped. The debugger uses
// this function too, so the keypad feels the same in both modes.
func KeyboardEventHandler(key gui.EventDataKeyboard, scr gui.GUI, ch8 *hardware.Chip8) (bool, error) {
	if key.Mod != gui.KeyModNone {
		return false, nil
	}

	if key.Key == "F11" {
		if !key.Down {
			return true, nil
		}

		fs, err := scr.GetFeature(gui.ReqFullScreen)
		if err != nil {
			if curated.Is(err, gui.UnsupportedGuiFeature) {
				return true, nil
			}
			return true, err
		}

		return true, scr.SetFeature(gui.ReqFullScreen, !fs.(bool))
	}

	k, ok := keypadKeys[key.Key]
	if !ok {
		return false, nil
	}

	return true, ch8.SetKey(k, key.Down)
}

func (pl *playmode) eventHandler() (bool, error) {
	select {
	case <-pl.intChan:
		return false, nil

	case ev := <-pl.guiEvents:
		switch ev.ID {
		case gui.EventWindowClose:
			return false, nil
		case gui.EventKeyboard:
			_, err := KeyboardEventHandler(ev.Data.(gui.EventDataKeyboard), pl.scr, pl.ch8)
			return err == nil, err
		}

	default:
	}

	return true, nil
}
