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

package debugger

import (
	"github.com/julienr/chippy8/curated"
	"github.com/julienr/chippy8/debugger/terminal"
	"github.com/julienr/chippy8/gui"
	"github.com/julienr/chippy8/logger"
	"github.com/julienr/chippy8/playmode"
)

// readEventsHandler drains the event channels without blocking. used
// when the machine is running and the terminal isn't being read, which
// would otherwise leave the channels unchecked.
func (dbg *Debugger) readEventsHandler() error {
	for {
		select {
		case <-dbg.events.IntEvents:
			return curated.Errorf(terminal.UserInterrupt)
		case ev := <-dbg.events.GuiEvents:
			if err := dbg.events.GuiEventHandler(ev); err != nil {
				return err
			}
		case f := <-dbg.events.RawEvents:
			f()
		default:
			return nil
		}
	}
}

// guiEventHandler is registered with the ReadEvents type and called
// whenever a gui event is received, whoever happens to be draining the
// channel at the time.
func (dbg *Debugger) guiEventHandler(ev gui.Event) error {
	switch ev.ID {
	case gui.EventWindowClose:
		dbg.running = false
	case gui.EventKeyboard:
		// keypad mapping is shared with playmode. keys that aren't part
		// of the keypad are quietly dropped
		_, err := playmode.KeyboardEventHandler(ev.Data.(gui.EventDataKeyboard), dbg.scr, dbg.ch8)
		return err
	}
	return nil
}

// PushRawEvent onto the event queue. the function will run in the
// debugger goroutine the next time the events are checked.
func (dbg *Debugger) PushRawEvent(f func()) {
	select {
	case dbg.events.RawEvents <- f:
	default:
		logger.Log("debugger", "dropped raw event push")
	}
}
