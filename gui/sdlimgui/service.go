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
	"github.com/julienr/chippy8/gui"
	"github.com/julienr/chippy8/logger"

	"github.com/inkyblackness/imgui-go/v4"
	"github.com/veandco/go-sdl2/sdl"
)

// Service implements GuiCreator interface.
func (img *SdlImgui) Service() {
	// refresh lazy values
	if !img.isPlaymode() {
		img.lz.Refresh()
	}

	// poll for sdl event or timeout
	ev := img.polling.wait()

	for ; ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			img.quit()

		case *sdl.TextInputEvent:
			img.io.AddInputCharacters(string(ev.Text[:]))

		case *sdl.KeyboardEvent:
			img.serviceKeyboard(ev)

		case *sdl.MouseButtonEvent:
			// trigger service wake in time for next Service() iteration.
			// without this, the results of the mouse button will not be seen
			// until the timeout (in the next iteration) has elapsed.
			//
			// eg. closing a window: the window will be drawn on *this* frame
			// and *this* mouse button press will be acknowledged. next frame
			// the window will not be drawn. however, the *next* frame will
			// sleep until the time out - *this* mouse button event has been
			// consumed. calling alert() ensures there is no delay in drawing
			// the *next* frame
			img.polling.alert()

		case *sdl.MouseWheelEvent:
			var deltaX, deltaY float32
			if ev.X > 0 {
				deltaX++
			} else if ev.X < 0 {
				deltaX--
			}
			if ev.Y > 0 {
				deltaY++
			} else if ev.Y < 0 {
				deltaY--
			}
			img.io.AddMouseWheelDelta(-deltaX/4, deltaY/4)

		case *sdl.WindowEvent:
			switch ev.Event {
			case sdl.WINDOWEVENT_SIZE_CHANGED:
				img.screen.crit.section.Lock()
				img.playScr.setScaling()
				img.screen.crit.section.Unlock()
				img.polling.alert()
			}
		}
	}

	img.renderFrame()
}

func (img *SdlImgui) renderFrame() {
	// start of a new frame
	img.plt.newFrame()
	imgui.NewFrame()

	// draw all windows according to debug/playmode
	img.draw()

	// rendering. the Render() call only creates the draw data list. actual
	// rendering to the framebuffer is done by the glsl type.
	imgui.Render()
	img.glsl.preRender()
	img.screen.render()
	img.glsl.render()
	img.plt.postRender()
}

func (img *SdlImgui) serviceKeyboard(ev *sdl.KeyboardEvent) {
	if ev.Repeat == 1 {
		return
	}

	if ev.Type == sdl.KEYUP {
		handled := true

		if img.isPlaymode() {
			switch ev.Keysym.Scancode {
			case sdl.SCANCODE_ESCAPE:
				img.quit()

			case sdl.SCANCODE_F7:
				img.playScr.toggleFPS()

			default:
				handled = false
			}
		} else {
			switch ev.Keysym.Scancode {
			case sdl.SCANCODE_TAB:
				// in debugger mode do not handle if an imgui widget is
				// active. the widget takes priority (tab completion in the
				// terminal window for example)
				if imgui.IsAnyItemActive() {
					handled = false
				} else {
					img.wm.toggleOpen(winSelectROMID)
				}

			case sdl.SCANCODE_F10:
				img.wm.toggleOpen(winPrefsID)

			case sdl.SCANCODE_PAUSE:
				if img.state == gui.StateRunning {
					img.term.pushCommand("HALT")
				} else {
					img.term.pushCommand("RUN")
				}

			default:
				handled = false
			}
		}

		if handled {
			return
		}
	}

	// forward keypresses to the emulation. in debugmode, avoid sending
	// key events that an imgui widget has a claim on
	if img.events != nil && (img.isPlaymode() || !imgui.IsAnyItemActive()) {
		mod := gui.KeyModNone

		if sdl.GetModState()&sdl.KMOD_LALT == sdl.KMOD_LALT ||
			sdl.GetModState()&sdl.KMOD_RALT == sdl.KMOD_RALT {
			mod = gui.KeyModAlt
		} else if sdl.GetModState()&sdl.KMOD_LSHIFT == sdl.KMOD_LSHIFT ||
			sdl.GetModState()&sdl.KMOD_RSHIFT == sdl.KMOD_RSHIFT {
			mod = gui.KeyModShift
		} else if sdl.GetModState()&sdl.KMOD_LCTRL == sdl.KMOD_LCTRL ||
			sdl.GetModState()&sdl.KMOD_RCTRL == sdl.KMOD_RCTRL {
			mod = gui.KeyModCtrl
		}

		select {
		case img.events <- gui.Event{
			ID: gui.EventKeyboard,
			Data: gui.EventDataKeyboard{
				Key:  sdl.GetScancodeName(ev.Keysym.Scancode),
				Down: ev.Type == sdl.KEYDOWN,
				Mod:  mod,
			}}:
		default:
			logger.Log("sdlimgui", "dropped keyboard event")
		}
	}

	// remaining keypresses forwarded to imgui io system
	switch ev.Type {
	case sdl.KEYDOWN:
		img.io.KeyPress(int(ev.Keysym.Scancode))
		img.plt.updateKeyModifier()
	case sdl.KEYUP:
		img.io.KeyRelease(int(ev.Keysym.Scancode))
		img.plt.updateKeyModifier()
	}
}
