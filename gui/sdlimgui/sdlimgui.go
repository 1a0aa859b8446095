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

// Package sdlimgui is an SDL/OpenGL implementation of the gui package,
// with the debugging windows provided by dear imgui.
//
// All SDL and OpenGL calls must happen on the same thread. the Service()
// function is expected to be running in the program's main goroutine, with
// the emulation in a goroutine of its own. communication with the service
// loop from other goroutines is described by the polling type.
package sdlimgui

import (
	"io"

	"github.com/julienr/chippy8/curated"
	"github.com/julienr/chippy8/debugger"
	"github.com/julienr/chippy8/debugger/terminal"
	"github.com/julienr/chippy8/display"
	"github.com/julienr/chippy8/gui"
	"github.com/julienr/chippy8/gui/sdlaudio"
	"github.com/julienr/chippy8/gui/sdlimgui/lazyvalues"
	"github.com/julienr/chippy8/hardware"
	"github.com/julienr/chippy8/logger"
	"github.com/julienr/chippy8/resources"

	"github.com/inkyblackness/imgui-go/v4"
)

// imguiIniFile is where imgui will store the coordinates of the imgui windows
const imguiIniFile = "imgui.ini"

// SdlImgui is an sdl based visualiser using imgui.
type SdlImgui struct {
	// the mechanical requirements for the gui
	io      imgui.IO
	context *imgui.Context
	plt     *platform
	glsl    *glsl

	// references to the emulation. dbg is nil in playmode
	disp *display.Display
	ch8  *hardware.Chip8
	dbg  *debugger.Debugger

	// the channel on which gui events (keypresses etc.) are forwarded to
	// the emulation. registered by the mode-setting feature requests
	events chan gui.Event

	// lazy value system allows safe access to the debugger from the gui
	// thread
	lz *lazyvalues.LazyValues

	// terminal interface to the debugger. this is distinct from the
	// winTerm type which displays the terminal
	term *term

	// implementation of the display.PixelRenderer interface
	screen *screen

	// implementation of the display.AudioMixer interface
	audio *sdlaudio.Audio

	// the playscreen is drawn to the background of the platform window
	playScr *playScr

	// imgui window management
	wm *manager

	// the colors used by the imgui system
	cols *imguiColors

	// polling encapsulates the programmatic communication to the service
	// loop. how the feature requests, pushed functions etc. are handled by
	// the service loop is important to the GUI's responsiveness.
	polling *polling

	// the gui renders differently depending on whether the gui is serving
	// the debugger or the playmode loop
	playmode bool

	// emulation state, as told to us through the ReqState feature request
	state gui.EmulationState

	// fullscreen state. accessed from the gui thread only
	fullScreen bool
}

// NewSdlImgui is the preferred method of initialisation for type SdlImgui
//
// MUST ONLY be called from the gui thread.
func NewSdlImgui(disp *display.Display) (*SdlImgui, error) {
	img := &SdlImgui{
		context: imgui.CreateContext(nil),
		io:      imgui.CurrentIO(),
		disp:    disp,
	}

	// path to dear imgui ini file
	iniPath, err := resources.JoinPath(imguiIniFile)
	if err != nil {
		return nil, curated.Errorf("sdlimgui: %v", err)
	}
	img.io.SetIniFilename(iniPath)

	// define colors
	img.cols = newColors()

	img.plt, err = newPlatform(img)
	if err != nil {
		return nil, curated.Errorf("sdlimgui: %v", err)
	}

	img.glsl, err = newGlsl(img.io, img)
	if err != nil {
		return nil, curated.Errorf("sdlimgui: %v", err)
	}

	img.lz = lazyvalues.NewLazyValues()
	img.screen = newScreen(img)
	img.term = newTerm()
	img.playScr = newPlayScr(img)

	img.wm, err = newManager(img)
	if err != nil {
		return nil, curated.Errorf("sdlimgui: %v", err)
	}

	img.polling = newPolling(img)

	// connect the pixel renderer to the display. texture renderers are
	// added to the pixel renderer on the mode-setting feature requests
	img.disp.AddPixelRenderer(img.screen)

	// this audio mixer produces the beep
	img.audio, err = sdlaudio.NewAudio()
	if err != nil {
		return nil, curated.Errorf("sdlimgui: %v", err)
	}
	img.disp.AddAudioMixer(img.audio)

	// window is shown on the mode-setting feature requests

	return img, nil
}

// Destroy implements GuiCreator interface
//
// MUST ONLY be called from the gui thread.
func (img *SdlImgui) Destroy(output io.Writer) {
	err := img.audio.EndMixing()
	if err != nil {
		output.Write([]byte(err.Error()))
	}

	img.glsl.destroy()

	err = img.plt.destroy()
	if err != nil {
		output.Write([]byte(err.Error()))
	}

	img.context.Destroy()
}

// GetTerminal implements terminal.Broker interface.
func (img *SdlImgui) GetTerminal() terminal.Terminal {
	return img.term
}

// quit the application. how this is achieved depends on the gui mode: the
// debugger is in charge of the inputloop so is asked through the terminal.
func (img *SdlImgui) quit() {
	if img.isPlaymode() {
		select {
		case img.events <- gui.Event{ID: gui.EventWindowClose}:
		default:
			logger.Log("sdlimgui", "dropped window close event")
		}
	} else {
		img.term.pushCommand("QUIT")
	}
}

// draw gui. called from service loop.
func (img *SdlImgui) draw() {
	if img.isPlaymode() {
		img.playScr.draw()
	}
	img.wm.draw()
}

// is the gui in playmode or not. when the answer is false it does not
// necessarily mean the gui is serving the debugger; the gui may not have
// been attached to anything yet.
func (img *SdlImgui) isPlaymode() bool {
	return img.playmode
}

// setPlaymode prepares the gui for serving the playmode loop.
//
// MUST ONLY be called from the gui thread.
func (img *SdlImgui) setPlaymode(ch8 *hardware.Chip8, events chan gui.Event) {
	img.playmode = true
	img.ch8 = ch8
	img.dbg = nil
	img.events = events
	img.lz.SetDebugger(nil)

	img.screen.clearTextureRenderers()
	img.screen.addTextureRenderer(img.playScr)

	img.plt.window.Show()
}

// setDebugmode prepares the gui for serving the debugger.
//
// MUST ONLY be called from the gui thread.
func (img *SdlImgui) setDebugmode(dbg *debugger.Debugger, events chan gui.Event) {
	img.playmode = false
	img.dbg = dbg
	img.ch8 = dbg.Chip8()
	img.events = events
	img.lz.SetDebugger(dbg)

	img.screen.clearTextureRenderers()
	img.screen.addTextureRenderer(img.wm.scr)

	img.plt.window.Show()
}

// toggle the fullscreen state of the platform window.
//
// MUST ONLY be called from the gui thread.
func (img *SdlImgui) setFullScreen(fullScreen bool) {
	img.fullScreen = fullScreen
	img.plt.setFullScreen(fullScreen)
}
