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
	"strings"

	"github.com/julienr/chippy8/debugger/terminal"
	"github.com/julienr/chippy8/gui"
	"github.com/julienr/chippy8/logger"
	"github.com/julienr/chippy8/resources"

	"github.com/inkyblackness/imgui-go/v4"
)

const winTermID = "Terminal"

const outputMaxSize = 512

type winTerm struct {
	windowManagement
	img *SdlImgui

	term *term

	input      string
	prompt     terminal.Prompt
	output     []terminalOutput
	moreOutput bool

	history    []string
	historyIdx int

	// height of input line at bottom of window
	inputLineHeight float32

	// word wrap the scrollback
	wrap bool
}

func newWinTerm(img *SdlImgui) (window, error) {
	win := &winTerm{
		img:        img,
		term:       img.term,
		historyIdx: -1,
		wrap:       true,
	}

	return win, nil
}

func (win *winTerm) init() {
}

func (win *winTerm) id() string {
	return winTermID
}

func (win *winTerm) draw() {
	done := false
	for !done {
		// check for channel activity before we do anything
		select {
		case p := <-win.term.promptChan:
			win.prompt = p

		case t := <-win.term.outputChan:
			if len(win.output) >= outputMaxSize {
				win.output = append(win.output[1:], t)
			} else {
				win.output = append(win.output, t)
			}

			// errors are too important to miss so they force the window
			// open
			if t.style == terminal.StyleError {
				win.setOpen(true)
			}

			win.moreOutput = true
		default:
			done = true
		}
	}

	// window open check must happen *after* channel polling
	if !win.open {
		return
	}

	imgui.SetNextWindowPosV(imgui.Vec2{X: 431, Y: 381}, imgui.ConditionFirstUseEver, imgui.Vec2{})
	imgui.SetNextWindowSizeV(imgui.Vec2{X: 534, Y: 313}, imgui.ConditionFirstUseEver)

	imgui.PushStyleColor(imgui.StyleColorWindowBg, win.img.cols.TermBackground)
	imgui.PushStyleVarVec2(imgui.StyleVarFramePadding, imgui.Vec2{X: 2, Y: 2})
	imgui.BeginV(win.id(), &win.open, 0)
	imgui.PopStyleVar()
	imgui.PopStyleColor()

	// make a note if the scrollback has been clicked or is active. we'll
	// use this to help focus the keyboard for the command line. the OR
	// condition is so that the focus isn't lost after a drag event
	var scrollbackActive bool

	height := imguiRemainingWinHeight() - win.inputLineHeight
	if imgui.BeginChildV("##scrollback", imgui.Vec2{X: 0, Y: height}, false, 0) {
		scrollbackActive = imgui.IsItemActive() || (imgui.IsWindowHovered() && imgui.IsMouseReleased(0))

		// only draw elements that will be visible
		var clipper imgui.ListClipper
		clipper.Begin(len(win.output))
		for clipper.Step() {
			for i := clipper.DisplayStart; i < clipper.DisplayEnd; i++ {
				win.output[i].draw(win.img.cols, win.wrap)
			}
		}

		// if output has been added to, scroll to bottom of window
		if win.moreOutput {
			win.moreOutput = false
			imgui.SetScrollHereY(1.0)
		}

		imgui.EndChild()
	}

	// context menu for scrollback area
	if imgui.BeginPopupContextItem() {
		imgui.Checkbox("Word wrap", &win.wrap)
		imgui.Spacing()
		imgui.Separator()
		imgui.Spacing()
		if imgui.Selectable("Clear terminal") {
			win.output = win.output[:0]
		}
		imgui.Spacing()
		if imgui.Selectable("Save output to file") {
			win.saveOutput()
		}
		imgui.EndPopup()
	}

	// the prompt is not updated while the emulation is running so show a
	// "running" label instead
	if win.img.state == gui.StateRunning {
		imguiLabel("running")
	} else {
		imguiLabel(strings.TrimSpace(win.prompt.Content))
	}

	// start command line height measurement
	inputLineHeight := imgui.CursorPosY()

	// draw command input box
	imgui.PushItemWidth(imgui.WindowWidth() - imgui.CursorPosX())
	imgui.PushStyleColor(imgui.StyleColorFrameBg, win.img.cols.TermBackground)

	// this construct says focus the next InputText() box if
	//  - the terminal window is focused
	//  - AND if nothing else has been activated since last frame
	if (imgui.IsWindowFocused() && !imgui.IsAnyItemActive()) || scrollbackActive {
		imgui.SetKeyboardFocusHere()
	}

	if imgui.InputTextV("##input", &win.input,
		imgui.InputTextFlagsEnterReturnsTrue|imgui.InputTextFlagsCallbackCompletion|imgui.InputTextFlagsCallbackHistory,
		win.tabCompleteAndHistory) {
		win.input = strings.TrimSpace(win.input)

		// send input to inputChan even if it is the empty string because
		// the empty string might mean something to the receiver (it does)
		win.term.inputChan <- win.input

		// only add input to history if it is not empty
		if win.input != "" {
			// only add if input is not the same as the last history entry
			if len(win.history) == 0 || win.input != win.history[len(win.history)-1] {
				win.history = append(win.history, win.input)
			}
			win.historyIdx = len(win.history) - 1
		}

		win.input = ""
	}
	imgui.PopStyleColor()
	imgui.PopItemWidth()

	// add some spacing so that when we scroll to the bottom of the window
	// it doesn't look goofy
	imgui.Spacing()

	// commit command line height measurement
	win.inputLineHeight = imgui.CursorPosY() - inputLineHeight

	imgui.End()
}

func (win *winTerm) saveOutput() {
	fn := resources.UniqueFilename("terminal", "")
	f, err := os.Create(fn)
	if err != nil {
		win.output = append(win.output, terminalOutput{
			style: terminal.StyleError,
			text:  "could not save terminal output",
		})
		return
	}
	defer func() {
		err := f.Close()
		if err != nil {
			logger.Logf("sdlimgui", "error saving terminal contents: %v", err)
		}
	}()

	for _, o := range win.output {
		f.Write([]byte(o.text))
		f.Write([]byte("\n"))
	}

	win.output = append(win.output, terminalOutput{
		style: terminal.StyleFeedback,
		text:  fmt.Sprintf("terminal output saved to %s", fn),
	})
}

func (win *winTerm) tabCompleteAndHistory(d imgui.InputTextCallbackData) int32 {
	switch d.EventKey() {
	case imgui.KeyTab:
		// tab completion
		if win.term.tabCompletion != nil {
			b := string(d.Buffer())
			s := win.term.tabCompletion.Complete(b)
			d.DeleteBytes(0, len(b))
			d.InsertBytes(0, []byte(s))
			d.MarkBufferModified()
		}

	case imgui.KeyUpArrow:
		// previous history item
		if win.historyIdx > -1 {
			b := string(d.Buffer())
			d.DeleteBytes(0, len(b))
			d.InsertBytes(0, []byte(win.history[win.historyIdx]))
			if win.historyIdx > 0 {
				win.historyIdx--
			}
			d.MarkBufferModified()
		}

	case imgui.KeyDownArrow:
		// next history item
		if win.historyIdx < len(win.history)-1 {
			b := string(d.Buffer())
			if win.historyIdx < len(win.history)-1 {
				win.historyIdx++
			}
			d.DeleteBytes(0, len(b))
			d.InsertBytes(0, []byte(win.history[win.historyIdx]))
		} else {
			b := string(d.Buffer())
			d.DeleteBytes(0, len(b))
		}
		d.MarkBufferModified()
	}

	return 0
}

func (l terminalOutput) draw(cols *imguiColors, wrap bool) {
	switch l.style {
	case terminal.StylePromptStep, terminal.StylePromptConfirm:
		imgui.PushStyleColor(imgui.StyleColorText, cols.TermStylePrompt)

	case terminal.StyleStep:
		imgui.PushStyleColor(imgui.StyleColorText, cols.TermStyleStep)

	case terminal.StyleMachineInfo:
		imgui.PushStyleColor(imgui.StyleColorText, cols.TermStyleMachineInfo)

	case terminal.StyleHelp:
		imgui.PushStyleColor(imgui.StyleColorText, cols.TermStyleHelp)

	case terminal.StyleFeedback:
		imgui.PushStyleColor(imgui.StyleColorText, cols.TermStyleFeedback)

	case terminal.StyleEcho:
		imgui.PushStyleColor(imgui.StyleColorText, cols.TermStyleEcho)

	case terminal.StyleLog:
		imgui.PushStyleColor(imgui.StyleColorText, cols.TermStyleLog)

	case terminal.StyleError:
		imgui.PushStyleColor(imgui.StyleColorText, cols.TermStyleError)

	default:
		imgui.PushStyleColor(imgui.StyleColorText, cols.TermStyleFeedback)
	}
	defer imgui.PopStyleColor()

	if wrap {
		imgui.PushTextWrapPos()
		defer imgui.PopTextWrapPos()
	}

	imgui.Text(l.text)
}
