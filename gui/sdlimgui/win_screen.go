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

	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/inkyblackness/imgui-go/v4"
)

const winScreenID = "Display"

// winScreen is the view of the machine's display when the gui is serving
// the debugger. it implements the textureRenderer interface; the pixels
// are uploaded during screen.render(), not during draw().
type winScreen struct {
	windowManagement
	img *SdlImgui
	scr *screen

	// how much the emulated pixels are stretched by. changed with the
	// slider underneath the image
	scaling float32

	// create textures on the next call of render
	createTextures bool

	// the texture that the screen pixels are drawn to. render() keeps it
	// up to date. also read by the render pass when deciding which shader
	// to use
	screenTexture uint32
}

func newWinScreen(img *SdlImgui) (window, error) {
	win := &winScreen{
		img:     img,
		scr:     img.screen,
		scaling: 10.0,
	}

	gl.GenTextures(1, &win.screenTexture)
	gl.BindTexture(gl.TEXTURE_2D, win.screenTexture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)

	return win, nil
}

func (win *winScreen) init() {
}

func (win *winScreen) id() string {
	return winScreenID
}

func (win *winScreen) draw() {
	if !win.open {
		return
	}

	win.scr.crit.section.Lock()
	w := float32(win.scr.crit.width) * win.scaling
	h := float32(win.scr.crit.height) * win.scaling
	frameNum := win.scr.crit.frameNum
	win.scr.crit.section.Unlock()

	imgui.SetNextWindowPosV(imgui.Vec2{X: 8, Y: 28}, imgui.ConditionFirstUseEver, imgui.Vec2{})
	imgui.BeginV(win.id(), &win.open, imgui.WindowFlagsAlwaysAutoResize)

	// an ImageButton rather than an Image so that a click-drag on the
	// image does not drag the window around
	imgui.PushStyleColor(imgui.StyleColorButton, win.img.cols.Transparent)
	imgui.PushStyleColor(imgui.StyleColorButtonActive, win.img.cols.Transparent)
	imgui.PushStyleColor(imgui.StyleColorButtonHovered, win.img.cols.Transparent)
	imgui.PushStyleVarVec2(imgui.StyleVarFramePadding, imgui.Vec2{})
	imgui.ImageButton(imgui.TextureID(win.screenTexture), imgui.Vec2{X: w, Y: h})
	imgui.PopStyleVar()
	imgui.PopStyleColorV(3)

	imgui.AlignTextToFramePadding()
	imgui.Text(fmt.Sprintf("frame %d", frameNum))

	imgui.SameLineV(0, 15)
	imgui.PushItemWidth(imguiRemainingWinWidth())
	imgui.SliderFloatV("##scaling", &win.scaling, 4, 24, "%.0fx", imgui.SliderFlagsNone)
	imgui.PopItemWidth()

	imgui.End()
}

// resize implements the textureRenderer interface.
func (win *winScreen) resize() {
	win.createTextures = true
}

// render implements the textureRenderer interface.
//
// MUST be called from the gui thread and inside the screen critical
// section.
func (win *winScreen) render() {
	pixels := win.scr.crit.pixels
	if pixels == nil {
		return
	}

	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, int32(pixels.Stride)/4)
	defer gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)

	gl.BindTexture(gl.TEXTURE_2D, win.screenTexture)
	if win.createTextures {
		gl.TexImage2D(gl.TEXTURE_2D, 0,
			gl.RGBA, int32(pixels.Bounds().Size().X), int32(pixels.Bounds().Size().Y), 0,
			gl.RGBA, gl.UNSIGNED_BYTE,
			gl.Ptr(pixels.Pix))
		win.createTextures = false
	} else {
		gl.TexSubImage2D(gl.TEXTURE_2D, 0,
			0, 0, int32(pixels.Bounds().Size().X), int32(pixels.Bounds().Size().Y),
			gl.RGBA, gl.UNSIGNED_BYTE,
			gl.Ptr(pixels.Pix))
	}
}
