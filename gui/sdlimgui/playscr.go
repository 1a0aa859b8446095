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
	"time"

	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/inkyblackness/imgui-go/v4"
)

// playScr covers the entire window with the machine's display when the gui
// is in playmode.
type playScr struct {
	img *SdlImgui
	scr *screen

	// texture the screen pixels are uploaded to
	screenTexture uint32

	// whether the texture must be (re)created on the next render
	createTextures bool

	// extents of the image inside the program window. recalculated by
	// setScaling()
	imagePosMin imgui.Vec2
	imagePosMax imgui.Vec2

	// fps overlay
	fpsOpen  bool
	fpsPulse *time.Ticker
	fps      string
}

func newPlayScr(img *SdlImgui) *playScr {
	win := &playScr{
		img:      img,
		scr:      img.screen,
		fpsPulse: time.NewTicker(time.Second),
	}

	// set up screen texture. the machine's display is blocky by nature so
	// nearest neighbour filtering is the only sensible choice
	gl.GenTextures(1, &win.screenTexture)
	gl.BindTexture(gl.TEXTURE_2D, win.screenTexture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)

	win.resize()

	return win
}

// draw the screen to the background of the program window. must be called
// from the service goroutine and only when the gui is in playmode.
func (win *playScr) draw() {
	dl := imgui.BackgroundDrawList()
	dl.AddImage(imgui.TextureID(win.screenTexture), win.imagePosMin, win.imagePosMax)
	win.drawFPS()
}

// toggleFPS shows or hides the fps overlay.
func (win *playScr) toggleFPS() {
	win.fpsOpen = !win.fpsOpen
}

func (win *playScr) drawFPS() {
	if !win.fpsOpen {
		return
	}

	// update fps value only when the pulse ticks over. too distracting
	// otherwise
	select {
	case <-win.fpsPulse.C:
		win.fps = fmt.Sprintf("%03.1f fps", win.img.disp.GetActualFPS())
	default:
	}

	imgui.SetNextWindowPos(imgui.Vec2{X: 0, Y: 0})

	imgui.PushStyleColor(imgui.StyleColorWindowBg, win.img.cols.Transparent)
	imgui.PushStyleColor(imgui.StyleColorBorder, win.img.cols.Transparent)

	imgui.BeginV("##playscrfps", &win.fpsOpen, imgui.WindowFlagsAlwaysAutoResize|
		imgui.WindowFlagsNoScrollbar|imgui.WindowFlagsNoTitleBar|imgui.WindowFlagsNoDecoration)

	imgui.Text(win.fps)

	imgui.PopStyleColorV(2)
	imgui.End()
}

// resize implements the textureRenderer interface.
func (win *playScr) resize() {
	win.createTextures = true

	win.scr.crit.section.Lock()
	win.setScaling()
	win.scr.crit.section.Unlock()
}

// setScaling fits the image inside the program window, preserving the aspect
// ratio of the machine's display. must be called from within a critical
// section.
func (win *playScr) setScaling() {
	sz := win.img.plt.displaySize()
	screenRegion := imgui.Vec2{X: sz[0], Y: sz[1]}

	w := float32(win.scr.crit.width)
	h := float32(win.scr.crit.height)
	if w == 0 || h == 0 {
		return
	}

	var scaling float32

	winRatio := screenRegion.X / screenRegion.Y
	aspectRatio := w / h

	if aspectRatio < winRatio {
		// window wider than the image. scale by height
		scaling = screenRegion.Y / h
	} else {
		scaling = screenRegion.X / w
	}

	win.imagePosMin = imgui.Vec2{
		X: float32(int((screenRegion.X - (w * scaling)) / 2)),
		Y: float32(int((screenRegion.Y - (h * scaling)) / 2)),
	}
	win.imagePosMax = screenRegion.Minus(win.imagePosMin)
}

// render implements the textureRenderer interface. must be called from the
// service goroutine.
func (win *playScr) render() {
	win.scr.crit.section.Lock()
	defer win.scr.crit.section.Unlock()

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
