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
	"image"
	"image/color"
	"sync"

	"github.com/julienr/chippy8/hardware/video"
)

// colours used to express the monochrome display.
var (
	pixelBg = color.RGBA{R: 10, G: 10, B: 12, A: 255}
	pixelFg = color.RGBA{R: 200, G: 255, B: 200, A: 255}
)

// textureRenderer implementations know how to create and update the
// texture(s) used to present the screen. implementations are added with
// addTextureRenderer().
type textureRenderer interface {
	render()
	resize()
}

// screen implements display.PixelRenderer.
type screen struct {
	img *SdlImgui

	crit screenCrit

	// list of renderers to call from render()
	renderers []textureRenderer

	// the emulation goroutine can be made to wait on these channels when the
	// frame buffers are full. see NewFrame() and copyPixels()
	emuWait    chan bool
	emuWaitAck chan bool
}

// for clarity, variables accessed in the critical section are grouped
// together in the screenCrit type.
type screenCrit struct {
	// critical sectioning
	section sync.Mutex

	// geometry of the machine's framebuffer
	width  int
	height int

	// the pixels used by the presentation textures
	pixels *image.RGBA

	// frames are plotted to bufferPixels while we wait for the gui to
	// present an earlier frame
	bufferPixels [3]*image.RGBA

	// which buffer we'll be plotting to and which buffer we'll be rendering
	// from
	plotIdx   int
	renderIdx int

	// the frame number of the most recently plotted frame
	frameNum int

	// whether the emulation should be throttled to the pace of the gui. when
	// false the most recent frame is always presented and the emulation is
	// never made to wait
	monitorSync bool
}

func newScreen(img *SdlImgui) *screen {
	scr := &screen{
		img:        img,
		renderers:  make([]textureRenderer, 0),
		emuWait:    make(chan bool),
		emuWaitAck: make(chan bool),
	}

	scr.crit.section.Lock()
	scr.crit.monitorSync = true
	scr.crit.section.Unlock()

	_ = scr.resize(video.Width, video.Height)

	return scr
}

// setMonitorSync to throttle the emulation to the gui or to let it run free.
func (scr *screen) setMonitorSync(sync bool) {
	scr.crit.section.Lock()
	defer scr.crit.section.Unlock()
	scr.crit.monitorSync = sync
}

// addTextureRenderer to the list of renderers consulted by render(). must be
// called from the service goroutine.
func (scr *screen) addTextureRenderer(r textureRenderer) {
	scr.renderers = append(scr.renderers, r)
	r.resize()
}

// clearTextureRenderers removes all renderers from the list. must be called
// from the service goroutine.
func (scr *screen) clearTextureRenderers() {
	scr.renderers = make([]textureRenderer, 0)
}

// Resize implements the display.PixelRenderer interface. called from the
// emulation goroutine; the work happens in the service goroutine.
func (scr *screen) Resize(width int, height int) error {
	scr.img.polling.service <- func() {
		scr.img.polling.serviceErr <- scr.resize(width, height)
	}
	return <-scr.img.polling.serviceErr
}

// resize is called by Resize() from the service goroutine.
func (scr *screen) resize(width int, height int) error {
	scr.crit.section.Lock()

	scr.crit.width = width
	scr.crit.height = height

	scr.crit.pixels = image.NewRGBA(image.Rect(0, 0, width, height))
	for i := range scr.crit.bufferPixels {
		scr.crit.bufferPixels[i] = image.NewRGBA(image.Rect(0, 0, width, height))
	}

	// a fresh framebuffer is all background
	for i := 0; i < len(scr.crit.pixels.Pix); i += 4 {
		scr.crit.pixels.Pix[i] = pixelBg.R
		scr.crit.pixels.Pix[i+1] = pixelBg.G
		scr.crit.pixels.Pix[i+2] = pixelBg.B
		scr.crit.pixels.Pix[i+3] = pixelBg.A
	}
	for i := range scr.crit.bufferPixels {
		copy(scr.crit.bufferPixels[i].Pix, scr.crit.pixels.Pix)
	}

	scr.crit.section.Unlock()

	for _, r := range scr.renderers {
		r.resize()
	}

	return nil
}

// NewFrame implements the display.PixelRenderer interface. called from the
// emulation goroutine.
func (scr *screen) NewFrame(pixels []bool, frameNum int) error {
	scr.crit.section.Lock()

	scr.crit.frameNum = frameNum

	// frame pushed before the resize request has been serviced. drop it
	if len(pixels) != scr.crit.width*scr.crit.height {
		scr.crit.section.Unlock()
		return nil
	}

	buf := scr.crit.bufferPixels[scr.crit.plotIdx]
	for i, p := range pixels {
		o := i * 4
		if p {
			buf.Pix[o] = pixelFg.R
			buf.Pix[o+1] = pixelFg.G
			buf.Pix[o+2] = pixelFg.B
			buf.Pix[o+3] = pixelFg.A
		} else {
			buf.Pix[o] = pixelBg.R
			buf.Pix[o+1] = pixelBg.G
			buf.Pix[o+2] = pixelBg.B
			buf.Pix[o+3] = pixelBg.A
		}
	}

	if scr.crit.monitorSync {
		scr.crit.plotIdx++
		if scr.crit.plotIdx >= len(scr.crit.bufferPixels) {
			scr.crit.plotIdx = 0
		}

		// if plotIdx has caught up with renderIdx then we wait for the
		// service goroutine to consume a frame
		if scr.crit.plotIdx == scr.crit.renderIdx {
			scr.crit.section.Unlock()
			scr.emuWait <- true
			<-scr.emuWaitAck
			return nil
		}
	}

	scr.crit.section.Unlock()
	return nil
}

// copyPixels makes the most recent completed frame available to the texture
// renderers. must be called from the service goroutine.
func (scr *screen) copyPixels() {
	// let the emulation goroutine know it's okay to continue as soon as
	// possible
	select {
	case <-scr.emuWait:
		scr.crit.section.Lock()

		scr.crit.renderIdx++
		if scr.crit.renderIdx >= len(scr.crit.bufferPixels) {
			scr.crit.renderIdx = 0
		}
		copy(scr.crit.pixels.Pix, scr.crit.bufferPixels[scr.crit.renderIdx].Pix)

		scr.crit.section.Unlock()
		scr.emuWaitAck <- true

	default:
		scr.crit.section.Lock()

		if scr.crit.monitorSync {
			// advance the render index if a new frame is available
			v := scr.crit.renderIdx + 1
			if v >= len(scr.crit.bufferPixels) {
				v = 0
			}
			if v != scr.crit.plotIdx {
				scr.crit.renderIdx = v
			}
		} else {
			scr.crit.renderIdx = scr.crit.plotIdx
		}
		copy(scr.crit.pixels.Pix, scr.crit.bufferPixels[scr.crit.renderIdx].Pix)

		scr.crit.section.Unlock()
	}
}

// render the screen. must be called from the service goroutine.
func (scr *screen) render() {
	scr.copyPixels()
	for _, r := range scr.renderers {
		r.render()
	}
}
