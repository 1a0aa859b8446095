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

// Package video implements the monochrome framebuffer of the CHIP-8
// machine.
//
// The framebuffer is normally 64x32 pixels, or 128x64 in high resolution
// mode. It changes in only two ways: Clear() turns every pixel off and
// DrawSprite() XORs a sprite into the buffer. Everything else in the
// system reads the framebuffer through Snapshot().
//
// Sprite drawing wraps around both edges of the screen. With clipping
// enabled only the sprite's origin wraps; pixels that would spill over an
// edge are discarded instead, which is how some of the earliest
// interpreters behaved and what a few ROMs rely on.
package video

// Dimensions of the framebuffer.
const (
	Width  = 64
	Height = 32

	HighResWidth  = 128
	HighResHeight = 64
)

// SpriteWidth is the fixed width of sprites, one bit per pixel.
const SpriteWidth = 8

// Video is the framebuffer.
type Video struct {
	width  int
	height int
	pixels []bool

	highRes bool
}

// NewVideo is the preferred method of initialisation for the Video type.
func NewVideo() *Video {
	vid := &Video{}
	vid.setResolution(false)
	return vid
}

// Snapshot creates a copy of the video sub-system in its current state.
func (vid *Video) Snapshot() *Video {
	n := *vid
	n.pixels = make([]bool, len(vid.pixels))
	copy(n.pixels, vid.pixels)
	return &n
}

func (vid *Video) setResolution(highRes bool) {
	vid.highRes = highRes
	if highRes {
		vid.width = HighResWidth
		vid.height = HighResHeight
	} else {
		vid.width = Width
		vid.height = Height
	}
	vid.pixels = make([]bool, vid.width*vid.height)
}

// SetHighRes switches between the two supported resolutions. The
// framebuffer is cleared as a side effect.
func (vid *Video) SetHighRes(highRes bool) {
	if vid.highRes == highRes {
		return
	}
	vid.setResolution(highRes)
}

// HighRes returns true if the framebuffer is in high resolution mode.
func (vid *Video) HighRes() bool {
	return vid.highRes
}

// Dim returns the current width and height of the framebuffer.
func (vid *Video) Dim() (int, int) {
	return vid.width, vid.height
}

// Reset the framebuffer. All pixels off, resolution unchanged.
func (vid *Video) Reset() {
	vid.Clear()
}

// Clear turns every pixel off.
func (vid *Video) Clear() {
	for i := range vid.pixels {
		vid.pixels[i] = false
	}
}

// Pixel returns the state of the pixel at the given coordinates. Out of
// range coordinates are simply reported as off; the bounds question only
// matters during drawing and that is handled by DrawSprite() itself.
func (vid *Video) Pixel(x, y int) bool {
	if x < 0 || x >= vid.width || y < 0 || y >= vid.height {
		return false
	}
	return vid.pixels[y*vid.width+x]
}

// Pixels returns a copy of the framebuffer, row after row. Use Dim() for
// the geometry.
func (vid *Video) Pixels() []bool {
	c := make([]bool, len(vid.pixels))
	copy(c, vid.pixels)
	return c
}

// DrawSprite XORs the sprite into the framebuffer at the given
// coordinates, one byte per row, most significant bit leftmost. Returns
// true if any pixel was turned off by the draw; the machine records this
// collision in the VF register.
//
// The origin always wraps to the framebuffer dimensions. How pixels
// beyond the right or bottom edge are treated depends on the clip
// argument: false means they wrap to the opposite edge, true means they
// are discarded.
func (vid *Video) DrawSprite(x uint8, y uint8, sprite []uint8, clip bool) bool {
	ox := int(x) % vid.width
	oy := int(y) % vid.height

	collision := false

	for r, bits := range sprite {
		py := oy + r
		if py >= vid.height {
			if clip {
				continue
			}
			py %= vid.height
		}

		for b := 0; b < SpriteWidth; b++ {
			if bits&(0x80>>b) == 0 {
				continue
			}

			px := ox + b
			if px >= vid.width {
				if clip {
					continue
				}
				px %= vid.width
			}

			i := py*vid.width + px
			if vid.pixels[i] {
				collision = true
			}
			vid.pixels[i] = !vid.pixels[i]
		}
	}

	return collision
}
