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

package video_test

import (
	"testing"

	"github.com/julienr/chippy8/hardware/video"
	"github.com/julienr/chippy8/test"
)

func TestDrawAndClear(t *testing.T) {
	vid := video.NewVideo()

	// a one-row sprite with every bit set
	collision := vid.DrawSprite(0, 0, []uint8{0xff}, false)
	test.Equate(t, collision, false)
	for x := 0; x < 8; x++ {
		test.Equate(t, vid.Pixel(x, 0), true)
	}
	test.Equate(t, vid.Pixel(8, 0), false)

	vid.Clear()
	for x := 0; x < 8; x++ {
		test.Equate(t, vid.Pixel(x, 0), false)
	}
}

// drawing the same sprite twice at the same position returns the screen
// to its previous state, with the second draw reporting a collision.
func TestDrawSelfInverse(t *testing.T) {
	vid := video.NewVideo()

	sprite := []uint8{0xf0, 0x90, 0x90, 0x90, 0xf0}

	collision := vid.DrawSprite(10, 5, sprite, false)
	test.Equate(t, collision, false)

	collision = vid.DrawSprite(10, 5, sprite, false)
	test.Equate(t, collision, true)

	for y := 0; y < video.Height; y++ {
		for x := 0; x < video.Width; x++ {
			test.Equate(t, vid.Pixel(x, y), false)
		}
	}
}

func TestDrawWraparound(t *testing.T) {
	vid := video.NewVideo()

	// a sprite drawn at the right edge continues at the left edge
	vid.DrawSprite(62, 0, []uint8{0xff}, false)
	test.Equate(t, vid.Pixel(62, 0), true)
	test.Equate(t, vid.Pixel(63, 0), true)
	test.Equate(t, vid.Pixel(0, 0), true)
	test.Equate(t, vid.Pixel(5, 0), true)
	test.Equate(t, vid.Pixel(6, 0), false)

	// and a sprite at the bottom edge continues at the top
	vid.Clear()
	vid.DrawSprite(0, 31, []uint8{0x80, 0x80}, false)
	test.Equate(t, vid.Pixel(0, 31), true)
	test.Equate(t, vid.Pixel(0, 0), true)

	// the origin itself wraps modulo the dimensions
	vid.Clear()
	vid.DrawSprite(64, 32, []uint8{0x80}, false)
	test.Equate(t, vid.Pixel(0, 0), true)
}

func TestDrawClipping(t *testing.T) {
	vid := video.NewVideo()

	// with clipping, pixels beyond the right edge are discarded
	vid.DrawSprite(62, 0, []uint8{0xff}, true)
	test.Equate(t, vid.Pixel(62, 0), true)
	test.Equate(t, vid.Pixel(63, 0), true)
	test.Equate(t, vid.Pixel(0, 0), false)

	// and so are rows beyond the bottom edge
	vid.Clear()
	vid.DrawSprite(0, 31, []uint8{0x80, 0x80}, true)
	test.Equate(t, vid.Pixel(0, 31), true)
	test.Equate(t, vid.Pixel(0, 0), false)
}

func TestHighRes(t *testing.T) {
	vid := video.NewVideo()

	w, h := vid.Dim()
	test.Equate(t, w, video.Width)
	test.Equate(t, h, video.Height)

	vid.DrawSprite(0, 0, []uint8{0x80}, false)

	// switching resolution clears the framebuffer
	vid.SetHighRes(true)
	w, h = vid.Dim()
	test.Equate(t, w, video.HighResWidth)
	test.Equate(t, h, video.HighResHeight)
	test.Equate(t, vid.Pixel(0, 0), false)

	// wraparound follows the new dimensions
	vid.DrawSprite(126, 0, []uint8{0xff}, false)
	test.Equate(t, vid.Pixel(126, 0), true)
	test.Equate(t, vid.Pixel(3, 0), true)

	// setting the mode it is already in does nothing
	vid.SetHighRes(true)
	test.Equate(t, vid.Pixel(126, 0), true)
}

func TestSnapshot(t *testing.T) {
	vid := video.NewVideo()

	vid.DrawSprite(0, 0, []uint8{0x80}, false)
	snap := vid.Snapshot()

	// the snapshot does not follow subsequent changes
	vid.Clear()
	test.Equate(t, snap.Pixel(0, 0), true)
	test.Equate(t, vid.Pixel(0, 0), false)
}
