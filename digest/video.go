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

package digest

import (
	"crypto/sha1"
	"fmt"

	"github.com/julienr/chippy8/curated"
	"github.com/julienr/chippy8/display"
)

// Video is an implementation of the display.PixelRenderer interface. It
// generates a SHA-1 value of the framebuffer every frame. It does not
// display the image anywhere.
//
// Note that the use of SHA-1 is fine for this application because this is
// not a cryptographic task.
type Video struct {
	digest   [sha1.Size]byte
	pixels   []byte
	frameNum int
}

// NewVideo is the preferred method of initialisation for the Video type.
// The digest adds itself to the display as a PixelRenderer.
func NewVideo(dsp *display.Display) (*Video, error) {
	dig := &Video{}

	if err := dsp.AddPixelRenderer(dig); err != nil {
		return nil, curated.Errorf("digest: %v", err)
	}

	return dig, nil
}

// Hash implements the digest.Digest interface.
func (dig *Video) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the digest.Digest interface.
func (dig *Video) ResetDigest() {
	for i := range dig.digest {
		dig.digest[i] = 0
	}
}

// Resize implements the display.PixelRenderer interface.
func (dig *Video) Resize(width int, height int) error {
	// the head of the pixel array holds the digest of the previous frame
	dig.pixels = make([]byte, len(dig.digest)+width*height)
	return nil
}

// NewFrame implements the display.PixelRenderer interface.
func (dig *Video) NewFrame(pixels []bool, frameNum int) error {
	if len(pixels) != len(dig.pixels)-len(dig.digest) {
		return curated.Errorf("digest: %v", "frame does not match the most recent resize")
	}

	// chain fingerprints by copying the value of the last fingerprint to
	// the head of the video data
	n := copy(dig.pixels, dig.digest[:])
	if n != len(dig.digest) {
		return curated.Errorf("digest: %v", "video digest error during new frame")
	}

	for i, p := range pixels {
		var b byte
		if p {
			b = 1
		}
		dig.pixels[len(dig.digest)+i] = b
	}

	dig.digest = sha1.Sum(dig.pixels)
	dig.frameNum = frameNum

	return nil
}
