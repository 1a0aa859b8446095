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

// the length of the buffer isn't really important. that said, it needs to
// be at least sha1.Size bytes in length
const audioBufferLength = 1024 + sha1.Size

// to allow digests of buzzer streams longer than audioBufferLength, the
// previous digest value is stuffed into the first part of the buffer and
// included when the next digest value is created
const audioBufferStart = sha1.Size

// Audio is an implementation of the display.AudioMixer interface. It
// generates a SHA-1 value from the stream of buzzer states instead of
// making any sound.
type Audio struct {
	digest   [sha1.Size]byte
	buffer   []uint8
	bufferCt int
}

// NewAudio is the preferred method of initialisation for the Audio type.
// The digest adds itself to the display as an AudioMixer.
func NewAudio(dsp *display.Display) (*Audio, error) {
	dig := &Audio{
		buffer:   make([]uint8, audioBufferLength),
		bufferCt: audioBufferStart,
	}
	dsp.AddAudioMixer(dig)
	return dig, nil
}

// Hash implements the digest.Digest interface.
func (dig *Audio) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the digest.Digest interface.
func (dig *Audio) ResetDigest() {
	for i := range dig.digest {
		dig.digest[i] = 0
	}
}

// SetBuzzer implements the display.AudioMixer interface.
func (dig *Audio) SetBuzzer(active bool) error {
	var b uint8
	if active {
		b = 1
	}
	dig.buffer[dig.bufferCt] = b

	dig.bufferCt++

	if dig.bufferCt >= audioBufferLength {
		return dig.flush()
	}

	return nil
}

func (dig *Audio) flush() error {
	dig.digest = sha1.Sum(dig.buffer)
	n := copy(dig.buffer, dig.digest[:])
	if n != len(dig.digest) {
		return curated.Errorf("digest: %v", "audio digest error while flushing buzzer stream")
	}
	dig.bufferCt = audioBufferStart
	return nil
}

// EndMixing implements the display.AudioMixer interface.
func (dig *Audio) EndMixing() error {
	return dig.flush()
}
