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

// Package sdlaudio sounds the buzzer through SDL. The mixer synthesises a
// square wave by default but a sample file named beep.wav or beep.mp3 in
// the resources directory will be used instead if one is present.
package sdlaudio

import (
	"io"
	"os"

	"github.com/julienr/chippy8/curated"
	"github.com/julienr/chippy8/display"
	"github.com/julienr/chippy8/logger"
	"github.com/julienr/chippy8/resources"

	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
	"github.com/veandco/go-sdl2/sdl"
)

// SampleFreq is the frequency the audio device is opened with.
const SampleFreq = 44100

// frequency of the synthesised beep. a whole cycle is exactly one hundred
// samples at SampleFreq.
const beepFreq = 441

const volume = 63

// the sample count requested for the SDL buffer. the value is not critical
// but a small buffer keeps the latency between the sound timer and the
// speaker low.
const bufferLength = 512

// the amount of queued audio to maintain while the buzzer is sounding.
// buzzer state arrives with every frame so the queue only needs to cover a
// few frames worth of samples.
const queueTarget = 3 * SampleFreq / display.FPS

// filenames tried by the sample loader, in order of preference.
var beepFilenames = [...]string{"beep.wav", "beep.mp3"}

// Audio sounds the buzzer using SDL. implements the display.AudioMixer
// interface.
type Audio struct {
	id   sdl.AudioDeviceID
	spec sdl.AudioSpec

	// the samples queued repeatedly while the buzzer is active
	beep []uint8

	// buzzer state at the last SetBuzzer()
	active bool
}

// NewAudio is the preferred method of initialisation for the Audio type.
func NewAudio() (*Audio, error) {
	aud := &Audio{}

	spec := &sdl.AudioSpec{
		Freq:     SampleFreq,
		Format:   sdl.AUDIO_U8,
		Channels: 1,
		Samples:  uint16(bufferLength),
	}

	var err error
	var actualSpec sdl.AudioSpec

	aud.id, err = sdl.OpenAudioDevice("", false, spec, &actualSpec, 0)
	if err != nil {
		return nil, curated.Errorf("sdlaudio: %v", err)
	}
	aud.spec = actualSpec

	aud.beep = aud.loadBeepSample()
	if aud.beep == nil {
		aud.beep = aud.synthesiseBeep()
	}

	// the device is never paused. silence is an empty queue
	sdl.PauseAudioDevice(aud.id, false)

	return aud, nil
}

// SetBuzzer implements the display.AudioMixer interface.
func (aud *Audio) SetBuzzer(active bool) error {
	if !active {
		if aud.active {
			aud.active = false
			sdl.ClearQueuedAudio(aud.id)
		}
		return nil
	}

	aud.active = true

	// top the queue up. the beep buffer is a whole number of cycles (or a
	// complete sample file) so repetition doesn't click
	for sdl.GetQueuedAudioSize(aud.id) < queueTarget {
		if err := sdl.QueueAudio(aud.id, aud.beep); err != nil {
			return curated.Errorf("sdlaudio: %v", err)
		}
	}

	return nil
}

// EndMixing implements the display.AudioMixer interface.
func (aud *Audio) EndMixing() error {
	sdl.ClearQueuedAudio(aud.id)
	sdl.CloseAudioDevice(aud.id)
	return nil
}

// a square wave at beepFreq. the buffer is a whole number of cycles so
// that repeated queueing produces a continuous tone.
func (aud *Audio) synthesiseBeep() []uint8 {
	const cycle = SampleFreq / beepFreq

	beep := make([]uint8, 5*cycle)
	for i := range beep {
		if i%cycle < cycle/2 {
			beep[i] = aud.spec.Silence + volume
		} else {
			beep[i] = aud.spec.Silence - volume
		}
	}
	return beep
}

// look for a sample file in the resources directory. returns nil if there
// is no file or if a file cannot be decoded; the caller falls back to the
// synthesised beep.
func (aud *Audio) loadBeepSample() []uint8 {
	for _, n := range beepFilenames {
		pth, err := resources.JoinPath(n)
		if err != nil {
			continue
		}

		f, err := os.Open(pth)
		if err != nil {
			continue
		}

		var beep []uint8
		switch n {
		case "beep.wav":
			beep, err = aud.decodeWav(f)
		case "beep.mp3":
			beep, err = aud.decodeMp3(f)
		}
		f.Close()

		if err != nil {
			logger.Logf("sdlaudio", "%s: %v", n, err)
			continue
		}

		logger.Logf("sdlaudio", "using beep sample (%s)", pth)
		return beep
	}

	return nil
}

func (aud *Audio) decodeWav(f *os.File) ([]uint8, error) {
	d := wav.NewDecoder(f)

	buf, err := d.FullPCMBuffer()
	if err != nil {
		return nil, err
	}

	depth := buf.SourceBitDepth
	if depth == 0 {
		depth = 16
	}

	// average the channels down to mono
	ch := buf.Format.NumChannels
	if ch < 1 {
		ch = 1
	}

	beep := make([]uint8, 0, len(buf.Data)/ch)
	for i := 0; i+ch-1 < len(buf.Data); i += ch {
		sum := 0
		for j := 0; j < ch; j++ {
			sum += buf.Data[i+j]
		}
		beep = append(beep, aud.convertSample(sum/ch, depth))
	}

	return aud.resample(beep, buf.Format.SampleRate), nil
}

func (aud *Audio) decodeMp3(f *os.File) ([]uint8, error) {
	d, err := mp3.NewDecoder(f)
	if err != nil {
		return nil, err
	}

	// the decoded stream is sixteen bit, little endian, two channels
	data, err := io.ReadAll(d)
	if err != nil {
		return nil, err
	}

	beep := make([]uint8, 0, len(data)/4)
	for i := 0; i+3 < len(data); i += 4 {
		l := int16(uint16(data[i]) | uint16(data[i+1])<<8)
		r := int16(uint16(data[i+2]) | uint16(data[i+3])<<8)
		beep = append(beep, aud.convertSample((int(l)+int(r))/2, 16))
	}

	return aud.resample(beep, d.SampleRate()), nil
}

// convert a decoded sample to an unsigned byte centred on the device
// silence value.
func (aud *Audio) convertSample(v int, bitDepth int) uint8 {
	switch {
	case bitDepth > 8:
		v >>= uint(bitDepth - 8)
	case bitDepth == 8:
		// eight bit wav data is unsigned
		v -= 128
	}

	if v > 127 {
		v = 127
	} else if v < -128 {
		v = -128
	}

	return uint8(int(aud.spec.Silence) + v)
}

// nearest neighbour resampling. crude but adequate for a short beep.
func (aud *Audio) resample(src []uint8, srcRate int) []uint8 {
	if srcRate == SampleFreq || srcRate < 1 || len(src) == 0 {
		return src
	}

	out := make([]uint8, len(src)*SampleFreq/srcRate)
	for i := range out {
		idx := i * srcRate / SampleFreq
		if idx >= len(src) {
			idx = len(src) - 1
		}
		out[i] = src[idx]
	}
	return out
}
