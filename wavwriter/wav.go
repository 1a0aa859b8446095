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

// Package wavwriter renders the buzzer timeline to disk as a WAV file.
// Note that audio data is buffered in memory in its entirity, and written
// to disk on EndMixing(). It is therefore probably only suitable for
// testing purposes.
package wavwriter

import (
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/julienr/chippy8/curated"
	"github.com/julienr/chippy8/display"
	"github.com/julienr/chippy8/logger"
)

// SampleFreq is the number of samples generated per second. The buzzer
// state arrives sixty times a second and 44100 divides by sixty exactly,
// so every buzzer period renders to a whole number of samples.
const SampleFreq = 44100

// number of samples rendered for each buzzer period.
const samplesPerFrame = SampleFreq / display.FPS

// frequency of the synthesised beep, chosen so that a whole cycle is
// exactly one hundred samples.
const beepFreq = 441

const volume = 63

// WavWriter implements the display.AudioMixer interface.
type WavWriter struct {
	filename string
	buffer   []int8

	// position in the beep cycle. kept across frames so the wave stays
	// continuous while the buzzer is held
	phase int
}

// NewWavWriter is the preferred method of initialisation for the
// WavWriter type.
func NewWavWriter(filename string) (*WavWriter, error) {
	aw := &WavWriter{
		filename: filename,
		buffer:   make([]int8, 0),
	}
	return aw, nil
}

// SetBuzzer implements the display.AudioMixer interface.
func (aw *WavWriter) SetBuzzer(active bool) error {
	if !active {
		aw.phase = 0
		for i := 0; i < samplesPerFrame; i++ {
			aw.buffer = append(aw.buffer, 0)
		}
		return nil
	}

	cycle := SampleFreq / beepFreq
	for i := 0; i < samplesPerFrame; i++ {
		if aw.phase < cycle/2 {
			aw.buffer = append(aw.buffer, volume)
		} else {
			aw.buffer = append(aw.buffer, -volume)
		}
		aw.phase = (aw.phase + 1) % cycle
	}

	return nil
}

// EndMixing implements the display.AudioMixer interface.
func (aw *WavWriter) EndMixing() (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil {
			rerr = curated.Errorf("wavwriter: %v", err)
		}
	}()

	enc := wav.NewEncoder(f, SampleFreq, 8, 1, 1)

	buf := audio.PCMBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  SampleFreq,
		},
		I8:             aw.buffer,
		DataType:       audio.DataTypeI8,
		SourceBitDepth: 8,
	}

	err = enc.Write(buf.AsIntBuffer())
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	err = enc.Close()
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	logger.Logf("wavwriter", "audio written to %s", aw.filename)

	return nil
}
