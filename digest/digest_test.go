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

package digest_test

import (
	"testing"

	"github.com/julienr/chippy8/digest"
	"github.com/julienr/chippy8/display"
	"github.com/julienr/chippy8/test"
)

func newVideoDigest(t *testing.T) *digest.Video {
	t.Helper()

	dsp := display.NewDisplay()
	dsp.SetFPSCap(false)

	dig, err := digest.NewVideo(dsp)
	if err != nil {
		t.Fatal(err)
	}

	return dig
}

func TestVideoDigest(t *testing.T) {
	blank := make([]bool, 64*32)
	lit := make([]bool, 64*32)
	lit[0] = true

	// the same sequence of frames always gives the same hash
	a := newVideoDigest(t)
	if err := a.Resize(64, 32); err != nil {
		t.Fatal(err)
	}
	if err := a.NewFrame(blank, 1); err != nil {
		t.Fatal(err)
	}
	if err := a.NewFrame(lit, 2); err != nil {
		t.Fatal(err)
	}

	b := newVideoDigest(t)
	if err := b.Resize(64, 32); err != nil {
		t.Fatal(err)
	}
	if err := b.NewFrame(blank, 1); err != nil {
		t.Fatal(err)
	}
	if err := b.NewFrame(lit, 2); err != nil {
		t.Fatal(err)
	}

	test.Equate(t, a.Hash(), b.Hash())

	// a different sequence gives a different hash
	c := newVideoDigest(t)
	if err := c.Resize(64, 32); err != nil {
		t.Fatal(err)
	}
	if err := c.NewFrame(lit, 1); err != nil {
		t.Fatal(err)
	}
	if err := c.NewFrame(blank, 2); err != nil {
		t.Fatal(err)
	}
	if c.Hash() == a.Hash() {
		t.Fatal("different frame sequences produced the same hash")
	}

	// the hashes are chained: a repeated frame still moves the hash on
	h := a.Hash()
	if err := a.NewFrame(lit, 3); err != nil {
		t.Fatal(err)
	}
	if a.Hash() == h {
		t.Fatal("digest hash did not move on with a new frame")
	}

	// resetting the digest starts the chain again
	a.ResetDigest()
	b.ResetDigest()
	if err := a.NewFrame(blank, 1); err != nil {
		t.Fatal(err)
	}
	if err := b.NewFrame(blank, 1); err != nil {
		t.Fatal(err)
	}
	test.Equate(t, a.Hash(), b.Hash())
}

func TestAudioDigest(t *testing.T) {
	dsp := display.NewDisplay()
	dsp.SetFPSCap(false)

	a, err := digest.NewAudio(dsp)
	if err != nil {
		t.Fatal(err)
	}

	before := a.Hash()

	// enough buzzer states to force at least one flush
	for i := 0; i < 2048; i++ {
		if err := a.SetBuzzer(i%2 == 0); err != nil {
			t.Fatal(err)
		}
	}
	if err := a.EndMixing(); err != nil {
		t.Fatal(err)
	}
	if a.Hash() == before {
		t.Fatal("buzzer stream did not move the hash on")
	}

	// the same stream gives the same hash
	dsp2 := display.NewDisplay()
	dsp2.SetFPSCap(false)
	b, err := digest.NewAudio(dsp2)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 2048; i++ {
		if err := b.SetBuzzer(i%2 == 0); err != nil {
			t.Fatal(err)
		}
	}
	if err := b.EndMixing(); err != nil {
		t.Fatal(err)
	}
	test.Equate(t, a.Hash(), b.Hash())
}
