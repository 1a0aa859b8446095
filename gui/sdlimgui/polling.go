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
	"time"

	"github.com/julienr/chippy8/gui"

	"github.com/veandco/go-sdl2/sdl"
)

// time periods in milliseconds that each mode sleeps for at the end of each
// service() call. this changes depending on whether we're in debug or play
// mode and whether the emulation is running.
const (
	debugSleepPeriod = 50
	playSleepPeriod  = 10
	idleSleepPeriod  = 500
)

type polling struct {
	img *SdlImgui

	dbgTicker *time.Ticker

	// wake is used to preempt the timeout on the next call to wait(). for
	// example, closing imgui windows might feel laggy without it (see
	// commentary in the service loop for explanation).
	wake bool

	// functions that need to be performed in the main thread are queued for
	// serving by the service loop
	service    chan func()
	serviceErr chan error

	// SetFeature() and GetFeature() hand off requests to the feature
	// channels for servicing. think of these as special instances of the
	// service chan
	featureSet     chan featureRequest
	featureSetErr  chan error
	featureGet     chan featureRequest
	featureGetData chan gui.FeatureReqData
	featureGetErr  chan error
}

func newPolling(img *SdlImgui) *polling {
	pol := &polling{
		img:            img,
		service:        make(chan func(), 1),
		serviceErr:     make(chan error, 1),
		featureSet:     make(chan featureRequest, 1),
		featureSetErr:  make(chan error, 1),
		featureGet:     make(chan featureRequest, 1),
		featureGetData: make(chan gui.FeatureReqData, 1),
		featureGetErr:  make(chan error, 1),
	}

	pol.dbgTicker = time.NewTicker(time.Millisecond * debugSleepPeriod)

	return pol
}

// alert() forces the next call to wait to resolve immediately.
func (pol *polling) alert() {
	pol.wake = true
}

// wait services any queued functions and feature requests and then waits for
// an SDL event or until the timeout expires, whichever happens first.
func (pol *polling) wait() sdl.Event {
	select {
	case f := <-pol.service:
		f()
	case r := <-pol.featureSet:
		pol.img.serviceSetFeature(r)
	case r := <-pol.featureGet:
		pol.img.serviceGetFeature(r)
	default:
	}

	var timeout int

	if pol.wake {
		pol.wake = false
	} else {
		if pol.img.isPlaymode() {
			timeout = playSleepPeriod
		} else {
			// the positive branch selects the more frequent ticker (ie. the
			// one that leads to more CPU usage). we trigger this whenever
			// something is likely to change between frames: when the
			// emulation is running and also when terminal output is waiting
			// to be displayed
			if pol.img.state == gui.StateRunning ||
				pol.img.state == gui.StateStepping ||
				pol.img.state == gui.StateInitialising ||
				pol.img.term.pendingOutput() {
				timeout = debugSleepPeriod
			} else {
				timeout = idleSleepPeriod
			}
		}
	}

	// wait for new SDL event or until the selected timeout period has elapsed
	ev := sdl.WaitEventTimeout(timeout)

	// slow down mouse events. if we don't do this then waggling the mouse
	// over the screen will increase CPU usage significantly. CPU usage will
	// still increase but by a smaller margin.
	switch ev.(type) {
	case *sdl.MouseMotionEvent:
		<-pol.dbgTicker.C
	}

	return ev
}
