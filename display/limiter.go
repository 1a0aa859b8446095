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

package display

import (
	"time"
)

type limiter struct {
	// whether to wait for the fps limiter each frame
	limit bool

	// the requested number of frames per second
	requested float32

	// actual fps calculation
	actual         float32
	actualCt       int
	actualCtTarget int
	actualRefTime  time.Time

	// channels
	sync    chan bool
	reqRate chan time.Duration
}

func (lmtr *limiter) init() {
	lmtr.limit = true
	lmtr.actualRefTime = time.Now()
	lmtr.sync = make(chan bool)
	lmtr.reqRate = make(chan time.Duration)

	go func() {
		// new ticker with an arbitrary value. it'll get changed soon enough
		tck := time.NewTicker(time.Millisecond)

		for {
			select {
			case <-tck.C:
				select {
				case lmtr.sync <- true:

				// listen for rate requests while signalling the sync
				// channel or the two channels can deadlock on each other
				case d := <-lmtr.reqRate:
					tck.Stop()
					tck = time.NewTicker(d)
				}

			// listen here too. response times would suffer if a very long
			// ticker duration could only be replaced on expiry
			case d := <-lmtr.reqRate:
				tck.Stop()
				tck = time.NewTicker(d)
			}
		}
	}()
}

// set the target frame rate.
func (lmtr *limiter) setRate(fps float32) {
	if fps <= 0 {
		return
	}

	lmtr.requested = fps
	lmtr.reqRate <- time.Duration(float32(time.Second) / fps)

	lmtr.actualCtTarget = int(lmtr.requested) / 2
	lmtr.actualCt = 0
	lmtr.actualRefTime = time.Now()
}

// pause until the next frame is due. does nothing when limiting is off,
// except keep the actual fps measurement up to date.
func (lmtr *limiter) checkRate() {
	if lmtr.limit {
		<-lmtr.sync
	}
	lmtr.measureActual()
}

// called every frame to calculate the frame rate actually being achieved.
func (lmtr *limiter) measureActual() {
	lmtr.actualCt++
	if lmtr.actualCt >= lmtr.actualCtTarget {
		t := time.Now()
		lmtr.actual = float32(lmtr.actualCt) / float32(t.Sub(lmtr.actualRefTime).Seconds())

		// remeasure every second or so. if the rate has dropped below one
		// frame per second then remeasure every frame
		if lmtr.actual > 1 {
			lmtr.actualCtTarget = int(lmtr.actual)
		} else {
			lmtr.actualCtTarget = 1
		}

		lmtr.actualRefTime = t
		lmtr.actualCt = 0
	}
}
