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

package debugger

import "github.com/julienr/chippy8/hardware"

// the number of machine states kept for the STEP BACK command. one state
// is pushed per instruction so this is also the maximum number of
// instructions that can be unwound.
const historyDepth = 256

// history is a rolling record of machine snapshots, oldest first.
type history struct {
	states []*hardware.State
}

// newHistory is the preferred method of initialisation for history.
func newHistory() *history {
	hst := &history{}
	hst.reset()
	return hst
}

// reset forgets all stored states. used whenever continuity with the
// past is broken, a new ROM for example.
func (hst *history) reset() {
	hst.states = make([]*hardware.State, 0, historyDepth)
}

// push a snapshot onto the history, discarding the oldest state if the
// history is full.
func (hst *history) push(s *hardware.State) {
	if len(hst.states) >= historyDepth {
		copy(hst.states, hst.states[1:])
		hst.states = hst.states[:len(hst.states)-1]
	}
	hst.states = append(hst.states, s)
}

// pop returns the state n entries back, discarding it and everything
// more recent. returns nil if the history isn't deep enough.
func (hst *history) pop(n int) *hardware.State {
	if n < 1 || n > len(hst.states) {
		return nil
	}
	s := hst.states[len(hst.states)-n]
	hst.states = hst.states[:len(hst.states)-n]
	return s
}

// depth returns the number of stored states.
func (hst *history) depth() int {
	return len(hst.states)
}
