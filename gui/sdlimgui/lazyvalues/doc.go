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

// Package lazyvalues is how the gui reads the state of the emulated
// machine. The gui and the emulation run in different goroutines and so
// the gui can never safely read the machine directly.
//
// The types in this package work in two phases, both driven by the
// Refresh() function which the gui calls once per frame. First, the
// gui-side copies of every value are updated from atomic values stored by
// the previous refresh. Second, a function is pushed into the debugger
// goroutine (with PushRawEvent()) which snapshots the machine and stores
// the results in those same atomic values, ready for a later refresh.
//
// The values seen by the gui are therefore always a little stale but
// never torn. For a machine of this speed a frame of staleness amounts to
// nothing at all.
//
// Writing to the machine is out of scope for this package. Code that
// wants to change the machine state should push an event that does the
// work in the debugger goroutine, or run a terminal command.
package lazyvalues
