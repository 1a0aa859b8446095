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

// Package regression facilitates the regression testing of the emulation
// code. Tests are stored as entries in a database file in the resources
// directory and can be added, deleted, listed and run from the command
// line (see the REGRESS mode of the main program).
//
// Two types of test are supported. The digest type runs a ROM with no
// key input for a set number of frames and compares a hash of the video
// and/or audio stream against the stored value. It is best suited to
// test ROMs that exercise the machine without needing input.
//
// The playback type replays a transcript made with the recorder package.
// Every event in a transcript carries a hash of the machine state at the
// moment it was recorded, so a playback checks itself as it goes. It is
// the more useful type for real world ROMs (ie. games), which do nothing
// interesting without somebody at the keypad.
package regression
