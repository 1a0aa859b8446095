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

// Package display is the screen and buzzer of the CHIP-8 machine, without
// the presentation. The machine pushes a frame to the Display at every
// timer tick, sixty times an emulated second; the Display forwards the
// frame to every attached PixelRenderer and the buzzer state to every
// attached AudioMixer, and paces the whole machine with its frame
// limiter.
//
// Implementations of PixelRenderer do not have to be visual. The GUI is
// one renderer; the digest used by the regression suite is another.
package display
