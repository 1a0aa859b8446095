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

// Package digest contains implementations of the display interfaces,
// namely PixelRenderer and AudioMixer, such that a cryptographic hash is
// produced. The hash can then be used to compare output from subsequent
// emulation runs - if a new hash differs from a previously recorded value
// then something has changed. This is the basis for regression tests and
// playback verification.
//
// The hashes are chained: each frame's hash folds in the hash of the
// frame before it, so a single value fingerprints the whole history of
// the run, not just its final state.
package digest

// Digest implementations return a cryptographic hash in response to a
// Hash() request. Generation of the hash is achieved via the display
// interfaces.
type Digest interface {
	Hash() string
	ResetDigest()
}
