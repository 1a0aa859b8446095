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

// Package romloader is used to specify the ROM that is to be attached to
// the emulated machine.
//
// When the ROM is ready to be loaded into the emulator the Load()
// function should be used. The Load() function handles loading of data
// from different sources. Currently, local files and data over HTTP are
// supported.
//
// The simplest instance of the Loader type:
//
//	ld := romloader.NewLoader("roms/pong.ch8")
//
// The SHA1 hash of the data is available after a successful Load(). If
// the Hash field is filled in before the load then the loaded data must
// match it; this is how the playback and regression systems make sure
// they are working with the ROM they were recorded with.
package romloader
