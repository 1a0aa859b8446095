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

// Package disassembly turns a ROM into a list of instructions.
//
// The disassembly is a static linear pass: every two byte word from the
// load origin onwards is decoded as though it were an instruction. There
// is no attempt to follow the flow of the program, so sprite data will
// show up as nonsense instructions or as raw data entries. For a format
// as small as this one that has proved to be good enough.
//
// The FromLoader() function is the starting point for a full
// disassembly, as used by the "disasm" mode of the main program and by
// the disassembly window of the debugging GUI. The Decode() function is
// available for one-off use on an opcode that is already to hand.
package disassembly
