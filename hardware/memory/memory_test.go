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

package memory_test

import (
	"testing"

	"github.com/julienr/chippy8/curated"
	"github.com/julienr/chippy8/hardware/memory"
	"github.com/julienr/chippy8/test"
)

func TestLoad(t *testing.T) {
	mem := memory.NewMemory()

	// a program that fits exactly at the top of memory
	err := mem.Load(make([]uint8, memory.Size-memory.LoadOrigin), memory.LoadOrigin)
	test.ExpectedSuccess(t, err)

	// one byte too many
	err = mem.Load(make([]uint8, memory.Size-memory.LoadOrigin+1), memory.LoadOrigin)
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Is(err, memory.AccessOutOfBounds), true)

	// loaded data is readable at the origin
	err = mem.Load([]uint8{0xde, 0xad}, memory.LoadOrigin)
	test.ExpectedSuccess(t, err)
	v, err := mem.Read8(memory.LoadOrigin)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v, 0xde)
	v, err = mem.Read8(memory.LoadOrigin + 1)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v, 0xad)

	// alternative origins are fine so long as the font is left alone
	err = mem.Load([]uint8{0x01}, 0x0a0)
	test.ExpectedSuccess(t, err)
	err = mem.Load([]uint8{0x01}, 0x09f)
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Is(err, memory.LoadOverwritesFont), true)
	err = mem.Load(make([]uint8, 0x10), 0x045)
	test.ExpectedFailure(t, err)
}

func TestRead16(t *testing.T) {
	mem := memory.NewMemory()

	err := mem.Load([]uint8{0x12, 0x34}, memory.LoadOrigin)
	test.ExpectedSuccess(t, err)

	// instructions are stored big-endian
	v, err := mem.Read16(memory.LoadOrigin)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v, 0x1234)

	// the top byte of memory cannot begin a 16-bit read
	_, err = mem.Read16(memory.TopAddress)
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Is(err, memory.AccessOutOfBounds), true)

	// but the byte below it can
	_, err = mem.Read16(memory.TopAddress - 1)
	test.ExpectedSuccess(t, err)
}

func TestBounds(t *testing.T) {
	mem := memory.NewMemory()

	_, err := mem.Read8(memory.TopAddress)
	test.ExpectedSuccess(t, err)
	_, err = mem.Read8(memory.TopAddress + 1)
	test.ExpectedFailure(t, err)

	err = mem.Write8(memory.TopAddress, 0xff)
	test.ExpectedSuccess(t, err)
	err = mem.Write8(memory.Size, 0xff)
	test.ExpectedFailure(t, err)
}

func TestFont(t *testing.T) {
	mem := memory.NewMemory()

	// glyph addresses advance five bytes per digit
	test.Equate(t, mem.GlyphAddress(0x0), 0x050)
	test.Equate(t, mem.GlyphAddress(0x1), 0x055)
	test.Equate(t, mem.GlyphAddress(0xf), 0x09b)

	// only the low nibble of the digit matters
	test.Equate(t, mem.GlyphAddress(0x10), 0x050)

	// spot-check the glyph rows for zero
	v, err := mem.Read8(mem.GlyphAddress(0))
	test.ExpectedSuccess(t, err)
	test.Equate(t, v, 0xf0)
	v, err = mem.Read8(mem.GlyphAddress(0) + 1)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v, 0x90)

	// the font survives a reset
	mem.Reset()
	v, err = mem.Read8(mem.GlyphAddress(0))
	test.ExpectedSuccess(t, err)
	test.Equate(t, v, 0xf0)

	// but loaded programs do not
	err = mem.Load([]uint8{0xde}, memory.LoadOrigin)
	test.ExpectedSuccess(t, err)
	mem.Reset()
	v, err = mem.Read8(memory.LoadOrigin)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v, 0x00)
}
