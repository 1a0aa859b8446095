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

// Package memory implements the 4096 bytes of addressable memory in the
// CHIP-8 machine.
//
// The lowest 512 bytes are reserved. In this area, at FontOrigin, lives
// the built-in font: sixteen glyphs of five bytes each, one for every
// hexadecimal digit. Programs are loaded at LoadOrigin by convention,
// although an alternative origin can be given.
//
// All access functions work with the full 16-bit address type but only
// addresses up to TopAddress are valid. Anything higher is an
// AccessOutOfBounds error.
package memory

import (
	"github.com/julienr/chippy8/curated"
)

// Size is the number of addressable bytes.
const Size = 4096

// TopAddress is the highest valid address.
const TopAddress = Size - 1

// FontOrigin is where the built-in font begins. The font occupies five
// bytes per glyph for sixteen glyphs, ending at 0x09f.
const FontOrigin = 0x050

// GlyphSize is the number of bytes in one font glyph.
const GlyphSize = 5

// LoadOrigin is the conventional address at which programs are loaded.
const LoadOrigin = 0x200

// Sentinel errors for the memory package.
const (
	// AccessOutOfBounds is returned whenever an address outside of
	// addressable memory is touched. The value in the message is the
	// offending address.
	AccessOutOfBounds = "memory: access out of bounds (%#04x)"

	// LoadOverwritesFont is returned by Load() when the program area
	// would clash with the built-in font.
	LoadOverwritesFont = "memory: load would overwrite font area (origin %#04x)"
)

// Memory is the 4096 bytes of addressable memory. The zero value is not
// usable; initialise with NewMemory().
type Memory struct {
	ram [Size]uint8
}

// NewMemory is the preferred method of initialisation for the Memory
// type.
func NewMemory() *Memory {
	mem := &Memory{}
	mem.Reset()
	return mem
}

// Reset zeroes all memory and restores the built-in font.
func (mem *Memory) Reset() {
	for i := range mem.ram {
		mem.ram[i] = 0
	}
	copy(mem.ram[FontOrigin:], font[:])
}

// Snapshot creates a copy of the memory in its current state.
func (mem *Memory) Snapshot() *Memory {
	n := *mem
	return &n
}

// Load copies a program into memory at the given origin. The origin is
// almost always LoadOrigin.
//
// The program must fit below the top of memory and must not touch the
// built-in font.
func (mem *Memory) Load(data []uint8, origin uint16) error {
	end := int(origin) + len(data)
	if end > Size {
		return curated.Errorf(AccessOutOfBounds, end-1)
	}

	if int(origin) < FontOrigin+GlyphSize*16 && end > FontOrigin {
		return curated.Errorf(LoadOverwritesFont, origin)
	}

	copy(mem.ram[origin:], data)
	return nil
}

// Read8 returns the byte at the given address.
func (mem *Memory) Read8(address uint16) (uint8, error) {
	if address > TopAddress {
		return 0, curated.Errorf(AccessOutOfBounds, address)
	}
	return mem.ram[address], nil
}

// Read16 returns the big-endian 16-bit value beginning at the given
// address. Instruction fetch is the main consumer. Both bytes must be in
// addressable memory so the highest valid address is TopAddress-1.
func (mem *Memory) Read16(address uint16) (uint16, error) {
	if address >= TopAddress {
		return 0, curated.Errorf(AccessOutOfBounds, address)
	}
	return uint16(mem.ram[address])<<8 | uint16(mem.ram[address+1]), nil
}

// Write8 writes a byte to the given address.
func (mem *Memory) Write8(address uint16, data uint8) error {
	if address > TopAddress {
		return curated.Errorf(AccessOutOfBounds, address)
	}
	mem.ram[address] = data
	return nil
}

// GlyphAddress returns the address of the font glyph for the given digit.
// Only the low nibble of the digit is considered.
func (mem *Memory) GlyphAddress(digit uint8) uint16 {
	return FontOrigin + uint16(digit&0x0f)*GlyphSize
}

// Peek is an alias of Read8() for the benefit of the debugger. Reading
// CHIP-8 memory never has side effects so the distinction is not as
// important as it is on machines with hardware registers in the address
// space.
func (mem *Memory) Peek(address uint16) (uint8, error) {
	return mem.Read8(address)
}

// Poke is an alias of Write8() for the benefit of the debugger.
func (mem *Memory) Poke(address uint16, data uint8) error {
	return mem.Write8(address, data)
}
