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

package disassembly

import "fmt"

// Decode one opcode into an Entry. Words that do not decode to an
// instruction come back as raw data entries.
func Decode(address uint16, opcode uint16) Entry {
	e := Entry{
		Address:  address,
		ByteCode: fmt.Sprintf("%04x", opcode),
	}
	e.Mnemonic, e.Operand = decode(opcode)
	return e
}

// the trailing byte of an odd-sized ROM. always data.
func decodeTail(address uint16, data uint8) Entry {
	return Entry{
		Address:  address,
		ByteCode: fmt.Sprintf("%02x", data),
		Mnemonic: dataMnemonic,
		Operand:  fmt.Sprintf("0x%02x", data),
	}
}

// operand field formatting. registers appear as they do everywhere else
// in the project (V0 to VF), addresses and bytes as prefixed hex. the
// sprite row count of DRW reads better in decimal.
func decode(opcode uint16) (string, string) {
	x := opcode >> 8 & 0x000f
	y := opcode >> 4 & 0x000f
	n := opcode & 0x000f
	nn := opcode & 0x00ff
	nnn := opcode & 0x0fff

	switch opcode & 0xf000 {
	case 0x0000:
		switch opcode {
		case 0x00e0:
			return "CLS", ""
		case 0x00ee:
			return "RET", ""
		}

	case 0x1000:
		return "JP", fmt.Sprintf("0x%03x", nnn)

	case 0x2000:
		return "CALL", fmt.Sprintf("0x%03x", nnn)

	case 0x3000:
		return "SE", fmt.Sprintf("V%X, 0x%02x", x, nn)

	case 0x4000:
		return "SNE", fmt.Sprintf("V%X, 0x%02x", x, nn)

	case 0x5000:
		if n == 0x0 {
			return "SE", fmt.Sprintf("V%X, V%X", x, y)
		}

	case 0x6000:
		return "LD", fmt.Sprintf("V%X, 0x%02x", x, nn)

	case 0x7000:
		return "ADD", fmt.Sprintf("V%X, 0x%02x", x, nn)

	case 0x8000:
		switch n {
		case 0x0:
			return "LD", fmt.Sprintf("V%X, V%X", x, y)
		case 0x1:
			return "OR", fmt.Sprintf("V%X, V%X", x, y)
		case 0x2:
			return "AND", fmt.Sprintf("V%X, V%X", x, y)
		case 0x3:
			return "XOR", fmt.Sprintf("V%X, V%X", x, y)
		case 0x4:
			return "ADD", fmt.Sprintf("V%X, V%X", x, y)
		case 0x5:
			return "SUB", fmt.Sprintf("V%X, V%X", x, y)
		case 0x6:
			return "SHR", fmt.Sprintf("V%X", x)
		case 0x7:
			return "SUBN", fmt.Sprintf("V%X, V%X", x, y)
		case 0xe:
			return "SHL", fmt.Sprintf("V%X", x)
		}

	case 0x9000:
		if n == 0x0 {
			return "SNE", fmt.Sprintf("V%X, V%X", x, y)
		}

	case 0xa000:
		return "LD", fmt.Sprintf("I, 0x%03x", nnn)

	case 0xb000:
		return "JP", fmt.Sprintf("V0, 0x%03x", nnn)

	case 0xc000:
		return "RND", fmt.Sprintf("V%X, 0x%02x", x, nn)

	case 0xd000:
		return "DRW", fmt.Sprintf("V%X, V%X, %d", x, y, n)

	case 0xe000:
		switch nn {
		case 0x9e:
			return "SKP", fmt.Sprintf("V%X", x)
		case 0xa1:
			return "SKNP", fmt.Sprintf("V%X", x)
		}

	case 0xf000:
		switch nn {
		case 0x07:
			return "LD", fmt.Sprintf("V%X, DT", x)
		case 0x0a:
			return "LD", fmt.Sprintf("V%X, K", x)
		case 0x15:
			return "LD", fmt.Sprintf("DT, V%X", x)
		case 0x18:
			return "LD", fmt.Sprintf("ST, V%X", x)
		case 0x1e:
			return "ADD", fmt.Sprintf("I, V%X", x)
		case 0x29:
			return "LD", fmt.Sprintf("F, V%X", x)
		case 0x33:
			return "LD", fmt.Sprintf("B, V%X", x)
		case 0x55:
			return "LD", fmt.Sprintf("[I], V%X", x)
		case 0x65:
			return "LD", fmt.Sprintf("V%X, [I]", x)
		}
	}

	return dataMnemonic, fmt.Sprintf("0x%02x, 0x%02x", opcode>>8, opcode&0x00ff)
}
