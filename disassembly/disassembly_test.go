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

package disassembly_test

import (
	"strings"
	"testing"

	"github.com/julienr/chippy8/disassembly"
	"github.com/julienr/chippy8/romloader"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		opcode   uint16
		expected string
	}{
		{0x00e0, "CLS"},
		{0x00ee, "RET"},
		{0x1228, "JP 0x228"},
		{0x2400, "CALL 0x400"},
		{0x3a10, "SE VA, 0x10"},
		{0x4a10, "SNE VA, 0x10"},
		{0x5ab0, "SE VA, VB"},
		{0x6a10, "LD VA, 0x10"},
		{0x7a10, "ADD VA, 0x10"},
		{0x8ab0, "LD VA, VB"},
		{0x8ab1, "OR VA, VB"},
		{0x8ab2, "AND VA, VB"},
		{0x8ab3, "XOR VA, VB"},
		{0x8ab4, "ADD VA, VB"},
		{0x8ab5, "SUB VA, VB"},
		{0x8ab6, "SHR VA"},
		{0x8ab7, "SUBN VA, VB"},
		{0x8abe, "SHL VA"},
		{0x9ab0, "SNE VA, VB"},
		{0xa22a, "LD I, 0x22a"},
		{0xb228, "JP V0, 0x228"},
		{0xca0f, "RND VA, 0x0f"},
		{0xd01f, "DRW V0, V1, 15"},
		{0xea9e, "SKP VA"},
		{0xeaa1, "SKNP VA"},
		{0xfa07, "LD VA, DT"},
		{0xfa0a, "LD VA, K"},
		{0xfa15, "LD DT, VA"},
		{0xfa18, "LD ST, VA"},
		{0xfa1e, "ADD I, VA"},
		{0xfa29, "LD F, VA"},
		{0xfa33, "LD B, VA"},
		{0xfa55, "LD [I], VA"},
		{0xfa65, "LD VA, [I]"},

		// words that do not decode to an instruction
		{0x0200, "DB 0x02, 0x00"},
		{0x5ab1, "DB 0x5a, 0xb1"},
		{0x8ab8, "DB 0x8a, 0xb8"},
		{0xfaff, "DB 0xfa, 0xff"},
	}

	for _, tst := range tests {
		e := disassembly.Decode(0x200, tst.opcode)

		m := e.Mnemonic
		if e.Operand != "" {
			m += " " + e.Operand
		}

		if m != tst.expected {
			t.Errorf("opcode %04x: expected %q got %q", tst.opcode, tst.expected, m)
		}
	}
}

func TestFromLoader(t *testing.T) {
	// a loader with data already in place will not touch the filesystem
	ld := romloader.Loader{
		Data: []byte{
			0x00, 0xe0, // CLS
			0xa2, 0x08, // LD I, 0x208
			0xd0, 0x1f, // DRW V0, V1, 15
			0x12, 0x06, // JP 0x206
			0xff, // trailing data byte
		},
	}

	dsm, err := disassembly.FromLoader(ld)
	if err != nil {
		t.Fatalf(err.Error())
	}

	if len(dsm.Entries) != 5 {
		t.Fatalf("expected 5 entries got %d", len(dsm.Entries))
	}

	// entries are addressed from the conventional load origin
	e, ok := dsm.Get(0x200)
	if !ok || e.Mnemonic != "CLS" {
		t.Errorf("expected CLS at 0x200")
	}

	e, ok = dsm.Get(0x206)
	if !ok || e.String() != "0x206 JP 0x206" {
		t.Errorf("unexpected entry at 0x206 (%v)", e)
	}

	// the trailing byte is data
	e, ok = dsm.Get(0x208)
	if !ok || e.IsInstruction() {
		t.Errorf("expected data entry at 0x208")
	}
	if e.ByteCode != "ff" {
		t.Errorf("unexpected bytecode for trailing byte (%s)", e.ByteCode)
	}

	// no entry at odd addresses or outside the ROM
	if _, ok := dsm.Get(0x201); ok {
		t.Errorf("unexpected entry at 0x201")
	}
	if _, ok := dsm.Get(0x20a); ok {
		t.Errorf("unexpected entry at 0x20a")
	}
}

func TestWrite(t *testing.T) {
	ld := romloader.Loader{
		Data: []byte{
			0x00, 0xe0,
			0x12, 0x00,
		},
	}

	dsm, err := disassembly.FromLoader(ld)
	if err != nil {
		t.Fatalf(err.Error())
	}

	s := &strings.Builder{}
	if err := dsm.Write(s, disassembly.WriteAttr{}); err != nil {
		t.Fatalf(err.Error())
	}
	if s.String() != "0x200  CLS\n0x202  JP   0x200\n" {
		t.Errorf("unexpected disassembly output (%q)", s.String())
	}

	s.Reset()
	if err := dsm.Write(s, disassembly.WriteAttr{ByteCode: true}); err != nil {
		t.Fatalf(err.Error())
	}
	if s.String() != "0x200  00e0  CLS\n0x202  1200  JP   0x200\n" {
		t.Errorf("unexpected disassembly output (%q)", s.String())
	}
}
