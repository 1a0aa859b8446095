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

package recorder

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/julienr/chippy8/curated"
)

// fields of one event line in the transcript.
const (
	fieldKey int = iota
	fieldPressed
	fieldStep
	fieldFrame
	fieldHash
	numFields
)

const fieldSep = ", "

// transcript header format
// ------------------------
//
// <rom filename>
// <rom hash>
// <quirk profile>
// <instruction rate>

const (
	lineROMFilename int = iota
	lineROMHash
	lineQuirks
	lineInstRate
	numHeaderLines
)

func (rec *Recorder) writeHeader() error {
	lines := make([]string, numHeaderLines)

	lines[lineROMFilename] = rec.ch8.ROMFilename()
	lines[lineROMHash] = rec.ch8.ROMHash()
	lines[lineQuirks] = rec.ch8.Prefs.String()
	lines[lineInstRate] = fmt.Sprintf("%s\n", rec.ch8.Prefs.InstRate.String())

	line := strings.Join(lines, "\n")

	n, err := io.WriteString(rec.output, line)
	if err != nil {
		_ = rec.output.Close()
		return curated.Errorf("recorder: %v", err)
	}
	if n != len(line) {
		_ = rec.output.Close()
		return curated.Errorf("recorder: %v", "output truncated")
	}

	return nil
}

func (plb *Playback) readHeader(lines []string) error {
	if len(lines) < numHeaderLines {
		return curated.Errorf("playback: %v", "transcript header is incomplete")
	}

	plb.ROMLoad.Filename = lines[lineROMFilename]
	plb.ROMLoad.Hash = lines[lineROMHash]
	plb.Quirks = lines[lineQuirks]
	plb.InstRate = lines[lineInstRate]

	return nil
}

// IsTranscript returns true if the named file looks like a recording
// transcript. The header carries no magic number so the check is on the
// shape of the header: a forty character hash on the second line and a
// numeric instruction rate on the fourth.
func IsTranscript(filename string) bool {
	f, err := os.Open(filename)
	if err != nil {
		return false
	}
	defer f.Close()

	lines := make([]string, 0, numHeaderLines)
	s := bufio.NewScanner(f)
	for len(lines) < numHeaderLines && s.Scan() {
		lines = append(lines, s.Text())
	}
	if len(lines) < numHeaderLines {
		return false
	}

	hash := lines[lineROMHash]
	if len(hash) != 40 {
		return false
	}
	for _, c := range hash {
		if !strings.ContainsRune("0123456789abcdef", c) {
			return false
		}
	}

	_, err = strconv.Atoi(strings.TrimSpace(lines[lineInstRate]))
	return err == nil
}
