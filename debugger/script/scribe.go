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

package script

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/julienr/chippy8/curated"
)

// Sentinal errors for the scribe half of the package.
const (
	// ScribeError is an unrecoverable error during script recording.
	ScribeError = "script scribe: %v"
)

// the prefix for output lines in a script file. lines with this prefix
// are skipped on rescribing.
const commentLine = "#"

// Scribe can be used again after a StartSession()/EndSession() cycle.
// IsActive() can be used to detect if a script is currently being
// captured but it is safe not to because most functions silently do
// nothing if there is no active session.
type Scribe struct {
	file       *os.File
	scriptfile string

	// the depth of script openings during the writing of a new script
	playbackDepth int

	inputLine  string
	outputLine string
}

// IsActive returns true if a script is currently being captured.
func (scr Scribe) IsActive() bool {
	return scr.file != nil
}

// StartSession starts a new script recording.
func (scr *Scribe) StartSession(scriptfile string) error {
	if scr.IsActive() {
		return curated.Errorf(ScribeError, "already active")
	}

	scr.scriptfile = scriptfile

	_, err := os.Stat(scriptfile)
	if !os.IsNotExist(err) {
		return curated.Errorf(ScribeError, fmt.Sprintf("file already exists (%s)", scriptfile))
	}

	scr.file, err = os.Create(scriptfile)
	if err != nil {
		return curated.Errorf(ScribeError, fmt.Sprintf("cannot create script file (%s)", scriptfile))
	}

	return nil
}

// EndSession closes the current scribe session.
func (scr *Scribe) EndSession() error {
	if !scr.IsActive() {
		return nil
	}

	defer func() {
		scr.file = nil
		scr.scriptfile = ""
		scr.playbackDepth = 0
		scr.inputLine = ""
		scr.outputLine = ""
	}()

	// make sure everything has been written to the output file
	err := scr.Commit()

	// if Commit() errors, continue with the Close() operation and return
	// the Commit() error if the close succeeds

	errClose := scr.file.Close()
	if errClose != nil {
		return curated.Errorf(ScribeError, errClose)
	}

	return err
}

// StartPlayback indicates that a replayed script has begun. input lines
// and output are not written to the new script while a playback is in
// flight; the SCRIPT command that started the playback stands in for all
// of them.
func (scr *Scribe) StartPlayback() {
	if !scr.IsActive() {
		return
	}
	_ = scr.Commit()
	scr.playbackDepth++
}

// EndPlayback indicates that a replayed script has finished.
func (scr *Scribe) EndPlayback() {
	if !scr.IsActive() {
		return
	}
	_ = scr.Commit()
	scr.playbackDepth--
}

// Rollback undoes calls to WriteInput() and WriteOutput() since the last
// Commit().
func (scr *Scribe) Rollback() {
	if !scr.IsActive() {
		return
	}
	scr.inputLine = ""
	scr.outputLine = ""
}

// WriteInput writes user input to the open script file.
func (scr *Scribe) WriteInput(command string) {
	if !scr.IsActive() || scr.playbackDepth > 0 {
		return
	}

	_ = scr.Commit()
	if command != "" {
		scr.inputLine = fmt.Sprintf("%s\n", command)
	}
}

// WriteOutput writes emulator output to the open script file, decorated
// as a comment so that rescribing skips over it.
func (scr *Scribe) WriteOutput(result string) {
	if !scr.IsActive() || scr.playbackDepth > 0 {
		return
	}

	if result == "" {
		return
	}

	s := strings.Builder{}
	s.WriteString(scr.outputLine)
	for _, l := range strings.Split(result, "\n") {
		s.WriteString(fmt.Sprintf("%s %s\n", commentLine, l))
	}
	scr.outputLine = s.String()
}

// Commit the most recent calls to WriteInput() and WriteOutput().
func (scr *Scribe) Commit() error {
	if !scr.IsActive() {
		return nil
	}

	defer func() {
		scr.inputLine = ""
		scr.outputLine = ""
	}()

	if scr.playbackDepth > 0 {
		return nil
	}

	if scr.inputLine != "" {
		n, err := io.WriteString(scr.file, scr.inputLine)
		if err != nil {
			return curated.Errorf(ScribeError, err)
		}
		if n != len(scr.inputLine) {
			return curated.Errorf(ScribeError, "output truncated")
		}
	}

	if scr.outputLine != "" {
		n, err := io.WriteString(scr.file, scr.outputLine)
		if err != nil {
			return curated.Errorf(ScribeError, err)
		}
		if n != len(scr.outputLine) {
			return curated.Errorf(ScribeError, "output truncated")
		}
	}

	return nil
}
