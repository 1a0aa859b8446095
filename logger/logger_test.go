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

package logger_test

import (
	"testing"

	"github.com/julienr/chippy8/logger"
	"github.com/julienr/chippy8/test"
)

func TestLogger(t *testing.T) {
	tw := &test.Writer{}

	logger.Clear()
	logger.Write(tw)
	test.Equate(t, tw.Compare(""), true)

	logger.Log("test", "this is a test")
	logger.Write(tw)
	test.Equate(t, tw.Compare("test: this is a test\n"), true)

	// clear the test.Writer buffer before continuing, makes comparisons
	// easier to manage
	tw.Clear()

	logger.Log("test2", "this is another test")
	logger.Write(tw)
	test.Equate(t, tw.Compare("test: this is a test\ntest2: this is another test\n"), true)

	// asking for too many entries in a Tail() should be okay
	tw.Clear()
	logger.Tail(tw, 100)
	test.Equate(t, tw.Compare("test: this is a test\ntest2: this is another test\n"), true)

	// asking for exactly the correct number of entries is okay
	tw.Clear()
	logger.Tail(tw, 2)
	test.Equate(t, tw.Compare("test: this is a test\ntest2: this is another test\n"), true)

	// asking for fewer entries is okay too
	tw.Clear()
	logger.Tail(tw, 1)
	test.Equate(t, tw.Compare("test2: this is another test\n"), true)

	// and no entries
	tw.Clear()
	logger.Tail(tw, 0)
	test.Equate(t, tw.Compare(""), true)
}

func TestRepeatCompression(t *testing.T) {
	tw := &test.Writer{}

	logger.Clear()
	logger.Log("tag", "same detail")
	logger.Log("tag", "same detail")
	logger.Log("tag", "same detail")
	logger.Write(tw)
	test.Equate(t, tw.Compare("tag: same detail (repeat x3)\n"), true)

	// a different detail under the same tag breaks the run
	tw.Clear()
	logger.Log("tag", "different detail")
	logger.Write(tw)
	test.Equate(t, tw.Compare("tag: same detail (repeat x3)\ntag: different detail\n"), true)
}
