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

// traps are used to halt execution whenever a target *changes value*.
// compare to breakpoints which are used to halt execution when a target
// is *equal to* a specific value.

package debugger

import (
	"fmt"
	"strings"

	"github.com/julienr/chippy8/curated"
	"github.com/julienr/chippy8/debugger/terminal"
	"github.com/julienr/chippy8/debugger/terminal/commandline"
)

// trapper is a single trap condition.
type trapper struct {
	target    *target
	origValue interface{}
}

func (tr trapper) String() string {
	return tr.target.Label()
}

// traps keeps track of all the currently defined trappers.
type traps struct {
	dbg   *Debugger
	traps []*trapper
}

// newTraps is the preferred method of initialisation for traps.
func newTraps(dbg *Debugger) *traps {
	tr := &traps{dbg: dbg}
	tr.clear()
	return tr
}

// clear all traps.
func (tr *traps) clear() {
	tr.traps = make([]*trapper, 0, 10)
}

// drop a specific trap by position in list.
func (tr *traps) drop(num int) error {
	if len(tr.traps)-1 < num || num < 0 {
		return curated.Errorf("trap #%d is not defined", num)
	}
	tr.traps = append(tr.traps[:num], tr.traps[num+1:]...)
	return nil
}

// check the current value of every trapped target against the value
// seen the last time check was run. a change trips the trap.
func (tr *traps) check() string {
	if len(tr.traps) == 0 {
		return ""
	}

	checkString := strings.Builder{}
	for i := range tr.traps {
		v := tr.traps[i].target.TargetValue()
		if v != tr.traps[i].origValue {
			checkString.WriteString(fmt.Sprintf("trap on %s [%s->%s]\n",
				tr.traps[i].target.Label(),
				tr.traps[i].target.FormatValue(tr.traps[i].origValue),
				tr.traps[i].target.FormatValue(v)))
			tr.traps[i].origValue = v
		}
	}
	return strings.TrimRight(checkString.String(), "\n")
}

// list currently defined traps.
func (tr traps) list() {
	if len(tr.traps) == 0 {
		tr.dbg.printLine(terminal.StyleFeedback, "no traps")
	} else {
		for i := range tr.traps {
			tr.dbg.printLine(terminal.StyleFeedback, "% 2d: %s", i, tr.traps[i])
		}
	}
}

// parseTrap consumes tokens and adds new traps as appropriate.
//
// syntax: target {target}
func (tr *traps) parseTrap(tokens *commandline.Tokens) error {
	for {
		if _, ok := tokens.Peek(); !ok {
			return nil
		}

		tgt, err := parseTarget(tr.dbg.ch8, tokens)
		if err != nil {
			return err
		}

		for _, t := range tr.traps {
			if t.target.label == tgt.label {
				return curated.Errorf("already exists (%s)", tgt.Label())
			}
		}

		tr.traps = append(tr.traps, &trapper{target: tgt, origValue: tgt.TargetValue()})
	}
}
