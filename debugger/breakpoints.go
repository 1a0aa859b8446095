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

// breakpoints are used to halt execution when a target is *equal to* a
// specific value. compare to traps which are used to halt execution
// whenever a target *changes value*.

package debugger

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/julienr/chippy8/curated"
	"github.com/julienr/chippy8/debugger/terminal"
	"github.com/julienr/chippy8/debugger/terminal/commandline"
)

// breaker defines a single break condition. conditions can be chained
// together with the next field; a chained breaker only matches when
// every link in the chain matches at the same time.
type breaker struct {
	target *target
	value  interface{}

	next *breaker
}

func (bk breaker) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s->%s", bk.target.Label(), bk.target.FormatValue(bk.value)))
	n := bk.next
	for n != nil {
		s.WriteString(fmt.Sprintf(" & %s->%s", n.target.Label(), n.target.FormatValue(n.value)))
		n = n.next
	}
	return s.String()
}

// check returns true if the break condition, including every chained
// condition, currently matches.
func (bk *breaker) check() bool {
	b := bk
	for b != nil {
		if b.target.TargetValue() != b.value {
			return false
		}
		b = b.next
	}
	return true
}

// cmp returns true if the two breakers specify the same conditions in
// the same order.
func (bk *breaker) cmp(ck *breaker) bool {
	a := bk
	b := ck
	for a != nil && b != nil {
		if a.target.label != b.target.label || a.value != b.value {
			return false
		}
		a = a.next
		b = b.next
	}
	return a == nil && b == nil
}

// breakpoints keeps track of all the currently defined breakers.
type breakpoints struct {
	dbg    *Debugger
	breaks []*breaker
}

// newBreakpoints is the preferred method of initialisation for breakpoints.
func newBreakpoints(dbg *Debugger) *breakpoints {
	bp := &breakpoints{dbg: dbg}
	bp.clear()
	return bp
}

// clear all breakpoints.
func (bp *breakpoints) clear() {
	bp.breaks = make([]*breaker, 0, 10)
}

// drop a specific breakpoint by position in list.
func (bp *breakpoints) drop(num int) error {
	if len(bp.breaks)-1 < num || num < 0 {
		return curated.Errorf("breakpoint #%d is not defined", num)
	}
	bp.breaks = append(bp.breaks[:num], bp.breaks[num+1:]...)
	return nil
}

// check the current state of the machine against every break condition.
// returns a message for every breakpoint that matches.
func (bp *breakpoints) check() string {
	if len(bp.breaks) == 0 {
		return ""
	}

	checkString := strings.Builder{}
	for i := range bp.breaks {
		if bp.breaks[i].check() {
			checkString.WriteString(fmt.Sprintf("break on %s\n", bp.breaks[i]))
		}
	}
	return strings.TrimRight(checkString.String(), "\n")
}

// list currently defined breakpoints.
func (bp breakpoints) list() {
	if len(bp.breaks) == 0 {
		bp.dbg.printLine(terminal.StyleFeedback, "no breakpoints")
	} else {
		for i := range bp.breaks {
			bp.dbg.printLine(terminal.StyleFeedback, "% 2d: %s", i, bp.breaks[i])
		}
	}
}

// checkBreaker returns the index of the breaker that already specifies
// the same conditions as the candidate breaker, or -1.
func (bp *breakpoints) checkBreaker(nb *breaker) int {
	for n, ob := range bp.breaks {
		if nb.cmp(ob) {
			return n
		}
	}
	return -1
}

// parseBreakpoint consumes tokens and adds new breakpoints as appropriate.
//
// syntax: [target] value {& [target] value}
//
// the default target is the program counter, so that a value on its own
// means "break when execution reaches this address". a target stays in
// effect until another target is named, which allows a list of values
// for the same target.
func (bp *breakpoints) parseBreakpoint(tokens *commandline.Tokens) error {
	tgt, err := targetByName(bp.dbg.ch8, "PC")
	if err != nil {
		return err
	}

	// whether the next value seen should be chained onto the most recent
	// breaker, rather than start a breaker of its own
	andBreaks := false

	// resolvedTarget is true once the current target has received at
	// least one value
	resolvedTarget := true

	newBreaks := make([]*breaker, 0, 10)

	tok, present := tokens.Get()
	for present {
		var val interface{}

		// try to interpret the token as a value appropriate for the
		// current target
		switch tgt.TargetValue().(type) {
		case uint8:
			if n, err := strconv.ParseUint(tok, 0, 8); err == nil {
				val = uint8(n)
			}
		case uint16:
			if n, err := strconv.ParseUint(tok, 0, 16); err == nil {
				val = uint16(n)
			}
		case uint64:
			if n, err := strconv.ParseUint(tok, 0, 64); err == nil {
				val = n
			}
		case int:
			if n, err := strconv.ParseInt(tok, 0, 32); err == nil {
				val = int(n)
			}
		}

		if val != nil {
			if andBreaks {
				b := newBreaks[len(newBreaks)-1]
				for b.next != nil {
					b = b.next
				}
				b.next = &breaker{target: tgt, value: val}
				andBreaks = false
			} else {
				newBreaks = append(newBreaks, &breaker{target: tgt, value: val})
			}
			resolvedTarget = true
		} else if tok == "&" {
			if !resolvedTarget {
				return curated.Errorf("need a value to break on (%s)", tgt.Label())
			}
			if len(newBreaks) == 0 {
				return curated.Errorf("nothing to combine with &")
			}
			andBreaks = true
		} else {
			// the token is not a value or the & symbol, so it must be
			// naming a new target
			if !resolvedTarget {
				return curated.Errorf("need a value to break on (%s)", tgt.Label())
			}
			tokens.Unget()
			tgt, err = parseTarget(bp.dbg.ch8, tokens)
			if err != nil {
				return err
			}
			resolvedTarget = false
		}

		tok, present = tokens.Get()
	}

	if !resolvedTarget {
		return curated.Errorf("need a value to break on (%s)", tgt.Label())
	}

	for _, nb := range newBreaks {
		if i := bp.checkBreaker(nb); i != -1 {
			return curated.Errorf("already exists (%s)", nb)
		}
		bp.breaks = append(bp.breaks, nb)
	}

	return nil
}
