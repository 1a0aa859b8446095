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

package commandline

import (
	"fmt"
	"strconv"
	"strings"
)

// TabCompletion provides tab completion for Commands. It implements the
// terminal.TabCompletion interface.
type TabCompletion struct {
	cmds *Commands

	// the matches found during the last completion and which of those matches
	// was last used
	matches []string
	match   int

	// the leading part of the input. completion only ever works on the last
	// word of the input so everything before that is replayed verbatim
	prefix string

	// the last string returned by Complete(). if the next call of Complete()
	// receives the same string then we cycle through the matches rather than
	// starting a new completion session
	lastCompletion string
}

// NewTabCompletion is the preferred method of initialisation for the
// TabCompletion type.
func NewTabCompletion(cmds *Commands) *TabCompletion {
	tc := &TabCompletion{cmds: cmds}
	tc.Reset()
	return tc
}

// Complete transforms the input such that the last word in the input is
// expanded to meet the closest match in the command template. Subsequent
// calls to Complete() with the same input cycle through the possible
// expansions.
func (tc *TabCompletion) Complete(input string) string {
	// cycle through matches if input has not changed since the last call
	if len(tc.matches) > 0 && input == tc.lastCompletion {
		tc.match++
		if tc.match >= len(tc.matches) {
			tc.match = 0
		}
		tc.lastCompletion = fmt.Sprintf("%s%s ", tc.prefix, tc.matches[tc.match])
		return tc.lastCompletion
	}

	tc.Reset()

	tokens := tokeniseInput(input)
	if len(tokens) == 0 {
		return input
	}

	// the word we are trying to complete
	partial := strings.ToUpper(tokens[len(tokens)-1])

	// the tags that could appear in place of the partial word
	var options []string

	if len(tokens) == 1 {
		// the first word of the input is the command itself
		for _, n := range tc.cmds.cmds {
			options = append(options, n.tag)
		}
		tc.prefix = ""
	} else {
		cmd, ok := tc.cmds.Index[strings.ToUpper(tokens[0])]
		if !ok {
			return input
		}

		// walk the command's node tree with the intervening tokens. the walk
		// gathers the tags of the nodes that could accept the next token
		walk := TokeniseInput(strings.Join(tokens[1:len(tokens)-1], " "))
		suggestSequence(cmd.next, walk, &options)

		if walk.Remaining() > 0 {
			// the intervening tokens do not satisfy the command template. any
			// completion we come up with will just compound the problem
			return input
		}

		tc.prefix = fmt.Sprintf("%s ", strings.Join(tokens[:len(tokens)-1], " "))
	}

	// filter options to those that extend the partial word
	for _, opt := range options {
		if strings.HasPrefix(opt, partial) {
			tc.matches = append(tc.matches, opt)
		}
	}

	if len(tc.matches) == 0 {
		return input
	}

	tc.match = 0
	tc.lastCompletion = fmt.Sprintf("%s%s ", tc.prefix, tc.matches[tc.match])
	return tc.lastCompletion
}

// Reset ends the current completion session.
func (tc *TabCompletion) Reset() {
	tc.matches = tc.matches[:0]
	tc.match = 0
	tc.prefix = ""
	tc.lastCompletion = ""
}

// the result of a suggest walk. the distinction between exhaustion and a
// failure to match is important: an exhausted token queue is the point at
// which the completion options are found, whereas a failed match unwinds the
// walk so that an alternative route can be tried.
type suggestResult int

const (
	suggestMatched suggestResult = iota
	suggestExhausted
	suggestNoMatch
)

// suggestSequence walks a sequence of sibling nodes, consuming the tokens
// that match. when the token queue is exhausted the tags of the nodes that
// could accept the next token are gathered into the options list.
func suggestSequence(seq []*node, tokens *Tokens, options *[]string) suggestResult {
	for _, n := range seq {
		if tokens.Remaining() == 0 {
			n.gatherOptions(options)

			// nodes after an unsatisfied required node are unreachable
			if n.typ != nodeOptional {
				return suggestExhausted
			}
			continue
		}

		switch n.suggestMatch(tokens, options) {
		case suggestNoMatch:
			if n.typ == nodeOptional {
				// the token may match a node later in the sequence
				continue
			}
			return suggestNoMatch

		case suggestExhausted:
			return suggestExhausted
		}
	}

	return suggestMatched
}

// suggestMatch tries to match a single node, or one of its branches, against
// the token queue. on a match the node's own sequence and any repeat group
// is walked too. the token position is unwound when no match is made.
func (n *node) suggestMatch(tokens *Tokens, options *[]string) suggestResult {
	mark := tokens.curr

	if n.tag == "" {
		// nodes with empty tags dispatch immediately to their own sequence
		switch suggestSequence(n.next, tokens, options) {
		case suggestMatched:
			return n.suggestRepeat(tokens, options)
		case suggestExhausted:
			return suggestExhausted
		}
		tokens.curr = mark
	} else {
		tok, ok := tokens.Get()
		if ok && n.matchToken(tok) {
			switch suggestSequence(n.next, tokens, options) {
			case suggestMatched:
				return n.suggestRepeat(tokens, options)
			case suggestExhausted:
				return suggestExhausted
			}

			// the node itself matched even though its sequence did not. the
			// leftover tokens are somebody else's problem
			return suggestMatched
		}
		tokens.curr = mark
	}

	for _, b := range n.branch {
		if r := b.suggestMatch(tokens, options); r != suggestNoMatch {
			return r
		}
	}

	tokens.curr = mark
	return suggestNoMatch
}

// suggestRepeat deals with the repetition of a repeat group. matching tokens
// consume further repetitions of the group; an exhausted token queue adds
// the group's tags to the options list.
func (n *node) suggestRepeat(tokens *Tokens, options *[]string) suggestResult {
	if n.repeat == nil {
		return suggestMatched
	}

	if tokens.Remaining() == 0 {
		n.repeat.gatherOptions(options)
		return suggestMatched
	}

	if r := n.repeat.suggestMatch(tokens, options); r != suggestNoMatch {
		return r
	}

	// a repetition is optional so a failure to match is not a problem
	return suggestMatched
}

// gatherOptions collects the tags that could be typed at this node,
// including the node's branches. placeholders are not included because we
// cannot guess what the user intends to type for them.
func (n *node) gatherOptions(options *[]string) {
	if n.tag == "" {
		if len(n.next) > 0 {
			n.next[0].gatherOptions(options)
		}
	} else if !n.isPlaceholder() {
		*options = append(*options, n.tag)
	}

	for _, b := range n.branch {
		b.gatherOptions(options)
	}
}

// matchToken compares a token against the node's tag, with placeholder tags
// matching according to the placeholder type.
func (n *node) matchToken(tok string) bool {
	switch n.tag {
	case "%N":
		_, err := strconv.ParseInt(tok, 0, 32)
		return err == nil
	case "%P":
		_, err := strconv.ParseFloat(tok, 32)
		return err == nil
	case "%S":
		return true
	case "%F":
		return true
	}
	return strings.ToUpper(tok) == n.tag
}
