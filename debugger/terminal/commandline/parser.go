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
	"strings"

	"github.com/julienr/chippy8/curated"
)

// ParseCommandTemplate turns a string representation of a command template
// into a machine friendly representation
//
// Syntax
//   [ a ]	required keyword
//   ( a )	optional keyword
//   [ a | b ... ]	required selection
//   ( a | b ... )	optional selection
//   { a }	repeat group (optional by definition)
//
// groups can be embedded in one another
//
// Placeholders
//   %N		numeric argument
//   %P		floating point argument
//   %S		string argument
//   %F		file name argument
//
// a placeholder can be labelled, for example, %<first address>S. labels are
// used in error and help messages in preference to the generic description
// of the placeholder type.
func ParseCommandTemplate(template []string) (*Commands, error) {
	cmds := &Commands{
		Index: make(map[string]*node),
		cmds:  make([]*node, 0, len(template)),
	}

	// the order of the commands in the template is preserved. the order is
	// relied upon when creating the help summaries
	for t := range template {
		defn := strings.TrimSpace(template[t])

		// ignore empty definitions
		if len(defn) == 0 {
			continue
		}

		p, d, err := parseDefinition(defn, "")
		if err != nil {
			return nil, curated.Errorf("parser: %s: %s (char %d)", defn, err, d)
		}

		// check that the command has not already been defined
		if _, ok := cmds.Index[p.tag]; ok {
			return nil, curated.Errorf("parser: duplicate definition (%s)", p.tag)
		}

		cmds.cmds = append(cmds.cmds, p)
		cmds.Index[p.tag] = p
	}

	return cmds, nil
}

// parseDefinition parses a single definition from a command template,
// returning the head node of the resulting node tree
//
// the trigger argument is the opening delimiter of the group being parsed. an
// empty string indicates the root group, which is where the parse of every
// definition begins.
//
// in addition to the node, the function returns the number of characters
// consumed from the defn string and any error. the character count can be
// used to report the position of an error in the original definition.
func parseDefinition(defn string, trigger string) (*node, int, error) {
	// the node type for every member of the group. the type is decided by
	// how the group was opened. note that for these purposes, the root of the
	// definition is considered to be a group like any other
	var typ nodeType
	var closing byte

	switch trigger {
	case "":
		typ = nodeRoot
	case "(":
		typ = nodeOptional
		closing = ')'
	case "{":
		// repeat groups are optional by definition
		typ = nodeOptional
		closing = '}'
	case "[":
		typ = nodeRequired
		closing = ']'
	default:
		return nil, 0, fmt.Errorf("unrecognised group delimiter (%s)", trigger)
	}

	// the alternatives found in the group so far. each alternative is
	// represented by its first node - sequence nodes hang off the first node
	// in the next array
	var alts []*node

	// the head of the alternative currently being assembled
	var cur *node

	// whether cur is a nested group waiting to find out if it is the only
	// element in the alternative. a lone nested group of the same type can be
	// used as it is but in any other situation it needs to be wrapped in a
	// node of its own
	wrapPending := false

	// the characters of the word currently being read
	var word strings.Builder

	// addElement adds a completed element to the current alternative
	addElement := func(el *node) {
		if cur == nil {
			cur = el
			return
		}
		if wrapPending {
			cur = &node{typ: typ, next: []*node{cur}}
			wrapPending = false
		}
		cur.next = append(cur.next, el)
	}

	// endWord converts the accumulated characters into a node. a no-op if no
	// characters have accumulated
	endWord := func() error {
		if word.Len() == 0 {
			return nil
		}
		defer word.Reset()

		n, err := wordNode(word.String(), typ)
		if err != nil {
			return err
		}
		addElement(n)
		return nil
	}

	// endAlternative tidies the current alternative, wrapping a lone nested
	// group if necessary, and adds it to the list
	endAlternative := func() error {
		if cur == nil {
			return fmt.Errorf("missing alternative")
		}
		if wrapPending {
			if cur.typ != typ {
				cur = &node{typ: typ, next: []*node{cur}}
			}
			wrapPending = false
		}
		alts = append(alts, cur)
		cur = nil
		return nil
	}

	// endGroup gathers the completed alternatives into a single node. the
	// first alternative represents the group; the remaining alternatives
	// hang off it in the branch array
	endGroup := func() (*node, error) {
		if err := endAlternative(); err != nil {
			return nil, err
		}
		head := alts[0]
		if len(alts) > 1 {
			head.branch = append(head.branch, alts[1:]...)
		}
		return head, nil
	}

	for i := 0; i < len(defn); i++ {
		c := defn[i]

		switch c {
		case ' ', '\t':
			if err := endWord(); err != nil {
				return nil, i, err
			}

		case '(', '[', '{':
			if err := endWord(); err != nil {
				return nil, i, err
			}

			sub, d, err := parseDefinition(defn[i+1:], string(c))
			if err != nil {
				return nil, i + 1 + d, err
			}

			if c == '{' {
				markRepeat(sub)
			}

			if cur == nil && trigger != "" {
				// the group is at the start of an alternative. we can't
				// decide how to treat it until we know what follows
				cur = sub
				wrapPending = true
			} else {
				addElement(sub)
			}

			// skip over the characters consumed by the recursion. the loop
			// increment accounts for the group's closing delimiter
			i += d

		case ')', ']', '}':
			if err := endWord(); err != nil {
				return nil, i, err
			}

			if closing == 0 || c != closing {
				return nil, i, fmt.Errorf("unexpected %c", c)
			}

			head, err := endGroup()
			if err != nil {
				return nil, i, err
			}

			return head, i + 1, nil

		case '|':
			if trigger == "" {
				return nil, i, fmt.Errorf("branching outside of a group")
			}
			if err := endWord(); err != nil {
				return nil, i, err
			}
			if err := endAlternative(); err != nil {
				return nil, i, err
			}

		case '%':
			// placeholder directives are words in their own right. the only
			// characters allowed to follow a directive character are the
			// characters of a label or a second directive character,
			// signifying a literal %
			if word.Len() > 0 && word.String() != "%" {
				return nil, i, fmt.Errorf("placeholder directives must be separated from other characters")
			}
			word.WriteByte(c)

		default:
			word.WriteByte(c)
		}
	}

	// reached the end of the definition. every opening delimiter must have
	// been closed
	if trigger != "" {
		return nil, len(defn), fmt.Errorf("unclosed group (%s)", trigger)
	}

	if err := endWord(); err != nil {
		return nil, len(defn), err
	}

	head, err := endGroup()
	if err != nil {
		return nil, len(defn), err
	}

	return head, len(defn), nil
}

// wordNode creates a node for a single word from a definition. the word may
// be a placeholder directive.
func wordNode(word string, typ nodeType) (*node, error) {
	if word[0] != '%' {
		return &node{tag: strings.ToUpper(word), typ: typ}, nil
	}

	// a double directive character matches a literal % in the input
	if word == "%%" {
		return &node{tag: word, typ: typ}, nil
	}

	// split off the label, if any
	label := ""
	rest := word[1:]
	if strings.HasPrefix(rest, "<") {
		e := strings.Index(rest, ">")
		if e == -1 {
			return nil, fmt.Errorf("unclosed placeholder label (%s)", word)
		}
		label = rest[1:e]
		rest = rest[e+1:]
	}

	if len(rest) != 1 {
		return nil, fmt.Errorf("orphaned placeholder directive (%s)", word)
	}

	tag := fmt.Sprintf("%%%s", strings.ToUpper(rest))
	switch tag {
	case "%N", "%P", "%S", "%F":
		return &node{tag: tag, placeholderLabel: label, typ: typ}, nil
	}

	return nil, fmt.Errorf("unknown placeholder directive (%s)", word)
}

// markRepeat marks the head of a group as the start of a repeat group, and
// points the nodes that can end a repetition back at the head. validation
// uses the back pointer to loop when there are tokens remaining.
func markRepeat(head *node) {
	head.repeatStart = true

	if head.tag == "" && len(head.next) > 0 {
		// for a wrapped group the repetition point is the last element of
		// the wrapped sequence
		last := head.next[len(head.next)-1]
		last.repeat = head
		for _, b := range last.branch {
			b.repeat = head
		}
	} else {
		head.repeat = head
	}

	for _, b := range head.branch {
		b.repeat = head
	}
}
