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

package debugger

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/julienr/chippy8/curated"
	"github.com/julienr/chippy8/debugger/terminal/commandline"
	"github.com/julienr/chippy8/hardware"
)

// target is a part of the machine that breakpoints and traps can watch.
// the value function is a closure over the machine rather than over the
// component, so that a target survives the component being swapped out
// by a state restore.
type target struct {
	label  string
	format string
	value  func() interface{}
}

// Label returns the name of the target.
func (trg target) Label() string {
	return trg.label
}

// TargetValue returns the current value of the target.
func (trg target) TargetValue() interface{} {
	return trg.value()
}

// FormatValue returns a value formatted as appropriate for the target.
func (trg target) FormatValue(v interface{}) string {
	return fmt.Sprintf(trg.format, v)
}

// parseTarget interprets the next token as a target. the token is put
// back if it isn't one.
func parseTarget(ch8 *hardware.Chip8, tokens *commandline.Tokens) (*target, error) {
	tok, ok := tokens.Get()
	if !ok {
		return nil, curated.Errorf("no target specified")
	}

	trg, err := targetByName(ch8, tok)
	if err != nil {
		tokens.Unget()
	}
	return trg, err
}

// targetByName returns the named target.
func targetByName(ch8 *hardware.Chip8, name string) (*target, error) {
	switch strings.ToUpper(name) {
	case "PC":
		return &target{
			label:  "PC",
			format: "%#04x",
			value:  func() interface{} { return ch8.CPU.PC },
		}, nil

	case "I":
		return &target{
			label:  "I",
			format: "%#04x",
			value:  func() interface{} { return ch8.CPU.I },
		}, nil

	case "SP":
		return &target{
			label:  "SP",
			format: "%d",
			value:  func() interface{} { return ch8.CPU.SP },
		}, nil

	case "DT", "DELAY":
		return &target{
			label:  "DT",
			format: "%#02x",
			value:  func() interface{} { return ch8.Timer.Delay },
		}, nil

	case "ST", "SOUND":
		return &target{
			label:  "ST",
			format: "%#02x",
			value:  func() interface{} { return ch8.Timer.Sound },
		}, nil

	case "STEPS":
		return &target{
			label:  "STEPS",
			format: "%d",
			value:  func() interface{} { return ch8.StepCount() },
		}, nil
	}

	// V registers. the register number is a single hex digit
	reg := strings.ToUpper(name)
	if len(reg) == 2 && reg[0] == 'V' {
		if d, err := strconv.ParseUint(reg[1:], 16, 8); err == nil {
			return &target{
				label:  reg,
				format: "%#02x",
				value:  func() interface{} { return ch8.CPU.V[d] },
			}, nil
		}
	}

	return nil, curated.Errorf("invalid target (%s)", name)
}
