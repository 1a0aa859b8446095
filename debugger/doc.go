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

// Package debugger is the terminal front-end for close inspection of the
// machine. It is a read-eval-print loop: commands are typed at a prompt,
// the machine is stepped and poked as instructed, results are printed in
// reply.
//
// The Debugger type coordinates the other large components of the
// project: the machine itself (the hardware package), a disassembly of
// the attached ROM, a terminal implementation (the terminal sub-package)
// and optionally a gui. Everything the debugger prints passes through
// the attached terminal. Input can come from an interactive terminal or
// equally from a script being played back by the script sub-package.
//
// Breakpoints halt the machine when a target equals a requested value.
// Traps halt the machine when a target changes value. The available
// targets cover the registers, the timers and the step counter.
//
// Every instruction stepped pushes a snapshot of the machine onto a
// short rolling history, which is what the STEP BACK command unwinds.
//
// The HELP command describes the command set; the commands themselves
// are defined by the template in commands_template.go.
package debugger
