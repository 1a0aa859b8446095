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

// Package setup is used to preset the emulation depending on the attached
// ROM. A ROM written for one interpreter family often needs a particular
// quirk profile before it will run correctly and remembering which ROM
// needs which profile is exactly the sort of thing a computer should be
// doing for us.
//
// The package doesn't yet facilitate editing of entries. Adding new
// entries to the setup database therefore requires editing the DB file by
// hand. For reference the following describes the format of each entry
// type:
//
//	Quirks
//
//	<DB Key>, quirks, <SHA-1 Hash>, <ROM name>, <quirk profile>, <instruction rate>, <notes>
//
// The quirk profile is in the format produced by preferences.String(). An
// empty profile field leaves the user's profile alone, as does an empty
// or zero instruction rate. When editing the DB file, make sure the DB
// Key is unique.
package setup
