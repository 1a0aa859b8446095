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

// Package curated is a thin supplement to the plain Go error type.
//
// Errors are created with Errorf(). The format string doubles as the
// error's identity: the Is() function reports whether an error was created
// with a given pattern, regardless of the values interpolated into it.
//
//	e := curated.Errorf("keypad: no such key [%d]", 22)
//	curated.Is(e, "keypad: no such key [%d]")    // true
//
// Has() walks the chain of wrapped curated errors looking for the pattern
// at any depth, and IsAny() reports whether an error came from this package
// at all. Packages declare their patterns as exported string constants,
// giving the effect of sentinel errors without introducing a new type for
// every failure mode.
//
// The Error() function normalises the message chain by dropping duplicate
// adjacent parts, where parts are separated by the string ": ". Wrapping an
// error with the same prefix at several levels therefore prints only once:
//
//	rom loading error: unrecognised file extension
//
// rather than repeating "rom loading error" for every level of the call
// stack that added it.
package curated
