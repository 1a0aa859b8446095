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

package curated

import (
	"fmt"
	"strings"
)

// curated errors keep the pattern and the values separate. the pattern is
// the error's identity, used by Is() and Has(). formatting is deferred
// until Error() is called.
type curated struct {
	pattern string
	values  []interface{}
}

// Errorf creates a new curated error. It looks like fmt.Errorf() but the
// first argument is called pattern rather than format because it is also
// how the error will be identified later.
func Errorf(pattern string, values ...interface{}) error {
	return curated{
		pattern: pattern,
		values:  values,
	}
}

// Error returns the message with duplicate adjacent parts removed. Parts
// are delimited by the string ": ". Letter-case and white space are left
// alone.
//
// Implements the error interface.
func (er curated) Error() string {
	p := strings.Split(fmt.Errorf(er.pattern, er.values...).Error(), ": ")

	s := make([]string, 0, len(p))
	for i := range p {
		if i > 0 && p[i] == p[i-1] {
			continue
		}
		s = append(s, p[i])
	}

	return strings.Join(s, ": ")
}

// IsAny checks if an error is a curated error.
func IsAny(err error) bool {
	if err == nil {
		return false
	}
	_, ok := err.(curated)
	return ok
}

// Is checks if an error is a curated error created with the specified
// pattern.
func Is(err error, pattern string) bool {
	if err == nil {
		return false
	}
	if er, ok := err.(curated); ok {
		return er.pattern == pattern
	}
	return false
}

// Has checks if the specified pattern appears anywhere in the error chain.
// Wrapped curated errors are found among the stored values.
func Has(err error, pattern string) bool {
	if err == nil || !IsAny(err) {
		return false
	}

	if Is(err, pattern) {
		return true
	}

	for _, v := range err.(curated).values {
		if e, ok := v.(curated); ok {
			if Has(e, pattern) {
				return true
			}
		}
	}

	return false
}
