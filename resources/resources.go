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

// Package resources resolves paths to files that outlive a single run of
// the program: the preferences file, the regression database, GUI state.
// Resources live in the "chippy8" directory under the user's standard
// config directory, unless a ".chippy8" directory exists in the current
// working directory, in which case that is used instead. The latter gives
// a portable, self-contained installation and is convenient during
// development.
package resources

import (
	"os"
	"path/filepath"
)

// name of the portable resource directory and, without the leading dot,
// the name of the directory under the user's config directory.
const baseResourceDir = ".chippy8"

// JoinPath returns the path to the named resource, prepended with the
// OS specific base path. Directories are created as required to reach the
// end of the path. The file itself is not touched or created.
func JoinPath(resource ...string) (string, error) {
	p := filepath.Join(append([]string{basePath()}, resource...)...)

	if _, err := os.Stat(p); err == nil {
		return p, nil
	}

	if err := os.MkdirAll(filepath.Dir(p), 0700); err != nil {
		return "", err
	}

	return p, nil
}

// basePath returns the portable resource directory if it exists in the
// current directory and the user's config directory otherwise. existence
// of the resolved directory itself is not checked.
func basePath() string {
	if _, err := os.Stat(baseResourceDir); err == nil {
		return baseResourceDir
	}

	config, err := os.UserConfigDir()
	if err != nil {
		return baseResourceDir
	}
	return filepath.Join(config, baseResourceDir[1:])
}
