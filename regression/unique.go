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

package regression

import (
	"github.com/julienr/chippy8/resources"
	"github.com/julienr/chippy8/romloader"
)

// create a unique filename in the regression scripts directory. calls
// resources.UniqueFilename() to maintain common formatting used across
// the project.
func uniqueFilename(prepend string, ld romloader.Loader) (string, error) {
	f := resources.UniqueFilename(prepend, ld.ShortName())

	scrPth, err := resources.JoinPath(regressionPath, regressionScripts, f)
	if err != nil {
		return "", err
	}

	return scrPth, nil
}
