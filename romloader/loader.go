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

package romloader

import (
	"crypto/sha1"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"path"
	"strings"

	"github.com/julienr/chippy8/curated"
)

// Loader is used to specify the ROM to use when Attach()ing to the
// machine.
type Loader struct {
	// filename of ROM to load.
	Filename string

	// address the ROM should be loaded at. the zero value means the
	// conventional load address; a load that low would clash with the
	// font area and be refused anyway, so nothing is lost by using zero
	// as the sentinel
	Origin uint16

	// expected hash of the loaded ROM. empty string indicates that the
	// hash is unknown and need not be validated. after a load operation
	// the value will be the hash of the loaded data
	Hash string

	// copy of the loaded data. subsequent calls to Load() are no-ops
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader
// type.
func NewLoader(filename string) Loader {
	return Loader{
		Filename: filename,
	}
}

// FileExtensions is the list of file extensions that are recognised by
// the romloader package.
var FileExtensions = [...]string{".ch8", ".c8", ".rom", ".bin"}

// ShortName returns a shortened version of the Loader filename, suitable
// for titles and database entries.
func (ld Loader) ShortName() string {
	sn := path.Base(ld.Filename)
	return strings.TrimSuffix(sn, path.Ext(sn))
}

// HasLoaded returns true if Load() has been successfully called.
func (ld Loader) HasLoaded() bool {
	return len(ld.Data) > 0
}

// Load the ROM data. Loader filenames with a valid schema will use that
// method to load the data. Currently supported schemes are HTTP(S) and
// local files.
func (ld *Loader) Load() error {
	if len(ld.Data) > 0 {
		return nil
	}

	scheme := "file"

	u, err := url.Parse(ld.Filename)
	if err == nil {
		scheme = u.Scheme
	}

	switch scheme {
	case "http":
		fallthrough
	case "https":
		resp, err := http.Get(ld.Filename)
		if err != nil {
			return curated.Errorf("romloader: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return curated.Errorf("romloader: %v", fmt.Sprintf("http response: %s", resp.Status))
		}

		ld.Data, err = ioutil.ReadAll(resp.Body)
		if err != nil {
			return curated.Errorf("romloader: %v", err)
		}

	case "file":
		fallthrough
	case "":
		ld.Data, err = ioutil.ReadFile(ld.Filename)
		if err != nil {
			return curated.Errorf("romloader: %v", err)
		}

	default:
		return curated.Errorf("romloader: %v", fmt.Sprintf("unsupported URL scheme (%s)", scheme))
	}

	// generate hash and check for consistency with any expected value
	hash := fmt.Sprintf("%x", sha1.Sum(ld.Data))
	if ld.Hash != "" && ld.Hash != hash {
		return curated.Errorf("romloader: %v", "unexpected hash value")
	}
	ld.Hash = hash

	return nil
}
