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

// Package gui defines the operations that can be performed on a visual
// user interface, without saying anything about how that interface is
// implemented. The sdlimgui sub-package is the reference implementation.
//
// Work travels into a GUI through feature requests. Events travel in
// the other direction over a channel, registered as part of the
// ReqSetPlaymode and ReqSetDebugmode requests.
package gui

import "github.com/julienr/chippy8/curated"

// GUI defines the operations that can be performed on visual user interfaces.
type GUI interface {
	// Send a request to set a GUI feature.
	SetFeature(request FeatureReq, args ...FeatureReqData) error

	// Same as SetFeature() but not waiting for the result. Useful in time
	// critical situations when you are absolutely sure there will be no
	// errors that need handling.
	SetFeatureNoError(request FeatureReq, args ...FeatureReqData)

	// Return current state of GUI feautre.
	GetFeature(request FeatureReq) (FeatureReqData, error)
}

// Sentinal error returned if GUI does no support requested feature.
const (
	UnsupportedGuiFeature = "unsupported gui feature: %v"
)

// Stub implements the GUI interface and does nothing. It is useful for
// hosts that have no graphical window, the terminal-only debugger for
// example.
type Stub struct{}

// SetFeature implements the GUI interface.
func (Stub) SetFeature(request FeatureReq, args ...FeatureReqData) error {
	return curated.Errorf(UnsupportedGuiFeature, request)
}

// SetFeatureNoError implements the GUI interface.
func (Stub) SetFeatureNoError(request FeatureReq, args ...FeatureReqData) {
}

// GetFeature implements the GUI interface.
func (Stub) GetFeature(request FeatureReq) (FeatureReqData, error) {
	return nil, curated.Errorf(UnsupportedGuiFeature, request)
}
