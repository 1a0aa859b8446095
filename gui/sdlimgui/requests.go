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

package sdlimgui

import (
	"github.com/julienr/chippy8/curated"
	"github.com/julienr/chippy8/debugger"
	"github.com/julienr/chippy8/gui"
	"github.com/julienr/chippy8/hardware"
	"github.com/julienr/chippy8/logger"
)

// featureRequest is used to wrap a request and its arguments into a single
// value that can be passed over a channel to the service loop.
type featureRequest struct {
	request gui.FeatureReq
	args    []gui.FeatureReqData
}

// SetFeature implements gui.GUI interface. can be called from any goroutine;
// the request is serviced in the gui goroutine.
func (img *SdlImgui) SetFeature(request gui.FeatureReq, args ...gui.FeatureReqData) error {
	img.polling.featureSet <- featureRequest{request: request, args: args}
	img.polling.alert()
	return <-img.polling.featureSetErr
}

// SetFeatureNoError implements gui.GUI interface. as SetFeature() but the
// error is logged rather than returned.
func (img *SdlImgui) SetFeatureNoError(request gui.FeatureReq, args ...gui.FeatureReqData) {
	img.polling.featureSet <- featureRequest{request: request, args: args}
	img.polling.alert()
	go func() {
		err := <-img.polling.featureSetErr
		if err != nil {
			logger.Logf("sdlimgui", "set feature: %v", err)
		}
	}()
}

// serviceSetFeature runs in the gui goroutine on behalf of SetFeature().
func (img *SdlImgui) serviceSetFeature(request featureRequest) {
	// lazy (but clear) handling of type assertion errors
	defer func() {
		if r := recover(); r != nil {
			img.polling.featureSetErr <- curated.Errorf("sdlimgui: %v: %v", request.request, r)
		}
	}()

	var err error

	switch request.request {
	case gui.ReqSetPlaymode:
		img.setPlaymode(request.args[0].(*hardware.Chip8), request.args[1].(chan gui.Event))

	case gui.ReqSetDebugmode:
		img.setDebugmode(request.args[0].(*debugger.Debugger), request.args[1].(chan gui.Event))

	case gui.ReqState:
		img.state = request.args[0].(gui.EmulationState)
		if img.state == gui.StateEnding {
			img.plt.window.Hide()
		}

	case gui.ReqMonitorSync:
		img.screen.setMonitorSync(request.args[0].(bool))

	case gui.ReqSetVisibility:
		if img.isPlaymode() {
			err = curated.Errorf(gui.UnsupportedGuiFeature, request.request)
		} else if request.args[0].(bool) {
			img.plt.window.Show()
		} else {
			img.plt.window.Hide()
		}

	case gui.ReqFullScreen:
		img.setFullScreen(request.args[0].(bool))

	default:
		err = curated.Errorf(gui.UnsupportedGuiFeature, request.request)
	}

	img.polling.featureSetErr <- err
}

// GetFeature implements gui.GUI interface. can be called from any goroutine;
// the request is serviced in the gui goroutine.
func (img *SdlImgui) GetFeature(request gui.FeatureReq) (gui.FeatureReqData, error) {
	img.polling.featureGet <- featureRequest{request: request}
	img.polling.alert()
	return <-img.polling.featureGetData, <-img.polling.featureGetErr
}

// serviceGetFeature runs in the gui goroutine on behalf of GetFeature().
func (img *SdlImgui) serviceGetFeature(request featureRequest) {
	switch request.request {
	case gui.ReqFullScreen:
		img.polling.featureGetData <- img.fullScreen
		img.polling.featureGetErr <- nil
	default:
		img.polling.featureGetData <- nil
		img.polling.featureGetErr <- curated.Errorf(gui.UnsupportedGuiFeature, request.request)
	}
}
