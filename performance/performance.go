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

package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/julienr/chippy8/curated"
	"github.com/julienr/chippy8/display"
	"github.com/julienr/chippy8/hardware"
	"github.com/julienr/chippy8/romloader"
)

// Check the performance of the emulator using the supplied ROM.
//
// Emulation will run for the specified duration and will create a cpu
// profile, memory profile, a trace (or a combination of those) as defined
// by the Profile argument.
func Check(output io.Writer, profile Profile, loader romloader.Loader, uncapped bool, duration string) error {
	dsp := display.NewDisplay()
	defer dsp.End()

	// the frame limiter is the only thing pacing the machine. with the
	// cap off the run is flat-out
	dsp.SetFPSCap(!uncapped)

	ch8, err := hardware.NewChip8(dsp)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	err = ch8.AttachROM(loader)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	// parse supplied duration
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	// reference points for the measurement. moved when the leadtime
	// concludes
	startFrame := dsp.GetFrameNum()
	startStep := ch8.StepCount()

	// run for specified period of time
	runner := func() error {
		// setup trigger that expires when duration has elapsed. signals
		// true when duration has expired. signals false to indicate that
		// performance measurement should start
		timerChan := make(chan bool)

		// force a two second leadtime to allow framerate to settle down
		// and then restart timer for the specified duration
		//
		// the two second leadtime will put false on the timerChan. the
		// conclusion of the rest of the time will put true on the
		// timerChan.
		go func() {
			time.AfterFunc(2*time.Second, func() {
				timerChan <- false

				time.AfterFunc(dur, func() {
					timerChan <- true
				})
			})
		}()

		// the continue check runs once per timer tick, which is already
		// infrequent enough that polling the channel needs no further
		// braking
		return ch8.Run(func() (bool, error) {
			select {
			case v := <-timerChan:
				// timerChan has returned true, which means the
				// measurement period has finished
				if v {
					return false, nil
				}

				// timerChan has returned false which indicates that the
				// leadtime has concluded. this means the performance
				// measurement has begun and we should record the start
				// position
				startFrame = dsp.GetFrameNum()
				startStep = ch8.StepCount()
			default:
			}

			return true, nil
		})
	}

	// launch runner directly or through the CPU profiler, depending on
	// supplied arguments
	err = RunProfiler(profile, "performance", runner)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	// calculate performance
	numFrames := dsp.GetFrameNum() - startFrame
	numSteps := ch8.StepCount() - startStep

	fps, accuracy := CalcFPS(numFrames, dur.Seconds())
	output.Write([]byte(fmt.Sprintf("%.2f fps (%d frames in %.2f seconds) %.1f%%\n", fps, numFrames, dur.Seconds(), accuracy)))
	output.Write([]byte(fmt.Sprintf("%.0f instructions per second (%d instructions)\n", float64(numSteps)/dur.Seconds(), numSteps)))

	return nil
}
