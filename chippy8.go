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

package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/julienr/chippy8/debugger"
	"github.com/julienr/chippy8/debugger/terminal"
	"github.com/julienr/chippy8/debugger/terminal/colorterm"
	"github.com/julienr/chippy8/debugger/terminal/plainterm"
	"github.com/julienr/chippy8/disassembly"
	"github.com/julienr/chippy8/display"
	"github.com/julienr/chippy8/gui"
	"github.com/julienr/chippy8/gui/sdlimgui"
	"github.com/julienr/chippy8/hardware/preferences"
	"github.com/julienr/chippy8/logger"
	"github.com/julienr/chippy8/modalflag"
	"github.com/julienr/chippy8/performance"
	"github.com/julienr/chippy8/playmode"
	"github.com/julienr/chippy8/recorder"
	"github.com/julienr/chippy8/regression"
	"github.com/julienr/chippy8/resources"
	"github.com/julienr/chippy8/romloader"
	"github.com/julienr/chippy8/statsview"
)

const defaultInitScript = "debuggerInit"

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"

	// reset interrupt signal handling. used when an alternative
	// handler is more appropriate. for example, the playMode and Debugger
	// package provide a mode specific handler.
	//
	// takes no arguments.
	reqNoIntSig stateReq = "NOINTSIG"
)

type stateRequest struct {
	req  stateReq
	args interface{}
}

// GuiCreator facilitates the creation, servicing and destruction of GUIs
// that need to be run in the main thread.
//
// Note that there is no Create() function because we need the freedom to
// create the GUI how we want. Instead the creator is a channel which accepts
// a function that returns an instance of GuiCreator.
type GuiCreator interface {
	// cleanup resources used by the gui
	Destroy(io.Writer)

	// Service() should not pause or loop longer than necessary (if at all). It
	// MUST ONLY by called as part of a larger loop from the main thread. It
	// should service all gui events that are not safe to do in sub-threads.
	//
	// If the GUI framework does not require this sort of thread safety then
	// there is no need for the Service() function to do anything.
	Service()
}

// communication between the main() function and the launch() function. this is
// required because many gui solutions (notably SDL) require window event
// handling (including creation) to occur on the main thread.
type mainSync struct {
	state   chan stateRequest
	creator chan func() (GuiCreator, error)

	// the result of creator will be returned on either of these two channels.
	creation      chan GuiCreator
	creationError chan error
}

// #mainthread
func main() {
	sync := &mainSync{
		state:         make(chan stateRequest),
		creator:       make(chan func() (GuiCreator, error)),
		creation:      make(chan GuiCreator),
		creationError: make(chan error),
	}

	// the value to use with os.Exit(). can be changed with reqQuit
	// stateRequest
	exitVal := 0

	// #ctrlc default handler. can be turned off with reqNoIntSig request
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	// launch program as a go routine. further communication is  through
	// the mainSync instance
	go launch(sync)

	// loop until done is true. every iteration of the loop we listen for:
	//
	//  1. interrupt signals
	//  2. new gui creation functions
	//  3. state requests
	//  3. anything in the Service() function of the most recently created GUI
	//
	done := false
	var gui GuiCreator
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			done = true

		case creator := <-sync.creator:
			var err error

			// destroy existing gui
			if gui != nil {
				gui.Destroy(os.Stderr)
			}

			gui, err = creator()
			if err != nil {
				sync.creationError <- err

				// gui is a variable of type interface. nil doesn't work as you
				// might expect with interfaces. for instance, even though the
				// following outputs "<nil>":
				//
				//	fmt.Println(gui)
				//
				// the following equation print false:
				//
				//	fmt.Println(gui == nil)
				//
				// as to the reason why gui does not equal nil, even though
				// the creator() function returns nil? well, you tell me.
				gui = nil
			} else {
				sync.creation <- gui
			}

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if gui != nil {
					gui.Destroy(os.Stderr)
				}

				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}

			case reqNoIntSig:
				signal.Reset(os.Interrupt)
				if state.args != nil {
					panic(fmt.Sprintf("%s does not accept any arguments", reqNoIntSig))
				}
			}

		default:
			// if an instance of gui.Events has been sent to us via sync.events
			// then call Service()
			if gui != nil {
				gui.Service()
			}
		}
	}

	fmt.Print("\r")
	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses mainSync instance to
// indicate gui creation and to quit.
func launch(sync *mainSync) {
	// we generate random numbers in some places. seed the generator with the
	// current time
	rand.Seed(int64(time.Now().Nanosecond()))

	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "PLAY", "DEBUG", "DISASM", "PERFORMANCE", "REGRESS")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		// 10
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	switch md.Mode() {
	case "RUN":
		fallthrough

	case "PLAY":
		err = play(md, sync)

	case "DEBUG":
		err = debug(md, sync)

	case "DISASM":
		err = disasm(md)

	case "PERFORMANCE":
		err = perform(md)

	case "REGRESS":
		err = regress(md, sync)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

func play(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	fpsCap := md.AddBool("fpscap", true, "cap refresh rate to the machine's natural rate")
	fullScreen := md.AddBool("fullscreen", false, "start in fullscreen mode")
	record := md.AddBool("record", false, "record user input to a transcript file")
	playback := md.AddString("playback", "", "transcript file to play back")
	wav := md.AddString("wav", "", "record audio to wav file")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	// set debugging log echo
	if *log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	if *record && *playback != "" {
		return fmt.Errorf("cannot record and playback at the same time")
	}

	// a ROM is not required when replaying a transcript. the transcript
	// names the ROM itself
	var cartload romloader.Loader

	switch len(md.RemainingArgs()) {
	case 0:
		if *playback == "" {
			return fmt.Errorf("ROM file required for %s mode", md)
		}
	case 1:
		cartload = romloader.NewLoader(md.GetArg(0))
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	dsp := display.NewDisplay()
	defer dsp.End()

	// set fps cap
	dsp.SetFPSCap(*fpsCap)

	// create gui
	sync.creator <- func() (GuiCreator, error) {
		return sdlimgui.NewSdlImgui(dsp)
	}

	// wait for creator result
	var scr gui.GUI
	select {
	case g := <-sync.creation:
		scr = g.(gui.GUI)

		if *fullScreen {
			err = scr.SetFeature(gui.ReqFullScreen, true)
			if err != nil {
				return err
			}
		}

	case err := <-sync.creationError:
		return err
	}

	// turn off fallback ctrl-c handling. this so that the playmode can
	// end playback recordings gracefully
	sync.state <- stateRequest{req: reqNoIntSig}

	err = playmode.Play(dsp, scr, *record, *playback, cartload, *wav)
	if err != nil {
		return err
	}

	if *record {
		fmt.Println("! recording completed")
	}

	return nil
}

func debug(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	defInitScript, err := resources.JoinPath(defaultInitScript)
	if err != nil {
		return err
	}

	termType := md.AddString("term", "IMGUI", "terminal type to use in debug mode: IMGUI, COLOR, PLAIN")
	initScript := md.AddString("initscript", defInitScript, "script to run on debugger start")
	profile := md.AddBool("profile", false, "run debugger through cpu and memory profilers")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	// set debugging log echo
	if *log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	dsp := display.NewDisplay()
	defer dsp.End()

	var term terminal.Terminal
	var scr gui.GUI

	// create gui
	if strings.ToUpper(*termType) == "IMGUI" {
		sync.creator <- func() (GuiCreator, error) {
			return sdlimgui.NewSdlImgui(dsp)
		}

		// wait for creator result
		select {
		case g := <-sync.creation:
			scr = g.(gui.GUI)
		case err := <-sync.creationError:
			return err
		}

		// if gui implements the terminal.Broker interface use that terminal
		// as a preference
		if b, ok := scr.(terminal.Broker); ok {
			term = b.GetTerminal()
		}
	} else {
		scr = gui.Stub{}
	}

	// if the GUI does not supply a terminal then use a color or plain terminal
	// as a fallback
	if term == nil {
		switch strings.ToUpper(*termType) {
		default:
			fmt.Printf("! unknown terminal type (%s) defaulting to plain\n", *termType)
			fallthrough
		case "PLAIN":
			term = &plainterm.PlainTerminal{}
		case "COLOR":
			term = &colorterm.ColorTerminal{}
		}
	}

	// turn off fallback ctrl-c handling. this so that the debugger can handle
	// quit events with a confirmation request. it also allows the debugger to
	// use ctrl-c events to interrupt execution of the emulation without
	// quitting the debugger itself
	sync.state <- stateRequest{req: reqNoIntSig}

	// prepare new debugger instance
	dbg, err := debugger.NewDebugger(dsp, scr, term)
	if err != nil {
		return err
	}

	// a ROM is not required when starting the debugger. one can be loaded
	// later through the debugger itself
	var cartload romloader.Loader

	switch len(md.RemainingArgs()) {
	case 0:
	case 1:
		cartload = romloader.NewLoader(md.GetArg(0))
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	// set up a running function
	dbgRun := func() error {
		err := dbg.Start(*initScript, cartload)
		if err != nil {
			return err
		}
		return nil
	}

	// if profile generation has been requested then pass the dbgRun()
	// function prepared above, through the RunProfiler() command
	if *profile {
		err := performance.RunProfiler(performance.ProfileCPU|performance.ProfileMem, "debugger", dbgRun)
		if err != nil {
			return err
		}
	} else {
		// no profile required so run dbgRun() function as normal
		err := dbgRun()
		if err != nil {
			return err
		}
	}

	return nil
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()

	bytecode := md.AddBool("bytecode", false, "include bytecode in disassembly")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("ROM file required for %s mode", md)
	case 1:
		attr := disassembly.WriteAttr{
			ByteCode: *bytecode,
		}

		cartload := romloader.NewLoader(md.GetArg(0))

		dsm, err := disassembly.FromLoader(cartload)
		if err != nil {
			// print what disassembly output we do have
			if dsm != nil {
				// ignore any further errors
				_ = dsm.Write(md.Output, attr)
			}
			return err
		}

		err = dsm.Write(md.Output, attr)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	return nil
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	fpsCap := md.AddBool("fpscap", true, "cap refresh rate to the machine's natural rate")
	duration := md.AddString("duration", "5s", "run duration (note: there is a 2s overhead)")
	profile := md.AddString("profile", "none", "run performance check with profiler: CPU, MEM, TRACE, ALL (comma sep)")
	stats := md.AddBool("statsview", false, "run stats server")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	// set debugging log echo
	if *log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	if *stats {
		statsview.Launch(md.Output)
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("ROM file required for %s mode", md)
	case 1:
		cartload := romloader.NewLoader(md.GetArg(0))

		err = performance.Check(md.Output, prf, cartload, !*fpsCap, *duration)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	return nil
}

type yesReader struct{}

func (*yesReader) Read(p []byte) (n int, err error) {
	p[0] = 'y'
	return 1, nil
}

func regress(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()
	md.AddSubModes("RUN", "LIST", "DELETE", "ADD")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch md.Mode() {
	case "RUN":
		md.NewMode()

		verbose := md.AddBool("verbose", false, "output more detail (eg. error messages)")
		failOnError := md.AddBool("fail", false, "stop the run as soon as an entry fails")

		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		// turn off default sigint handling
		sync.state <- stateRequest{req: reqNoIntSig}

		err = regression.RegressRunTests(md.Output, *verbose, *failOnError, md.RemainingArgs())
		if err != nil {
			return err
		}

	case "LIST":
		md.NewMode()

		// no additional arguments

		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		switch len(md.RemainingArgs()) {
		case 0:
			err := regression.RegressList(md.Output)
			if err != nil {
				return err
			}
		default:
			return fmt.Errorf("no additional arguments required for %s mode", md)
		}

	case "DELETE":
		md.NewMode()

		answerYes := md.AddBool("yes", false, "answer yes to confirmation")

		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		switch len(md.RemainingArgs()) {
		case 0:
			return fmt.Errorf("database key required for %s mode", md)
		case 1:

			// use stdin for confirmation unless "yes" flag has been sent
			var confirmation io.Reader
			if *answerYes {
				confirmation = &yesReader{}
			} else {
				confirmation = os.Stdin
			}

			err := regression.RegressDelete(md.Output, confirmation, md.GetArg(0))
			if err != nil {
				return err
			}
		default:
			return fmt.Errorf("only one entry can be deleted at at time")
		}

	case "ADD":
		return regressAdd(md)
	}

	return nil
}

func regressAdd(md *modalflag.Modes) error {
	md.NewMode()

	mode := md.AddString("mode", "", "type of regression entry")
	notes := md.AddString("notes", "", "additional annotation for the database")
	numframes := md.AddInt("frames", 10, "number of timer ticks to run [non-playback]")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	md.AdditionalHelp(
		`The regression test to be added can be the path to a ROM file or a previously
recorded playback transcript. For playback transcripts, the flags marked [non-playback]
do not make sense and will be ignored.

Available modes are VIDEO, AUDIO, BOTH and PLAYBACK. If no mode is explicitly given
then VIDEO will be used for ROM files and PLAYBACK will be used for playback
transcripts.

Digest entries record the quirk profile in use at the time of the addition and restore
it when the test is run.

The -log flag intructs the program to echo the log to the console. Note that asking
for log output will suppress regression progress meters.`)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	// set debugging log echo
	if *log {
		logger.SetEcho(os.Stdout)
		md.Output = &nopWriter{}
	} else {
		logger.SetEcho(nil)
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("ROM or playback file required for %s mode", md)
	case 1:
		var reg regression.Regressor

		if *mode == "" {
			if recorder.IsTranscript(md.GetArg(0)) {
				*mode = "PLAYBACK"
			} else {
				*mode = "VIDEO"
			}
		}

		switch strings.ToUpper(*mode) {
		case "VIDEO", "AUDIO", "BOTH":
			dig, err := regression.ParseDigestMode(*mode)
			if err != nil {
				return err
			}

			// a digest entry records the quirk profile in effect when it was
			// added. without this a change to the user's preferences would
			// invalidate every entry in the database
			prefs, err := preferences.NewPreferences()
			if err != nil {
				return err
			}

			reg = &regression.DigestRegression{
				Mode:      dig,
				ROM:       md.GetArg(0),
				Quirks:    prefs.String(),
				NumFrames: *numframes,
				Notes:     *notes,
			}

		case "PLAYBACK":
			// check and warn if unneeded arguments have been specified
			md.Visit(func(flg string) {
				if flg == "frames" {
					fmt.Printf("! ignored %s flag when adding playback entry\n", flg)
				}
			})

			reg = &regression.PlaybackRegression{
				Script: md.GetArg(0),
				Notes:  *notes,
			}

		default:
			return fmt.Errorf("unrecognised regression mode (%s)", *mode)
		}

		err := regression.RegressAdd(md.Output, reg)
		if err != nil {
			// using carriage return (without newline) at beginning of error
			// message because we want to overwrite the last output from
			// RegressAdd()
			return fmt.Errorf("\rerror adding regression test: %v", err)
		}
	default:
		return fmt.Errorf("regression tests can only be added one at a time")
	}

	return nil
}

// nopWriter is an empty writer.
type nopWriter struct{}

func (*nopWriter) Write(p []byte) (n int, err error) {
	return 0, nil
}
