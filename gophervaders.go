// This file is part of Gophervaders.
//
// Gophervaders is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gophervaders is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gophervaders.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/crtfrenzy/gophervaders/arcade"
	"github.com/crtfrenzy/gophervaders/gui"
	"github.com/crtfrenzy/gophervaders/gui/sdlplay"
	"github.com/crtfrenzy/gophervaders/gui/termplay"
	"github.com/crtfrenzy/gophervaders/logger"
	"github.com/crtfrenzy/gophervaders/modalflag"
	"github.com/crtfrenzy/gophervaders/performance"
	"github.com/crtfrenzy/gophervaders/playmode"
	"github.com/crtfrenzy/gophervaders/recorder"
	"github.com/crtfrenzy/gophervaders/regression"
	"github.com/crtfrenzy/gophervaders/statsview"
	"github.com/crtfrenzy/gophervaders/ui"
	"github.com/crtfrenzy/gophervaders/version"
)

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"

	// reset interrupt signal handling. used when an alternative handler
	// is more appropriate. for example, the playmode and regression
	// packages provide mode specific handlers.
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
// create the GUI how we want. Instead the creator is a channel which
// accepts a function that returns an instance of GuiCreator.
type GuiCreator interface {
	// cleanup resources used by the gui
	Destroy(io.Writer)

	// Service() should not pause or loop longer than necessary (if at
	// all). It MUST ONLY be called as part of a larger loop from the main
	// thread. It should service all gui events that are not safe to do in
	// sub-threads.
	Service()
}

// communication between the main() function and the launch() function.
// this is required because many gui solutions (notably SDL) require window
// event handling (including creation) to occur on the main thread.
type mainSync struct {
	state   chan stateRequest
	creator chan func() (GuiCreator, error)

	// the result of creator will be returned on either of these two
	// channels.
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

	// the value to use with os.Exit(). can be changed with a reqQuit
	// stateRequest
	exitVal := 0

	// #ctrlc default handler. can be turned off with a reqNoIntSig
	// request
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	// launch program as a goroutine. further communication is through the
	// mainSync instance
	go launch(sync)

	// loop until done is true. every iteration of the loop we listen for:
	//
	//  1. interrupt signals
	//  2. new gui creation functions
	//  3. state requests
	//  4. anything the Service() function of the most recently created
	//     GUI needs to do
	done := false
	var scr GuiCreator
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			done = true

		case creator := <-sync.creator:
			var err error

			// destroy existing gui
			if scr != nil {
				scr.Destroy(os.Stderr)
			}

			scr, err = creator()
			if err != nil {
				sync.creationError <- err

				// scr is a variable of interface type. the creator()
				// function returns a nil *concrete* type on error, which
				// does not compare equal to nil once it's been assigned
				// to the interface. reset the interface itself so the
				// nil checks in this loop keep working
				scr = nil
			} else {
				sync.creation <- scr
			}

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if scr != nil {
					scr.Destroy(os.Stderr)
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
			// service the gui while we're waiting for something to
			// happen
			if scr != nil {
				scr.Service()
			}
		}
	}

	fmt.Print("\r")
	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses the mainSync instance
// to request gui creation and to quit.
func launch(sync *mainSync) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "PLAY", "TERM", "PERFORMANCE", "REGRESS", "VERSION")
	md.AddDefaultSubMode("PLAY")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	switch md.Mode() {
	case "RUN":
		fallthrough

	case "PLAY":
		err = play(md, sync, false)

	case "TERM":
		err = play(md, sync, true)

	case "PERFORMANCE":
		err = perform(md, sync)

	case "REGRESS":
		err = regress(md, sync)

	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

// play is used by both the PLAY and TERM modes. the terminal frontend has
// no window to scale so the scale and log flags are only offered for the
// windowed frontend.
func play(md *modalflag.Modes, sync *mainSync, useTerm bool) error {
	md.NewMode()

	var scale *int
	var log *bool
	if !useTerm {
		scale = md.AddInt("scale", 0, "window size as a multiple of the frame size")

		// echoing the log would disturb the terminal frontend's display
		// so the flag is only available with the windowed frontend
		log = md.AddBool("log", false, "echo debugging log to stdout")
	}
	fpsCap := md.AddBool("fpscap", true, "cap fps to frame rate")
	record := md.AddBool("record", false, "record user input to a transcript file")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	// set debugging log echo
	if log != nil && *log {
		logger.SetEcho(os.Stdout, false)
	} else {
		logger.SetEcho(nil, false)
	}

	// a transcript on the command line is played back, unless the record
	// flag is set, in which case it names the new recording
	transcript := ""
	switch len(md.RemainingArgs()) {
	case 0:
		// no transcript. a fresh game
	case 1:
		transcript = md.GetArg(0)
		if !*record && !recorder.IsPlaybackFile(transcript) {
			return fmt.Errorf("%s is not a playback file", transcript)
		}
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	// note whether the fps cap was given on the command line. the
	// windowed frontend loads a saved cap preference during creation and
	// an explicit flag must win over that
	fpsCapSet := false
	md.Visit(func(flg string) {
		if flg == "fpscap" {
			fpsCapSet = true
		}
	})

	mac, err := arcade.NewMachine()
	if err != nil {
		return err
	}
	defer mac.End()

	mac.Screen.SetFPSCap(*fpsCap)

	// create gui
	sync.creator <- func() (GuiCreator, error) {
		if useTerm {
			return termplay.NewTermPlay(mac.Screen)
		}
		return sdlplay.NewSdlPlay(mac.Screen)
	}

	// wait for creator result
	var scr gui.GUI
	select {
	case g := <-sync.creation:
		scr = g.(gui.GUI)
	case err := <-sync.creationError:
		return err
	}

	// turn off fallback ctrl-c handling. this so that the playmode can
	// end recordings gracefully
	sync.state <- stateRequest{req: reqNoIntSig}

	// set scaling value
	if scale != nil && *scale > 0 {
		if err := scr.SetFeature(gui.ReqSetScale, *scale); err != nil {
			return err
		}
	}

	// reassert an explicit fps cap over the loaded preference
	if fpsCapSet && !useTerm {
		if err := scr.SetFeature(gui.ReqSetFPSCap, *fpsCap); err != nil {
			return err
		}
	}

	err = playmode.Play(mac, scr, *record, transcript)
	if err != nil {
		return err
	}

	if *record {
		fmt.Println("! recording completed")
	}

	// save preferences before finishing successfully
	if err := scr.SetFeature(gui.ReqSavePrefs); err != nil {
		return err
	}

	return nil
}

func perform(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	display := md.AddBool("display", false, "run with the windowed frontend attached")
	uncapped := md.AddBool("uncapped", false, "run the machine as fast as possible")
	duration := md.AddString("duration", "5s", "run duration (note: there is a 2s overhead)")
	profile := md.AddString("profile", "none", "run through a profiler: NONE, CPU, MEM, TRACE")
	memviz := md.AddBool("memviz", false, "dump an object graph of the machine")
	stats := md.AddBool("statsview", false, "run the statsview web server")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	// set debugging log echo
	if *log {
		logger.SetEcho(os.Stdout, false)
	} else {
		logger.SetEcho(nil, false)
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("no additional arguments required for %s mode", md)
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	if *stats {
		if !statsview.Available() {
			return fmt.Errorf("statsview not supported in this build (build with the statsview tag)")
		}
		statsview.Launch(md.Output)
	}

	mac, err := arcade.NewMachine()
	if err != nil {
		return err
	}
	defer mac.End()

	// measuring with the display attached includes the cost of the
	// texture upload and the swap
	if *display {
		sync.creator <- func() (GuiCreator, error) {
			return sdlplay.NewSdlPlay(mac.Screen)
		}

		select {
		case <-sync.creation:
		case err := <-sync.creationError:
			return err
		}
	}

	return performance.Check(md.Output, prf, mac, *uncapped, *duration, *memviz)
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

		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		// turn off default sigint handling. a ctrl-c kills the run
		// without any tidying up
		sync.state <- stateRequest{req: reqNoIntSig}

		err = regression.RegressRun(md.Output, *verbose, md.RemainingArgs())
		if err != nil {
			return err
		}

	case "LIST":
		md.NewMode()

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
			// use stdin for confirmation unless the "yes" flag has been
			// sent
			var confirmation io.Reader
			if *answerYes {
				confirmation = &yesReader{}
			} else {
				confirmation = ui.Confirmation{}
			}

			err := regression.RegressDelete(md.Output, confirmation, md.GetArg(0))
			if err != nil {
				return err
			}
		default:
			return fmt.Errorf("only one entry can be deleted at a time")
		}

	case "ADD":
		return regressAdd(md)
	}

	return nil
}

func regressAdd(md *modalflag.Modes) error {
	md.NewMode()

	mode := md.AddString("mode", "", "type of regression entry: VIDEO, PLAYBACK")
	notes := md.AddString("notes", "", "additional annotation for the database")
	numFrames := md.AddInt("frames", 10, "number of frames to run [video]")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	md.AdditionalHelp(
		`A VIDEO entry runs the game from power-on for the specified number of frames and
records a digest of the video output. A PLAYBACK entry replays a previously recorded
playback file and fails if the game ever diverges from the recorded session.

If no mode is explicitly given then PLAYBACK is used when the single argument is a
playback file and VIDEO otherwise.

The -log flag instructs the program to echo the log to the console. Note that asking
for log output will suppress regression progress meters.`)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	// set debugging log echo
	if *log {
		logger.SetEcho(os.Stdout, false)
		md.Output = &nopWriter{}
	} else {
		logger.SetEcho(nil, false)
	}

	args := md.RemainingArgs()

	// decide the mode when it hasn't been given explicitly. a lone
	// argument can only be a playback file
	if *mode == "" {
		if len(args) == 1 && recorder.IsPlaybackFile(md.GetArg(0)) {
			*mode = "PLAYBACK"
		} else {
			*mode = "VIDEO"
		}
	}

	var reg regression.Regressor

	switch strings.ToUpper(*mode) {
	case "VIDEO":
		if len(args) != 0 {
			return fmt.Errorf("no additional arguments required for video entries")
		}

		reg = &regression.VideoRegression{
			NumFrames: *numFrames,
			Notes:     *notes,
		}

	case "PLAYBACK":
		if len(args) != 1 {
			return fmt.Errorf("playback file required for %s mode", md)
		}

		// check and warn if unneeded flags have been specified
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

	err = regression.RegressAdd(md.Output, reg)
	if err != nil {
		// using a carriage return (without newline) at the beginning of
		// the error message because we want to overwrite the last output
		// from RegressAdd()
		return fmt.Errorf("\rerror adding regression test: %v", err)
	}

	return nil
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	revision := md.AddBool("revision", false, "show vcs revision")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("no additional arguments required for %s mode", md)
	}

	ver, rev, _ := version.Version()
	fmt.Printf("%s (%s)\n", version.ApplicationName, ver)
	if *revision {
		fmt.Println(rev)
	}

	return nil
}

// nopWriter is an empty writer.
type nopWriter struct{}

func (*nopWriter) Write(p []byte) (n int, err error) {
	return 0, nil
}
