// cmd/ezdemo/main.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// ezdemo opens a single window with one of the available backends and
// runs its event loop, drawing a background that follows the mouse. It
// can record a session to a file and replay it later without a display.
package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/png"
	"os"
	"runtime"
	"strings"

	"github.com/mmp/ezwin/log"
	"github.com/mmp/ezwin/platform"
	"github.com/mmp/ezwin/platform/glfwwin"
	"github.com/mmp/ezwin/platform/sdlwin"
	"github.com/mmp/ezwin/platform/termwin"

	"github.com/apenwarr/fixconsole"
	"github.com/goforj/godump"
)

var (
	backendName = flag.String("backend", "", "windowing backend: glfw, sdl, or term")
	originName  = flag.String("origin", "", "corner of the window used as the mouse origin: topleft or bottomleft")
	logLevel    = flag.String("loglevel", "info", "logging level: debug, info, warn, error")
	logDir      = flag.String("logdir", "", "log file directory")
	configPath  = flag.String("config", "", "configuration file path")
	recordPath  = flag.String("record", "", "file to record the session's input to")
	replayPath  = flag.String("replay", "", "recorded session to replay")
	dumpConfig  = flag.Bool("dumpconfig", false, "print the configuration and exit")
	iconPath    = flag.String("icon", "", "PNG image to use for the window icon")
)

func init() {
	// OpenGL and friends require that all calls be made from the primary
	// application thread, while by default, go allows the main thread to
	// run on different hardware threads over the course of
	// execution. Therefore, we must lock the main thread at startup time.
	runtime.LockOSThread()
}

func parseOrigin(s string) (platform.OriginCorner, error) {
	switch strings.ToLower(s) {
	case "topleft":
		return platform.OriginTopLeft, nil
	case "bottomleft", "":
		return platform.OriginBottomLeft, nil
	default:
		return platform.OriginBottomLeft, fmt.Errorf("%s: unknown origin corner", s)
	}
}

func makeBackend(name string, lg *log.Logger) (platform.Backend, error) {
	switch name {
	case "glfw":
		return glfwwin.New(lg), nil
	case "sdl":
		return sdlwin.New(lg), nil
	case "term":
		return termwin.New(lg), nil
	default:
		return nil, fmt.Errorf("%s: unknown backend", name)
	}
}

func main() {
	flag.Parse()

	if err := fixconsole.FixConsoleIfNeeded(); err != nil {
		fmt.Printf("FixConsole: %v\n", err)
	}

	lg := log.New(*logLevel, *logDir)
	defer lg.CatchAndReportCrash()

	config, err := LoadOrMakeDefaultConfig(*configPath, lg)
	if err != nil {
		lg.Errorf("%v; using default configuration", err)
	}
	if *backendName != "" {
		config.Backend = *backendName
	} else {
		*backendName = config.Backend
	}
	if *originName != "" {
		config.Origin = *originName
	}

	if *dumpConfig {
		godump.Dump(config)
		return
	}

	origin, err := parseOrigin(config.Origin)
	if err != nil {
		ShowFatalErrorDialog(lg, "%v", err)
	}
	windowConfig := config.Window

	var backend platform.Backend
	if *replayPath != "" {
		rec, err := platform.LoadRecording(*replayPath)
		if err != nil {
			ShowFatalErrorDialog(lg, "%v", err)
		}
		lg.Infof("%s: replaying %d ticks recorded with the %s backend", *replayPath, len(rec.Ticks), rec.Backend)
		backend = platform.NewReplayBackend(rec)
		origin, windowConfig = rec.Origin, rec.Config
	} else if backend, err = makeBackend(config.Backend, lg); err != nil {
		ShowFatalErrorDialog(lg, "%v", err)
	}

	var recorder *platform.Recorder
	if *recordPath != "" {
		recorder = platform.NewRecorder(backend)
		backend = recorder
	}

	win, err := platform.NewWindow(backend, origin, windowConfig, lg)
	if err != nil {
		ShowFatalErrorDialog(lg, "%v", err)
	}
	defer win.Destroy()

	if *iconPath != "" {
		if img, err := loadImage(*iconPath); err != nil {
			lg.Errorf("%s: %v", *iconPath, err)
		} else {
			_ = win.SetIcon(img)
		}
	}

	win.SetSink(newDemoSink(lg, *replayPath != ""))
	if err := win.Run(); err != nil {
		lg.Errorf("%v", err)
	}

	if recorder != nil {
		rec := recorder.Recording()
		rec.Origin = win.Origin()
		if err := rec.Save(*recordPath); err != nil {
			lg.Errorf("%s: %v", *recordPath, err)
		} else {
			lg.Infof("%s: saved %d ticks", *recordPath, len(rec.Ticks))
		}
	}

	// Replays don't change the user's configuration.
	if *replayPath == "" {
		config.Window.Size = win.Size()
		if err := config.Save(*configPath, lg); err != nil {
			lg.Errorf("Error saving configuration: %v", err)
		}
	}
}

func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	return img, err
}
