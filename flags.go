package main

import (
	"errors"
	"flag"
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/carlmjohnson/versioninfo"
)

type mode int

const (
	modeNone mode = iota
	modeActivate
	modeDeactivate
	modeAutoSwitch
	modeFixes
)

// Flags
var quiet bool
var list_devs bool
var activate, deactivate, deactivate_mouse, fixes bool
var interval time.Duration
var configfile string

const usage_text = `Usage: %s [options]

Keep a touchpad's enabled state and settings in line with a policy, checked
with xinput at a fixed interval until interrupted. On exit the touchpad is
always left enabled. Exactly one mode is required (except with -l).
Configuration file defaults to standard XDG location
(usually ~/.config/touchpad-toggle/config.toml).

Modes:

  -a, --activate           Keep the touchpad enabled
  -d, --deactivate         Keep the touchpad disabled
  -m, --deactivate-mouse   Disable the touchpad while the tablet stylus is active
  -f, --fixes              Keep the touchpad enabled with the configured fixes

Options:

`

func flagParse() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, usage_text, filepath.Base(os.Args[0]))
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "  -h    Help\n")
		os.Exit(1)
	}
	boolFlag(&activate, "Keep the touchpad enabled", "a", "activate")
	boolFlag(&deactivate, "Keep the touchpad disabled", "d", "deactivate")
	boolFlag(&deactivate_mouse,
		"Disable the touchpad while the stylus is active", "m", "deactivate-mouse")
	boolFlag(&fixes, "Keep the touchpad enabled with config fixes", "f", "fixes")
	flag.StringVar(&configfile, "c", "", "Use `configfile` for your config")
	flag.DurationVar(&interval, "i", 0, "Poll `interval` (overrides config)")
	flag.BoolVar(&list_devs, "l", false, "List input devices and matches")
	flag.BoolVar(&quiet, "q", false, "Quiet all normal output")
	versioninfo.AddFlag(flag.CommandLine)
	flag.Parse()
	log.SetFlags(0)
	log.SetOutput(os.Stdout)
	if quiet {
		log.SetOutput(ioutil.Discard)
	}
}

func boolFlag(p *bool, usage string, names ...string) {
	for _, n := range names {
		flag.BoolVar(p, n, false, usage)
	}
}

// selectMode enforces that exactly one mode flag was given.
func selectMode(activate, deactivate, autoSwitch, fixes bool) (mode, error) {
	selected, count := modeNone, 0
	for m, set := range map[mode]bool{
		modeActivate:   activate,
		modeDeactivate: deactivate,
		modeAutoSwitch: autoSwitch,
		modeFixes:      fixes,
	} {
		if set {
			selected = m
			count++
		}
	}
	if count != 1 {
		return modeNone, errors.New(
			"exactly one of --activate, --deactivate, --deactivate-mouse, --fixes is required")
	}
	return selected, nil
}
