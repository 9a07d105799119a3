package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"

	"github.com/jochenvg/go-udev"
)

func main() {
	flagParse()
	conf, err := getConfig(configfile)
	if err != nil {
		fatal(err)
	}
	conf.overrideInterval(interval)

	x := newXInput(conf.XInput, execRunner{})
	if list_devs {
		displayDeviceList(conf, x)
		return
	}
	m, err := selectMode(activate, deactivate, deactivate_mouse, fixes)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		flag.Usage()
		os.Exit(1)
	}
	act, err := actionFor(m, x, conf)
	if err != nil {
		fatal(err)
	}

	ctx, stop := sighalt()
	defer stop()
	err = pollLoop(ctx, x, conf.Touchpad.Match, conf.Interval.Duration, act)
	if err != nil {
		fatal(err)
	}
}

func actionFor(m mode, x *xinput, conf *Config) (action, error) {
	switch m {
	case modeActivate:
		return activeAction(x, true), nil
	case modeDeactivate:
		return activeAction(x, false), nil
	case modeFixes:
		return fixesAction(x, conf.Fixes), nil
	case modeAutoSwitch:
		return autoSwitchAction(x, conf.Stylus.Match), nil
	}
	return nil, fmt.Errorf("unknown mode %d", m)
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

// watch for signals to quit
func sighalt() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGQUIT, syscall.SIGTERM)
}

// abstract the *udev.Device type so I can create test entries
type device interface {
	Syspath() string
	Properties() map[string]string
	PropertyValue(string) string
}

// display the input devices udev knows about, then what the configured
// matchers select from the xinput listing
func displayDeviceList(conf *Config, x *xinput) {
	u := udev.Udev{}
	e := u.NewEnumerate()
	e.AddMatchSubsystem("input")
	e.AddMatchProperty("ID_INPUT", "1")
	e.AddMatchIsInitialized()

	udev_devices, err := e.Devices()
	if err != nil {
		fatal(err)
	}
	for _, d := range udev_devices {
		// event/mouse nodes repeat their parent, only the parent has NAME
		if d.PropertyValue("NAME") == "" {
			continue
		}
		fmt.Print(devString(device(d)))
	}
	report, err := matchReport(x, conf)
	if err != nil {
		fatal(err)
	}
	fmt.Print(report)
}

func deviceName(dev device) string {
	return strings.Trim(strings.TrimSpace(dev.PropertyValue("NAME")), `"`)
}

// returns the device header and its ID_INPUT props
func devString(dev device) string {
	name := deviceName(dev)
	result := []string{fmt.Sprintf("\n%s\n%s\n", name, strings.Repeat("-", len(name)))}
	properties := dev.Properties()
	ordered_keys := make([]string, 0, len(properties))
	for k := range properties {
		if strings.HasPrefix(k, "ID_INPUT") {
			ordered_keys = append(ordered_keys, k)
		}
	}
	sort.Strings(ordered_keys)
	for _, k := range ordered_keys {
		result = append(result,
			fmt.Sprintf("- %s = \"%s\"\n", k, strings.TrimSpace(properties[k])))
	}
	return strings.Join(result, "")
}

// X drivers rename devices (wacom appends " stylus", " eraser", ...), so
// the matchers are checked against xinput's own listing, not udev names.
func matchReport(x *xinput, conf *Config) (string, error) {
	out, err := x.output()
	if err != nil {
		return "", err
	}
	const title = "xinput matches"
	result := []string{fmt.Sprintf("\n%s\n%s\n", title, strings.Repeat("-", len(title)))}
	for _, c := range []struct {
		class string
		m     matcher
	}{
		{"touchpad", conf.Touchpad.Match},
		{"stylus", conf.Stylus.Match},
	} {
		result = append(result, fmt.Sprintf("%s [%s]\n", c.class, c.m))
		found := 0
		for _, l := range strings.Split(out, "\n") {
			if c.m.matches(l) {
				result = append(result, fmt.Sprintf("- %s\n", strings.TrimSpace(l)))
				found++
			}
		}
		switch {
		case found == 0:
			result = append(result, "- no matching device\n")
		case found > 1:
			result = append(result, "- ambiguous, refine the matcher\n")
		}
	}
	return strings.Join(result, ""), nil
}
