package main

import (
	"errors"
	"io/ioutil"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/BurntSushi/xdg"
)

type Config struct {
	// Path or name of the xinput binary
	XInput string
	// Delay between two policy runs
	Interval duration
	Touchpad deviceMatch
	Stylus   deviceMatch
	// Integer properties forced on the touchpad in fixes mode
	Fixes []fix
}

// Match lists substrings that must all appear on the xinput listing line
type deviceMatch struct {
	Match matcher
}

// Prop is the (sub)name of the xinput property, Value what to force it to
type fix struct {
	Prop  string
	Value int
}

// time.Duration doesn't decode from TOML strings on its own
type duration struct {
	time.Duration
}

func (d *duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

func defaultConfig() *Config {
	return &Config{
		XInput:   "xinput",
		Interval: duration{3 * time.Second},
		Touchpad: deviceMatch{Match: matcher{"cyapa"}},
		Stylus:   deviceMatch{Match: matcher{"Wacom", "stylus"}},
		Fixes: []fix{
			{Prop: "Tap Enable", Value: 0},
			{Prop: "Button Right Click Zone Enable", Value: 1},
		},
	}
}

func configPath() (string, error) {
	paths := xdg.Paths{
		Override:  os.Getenv("TouchpadToggleConfig"),
		XDGSuffix: "touchpad-toggle",
	}
	return paths.ConfigFile("config.toml")
}

// Values missing from the file keep their defaults.
func loadConfig(path string) (*Config, error) {
	conf := defaultConfig()
	bs, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	// decoding into the default slice would merge with its entries
	conf.Fixes = nil
	md, err := toml.Decode(string(bs), conf)
	if err != nil {
		return nil, err
	}
	if !md.IsDefined("Fixes") {
		conf.Fixes = defaultConfig().Fixes
	}
	if err = conf.validate(); err != nil {
		return nil, err
	}
	return conf, nil
}

func (c *Config) validate() error {
	switch {
	case c.XInput == "":
		return errors.New("config: XInput is empty")
	case c.Interval.Duration <= 0:
		return errors.New("config: Interval must be positive")
	case len(c.Touchpad.Match) == 0:
		return errors.New("config: Touchpad.Match is empty")
	case len(c.Stylus.Match) == 0:
		return errors.New("config: Stylus.Match is empty")
	}
	for _, f := range c.Fixes {
		if f.Prop == "" {
			return errors.New("config: fix with empty Prop")
		}
	}
	return nil
}

// An explicit -c file has to exist, the XDG one is optional.
func getConfig(explicit string) (*Config, error) {
	if explicit != "" {
		return loadConfig(explicit)
	}
	path, err := configPath()
	if err != nil {
		return defaultConfig(), nil
	}
	return loadConfig(path)
}

func (c *Config) overrideInterval(d time.Duration) {
	if d > 0 {
		c.Interval.Duration = d
	}
}
