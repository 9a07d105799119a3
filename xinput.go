package main

import (
	"errors"
	"fmt"
	"log"
	"os/exec"
	"regexp"
	"strconv"
	"strings"
)

var (
	errNoMatch   = errors.New("no matching line")
	errAmbiguous = errors.New("multiple matching lines")
)

var idPattern = regexp.MustCompile(`id=(\d+)`)

const enabledProp = "Device Enabled"

// matcher selects a line of xinput output; every substring must be present
type matcher []string

func (m matcher) matches(line string) bool {
	if len(m) == 0 {
		return false
	}
	for _, s := range m {
		if !strings.Contains(line, s) {
			return false
		}
	}
	return true
}

func (m matcher) String() string {
	return strings.Join(m, "+")
}

// abstract process execution so tests can fake xinput
type runner interface {
	Output(name string, args ...string) ([]byte, error)
	Run(name string, args ...string) error
}

type execRunner struct{}

func (execRunner) Output(name string, args ...string) ([]byte, error) {
	return exec.Command(name, args...).Output()
}

func (execRunner) Run(name string, args ...string) error {
	out, err := exec.Command(name, args...).CombinedOutput()
	if err != nil && len(out) > 0 {
		return fmt.Errorf("%w: %s", err, strings.TrimSpace(string(out)))
	}
	return err
}

// xinput wraps the xinput command line tool
type xinput struct {
	path string
	cmd  runner
}

func newXInput(path string, cmd runner) *xinput {
	return &xinput{path: path, cmd: cmd}
}

func (x *xinput) output(args ...string) (string, error) {
	out, err := x.cmd.Output(x.path, args...)
	if err != nil {
		return "", fmt.Errorf("%s %s: %w", x.path, strings.Join(args, " "), err)
	}
	return string(out), nil
}

// Returns the only line of output that keep accepts.
func singleLine(output string, keep func(string) bool) (string, error) {
	var found []string
	for _, l := range strings.Split(output, "\n") {
		if keep(l) {
			found = append(found, l)
		}
	}
	switch len(found) {
	case 0:
		return "", errNoMatch
	case 1:
		return found[0], nil
	}
	return "", errAmbiguous
}

// deviceID finds the xinput id of the one device matching m.
func (x *xinput) deviceID(m matcher) (int, error) {
	out, err := x.output()
	if err != nil {
		return 0, err
	}
	line, err := singleLine(out, m.matches)
	if err != nil {
		return 0, fmt.Errorf("device %s: %w", m, err)
	}
	sm := idPattern.FindStringSubmatch(line)
	if sm == nil {
		return 0, fmt.Errorf("device %s: no id in %q", m, strings.TrimSpace(line))
	}
	id, err := strconv.Atoi(sm[1])
	if err != nil {
		return 0, fmt.Errorf("device %s: %w", m, err)
	}
	return id, nil
}

// propString returns the value of the property whose line contains name.
func (x *xinput) propString(id int, name string) (string, error) {
	out, err := x.output("list-props", strconv.Itoa(id))
	if err != nil {
		return "", err
	}
	line, err := singleLine(out, func(l string) bool {
		return strings.Contains(l, name)
	})
	if err != nil {
		return "", fmt.Errorf("device %d property %q: %w", id, name, err)
	}
	parts := strings.SplitN(line, ":", 2)
	if len(parts) != 2 {
		return "", fmt.Errorf("device %d property %q: no value in %q",
			id, name, strings.TrimSpace(line))
	}
	return strings.TrimSpace(parts[1]), nil
}

func (x *xinput) propInt(id int, name string) (int, error) {
	s, err := x.propString(id, name)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("device %d property %q: %w", id, name, err)
	}
	return v, nil
}

// setIntProp only calls set-prop when the value actually changes.
func (x *xinput) setIntProp(id int, name string, val int) error {
	cur, err := x.propInt(id, name)
	if err != nil {
		return err
	}
	if cur == val {
		return nil
	}
	log.Printf("setting %s on device %d to %d", name, id, val)
	err = x.cmd.Run(x.path, "set-prop", strconv.Itoa(id), "--type=int",
		name, strconv.Itoa(val))
	if err != nil {
		return fmt.Errorf("set-prop %q on device %d: %w", name, id, err)
	}
	return nil
}

func (x *xinput) active(id int) (bool, error) {
	v, err := x.propInt(id, enabledProp)
	return v != 0, err
}

func (x *xinput) setActive(id int, on bool) error {
	verb := "disable"
	if on {
		verb = "enable"
		log.Println("enabling device:", id)
	} else {
		log.Println("disabling device:", id)
	}
	if err := x.cmd.Run(x.path, verb, strconv.Itoa(id)); err != nil {
		return fmt.Errorf("%s device %d: %w", verb, id, err)
	}
	return nil
}

func (x *xinput) checkSetActive(id int, on bool) error {
	cur, err := x.active(id)
	if err != nil {
		return err
	}
	if cur == on {
		return nil
	}
	return x.setActive(id, on)
}
