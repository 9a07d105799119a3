package main

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type dev map[string]string

func (f dev) Syspath() string { return "/sys/devices/virtual/input/" + f["NAME"] }
func (f dev) Properties() map[string]string {
	return f
}
func (f dev) PropertyValue(k string) string {
	return f[k]
}

var fakedevices = []device{
	dev{"NAME": `"Cypress APA Trackpad (cyapa)"`, "ID_INPUT": "1",
		"ID_INPUT_TOUCHPAD": "1", "SUBSYSTEM": "input"},
	dev{"NAME": `"Wacom Intuos S Pen"`, "ID_INPUT": "1",
		"ID_INPUT_TABLET": "1", "SUBSYSTEM": "input"},
	dev{"NAME": `"AT Translated Set 2 keyboard"`, "ID_INPUT": "1",
		"ID_INPUT_KEY": "1", "SUBSYSTEM": "input"},
}

var asstrings = []string{`
Cypress APA Trackpad (cyapa)
----------------------------
- ID_INPUT = "1"
- ID_INPUT_TOUCHPAD = "1"
`, `
Wacom Intuos S Pen
------------------
- ID_INPUT = "1"
- ID_INPUT_TABLET = "1"
`, `
AT Translated Set 2 keyboard
----------------------------
- ID_INPUT = "1"
- ID_INPUT_KEY = "1"
`,
}

func TestDeviceList(t *testing.T) {
	for i := range fakedevices {
		str := devString(fakedevices[i])
		if str != asstrings[i] {
			t.Error("list format is wrong, got:", str, "want:", asstrings[i])
		}
	}
}

func TestSelectMode(t *testing.T) {
	m, err := selectMode(true, false, false, false)
	require.NoError(t, err)
	assert.Equal(t, modeActivate, m)

	m, err = selectMode(false, false, true, false)
	require.NoError(t, err)
	assert.Equal(t, modeAutoSwitch, m)

	m, err = selectMode(false, false, false, true)
	require.NoError(t, err)
	assert.Equal(t, modeFixes, m)

	_, err = selectMode(false, false, false, false)
	assert.Error(t, err)
	_, err = selectMode(true, true, false, false)
	assert.Error(t, err)
	_, err = selectMode(true, true, true, true)
	assert.Error(t, err)
}

func TestActionFor(t *testing.T) {
	conf := defaultConfig()
	f := newFake(touchpadDev("1"))
	x := newXInput("xinput", f)

	run := func(m mode) {
		act, err := actionFor(m, x, conf)
		require.NoError(t, err)
		require.NoError(t, act(11))
	}

	run(modeDeactivate)
	run(modeActivate)
	assert.Equal(t, []string{"disable 11", "enable 11"}, f.runs)

	// no stylus around, touchpad already on
	run(modeAutoSwitch)
	assert.Len(t, f.runs, 2)

	run(modeFixes)
	assert.Equal(t, "set-prop 11 --type=int Button Right Click Zone Enable 1",
		f.runs[len(f.runs)-1])
}

func TestActionForNoMode(t *testing.T) {
	_, err := actionFor(modeNone, newXInput("xinput", newFake()), defaultConfig())
	assert.Error(t, err)
}

func TestMatchReport(t *testing.T) {
	eraser := stylusDev("1")
	eraser.name = "Wacom Intuos S Pen eraser"
	eraser.id = 15
	x := newXInput("xinput", newFake(touchpadDev("1"), stylusDev("1"), eraser))

	report, err := matchReport(x, defaultConfig())
	require.NoError(t, err)
	lines := strings.Split(report, "\n")
	assert.Equal(t, "touchpad [cyapa]", lines[3])
	assert.Contains(t, lines[4], "Cypress APA Trackpad (cyapa)")
	assert.Contains(t, lines[4], "id=11")
	assert.Equal(t, "stylus [Wacom+stylus]", lines[5])
	assert.Contains(t, lines[6], "id=14")
	assert.NotContains(t, report, "eraser")
	assert.NotContains(t, report, "no matching device")
}

func TestMatchReportMissing(t *testing.T) {
	x := newXInput("xinput", newFake(touchpadDev("1")))
	report, err := matchReport(x, defaultConfig())
	require.NoError(t, err)
	assert.Contains(t, report, "stylus [Wacom+stylus]\n- no matching device\n")
}

func TestMatchReportXInputFailure(t *testing.T) {
	f := newFake()
	f.err = errors.New("unable to connect to X server")
	_, err := matchReport(newXInput("xinput", f), defaultConfig())
	assert.Error(t, err)
}
