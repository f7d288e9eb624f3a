package main

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"gotest.tools/assert"

	"dscheirer.com/hc164/shiftreg"
	"dscheirer.com/hc164/symbols"
)

func TestOpenHardwareLog(t *testing.T) {
	s := defaultSettings()
	s.settings[sBackend] = "log"

	hw, err := openHardware(s)
	assert.NilError(t, err)
	_, ok := hw.(*logDisplay)
	assert.Assert(t, ok)
	assert.NilError(t, hw.Close())
}

func TestOpenHardwareRpioSimulated(t *testing.T) {
	s := defaultSettings()
	s.settings[sSimulated] = true

	hw, err := openHardware(s)
	assert.NilError(t, err)
	_, ok := hw.(*shiftreg.Rpio)
	assert.Assert(t, ok)
	assert.NilError(t, hw.Close())
}

func TestOpenHardwareUnknown(t *testing.T) {
	s := defaultSettings()
	s.settings[sBackend] = "i2c"

	_, err := openHardware(s)
	assert.Assert(t, errors.Is(err, errUnknownBackend))
	assert.ErrorContains(t, err, `"i2c"`)
}

func TestNewDisplay(t *testing.T) {
	d, ld, _, _ := testDisplay(t)

	assert.DeepEqual(t, ld.audit, []string{"setup 5 6 [12 13 19 26]"})
	assert.Equal(t, d.Frame()[0], symbols.Zero)
	assert.Assert(t, !d.Scrolling())
}

func TestNewDisplayBadPins(t *testing.T) {
	rt, _ := testRuntime()
	s := defaultSettings()

	s.settings[sDigitPins] = "1,2,3"
	_, err := newDisplay(s, newLogDisplay(), rt)
	assert.ErrorContains(t, err, "want 4 pins, got 3")

	s.settings[sDigitPins] = "1,2,3,four"
	_, err = newDisplay(s, newLogDisplay(), rt)
	assert.ErrorContains(t, err, "item 3")
}

func TestBlankDisplay(t *testing.T) {
	rt, clock := testRuntime()
	s := defaultSettings()
	r, err := shiftreg.OpenRpio(true)
	assert.NilError(t, err)
	defer r.Close()

	d, err := newDisplay(s, r, rt)
	assert.NilError(t, err)
	assert.NilError(t, d.ShowInt(1234))
	for i := 0; i < 4; i++ {
		clock.Advance(4 * time.Millisecond)
		d.Loop()
	}
	assert.Assert(t, r.Level(22))

	assert.NilError(t, blankDisplay(r))
	for _, p := range []int{22, 23, 24, 25} {
		assert.Assert(t, !r.Level(p), "pin %d", p)
	}
	// last bit of 0xff on the data line
	assert.Assert(t, r.Level(17))
}
