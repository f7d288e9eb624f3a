package main

import (
	"github.com/pkg/errors"

	"dscheirer.com/hc164/seg4digit"
	"dscheirer.com/hc164/shiftreg"
	"dscheirer.com/hc164/symbols"
	"dscheirer.com/hc164/termsim"
)

// hardware is a display backend the host can release on exit
type hardware interface {
	seg4digit.Hardware
	Close() error
}

var errUnknownBackend = errors.New("unknown backend")

func openHardware(s *settings) (hardware, error) {
	backend := s.GetString(sBackend)
	switch backend {
	case "rpio":
		r, err := shiftreg.OpenRpio(s.GetBool(sSimulated))
		if err != nil {
			return nil, err
		}
		return r, nil
	case "periph":
		p, err := shiftreg.OpenPeriph()
		if err != nil {
			return nil, err
		}
		return p, nil
	case "term":
		t, err := termsim.Open()
		if err != nil {
			return nil, err
		}
		return t, nil
	case "log":
		return newLogDisplay(), nil
	default:
		return nil, errors.Wrapf(errUnknownBackend, "%q", backend)
	}
}

// newDisplay sets up the controller from the settings
func newDisplay(s *settings, hw seg4digit.Hardware, rt runtimeConfig) (*seg4digit.Display, error) {
	pins, err := s.GetIntList(sDigitPins)
	if err != nil {
		return nil, err
	}
	if len(pins) != seg4digit.NumDigits {
		return nil, errors.Errorf("%s: want %d pins, got %d", sDigitPins, seg4digit.NumDigits, len(pins))
	}
	var digitPins [seg4digit.NumDigits]int
	copy(digitPins[:], pins)

	d := seg4digit.New(hw, rt.clock, &seg4digit.Opts{
		RefreshRate:    s.GetInt(sRefreshRate),
		ScrollInterval: s.GetDuration(sScrollInterval),
		ErrorDuration:  s.GetDuration(sErrorDuration),
		Logger:         &ThreadLogger{name: "Display"},
	})
	d.DebugDump(s.GetBool(sDebug))

	if err := d.Init(s.GetInt(sDataPin), s.GetInt(sClockPin), digitPins); err != nil {
		return nil, errors.Wrap(err, "display init")
	}
	return d, nil
}

// blankDisplay turns every digit off and clears the register
func blankDisplay(hw seg4digit.Hardware) error {
	for i := 0; i < seg4digit.NumDigits; i++ {
		if err := hw.DigitEnable(i, false); err != nil {
			return err
		}
	}
	return hw.ShiftOut(symbols.Blank)
}
