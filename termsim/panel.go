// Package termsim simulates the multiplexed display in a terminal.
//
// A Panel keeps what each digit would show: the last pattern shifted out
// while that digit was enabled. Terminal draws a Panel with termbox.
package termsim

import (
	"github.com/pkg/errors"

	"dscheirer.com/hc164/symbols"
)

// Panel latches shifted patterns onto the enabled digits.
type Panel struct {
	// OnChange is called with the latched digits whenever one changes.
	OnChange func(digits []symbols.Code) error

	enabled []bool
	digits  []symbols.Code
}

func (p *Panel) Setup(dataPin, clockPin int, digitPins []int) error {
	p.enabled = make([]bool, len(digitPins))
	p.digits = make([]symbols.Code, len(digitPins))
	for i := range p.digits {
		p.digits[i] = symbols.Blank
	}
	return nil
}

func (p *Panel) DigitEnable(digit int, on bool) error {
	if digit < 0 || digit >= len(p.enabled) {
		return errors.Errorf("termsim: no digit %d", digit)
	}
	p.enabled[digit] = on
	return nil
}

func (p *Panel) ShiftOut(code symbols.Code) error {
	changed := false
	for d, on := range p.enabled {
		if on && p.digits[d] != code {
			p.digits[d] = code
			changed = true
		}
	}
	if changed && p.OnChange != nil {
		return p.OnChange(p.Digits())
	}
	return nil
}

// Digits returns a copy of the latched patterns, leftmost first.
func (p *Panel) Digits() []symbols.Code {
	out := make([]symbols.Code, len(p.digits))
	copy(out, p.digits)
	return out
}
