// Package shiftreg drives a serial-in/parallel-out shift register and the
// digit enable lines of a multiplexed display from Raspberry Pi GPIO pins.
//
// Two backends are provided: Rpio (github.com/stianeikeland/go-rpio, memory
// mapped GPIO) and Periph (periph.io). Both satisfy seg4digit.Hardware.
package shiftreg

import (
	"github.com/pkg/errors"

	"dscheirer.com/hc164/symbols"
)

// Line is one output pin.
type Line interface {
	Set(high bool) error
}

var (
	ErrNotSetup     = errors.New("pins not set up")
	ErrUnknownDigit = errors.New("unknown digit")
)

// ShiftOut clocks the 8 bits of code into the register, least significant
// bit first. Data is latched on the rising clock edge.
func ShiftOut(data, clock Line, code symbols.Code) error {
	for i := uint(0); i < 8; i++ {
		if err := data.Set(code&(1<<i) != 0); err != nil {
			return errors.Wrapf(err, "data bit %d", i)
		}
		if err := clock.Set(true); err != nil {
			return errors.Wrapf(err, "clock bit %d", i)
		}
		if err := clock.Set(false); err != nil {
			return errors.Wrapf(err, "clock bit %d", i)
		}
	}
	return nil
}
