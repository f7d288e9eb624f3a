package seg4digit

import "dscheirer.com/hc164/symbols"

// Hardware is the pin level side of the display: one data and one clock line
// into the shift register, and one enable line per digit.
type Hardware interface {
	// Setup assigns pin roles and configures them as outputs.
	Setup(dataPin, clockPin int, digitPins []int) error
	// DigitEnable drives the enable line of digit (index into digitPins).
	DigitEnable(digit int, on bool) error
	// ShiftOut serializes code into the shift register, least significant bit first.
	ShiftOut(code symbols.Code) error
}
