package shiftreg

import (
	"fmt"

	"github.com/pkg/errors"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"

	"dscheirer.com/hc164/symbols"
)

// Periph drives the pins through periph.io. Pin numbers are BCM numbers,
// looked up as "GPIO<n>".
type Periph struct {
	lookup func(name string) gpio.PinIO
	data   gpio.PinOut
	clock  gpio.PinOut
	digits []gpio.PinOut
}

type periphLine struct {
	pin gpio.PinOut
}

func (l periphLine) Set(high bool) error {
	return l.pin.Out(gpio.Level(high))
}

// OpenPeriph loads the periph host drivers.
func OpenPeriph() (*Periph, error) {
	if _, err := host.Init(); err != nil {
		return nil, errors.Wrap(err, "periph host init")
	}
	return &Periph{lookup: gpioreg.ByName}, nil
}

// Close leaves the pins as they are; periph has nothing to release for GPIO.
func (p *Periph) Close() error {
	return nil
}

func (p *Periph) pin(n int) (gpio.PinOut, error) {
	name := fmt.Sprintf("GPIO%d", n)
	pin := p.lookup(name)
	if pin == nil {
		return nil, errors.Errorf("periph: no pin %s", name)
	}
	if err := pin.Out(gpio.Low); err != nil {
		return nil, errors.Wrapf(err, "periph: %s as output", name)
	}
	return pin, nil
}

// Setup resolves every pin before keeping any; a failed Setup changes nothing.
func (p *Periph) Setup(dataPin, clockPin int, digitPins []int) error {
	data, err := p.pin(dataPin)
	if err != nil {
		return err
	}
	clock, err := p.pin(clockPin)
	if err != nil {
		return err
	}
	digits := make([]gpio.PinOut, len(digitPins))
	for i, n := range digitPins {
		if digits[i], err = p.pin(n); err != nil {
			return err
		}
	}

	p.data, p.clock, p.digits = data, clock, digits
	return nil
}

func (p *Periph) DigitEnable(digit int, on bool) error {
	if p.data == nil {
		return ErrNotSetup
	}
	if digit < 0 || digit >= len(p.digits) {
		return errors.Wrapf(ErrUnknownDigit, "%d", digit)
	}
	return p.digits[digit].Out(gpio.Level(on))
}

func (p *Periph) ShiftOut(code symbols.Code) error {
	if p.data == nil {
		return ErrNotSetup
	}
	return ShiftOut(periphLine{p.data}, periphLine{p.clock}, code)
}
