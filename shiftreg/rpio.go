package shiftreg

import (
	"log"

	"github.com/pkg/errors"
	"github.com/stianeikeland/go-rpio"

	"dscheirer.com/hc164/symbols"
)

// Rpio drives the pins through go-rpio. In simulated mode /dev/gpiomem is
// never opened and pin levels are only kept in memory.
type Rpio struct {
	data   rpio.Pin
	clock  rpio.Pin
	digits []rpio.Pin
	setup  bool
	sim    bool
	levels map[rpio.Pin]rpio.State
	writes int
}

type rpioLine struct {
	r   *Rpio
	pin rpio.Pin
}

func (l rpioLine) Set(high bool) error {
	l.r.write(l.pin, high)
	return nil
}

// OpenRpio maps the GPIO registers, unless simulated.
func OpenRpio(simulated bool) (*Rpio, error) {
	if !simulated {
		if err := rpio.Open(); err != nil {
			return nil, errors.Wrap(err, "opening rpio")
		}
	} else {
		log.Println("rpio: simulated, no GPIO access")
	}
	return &Rpio{sim: simulated, levels: make(map[rpio.Pin]rpio.State)}, nil
}

func (r *Rpio) Close() error {
	if r.sim {
		log.Printf("rpio: close after %d pin writes", r.writes)
		return nil
	}
	return rpio.Close()
}

func (r *Rpio) write(pin rpio.Pin, high bool) {
	state := rpio.Low
	if high {
		state = rpio.High
	}
	r.writes++
	r.levels[pin] = state
	if !r.sim {
		pin.Write(state)
	}
}

// Setup makes every pin an output, driven low.
func (r *Rpio) Setup(dataPin, clockPin int, digitPins []int) error {
	r.data = rpio.Pin(dataPin)
	r.clock = rpio.Pin(clockPin)
	r.digits = make([]rpio.Pin, len(digitPins))
	for i, p := range digitPins {
		r.digits[i] = rpio.Pin(p)
	}

	all := append([]rpio.Pin{r.data, r.clock}, r.digits...)
	for _, pin := range all {
		if !r.sim {
			pin.Output()
		}
		r.write(pin, false)
	}
	r.setup = true
	return nil
}

func (r *Rpio) DigitEnable(digit int, on bool) error {
	if !r.setup {
		return ErrNotSetup
	}
	if digit < 0 || digit >= len(r.digits) {
		return errors.Wrapf(ErrUnknownDigit, "%d", digit)
	}
	r.write(r.digits[digit], on)
	return nil
}

func (r *Rpio) ShiftOut(code symbols.Code) error {
	if !r.setup {
		return ErrNotSetup
	}
	return ShiftOut(rpioLine{r, r.data}, rpioLine{r, r.clock}, code)
}

// Level is the last level written to pin.
func (r *Rpio) Level(pin int) bool {
	return r.levels[rpio.Pin(pin)] == rpio.High
}
