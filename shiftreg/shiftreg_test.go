package shiftreg

import (
	"fmt"
	"testing"

	"github.com/pkg/errors"
	"gotest.tools/assert"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"

	"dscheirer.com/hc164/symbols"
)

// recordLine appends every level change to a shared trace.
type recordLine struct {
	name  string
	trace *[]string
	fail  bool
}

func (l *recordLine) Set(high bool) error {
	if l.fail {
		return errors.New("pin stuck")
	}
	v := 0
	if high {
		v = 1
	}
	*l.trace = append(*l.trace, fmt.Sprintf("%s%d", l.name, v))
	return nil
}

// bitsLatched returns the data level at every rising clock edge.
func bitsLatched(trace []string) string {
	bits, data := "", "?"
	for _, ev := range trace {
		switch ev {
		case "d0", "d1":
			data = ev[1:]
		case "c1":
			bits += data
		}
	}
	return bits
}

func TestShiftOutOrder(t *testing.T) {
	var trace []string
	data := &recordLine{name: "d", trace: &trace}
	clock := &recordLine{name: "c", trace: &trace}

	assert.NilError(t, ShiftOut(data, clock, symbols.Code(0x81)))
	assert.Equal(t, len(trace), 24)
	// LSB first
	assert.Equal(t, bitsLatched(trace), "10000001")

	trace = nil
	assert.NilError(t, ShiftOut(data, clock, symbols.Four))
	// 0x59 = 0101 1001
	assert.Equal(t, bitsLatched(trace), "10011010")
	// clock is left low
	assert.Equal(t, trace[len(trace)-1], "c0")
}

func TestShiftOutError(t *testing.T) {
	var trace []string
	data := &recordLine{name: "d", trace: &trace}
	clock := &recordLine{name: "c", trace: &trace, fail: true}

	err := ShiftOut(data, clock, symbols.Zero)
	assert.ErrorContains(t, err, "clock bit 0")
	assert.Equal(t, len(trace), 1)
}

func TestRpioSimulated(t *testing.T) {
	r, err := OpenRpio(true)
	assert.NilError(t, err)
	defer r.Close()

	assert.Equal(t, r.ShiftOut(symbols.One), ErrNotSetup)
	assert.Equal(t, r.DigitEnable(0, true), ErrNotSetup)

	assert.NilError(t, r.Setup(17, 27, []int{22, 23, 24, 25}))
	assert.Equal(t, r.writes, 6)
	for _, p := range []int{17, 27, 22, 23, 24, 25} {
		assert.Assert(t, !r.Level(p), "pin %d", p)
	}

	assert.NilError(t, r.DigitEnable(2, true))
	assert.Assert(t, r.Level(24))
	assert.NilError(t, r.DigitEnable(2, false))
	assert.Assert(t, !r.Level(24))

	err = r.DigitEnable(4, true)
	assert.Assert(t, errors.Is(err, ErrUnknownDigit))

	// 0xF9: last bit shifted is the MSB
	r.writes = 0
	assert.NilError(t, r.ShiftOut(symbols.One))
	assert.Equal(t, r.writes, 24)
	assert.Assert(t, r.Level(17))
	assert.Assert(t, !r.Level(27))
}

func testPeriph() (*Periph, map[string]*gpiotest.Pin) {
	pins := map[string]*gpiotest.Pin{}
	p := &Periph{lookup: func(name string) gpio.PinIO {
		if name == "GPIO99" {
			return nil
		}
		pin := &gpiotest.Pin{N: name, L: gpio.High}
		pins[name] = pin
		return pin
	}}
	return p, pins
}

func TestPeriphSetup(t *testing.T) {
	p, pins := testPeriph()

	assert.Equal(t, p.DigitEnable(0, true), ErrNotSetup)

	assert.NilError(t, p.Setup(17, 27, []int{22, 23, 24, 25}))
	assert.Equal(t, len(pins), 6)
	for name, pin := range pins {
		assert.Equal(t, pin.L, gpio.Low, name)
	}

	assert.NilError(t, p.DigitEnable(3, true))
	assert.Equal(t, pins["GPIO25"].L, gpio.High)
	assert.Assert(t, errors.Is(p.DigitEnable(-1, true), ErrUnknownDigit))

	assert.NilError(t, p.ShiftOut(symbols.Blank))
	assert.Equal(t, pins["GPIO17"].L, gpio.High)
	assert.Equal(t, pins["GPIO27"].L, gpio.Low)
}

func TestPeriphMissingPin(t *testing.T) {
	p, _ := testPeriph()
	err := p.Setup(17, 27, []int{22, 99, 24, 25})
	assert.ErrorContains(t, err, "no pin GPIO99")

	// nothing half configured is left behind
	assert.Equal(t, p.DigitEnable(0, true), ErrNotSetup)
	assert.Equal(t, p.ShiftOut(symbols.One), ErrNotSetup)
}

func TestPeriphFailedSetupKeepsPrevious(t *testing.T) {
	p, pins := testPeriph()
	assert.NilError(t, p.Setup(17, 27, []int{22, 23, 24, 25}))

	err := p.Setup(5, 6, []int{12, 99, 19, 26})
	assert.ErrorContains(t, err, "no pin GPIO99")
	assert.NilError(t, p.DigitEnable(1, true))
	assert.Equal(t, pins["GPIO23"].L, gpio.High)
}
