package seg4digit

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/pkg/errors"
	"gotest.tools/assert"

	"dscheirer.com/hc164/symbols"
)

var testPins = [NumDigits]int{22, 23, 24, 25}

// logHardware records every pin operation
type logHardware struct {
	dataPin   int
	clockPin  int
	digitPins []int
	enabled   [NumDigits]bool
	shifted   []symbols.Code
	audit     []string
	overlaps  int // times two digits were enabled at once
	fail      bool
}

func (lh *logHardware) Setup(dataPin, clockPin int, digitPins []int) error {
	lh.dataPin = dataPin
	lh.clockPin = clockPin
	lh.digitPins = append([]int(nil), digitPins...)
	lh.audit = append(lh.audit, fmt.Sprintf("setup %d %d %v", dataPin, clockPin, digitPins))
	return nil
}

func (lh *logHardware) DigitEnable(digit int, on bool) error {
	if lh.fail {
		return errors.New("pin stuck")
	}
	lh.enabled[digit] = on
	lit := 0
	for _, e := range lh.enabled {
		if e {
			lit++
		}
	}
	if lit > 1 {
		lh.overlaps++
	}
	lh.audit = append(lh.audit, fmt.Sprintf("digit %d %v", digit, on))
	return nil
}

func (lh *logHardware) ShiftOut(code symbols.Code) error {
	if lh.fail {
		return errors.New("pin stuck")
	}
	lh.shifted = append(lh.shifted, code)
	lh.audit = append(lh.audit, fmt.Sprintf("shift %02x", byte(code)))
	return nil
}

func (lh *logHardware) reset() {
	lh.audit = nil
	lh.shifted = nil
}

// recordLogger keeps diagnostics for inspection
type recordLogger struct {
	lines []string
}

func (rl *recordLogger) Printf(format string, v ...interface{}) {
	rl.lines = append(rl.lines, fmt.Sprintf(format, v...))
}

func (rl *recordLogger) contains(s string) bool {
	for _, l := range rl.lines {
		if strings.Contains(l, s) {
			return true
		}
	}
	return false
}

// testDisplay makes an initialized display on a fake clock
func testDisplay(t *testing.T) (*Display, clockwork.FakeClock, *logHardware, *recordLogger) {
	t.Logf("Starting %s", t.Name())

	clock := clockwork.NewFakeClock()
	hw := &logHardware{}
	logger := &recordLogger{}
	d := New(hw, clock, &Opts{Logger: logger})
	assert.NilError(t, d.Init(1, 2, testPins))
	hw.reset()
	return d, clock, hw, logger
}

// step advances the clock and runs the loop once
func step(d *Display, clock clockwork.FakeClock, ms int) {
	clock.Advance(msDuration(ms))
	d.Loop()
}

func msDuration(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}

func frameOf(codes ...symbols.Code) [NumDigits]symbols.Code {
	var f [NumDigits]symbols.Code
	copy(f[:], codes)
	return f
}
