// Package seg4digit drives a four digit, common anode 7-segment display
// through a serial-in/parallel-out shift register (SN74HC164 style).
//
// Only one digit is lit at a time. The host must call Loop as often as it can
// (at least refreshRate times per second); Loop switches digits, advances the
// scrolling animation and expires the error overlay. Nothing blocks and no
// goroutines are started, so a Display must only be used from one goroutine.
//
// Values wider than the display scroll from right to left. The input buffer
// holds BufferLength bytes, of which (NumDigits-1)+NumDigits are reserved for
// the blank padding of the scroll animation, leaving room for 9 characters.
package seg4digit

import (
	"log"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/pkg/errors"

	"dscheirer.com/hc164/symbols"
)

const (
	NumDigits    = 4
	BufferLength = 16

	maxInputLength = BufferLength - (NumDigits - 1) - NumDigits
)

const (
	DefaultRefreshRate    = 250 // Hz
	DefaultScrollInterval = 300 * time.Millisecond
	DefaultErrorDuration  = 3 * time.Second
)

var (
	ErrOverflow       = errors.New("value does not fit the input buffer")
	ErrUnknownFormat  = errors.New("unknown output format")
	ErrNotInitialized = errors.New("display not initialized")
)

// Logger receives diagnostics. *log.Logger satisfies it.
type Logger interface {
	Printf(format string, v ...interface{})
}

type namedLogger struct {
	name string
}

func (l namedLogger) Printf(format string, v ...interface{}) {
	log.Printf("["+l.name+"] "+format, v...)
}

// Opts configures a Display. Zero fields take the defaults.
type Opts struct {
	RefreshRate    int // digit switches per second
	ScrollInterval time.Duration
	ErrorDuration  time.Duration
	Logger         Logger
}

// Display is the controller state. All buffers are fixed size.
type Display struct {
	hw     Hardware
	clock  clockwork.Clock
	enc    symbols.Encoder
	logger Logger
	dump   bool
	ready  bool
	epoch  time.Time

	// input buffer data
	input      [BufferLength]byte
	inputLen   int
	displayBuf [BufferLength]symbols.Code
	displayLen int

	// output data
	frame      [NumDigits]symbols.Code
	frameCopy  [NumDigits]symbols.Code
	lastDumped [NumDigits]symbols.Code

	// scrolling data
	scrolling      bool
	scrollFrames   int
	scrollFrame    int
	scrollStamp    int64
	scrollInterval int64

	// display loop data
	digit        int
	prevDigit    int
	digitStamp   int64
	refreshMilli int64
	errorShown   bool
	errorStamp   int64
	errorLength  int64
}

// New creates a display using hw for pin access and clock as the millisecond
// time source. Call Init before anything else.
func New(hw Hardware, clock clockwork.Clock, opts *Opts) *Display {
	if opts == nil {
		opts = &Opts{}
	}
	d := &Display{
		hw:     hw,
		clock:  clock,
		logger: opts.Logger,
	}
	if d.logger == nil {
		d.logger = namedLogger{name: "seg4digit"}
	}

	rate := opts.RefreshRate
	if rate <= 0 {
		rate = DefaultRefreshRate
	}
	d.refreshMilli = int64(1000 / rate)
	if d.refreshMilli < 1 {
		d.logger.Printf("refresh rate %dHz too high, using 1ms per digit", rate)
		d.refreshMilli = 1
	}

	d.scrollInterval = milliseconds(opts.ScrollInterval, DefaultScrollInterval)
	d.errorLength = milliseconds(opts.ErrorDuration, DefaultErrorDuration)
	return d
}

func milliseconds(d time.Duration, def time.Duration) int64 {
	if d <= 0 {
		d = def
	}
	return int64(d / time.Millisecond)
}

// Init assigns the pins and resets the display to all zeroes.
func (d *Display) Init(dataPin, clockPin int, digitPins [NumDigits]int) error {
	if err := d.hw.Setup(dataPin, clockPin, digitPins[:]); err != nil {
		return errors.Wrap(err, "setting up pins")
	}
	for i := 0; i < NumDigits; i++ {
		if err := d.hw.DigitEnable(i, false); err != nil {
			return errors.Wrapf(err, "disabling digit %d", i)
		}
	}

	d.epoch = d.clock.Now()

	d.input = [BufferLength]byte{}
	d.inputLen = 0
	d.displayBuf = [BufferLength]symbols.Code{}
	d.displayLen = 0
	for i := 0; i < NumDigits; i++ {
		d.frame[i] = symbols.Zero
		d.frameCopy[i] = symbols.Zero
	}
	d.lastDumped = d.frame

	d.scrolling = false
	d.scrollFrames = 0
	d.scrollFrame = 0
	d.scrollStamp = 0

	d.digit = 0
	d.prevDigit = NumDigits - 1
	d.digitStamp = 0
	d.errorShown = false
	d.errorStamp = 0

	d.ready = true
	d.logger.Printf("initialized: data=%d clock=%d digits=%v, %dms/digit, max input %d chars",
		dataPin, clockPin, digitPins, d.refreshMilli, maxInputLength)
	return nil
}

// millis is the monotonic time since Init.
func (d *Display) millis() int64 {
	return int64(d.clock.Now().Sub(d.epoch) / time.Millisecond)
}

// DebugDump logs an ASCII picture of the display whenever the frame changes.
func (d *Display) DebugDump(on bool) {
	d.dump = on
}

// Frame returns the patterns currently shown, left to right.
func (d *Display) Frame() [NumDigits]symbols.Code {
	return d.frame
}

// Text returns the formatted input of the last Show call.
func (d *Display) Text() string {
	return string(d.input[:d.inputLen])
}

// Scrolling reports whether the display is animating a long value.
func (d *Display) Scrolling() bool {
	return d.scrolling
}

// ErrorShown reports whether the error overlay is active.
func (d *Display) ErrorShown() bool {
	return d.errorShown
}

// ActiveDigit is the index of the digit currently enabled.
func (d *Display) ActiveDigit() int {
	return d.digit
}
