package seg4digit

import (
	"math"
	"strconv"

	"github.com/pkg/errors"
)

type outputType byte

const (
	formatInt   outputType = 'i'
	formatFloat outputType = 'f'
	formatHex   outputType = 'h'
)

// value is the raw input of a Show call, only the field matching the
// output type is used.
type value struct {
	i      int
	f      float64
	h      uint64
	places int
}

// ShowInt shows input as a signed decimal number.
func (d *Display) ShowInt(input int) error {
	return d.show(formatInt, value{i: input})
}

// ShowFloat shows input with decimalPlaces digits after the decimal point.
// Extra digits are truncated, not rounded: ShowFloat(2.1987, 2) shows 2.19.
func (d *Display) ShowFloat(input float64, decimalPlaces int) error {
	if decimalPlaces < 0 {
		d.logger.Printf("ShowFloat: negative decimal places %d, using 0", decimalPlaces)
		decimalPlaces = 0
	}
	return d.show(formatFloat, value{f: input, places: decimalPlaces})
}

// ShowHex shows input as lowercase hexadecimal without a prefix.
func (d *Display) ShowHex(input uint64) error {
	return d.show(formatHex, value{h: input})
}

// show formats the input, converts it to segment patterns and picks static or
// scrolling output. Overflow and unsupported characters are returned but the
// display is still updated with what could be rendered.
func (d *Display) show(format outputType, in value) error {
	if !d.ready {
		return ErrNotInitialized
	}

	written, err := d.buildInputBuffer(format, in)
	if !written {
		return err
	}

	pointIndex := -1
	if format == formatFloat {
		// index of rightmost character minus decimal places
		pointIndex = (d.inputLen - 1) - in.places
	}

	if encErr := d.buildDisplayBuffer(pointIndex); err == nil {
		err = encErr
	}
	d.processDisplayBuffer()
	d.dumpFrame()
	return err
}

// buildInputBuffer writes the text form of in to the input buffer. written is
// false when the buffer was left untouched.
func (d *Display) buildInputBuffer(format outputType, in value) (written bool, err error) {
	var text string

	switch format {
	case formatInt:
		text = strconv.FormatInt(int64(in.i), 10)
	case formatFloat:
		converted, err := convertFloat(in.f, in.places)
		if err != nil {
			d.logger.Printf("buildInputBuffer: %v", err)
			return false, err
		}
		text = strconv.FormatInt(converted, 10)
	case formatHex:
		text = strconv.FormatUint(in.h, 16)
	default:
		err := errors.Wrapf(ErrUnknownFormat, "%q", byte(format))
		d.logger.Printf("buildInputBuffer: %v", err)
		return false, err
	}

	if len(text) > maxInputLength {
		err = errors.Wrapf(ErrOverflow, "%q has %d chars, max is %d", text, len(text), maxInputLength)
		d.logger.Printf("buildInputBuffer: %v", err)
		text = text[:maxInputLength]
	}

	n := copy(d.input[:], text)
	d.input[n] = 0
	d.inputLen = d.inputLength()
	return true, err
}

// convertFloat brings places decimals to the left of the decimal point and
// drops the rest, truncating toward zero.
func convertFloat(input float64, places int) (int64, error) {
	f := input
	for i := 0; i < places && f != 0 && !math.IsInf(f, 0); i++ {
		f *= 10
	}
	if math.IsNaN(f) || f >= math.MaxInt64 || f < math.MinInt64 {
		return 0, errors.Wrapf(ErrOverflow, "%v with %d decimal places", input, places)
	}
	return int64(f), nil
}

// inputLength is the index of the terminator in the input buffer.
func (d *Display) inputLength() int {
	for i := 0; i < BufferLength; i++ {
		if d.input[i] == 0 {
			return i
		}
	}
	return BufferLength
}
