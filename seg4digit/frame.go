package seg4digit

import (
	"github.com/pkg/errors"

	"dscheirer.com/hc164/symbols"
)

// buildDisplayBuffer converts the input buffer to segment patterns. A
// pointIndex >= 0 adds the decimal point to that position (floats only).
func (d *Display) buildDisplayBuffer(pointIndex int) error {
	var first error

	for i := 0; i < d.inputLen; i++ {
		code, err := d.enc.Encode(d.input[i])
		if err != nil {
			d.logger.Printf("buildDisplayBuffer: %v, showing 0", err)
			if first == nil {
				first = errors.Wrapf(err, "position %d", i)
			}
		}
		d.displayBuf[i] = code
	}
	d.displayLen = d.inputLen

	if pointIndex >= 0 && pointIndex < d.displayLen {
		d.displayBuf[pointIndex] = d.enc.AddDot(d.displayBuf[pointIndex])
	}
	return first
}

// processDisplayBuffer shows short input as a static frame and scrolls
// anything wider than the display.
func (d *Display) processDisplayBuffer() {
	if d.displayLen > NumDigits {
		d.buildScrollingBuffer()
		d.scrolling = true
		d.startScrolling()
	} else {
		d.scrolling = false
		d.updateCurrentFrame()
	}
}

// target is the frame new content is written to. While the error overlay is
// up that is the saved copy, restored when the overlay ends.
func (d *Display) target() *[NumDigits]symbols.Code {
	if d.errorShown {
		return &d.frameCopy
	}
	return &d.frame
}

// updateCurrentFrame right aligns the display buffer, padding blanks on the left.
func (d *Display) updateCurrentFrame() {
	frame := d.target()
	blankSpaces := NumDigits - d.displayLen

	if blankSpaces == 0 {
		copy(frame[:], d.displayBuf[:NumDigits])
		return
	}

	for i := 0; i < NumDigits; i++ {
		if i < blankSpaces {
			frame[i] = symbols.Blank
		} else {
			frame[i] = d.displayBuf[i-blankSpaces]
		}
	}
}

// buildScrollingBuffer surrounds the display buffer with blanks: the
// animation starts with one symbol visible on the rightmost digit and ends
// with an empty display.
func (d *Display) buildScrollingBuffer() {
	spacesBefore := NumDigits - 1
	spacesAfter := NumDigits
	scrollingLength := spacesBefore + d.displayLen + spacesAfter

	// shift the input right, from the end so nothing is overwritten
	for i := d.displayLen - 1; i >= 0; i-- {
		d.displayBuf[i+spacesBefore] = d.displayBuf[i]
	}
	for i := 0; i < spacesBefore; i++ {
		d.displayBuf[i] = symbols.Blank
	}
	for i := scrollingLength - spacesAfter; i < scrollingLength; i++ {
		d.displayBuf[i] = symbols.Blank
	}

	d.displayLen = scrollingLength
	d.scrollFrames = scrollingLength - NumDigits + 1
}
