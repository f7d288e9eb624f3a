package seg4digit

import (
	"dscheirer.com/hc164/symbols"
)

// Loop must be called as often as possible. It lights the next digit once
// the refresh interval has passed, then either expires the error overlay or
// advances the scrolling animation. The error overlay pauses scrolling.
func (d *Display) Loop() {
	if !d.ready {
		return
	}

	now := d.millis()
	if now-d.digitStamp >= d.refreshMilli {
		d.prevDigit = d.digit
		d.digit++
		if d.digit == NumDigits {
			d.digit = 0
		}

		if err := d.hw.DigitEnable(d.prevDigit, false); err != nil {
			d.logger.Printf("Loop: disable digit %d: %v", d.prevDigit, err)
		}
		if err := d.hw.DigitEnable(d.digit, true); err != nil {
			d.logger.Printf("Loop: enable digit %d: %v", d.digit, err)
		}
		if err := d.hw.ShiftOut(d.frame[d.digit]); err != nil {
			d.logger.Printf("Loop: shift out digit %d: %v", d.digit, err)
		}
		d.digitStamp = now
	}

	if d.errorShown {
		if now-d.errorStamp >= d.errorLength {
			d.removeError()
		}
	} else if d.scrolling {
		d.updateScrollingFrame(now)
	}
	d.dumpFrame()
}

// startScrolling restarts the animation from the first frame.
func (d *Display) startScrolling() {
	d.scrollFrame = 0
	if d.errorShown {
		// shown once the overlay is gone
		copy(d.frameCopy[:], d.displayBuf[:NumDigits])
		return
	}
	d.advanceScrollingFrame(d.millis())
}

func (d *Display) updateScrollingFrame(now int64) {
	if now-d.scrollStamp >= d.scrollInterval {
		d.advanceScrollingFrame(now)
	}
}

// advanceScrollingFrame shows the window at scrollFrame and moves on.
func (d *Display) advanceScrollingFrame(now int64) {
	copy(d.frame[:], d.displayBuf[d.scrollFrame:d.scrollFrame+NumDigits])
	d.scrollStamp = now

	d.scrollFrame++
	if d.scrollFrame == d.scrollFrames {
		d.scrollFrame = 0
	}
}

// errorFrame is "Err" followed by blanks.
func (d *Display) errorFrame() [NumDigits]symbols.Code {
	var frame [NumDigits]symbols.Code
	codes, err := d.enc.EncodeString("Err ")
	if err != nil {
		d.logger.Printf("errorFrame: %v", err)
	}
	copy(frame[:], codes)
	return frame
}

// ShowError replaces the display with "Err " for the error duration, then
// brings back what was shown before. Calling it again while the error is up
// takes a new snapshot (the error frame itself) and restarts the timer; the
// last call wins.
func (d *Display) ShowError() {
	if !d.ready {
		return
	}

	if d.errorShown {
		d.logger.Printf("ShowError: already showing an error, restarting timer")
	}
	d.frameCopy = d.frame
	d.frame = d.errorFrame()
	d.errorStamp = d.millis()
	d.errorShown = true
	d.dumpFrame()
}

// removeError restores the frame saved by ShowError.
func (d *Display) removeError() {
	d.frame = d.frameCopy
	d.errorShown = false
}

func (d *Display) dumpFrame() {
	if !d.dump || d.frame == d.lastDumped {
		return
	}
	d.lastDumped = d.frame

	line := "\n"
	for _, l := range symbols.Render(d.frame[:]) {
		line += l + "\n"
	}
	d.logger.Printf("%s", line)
}
