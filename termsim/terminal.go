package termsim

import (
	"sync/atomic"

	"github.com/nsf/termbox-go"
	"github.com/pkg/errors"

	"dscheirer.com/hc164/symbols"
)

const title = "hc164 simulator - q or Esc to quit"

// Terminal is a Panel drawn with termbox.
type Terminal struct {
	Panel
	polling int32
}

// Open takes over the terminal. Close must be called to restore it.
func Open() (*Terminal, error) {
	if err := termbox.Init(); err != nil {
		return nil, errors.Wrap(err, "termbox init")
	}
	termbox.SetInputMode(termbox.InputEsc)

	t := &Terminal{}
	t.OnChange = t.draw
	return t, nil
}

func (t *Terminal) draw(digits []symbols.Code) error {
	if err := termbox.Clear(termbox.ColorDefault, termbox.ColorDefault); err != nil {
		return err
	}
	for x, ch := range title {
		termbox.SetCell(x, 0, ch, termbox.ColorDefault, termbox.ColorDefault)
	}
	for y, line := range symbols.Render(digits) {
		for x, ch := range line {
			termbox.SetCell(x+1, y+2, ch, termbox.ColorRed|termbox.AttrBold, termbox.ColorDefault)
		}
	}
	return termbox.Flush()
}

// PollQuit blocks reading keys. It returns true when the user asks to quit
// and false when the terminal is closed under it.
func (t *Terminal) PollQuit() bool {
	atomic.StoreInt32(&t.polling, 1)
	defer atomic.StoreInt32(&t.polling, 0)

	for {
		ev := termbox.PollEvent()
		switch ev.Type {
		case termbox.EventKey:
			if ev.Key == termbox.KeyEsc || ev.Key == termbox.KeyCtrlC || ev.Ch == 'q' {
				return true
			}
		case termbox.EventInterrupt, termbox.EventError:
			return false
		}
	}
}

func (t *Terminal) Close() error {
	// wake PollQuit so it does not read from a closed terminal
	if atomic.LoadInt32(&t.polling) == 1 {
		termbox.Interrupt()
	}
	termbox.Close()
	return nil
}
