package main

import (
	"time"

	"dscheirer.com/hc164/seg4digit"
)

type demoStep struct {
	name string
	show func(d *seg4digit.Display) error
}

// demo cycles through a fixed script, one step every interval
type demo struct {
	steps  []demoStep
	next   int
	every  time.Duration
	stamp  time.Time
	logger flogger
}

func demoScript() []demoStep {
	count := 0
	return []demoStep{
		{"int", func(d *seg4digit.Display) error { return d.ShowInt(1234) }},
		{"float", func(d *seg4digit.Display) error { return d.ShowFloat(2.1987, 2) }},
		{"hex", func(d *seg4digit.Display) error { return d.ShowHex(429) }},
		{"counter", func(d *seg4digit.Display) error {
			count++
			return d.ShowInt(count)
		}},
		{"negative", func(d *seg4digit.Display) error { return d.ShowFloat(-3.5, 1) }},
		{"scroll", func(d *seg4digit.Display) error { return d.ShowInt(123456789) }},
		{"overflow", func(d *seg4digit.Display) error { return d.ShowHex(0xfedcba9876) }},
		{"error", func(d *seg4digit.Display) error {
			d.ShowError()
			return nil
		}},
	}
}

func newDemo(steps []demoStep, every time.Duration) *demo {
	return &demo{
		steps:  steps,
		every:  every,
		logger: &ThreadLogger{name: "Demo"},
	}
}

// tick runs the next step when it is due. A step that fails shows the
// error overlay on top of whatever it managed to render.
func (dm *demo) tick(d *seg4digit.Display, now time.Time) {
	if len(dm.steps) == 0 {
		return
	}
	if !dm.stamp.IsZero() && now.Sub(dm.stamp) < dm.every {
		return
	}
	dm.stamp = now

	step := dm.steps[dm.next]
	dm.next = (dm.next + 1) % len(dm.steps)

	dm.logger.Printf("step %s", step.name)
	if err := step.show(d); err != nil {
		dm.logger.Printf("step %s: %v", step.name, err)
		d.ShowError()
	}
}

// runDisplay polls the controller until quit
func runDisplay(rt runtimeConfig, d *seg4digit.Display, dm *demo, sleep time.Duration) {
	defer rt.logger.Println("Exiting runDisplay")

	for !rt.stopped() {
		dm.tick(d, rt.clock.Now())
		d.Loop()
		rt.clock.Sleep(sleep)
	}
}
