// utility functions
package main

import (
	"sync"

	"github.com/jonboulle/clockwork"
)

type runtimeConfig struct {
	clock    clockwork.Clock
	logger   flogger
	quit     chan struct{}
	stopOnce *sync.Once
}

func initRuntime(clock clockwork.Clock) runtimeConfig {
	return runtimeConfig{
		clock:    clock,
		logger:   &ThreadLogger{name: "Main"},
		quit:     make(chan struct{}),
		stopOnce: &sync.Once{},
	}
}

// stop closes quit; safe to call from several goroutines
func (rt runtimeConfig) stop() {
	rt.stopOnce.Do(func() {
		close(rt.quit)
	})
}

func (rt runtimeConfig) stopped() bool {
	select {
	case <-rt.quit:
		return true
	default:
		return false
	}
}
