package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/jonboulle/clockwork"

	"dscheirer.com/hc164/termsim"
)

// hc164 -config={config file} [-backend=rpio|periph|term|log]

func main() {
	// read config information
	s := initSettings()

	term := s.GetString(sBackend) == "term"
	lj := setupLogging(s, !term)
	defer lj.Close()

	// dump them (debugging)
	log.Println(">>> Settings <<<")
	s.Dump()

	rt := initRuntime(clockwork.NewRealClock())

	hw, err := openHardware(s)
	if err != nil {
		log.Fatalf("opening %s backend: %v", s.GetString(sBackend), err)
	}

	d, err := newDisplay(s, hw, rt)
	if err != nil {
		hw.Close()
		log.Fatal(err.Error())
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case sig := <-sigs:
			rt.logger.Printf("got %v, quitting", sig)
			rt.stop()
		case <-rt.quit:
		}
	}()

	if t, ok := hw.(*termsim.Terminal); ok {
		go func() {
			if t.PollQuit() {
				rt.stop()
			}
		}()
	}

	runDisplay(rt, d, newDemo(demoScript(), s.GetDuration(sDemoStep)), s.GetDuration(sLoopSleep))

	if err := blankDisplay(hw); err != nil {
		rt.logger.Printf("blanking display: %v", err)
	}
	if err := hw.Close(); err != nil {
		rt.logger.Printf("closing backend: %v", err)
	}
}
