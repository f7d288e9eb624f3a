package main

import (
	"io"
	"log"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

type flogger interface {
	Printf(format string, v ...interface{})
	Println(v ...interface{})
}

// ThreadLogger prefixes every line with the component name
type ThreadLogger struct {
	name string
}

func (tl *ThreadLogger) Printf(format string, v ...interface{}) {
	log.Printf("["+tl.name+"] "+format, v...)
}

func (tl *ThreadLogger) Println(v ...interface{}) {
	log.Println(append([]interface{}{"[" + tl.name + "]"}, v...)...)
}

// setupLogging sends the log to a rotating file, and to stderr as well
// unless the terminal is in use for the simulator.
func setupLogging(s *settings, toStderr bool) *lumberjack.Logger {
	lj := &lumberjack.Logger{
		Filename:   s.GetString(sLogFile),
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     28, // days
	}

	var out io.Writer = lj
	if toStderr {
		out = io.MultiWriter(lj, os.Stderr)
	}
	log.SetOutput(out)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return lj
}
