package main

import (
	"fmt"

	"dscheirer.com/hc164/symbols"
	"dscheirer.com/hc164/termsim"
)

// logDisplay is a backend that logs every change of the visible digits
type logDisplay struct {
	termsim.Panel
	audit      []string
	disableLog bool
	logger     flogger
}

func newLogDisplay() *logDisplay {
	ld := &logDisplay{
		audit:  []string{},
		logger: &ThreadLogger{name: "LogDisplay"},
	}
	ld.OnChange = ld.print
	return ld
}

func (ld *logDisplay) Setup(dataPin, clockPin int, digitPins []int) error {
	ld.logger.Printf("setup data=%d clock=%d digits=%v", dataPin, clockPin, digitPins)
	ld.audit = append(ld.audit, fmt.Sprintf("setup %d %d %v", dataPin, clockPin, digitPins))
	return ld.Panel.Setup(dataPin, clockPin, digitPins)
}

func (ld *logDisplay) print(digits []symbols.Code) error {
	if !ld.disableLog {
		for _, line := range symbols.Render(digits) {
			ld.logger.Println(line)
		}
	}
	ld.audit = append(ld.audit, fmt.Sprintf("show % x", digits))
	return nil
}

func (ld *logDisplay) Close() error {
	ld.logger.Printf("closed after %d changes", len(ld.audit))
	return nil
}
