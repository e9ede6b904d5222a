package utils

import (
	"fmt"
	"io"
	"os"
	"time"
)

// Spinner initializes the process indicator.
type Spinner struct {
	out      io.Writer
	enabled  bool
	stopChan chan struct{}
	done     chan struct{}
}

// NewSpinner instantiates a new Spinner writing to stderr. It stays silent
// when stderr is not a terminal.
func NewSpinner() *Spinner {
	return &Spinner{out: os.Stderr, enabled: IsTerminal(os.Stderr)}
}

// Start starts the process indicator.
func (s *Spinner) Start(message string) {
	if !s.enabled {
		return
	}
	s.stopChan = make(chan struct{})
	s.done = make(chan struct{})

	go func() {
		defer close(s.done)
		for {
			for _, r := range `-\|/` {
				select {
				case <-s.stopChan:
					fmt.Fprintf(s.out, "\r\x1b[K")
					return
				default:
					fmt.Fprintf(s.out, "\r%s%s %c%s", message, SuccessColor, r, DefaultColor)
					time.Sleep(time.Millisecond * 100)
				}
			}
		}
	}()
}

// Stop stops the process indicator and clears its line.
func (s *Spinner) Stop() {
	if s.stopChan == nil {
		return
	}
	close(s.stopChan)
	<-s.done
	s.stopChan = nil
}
