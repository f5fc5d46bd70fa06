// internal/console/console.go
package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Device is the set of actions the console can trigger.
type Device interface {
	WriteMode(mode uint16) bool
	ReadNow()
	ToggleAutoRead() bool
	SetIntervalSeconds(sec int) bool
	StatusLine() string
}

// Console dispatches single-character commands from a local terminal.
// A reader goroutine feeds whole lines into a channel; Service drains at
// most one pending command per call and never blocks, except for the
// interval prompt, which deliberately waits for the next line.
type Console struct {
	in    io.Reader
	out   io.Writer
	dev   Device
	lines chan string
}

// New creates a console. Call Start to begin reading input.
func New(in io.Reader, out io.Writer, dev Device) *Console {
	return &Console{
		in:    in,
		out:   out,
		dev:   dev,
		lines: make(chan string, 4),
	}
}

// Start launches the input reader goroutine. The lines channel closes on EOF.
func (c *Console) Start() {
	go func() {
		sc := bufio.NewScanner(c.in)
		for sc.Scan() {
			c.lines <- sc.Text()
		}
		close(c.lines)
	}()
}

// Service handles one pending command if present.
func (c *Console) Service() {
	select {
	case line, ok := <-c.lines:
		if !ok {
			// Terminal gone; a nil channel blocks, so the default
			// branch wins from here on.
			c.lines = nil
			return
		}
		c.dispatch(line)
	default:
	}
}

// dispatch acts on the first character of a line; the rest is discarded.
func (c *Console) dispatch(line string) {
	if line == "" {
		return
	}
	cmd := line[0]

	switch cmd {
	case '0', '1', '2', '3':
		c.dev.WriteMode(uint16(cmd - '0'))

	case 'r':
		c.dev.ReadNow()

	case 'a':
		if c.dev.ToggleAutoRead() {
			fmt.Fprintln(c.out, "auto read ON")
		} else {
			fmt.Fprintln(c.out, "auto read OFF")
		}

	case 'i':
		c.promptInterval()

	case 'm':
		fmt.Fprintln(c.out, c.dev.StatusLine())

	default:
		fmt.Fprintln(c.out, "unknown command, 'm' for menu")
	}
}

// promptInterval blocks until the next input line and parses it as a
// seconds value. Out-of-range or unparsable input changes nothing.
func (c *Console) promptInterval() {
	fmt.Fprint(c.out, "seconds (5-300): ")

	line, ok := <-c.lines
	if !ok {
		c.lines = nil
		return
	}

	sec, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		log.WithField("input", line).Debug("interval input not a number")
		return
	}
	if c.dev.SetIntervalSeconds(sec) {
		fmt.Fprintf(c.out, "interval: %d sec\n", sec)
	}
}
