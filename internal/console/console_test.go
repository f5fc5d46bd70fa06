// internal/console/console_test.go
package console

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

// ---- fake device ----

type fakeDevice struct {
	modes     []uint16
	reads     int
	toggles   int
	autoState bool
	intervals []int
	accept    bool
}

func (f *fakeDevice) WriteMode(mode uint16) bool { f.modes = append(f.modes, mode); return true }
func (f *fakeDevice) ReadNow()                   { f.reads++ }

func (f *fakeDevice) ToggleAutoRead() bool {
	f.toggles++
	f.autoState = !f.autoState
	return f.autoState
}

func (f *fakeDevice) SetIntervalSeconds(sec int) bool {
	if sec < 5 || sec > 300 {
		return false
	}
	f.intervals = append(f.intervals, sec)
	return f.accept
}

func (f *fakeDevice) StatusLine() string { return "status" }

// ---- tests ----

func TestDispatch_ModeDigits(t *testing.T) {
	dev := &fakeDevice{}
	c := New(strings.NewReader(""), &bytes.Buffer{}, dev)

	c.dispatch("0")
	c.dispatch("3")

	if len(dev.modes) != 2 || dev.modes[0] != 0 || dev.modes[1] != 3 {
		t.Fatalf("unexpected mode writes: %v", dev.modes)
	}
}

func TestDispatch_ReadNow(t *testing.T) {
	dev := &fakeDevice{}
	c := New(strings.NewReader(""), &bytes.Buffer{}, dev)

	c.dispatch("r")

	if dev.reads != 1 {
		t.Fatalf("expected one immediate read, got %d", dev.reads)
	}
}

func TestDispatch_TrailingInputDiscarded(t *testing.T) {
	dev := &fakeDevice{}
	c := New(strings.NewReader(""), &bytes.Buffer{}, dev)

	c.dispatch("rxyz123")

	if dev.reads != 1 {
		t.Fatalf("expected a single command from the line, got %d reads", dev.reads)
	}
	if len(dev.modes) != 0 {
		t.Fatalf("trailing digits must not dispatch: %v", dev.modes)
	}
}

func TestDispatch_ToggleReportsState(t *testing.T) {
	dev := &fakeDevice{}
	out := &bytes.Buffer{}
	c := New(strings.NewReader(""), out, dev)

	c.dispatch("a")
	if !strings.Contains(out.String(), "auto read ON") {
		t.Fatalf("expected ON confirmation, got %q", out.String())
	}

	out.Reset()
	c.dispatch("a")
	if !strings.Contains(out.String(), "auto read OFF") {
		t.Fatalf("expected OFF confirmation, got %q", out.String())
	}
}

func TestDispatch_UnknownCommand(t *testing.T) {
	dev := &fakeDevice{}
	out := &bytes.Buffer{}
	c := New(strings.NewReader(""), out, dev)

	c.dispatch("x")

	if !strings.Contains(out.String(), "unknown command") {
		t.Fatalf("expected unknown-command diagnostic, got %q", out.String())
	}
}

func TestInterval_AcceptsInRange(t *testing.T) {
	dev := &fakeDevice{accept: true}
	out := &bytes.Buffer{}
	c := New(strings.NewReader("60\n"), out, dev)
	c.Start()

	c.dispatch("i")

	if len(dev.intervals) != 1 || dev.intervals[0] != 60 {
		t.Fatalf("expected interval 60 applied, got %v", dev.intervals)
	}
	if !strings.Contains(out.String(), "interval: 60 sec") {
		t.Fatalf("expected confirmation, got %q", out.String())
	}
}

func TestInterval_RejectsOutOfRange(t *testing.T) {
	dev := &fakeDevice{accept: true}
	c := New(strings.NewReader("400\n"), &bytes.Buffer{}, dev)
	c.Start()

	c.dispatch("i")

	if len(dev.intervals) != 0 {
		t.Fatalf("expected out-of-range interval ignored, got %v", dev.intervals)
	}
}

func TestInterval_NonNumericIgnored(t *testing.T) {
	dev := &fakeDevice{accept: true}
	c := New(strings.NewReader("abc\n"), &bytes.Buffer{}, dev)
	c.Start()

	c.dispatch("i")

	if len(dev.intervals) != 0 {
		t.Fatalf("expected non-numeric input ignored, got %v", dev.intervals)
	}
}

func TestService_NoPendingInputIsNonBlocking(t *testing.T) {
	dev := &fakeDevice{}
	c := New(strings.NewReader(""), &bytes.Buffer{}, dev)

	// No Start, empty channel: must return immediately without dispatch.
	c.Service()

	if dev.reads != 0 || len(dev.modes) != 0 {
		t.Fatalf("expected no dispatch without input")
	}
}

func TestService_EOFDisablesChannel(t *testing.T) {
	dev := &fakeDevice{}
	c := New(strings.NewReader(""), &bytes.Buffer{}, dev)
	c.Start()

	// Drain until the closed channel is observed.
	for i := 0; i < 100 && c.lines != nil; i++ {
		c.Service()
		time.Sleep(time.Millisecond)
	}

	if c.lines != nil {
		t.Fatalf("expected lines channel disabled after EOF")
	}
	c.Service() // must not panic or spin
}
