// internal/edge/scheduler.go
package edge

import (
	"context"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/Amir804-cell/iot-monitoring-V2/internal/sensor"
)

// Narrow contracts the scheduler drives. Concrete types live in their own
// packages; the loop depends on behavior only.

// Link is the network association kept alive each iteration.
type Link interface {
	Connected() bool
	Reconnect() bool
}

// Session is the pub/sub session layered on top of the link.
type Session interface {
	Ready() bool
	Establish()
}

// Poller performs one full sensor read pass.
type Poller interface {
	PollAll() sensor.Snapshot
}

// Publisher delivers one snapshot upstream.
type Publisher interface {
	Publish(sensor.Snapshot) bool
}

// ModeWriter writes one control register.
type ModeWriter interface {
	WriteMode(reg, value uint16) bool
}

// Pump services a transport's internal event queue.
type Pump interface {
	Service()
}

// ---- CONFIG ----

// Interval bounds for auto reads.
const (
	MinInterval     = 5 * time.Second
	MaxInterval     = 300 * time.Second
	DefaultInterval = 10 * time.Second
)

// defaultIdleDelay is the end-of-iteration yield keeping the loop from
// busy-spinning.
const defaultIdleDelay = 10 * time.Millisecond

// Config holds the scheduler's startup controls.
type Config struct {
	AutoRead  bool
	Interval  time.Duration
	IdleDelay time.Duration
}

// Deps are the collaborators the loop drives, in iteration order.
type Deps struct {
	Link      Link
	Session   Session
	Transport Pump
	Poller    Poller
	Publisher Publisher
	Writer    ModeWriter
}

// Scheduler is the single cooperative loop. All mutation happens
// synchronously inside one iteration; there is nothing to lock.
type Scheduler struct {
	cfg Config
	d   Deps

	console Pump // optional, attached after construction

	snap         sensor.Snapshot
	autoRead     bool
	interval     time.Duration
	lastAutoRead time.Time
}

// New creates a scheduler. Interval defaults to 10s and is clamped to
// the 5–300s contract at construction as well as on later changes.
func New(cfg Config, d Deps) (*Scheduler, error) {
	if d.Link == nil || d.Session == nil || d.Transport == nil {
		return nil, errors.New("edge: link, session and transport required")
	}
	if d.Poller == nil || d.Publisher == nil || d.Writer == nil {
		return nil, errors.New("edge: poller, publisher and writer required")
	}
	if cfg.Interval == 0 {
		cfg.Interval = DefaultInterval
	}
	if cfg.Interval < MinInterval || cfg.Interval > MaxInterval {
		return nil, errors.New("edge: interval out of range")
	}
	if cfg.IdleDelay <= 0 {
		cfg.IdleDelay = defaultIdleDelay
	}
	return &Scheduler{
		cfg:      cfg,
		d:        d,
		autoRead: cfg.AutoRead,
		interval: cfg.Interval,
	}, nil
}

// AttachConsole wires the command interface in. Optional: a headless
// deployment runs without one.
func (s *Scheduler) AttachConsole(c Pump) {
	s.console = c
}

// Run loops until ctx is cancelled. Cancellation is observed between
// iterations only; blocking waits inside an iteration are not
// interruptible, matching the reconnect contracts.
func (s *Scheduler) Run(ctx context.Context) {
	log.Info("scheduler running")
	for {
		select {
		case <-ctx.Done():
			log.Info("scheduler stopped")
			return
		default:
		}

		s.step(time.Now())
		time.Sleep(s.cfg.IdleDelay)
	}
}

// step is one iteration in fixed order: link, session, transport queue,
// console, then the auto-read schedule.
func (s *Scheduler) step(now time.Time) {
	if !s.d.Link.Connected() {
		log.Warn("network link down, reconnecting")
		s.d.Link.Reconnect()
	}

	if !s.d.Session.Ready() {
		log.Warn("session down, reconnecting")
		s.d.Session.Establish()
	}

	s.d.Transport.Service()

	if s.console != nil {
		s.console.Service()
	}

	if s.autoRead && now.Sub(s.lastAutoRead) >= s.interval {
		s.lastAutoRead = now
		s.readAndPublish()
	}
}

func (s *Scheduler) readAndPublish() {
	s.snap = s.d.Poller.PollAll()
	s.d.Publisher.Publish(s.snap)
}

// ---- console.Device ----

// WriteMode validates the fan mode and writes the control register.
func (s *Scheduler) WriteMode(mode uint16) bool {
	if mode > sensor.FanModeMax {
		log.WithField("mode", mode).Error("fan mode out of range, 0-3 only")
		return false
	}
	return s.d.Writer.WriteMode(sensor.RegFanMode, mode)
}

// ReadNow polls and publishes immediately, bypassing the schedule.
func (s *Scheduler) ReadNow() {
	s.readAndPublish()
}

// ToggleAutoRead flips the auto-read flag and returns the new state.
func (s *Scheduler) ToggleAutoRead() bool {
	s.autoRead = !s.autoRead
	log.WithField("enabled", s.autoRead).Info("auto read toggled")
	return s.autoRead
}

// SetIntervalSeconds applies a new auto-read interval if it is within
// the 5–300s bounds; otherwise nothing changes.
func (s *Scheduler) SetIntervalSeconds(sec int) bool {
	d := time.Duration(sec) * time.Second
	if d < MinInterval || d > MaxInterval {
		return false
	}
	s.interval = d
	log.WithField("interval", d).Info("auto read interval changed")
	return true
}

// StatusLine renders the menu and current state summary.
func (s *Scheduler) StatusLine() string {
	onOff := func(b bool) string {
		if b {
			return "ON"
		}
		return "OFF"
	}
	upDown := func(b bool) string {
		if b {
			return "UP"
		}
		return "DOWN"
	}
	return fmt.Sprintf(
		"=== DV10 CONTROLLER ===\n"+
			"0=off 1=reduced 2=normal 3=auto\n"+
			"r=read a=autoread i=interval m=menu\n"+
			"auto: %s (%ds) | link: %s | session: %s",
		onOff(s.autoRead),
		int(s.interval/time.Second),
		upDown(s.d.Link.Connected()),
		upDown(s.d.Session.Ready()),
	)
}
