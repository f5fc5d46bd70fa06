// internal/link/link.go
package link

import (
	"errors"
	"net"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	log "github.com/sirupsen/logrus"

	"github.com/Amir804-cell/iot-monitoring-V2/internal/metrics"
)

// DialFunc probes one network path. Swappable for tests.
type DialFunc func(network, addr string, timeout time.Duration) (net.Conn, error)

// Config tunes the link manager. Zero values get defaults from New.
type Config struct {
	Addr          string        // probe target, host:port
	ProbeTimeout  time.Duration // per-probe dial timeout
	ProbeInterval time.Duration // minimum time between live probes
	Attempts      uint64        // bounded reconnect attempt budget
	RetryDelay    time.Duration // fixed wait between attempts
	Dial          DialFunc
}

// Manager keeps the network path to the broker host alive.
// Reconnect is bounded: on exhaustion it gives up for this iteration and
// the scheduler tries again on the next one.
type Manager struct {
	cfg       Config
	up        bool
	lastProbe time.Time
}

// New creates a link manager probing addr.
func New(cfg Config) (*Manager, error) {
	if cfg.Addr == "" {
		return nil, errors.New("link: probe address required")
	}
	if cfg.ProbeTimeout <= 0 {
		cfg.ProbeTimeout = 2 * time.Second
	}
	if cfg.ProbeInterval <= 0 {
		cfg.ProbeInterval = 5 * time.Second
	}
	if cfg.Attempts == 0 {
		cfg.Attempts = 20
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = time.Second
	}
	if cfg.Dial == nil {
		cfg.Dial = net.DialTimeout
	}
	return &Manager{cfg: cfg}, nil
}

// Connected reports link liveness. Probes are rate-limited to
// ProbeInterval; in between, the cached verdict stands.
func (m *Manager) Connected() bool {
	if time.Since(m.lastProbe) < m.cfg.ProbeInterval {
		return m.up
	}
	m.up = m.probe()
	m.lastProbe = time.Now()
	return m.up
}

// Reconnect runs the bounded retry sequence and leaves the state as
// whatever the final attempt produced. Never blocks past the budget.
func (m *Manager) Reconnect() bool {
	attempt := 0
	bo := backoff.WithMaxRetries(backoff.NewConstantBackOff(m.cfg.RetryDelay), m.cfg.Attempts-1)

	err := backoff.Retry(func() error {
		attempt++
		metrics.LinkReconnectAttempts.Inc()
		log.WithFields(log.Fields{"addr": m.cfg.Addr, "attempt": attempt}).Info("probing network link")
		if !m.probe() {
			return errors.New("link: unreachable")
		}
		return nil
	}, bo)

	m.up = err == nil
	m.lastProbe = time.Now()
	if m.up {
		log.WithField("addr", m.cfg.Addr).Info("network link up")
	} else {
		log.WithFields(log.Fields{"addr": m.cfg.Addr, "attempts": attempt}).Warn("network link still down")
	}
	return m.up
}

func (m *Manager) probe() bool {
	conn, err := m.cfg.Dial("tcp", m.cfg.Addr, m.cfg.ProbeTimeout)
	if err != nil {
		return false
	}
	_ = conn.Close()
	return true
}

// AddrFromURL extracts host:port from a broker URL. Bare host:port
// strings pass through unchanged.
func AddrFromURL(raw string) (string, error) {
	if !strings.Contains(raw, "://") {
		return raw, nil
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Host == "" {
		return "", errors.New("link: broker url has no host")
	}
	return u.Host, nil
}
