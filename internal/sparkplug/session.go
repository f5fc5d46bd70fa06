// internal/sparkplug/session.go
package sparkplug

import (
	"errors"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/Amir804-cell/iot-monitoring-V2/internal/metrics"
	"github.com/Amir804-cell/iot-monitoring-V2/internal/transport"
)

// DefaultRetryDelay is the fixed wait between failed connect attempts.
const DefaultRetryDelay = 5 * time.Second

// Session maintains the pub/sub session on top of the network link.
// Establish blocks without bound: a bridge without a session has nothing
// to report upstream, so this is the one retry treated as must-succeed.
type Session struct {
	tr         transport.Transport
	group      string
	node       string
	device     string
	retryDelay time.Duration
}

// NewSession creates a session manager for the given identity.
func NewSession(tr transport.Transport, group, node, device string) (*Session, error) {
	if tr == nil {
		return nil, errors.New("sparkplug: transport required")
	}
	if group == "" || node == "" || device == "" {
		return nil, errors.New("sparkplug: group, node and device ids required")
	}
	return &Session{
		tr:         tr,
		group:      group,
		node:       node,
		device:     device,
		retryDelay: DefaultRetryDelay,
	}, nil
}

// Ready reports whether the session can carry data messages.
func (s *Session) Ready() bool {
	return s.tr.IsConnected()
}

// Establish blocks until the broker accepts a connection, then announces
// the node and device. Each attempt uses a fresh random client id suffix
// so concurrent devices sharing a broker cannot collide.
func (s *Session) Establish() {
	bo := backoff.NewConstantBackOff(s.retryDelay)

	// ConstantBackOff never stops, so this returns only on success.
	_ = backoff.Retry(func() error {
		id := s.clientID()
		log.WithField("client_id", id).Info("connecting session")
		if !s.tr.Connect(id) {
			return errors.New("sparkplug: connect refused")
		}
		return nil
	}, bo)

	now := time.Now()
	if !s.tr.Publish(NodeBirthTopic(s.group, s.node), NodeBirthPayload(now)) {
		log.Warn("node birth publish failed")
	}
	if !s.tr.Publish(DeviceBirthTopic(s.group, s.node, s.device), DeviceBirthPayload(now)) {
		log.Warn("device birth publish failed")
	}

	metrics.SessionReconnects.Inc()
	log.WithFields(log.Fields{"group": s.group, "node": s.node, "device": s.device}).Info("session established")
}

func (s *Session) clientID() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return s.node + "_" + suffix
}
