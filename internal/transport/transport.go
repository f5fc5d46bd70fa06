// internal/transport/transport.go
package transport

import (
	"errors"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	log "github.com/sirupsen/logrus"
)

// Transport is the pub/sub capability the bridge publishes through.
// Connect is one attempt; retry policy lives with the session layer.
type Transport interface {
	IsConnected() bool
	Connect(clientID string) bool
	Publish(topic string, payload []byte) bool
	// Service pumps the transport's internal event queue. Implementations
	// that run their own network loop may make this a no-op.
	Service()
}

// Config is broker connection config.
type Config struct {
	BrokerURL      string
	Username       string
	Password       string
	ConnectTimeout time.Duration
}

// Paho implements Transport on eclipse/paho.
type Paho struct {
	cfg    Config
	client mqtt.Client
}

// NewPaho creates an unconnected transport.
func NewPaho(cfg Config) (*Paho, error) {
	if cfg.BrokerURL == "" {
		return nil, errors.New("transport: broker url required")
	}
	if cfg.ConnectTimeout <= 0 {
		cfg.ConnectTimeout = 10 * time.Second
	}
	return &Paho{cfg: cfg}, nil
}

// IsConnected reports broker session liveness.
func (p *Paho) IsConnected() bool {
	return p.client != nil && p.client.IsConnected()
}

// Connect makes exactly one connect attempt under the given client id.
// Auto-reconnect stays off: the session layer owns the retry state machine.
func (p *Paho) Connect(clientID string) bool {
	opts := mqtt.NewClientOptions().
		AddBroker(p.cfg.BrokerURL).
		SetClientID(clientID).
		SetCleanSession(true).
		SetAutoReconnect(false).
		SetConnectTimeout(p.cfg.ConnectTimeout)
	if p.cfg.Username != "" {
		opts.SetUsername(p.cfg.Username)
		opts.SetPassword(p.cfg.Password)
	}

	c := mqtt.NewClient(opts)
	tok := c.Connect()
	if !tok.WaitTimeout(p.cfg.ConnectTimeout) || tok.Error() != nil {
		log.WithFields(log.Fields{"broker": p.cfg.BrokerURL, "client_id": clientID, "error": tok.Error()}).Warn("broker connect failed")
		return false
	}

	p.client = c
	log.WithFields(log.Fields{"broker": p.cfg.BrokerURL, "client_id": clientID}).Info("broker connected")
	return true
}

// Publish sends one payload at QoS 0, not retained.
func (p *Paho) Publish(topic string, payload []byte) bool {
	if p.client == nil {
		return false
	}
	tok := p.client.Publish(topic, 0, false, payload)
	tok.Wait()
	if tok.Error() != nil {
		log.WithFields(log.Fields{"topic": topic, "error": tok.Error()}).Warn("publish failed")
		return false
	}
	return true
}

// Service is a no-op: paho keeps its own network loop and keepalive.
func (p *Paho) Service() {}

// Close tears the broker session down.
func (p *Paho) Close() {
	if p.client != nil && p.client.IsConnected() {
		p.client.Disconnect(250)
	}
}
