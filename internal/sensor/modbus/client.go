// internal/sensor/modbus/client.go
package modbus

import (
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	"github.com/goburrow/modbus"
)

// Transport kinds. The DV10 hangs off an RS-485 line in the field; TCP is
// kept for bench setups against a simulator.
const (
	TransportRTU = "rtu"
	TransportTCP = "tcp"
)

// Config is minimal transport config for the field bus.
type Config struct {
	Transport string // "rtu" or "tcp"
	Endpoint  string // serial device path or host:port
	SlaveID   uint8
	Timeout   time.Duration

	// Serial line parameters, RTU only.
	BaudRate int
	DataBits int
	Parity   string
	StopBits int
}

// Client implements sensor.Client over Modbus.
// One request in flight at a time, synchronous response.
type Client struct {
	handler interface{ Close() error }
	client  modbus.Client
}

// New creates a connected Modbus client.
func New(cfg Config) (*Client, error) {
	if cfg.Endpoint == "" {
		return nil, errors.New("modbus client: endpoint required")
	}

	switch cfg.Transport {
	case TransportRTU:
		h := modbus.NewRTUClientHandler(cfg.Endpoint)
		h.BaudRate = cfg.BaudRate
		h.DataBits = cfg.DataBits
		h.Parity = cfg.Parity
		h.StopBits = cfg.StopBits
		h.SlaveId = cfg.SlaveID
		h.Timeout = cfg.Timeout
		if err := h.Connect(); err != nil {
			return nil, fmt.Errorf("modbus client: rtu connect: %w", err)
		}
		return &Client{handler: h, client: modbus.NewClient(h)}, nil

	case TransportTCP:
		h := modbus.NewTCPClientHandler(cfg.Endpoint)
		h.SlaveId = cfg.SlaveID
		h.Timeout = cfg.Timeout
		if err := h.Connect(); err != nil {
			return nil, fmt.Errorf("modbus client: tcp connect: %w", err)
		}
		return &Client{handler: h, client: modbus.NewClient(h)}, nil

	default:
		return nil, fmt.Errorf("modbus client: unknown transport %q", cfg.Transport)
	}
}

// Close closes the underlying handler connection.
func (c *Client) Close() error {
	if c == nil || c.handler == nil {
		return nil
	}
	return c.handler.Close()
}

// ---- sensor.Client interface ----

// ReadInputRegister reads exactly one input register (FC 4).
func (c *Client) ReadInputRegister(addr uint16) (uint16, error) {
	b, err := c.client.ReadInputRegisters(addr, 1)
	if err != nil {
		return 0, err
	}
	if len(b) < 2 {
		return 0, errors.New("modbus client: short register payload")
	}
	return binary.BigEndian.Uint16(b[:2]), nil
}

// WriteRegister writes one holding register (FC 6).
func (c *Client) WriteRegister(addr, value uint16) error {
	_, err := c.client.WriteSingleRegister(addr, value)
	return err
}
