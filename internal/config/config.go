// internal/config/config.go
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Edge EdgeConfig `yaml:"edge"`
}

type EdgeConfig struct {
	Source   SourceConfig   `yaml:"source"`
	Broker   BrokerConfig   `yaml:"broker"`
	Identity IdentityConfig `yaml:"identity"`
	Poll     PollConfig     `yaml:"poll"`
	Log      LogConfig      `yaml:"log"`
	Metrics  MetricsConfig  `yaml:"metrics"`
}

// ---- SOURCE (field bus) ----

type SourceConfig struct {
	Transport string `yaml:"transport"` // rtu | tcp
	Endpoint  string `yaml:"endpoint"`  // serial device path or host:port
	SlaveID   uint8  `yaml:"slave_id"`
	TimeoutMs int    `yaml:"timeout_ms"`

	// Serial line parameters, rtu only.
	BaudRate int    `yaml:"baud_rate"`
	DataBits int    `yaml:"data_bits"`
	Parity   string `yaml:"parity"` // N | E | O
	StopBits int    `yaml:"stop_bits"`
}

// ---- BROKER (pub/sub) ----

type BrokerConfig struct {
	URL              string `yaml:"url"`
	Username         string `yaml:"username"`
	Password         string `yaml:"password"`
	ConnectTimeoutMs int    `yaml:"connect_timeout_ms"`
}

// ---- IDENTITY ----

type IdentityConfig struct {
	GroupID  string `yaml:"group_id"`
	NodeID   string `yaml:"node_id"`
	DeviceID string `yaml:"device_id"`
}

// ---- POLL ----

type PollConfig struct {
	IntervalS int   `yaml:"interval_s"`
	AutoRead  *bool `yaml:"auto_read"`
}

// ---- LOG ----

type LogConfig struct {
	Level string `yaml:"level"`
}

// ---- METRICS ----

type MetricsConfig struct {
	Listen string `yaml:"listen"` // empty disables the endpoint
}

// Load reads and decodes a YAML config file. Validation is separate.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return &cfg, nil
}
