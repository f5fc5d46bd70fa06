// internal/config/validate_test.go
package config

import "testing"

// helper to build a minimal valid config
func valid() *Config {
	return &Config{
		Edge: EdgeConfig{
			Source: SourceConfig{
				Transport: "rtu",
				Endpoint:  "/dev/ttyUSB0",
				SlaveID:   1,
			},
			Broker: BrokerConfig{
				URL: "tcp://broker.local:1883",
			},
			Identity: IdentityConfig{
				GroupID:  "Ventilation",
				NodeID:   "OLIMEX_POE",
				DeviceID: "DV10",
			},
		},
	}
}

// ---- tests ----

func TestValidate_MinimalValid(t *testing.T) {
	if err := Validate(valid()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_Rejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad transport", func(c *Config) { c.Edge.Source.Transport = "ascii" }},
		{"missing endpoint", func(c *Config) { c.Edge.Source.Endpoint = "" }},
		{"slave id zero", func(c *Config) { c.Edge.Source.SlaveID = 0 }},
		{"bad parity", func(c *Config) { c.Edge.Source.Parity = "X" }},
		{"missing broker url", func(c *Config) { c.Edge.Broker.URL = "" }},
		{"missing node id", func(c *Config) { c.Edge.Identity.NodeID = "" }},
		{"interval below minimum", func(c *Config) { c.Edge.Poll.IntervalS = 4 }},
		{"interval above maximum", func(c *Config) { c.Edge.Poll.IntervalS = 301 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid()
			tc.mutate(cfg)
			if err := Validate(cfg); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestValidate_IntervalBoundsInclusive(t *testing.T) {
	for _, sec := range []int{5, 300} {
		cfg := valid()
		cfg.Edge.Poll.IntervalS = sec
		if err := Validate(cfg); err != nil {
			t.Fatalf("interval %d: unexpected error: %v", sec, err)
		}
	}
}

func TestNormalize_Defaults(t *testing.T) {
	cfg := valid()
	Normalize(cfg)

	e := cfg.Edge
	if e.Source.BaudRate != 9600 || e.Source.DataBits != 8 || e.Source.Parity != "N" || e.Source.StopBits != 1 {
		t.Fatalf("unexpected serial defaults: %+v", e.Source)
	}
	if e.Source.TimeoutMs != 1000 {
		t.Fatalf("expected 1000ms source timeout, got %d", e.Source.TimeoutMs)
	}
	if e.Poll.IntervalS != 10 {
		t.Fatalf("expected 10s default interval, got %d", e.Poll.IntervalS)
	}
	if e.Poll.AutoRead == nil || !*e.Poll.AutoRead {
		t.Fatalf("expected auto read enabled by default")
	}
	if e.Log.Level != "info" {
		t.Fatalf("expected info default log level, got %q", e.Log.Level)
	}
	if e.Broker.ConnectTimeoutMs != 10000 {
		t.Fatalf("expected 10s broker connect timeout, got %d", e.Broker.ConnectTimeoutMs)
	}
}

func TestNormalize_KeepsExplicitValues(t *testing.T) {
	cfg := valid()
	cfg.Edge.Source.BaudRate = 19200
	off := false
	cfg.Edge.Poll.AutoRead = &off

	Normalize(cfg)

	if cfg.Edge.Source.BaudRate != 19200 {
		t.Fatalf("explicit baud rate overridden")
	}
	if *cfg.Edge.Poll.AutoRead {
		t.Fatalf("explicit auto_read=false overridden")
	}
}
