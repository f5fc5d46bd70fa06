// internal/config/validate.go
package config

import (
	"fmt"
)

const (
	minIntervalS = 5
	maxIntervalS = 300
)

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	e := cfg.Edge

	// ------------------------------------------------------------
	// SOURCE
	// ------------------------------------------------------------

	switch e.Source.Transport {
	case "", "rtu", "tcp":
	default:
		return fmt.Errorf("config: source transport %q not one of rtu, tcp", e.Source.Transport)
	}

	if e.Source.Endpoint == "" {
		return fmt.Errorf("config: source endpoint required")
	}

	if e.Source.SlaveID == 0 {
		return fmt.Errorf("config: source slave_id required (1-247)")
	}
	if e.Source.SlaveID > 247 {
		return fmt.Errorf("config: source slave_id %d out of range (1-247)", e.Source.SlaveID)
	}

	switch e.Source.Parity {
	case "", "N", "E", "O":
	default:
		return fmt.Errorf("config: source parity %q not one of N, E, O", e.Source.Parity)
	}

	// ------------------------------------------------------------
	// BROKER
	// ------------------------------------------------------------

	if e.Broker.URL == "" {
		return fmt.Errorf("config: broker url required")
	}

	// ------------------------------------------------------------
	// IDENTITY
	// ------------------------------------------------------------

	if e.Identity.GroupID == "" || e.Identity.NodeID == "" || e.Identity.DeviceID == "" {
		return fmt.Errorf("config: identity group_id, node_id and device_id required")
	}

	// ------------------------------------------------------------
	// POLL
	// ------------------------------------------------------------

	if e.Poll.IntervalS != 0 {
		if e.Poll.IntervalS < minIntervalS || e.Poll.IntervalS > maxIntervalS {
			return fmt.Errorf(
				"config: poll interval_s %d out of range (%d-%d)",
				e.Poll.IntervalS, minIntervalS, maxIntervalS,
			)
		}
	}

	return nil
}
