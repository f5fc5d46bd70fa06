// internal/config/normalize.go
package config

// Normalize applies post-validation defaulting.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	e := &cfg.Edge

	// ------------------------------------------------------------
	// SOURCE — DV10 factory serial settings
	// ------------------------------------------------------------

	if e.Source.Transport == "" {
		e.Source.Transport = "rtu"
	}
	if e.Source.TimeoutMs == 0 {
		e.Source.TimeoutMs = 1000
	}
	if e.Source.BaudRate == 0 {
		e.Source.BaudRate = 9600
	}
	if e.Source.DataBits == 0 {
		e.Source.DataBits = 8
	}
	if e.Source.Parity == "" {
		e.Source.Parity = "N"
	}
	if e.Source.StopBits == 0 {
		e.Source.StopBits = 1
	}

	// ------------------------------------------------------------
	// BROKER
	// ------------------------------------------------------------

	if e.Broker.ConnectTimeoutMs == 0 {
		e.Broker.ConnectTimeoutMs = 10000
	}

	// ------------------------------------------------------------
	// POLL
	// ------------------------------------------------------------

	if e.Poll.IntervalS == 0 {
		e.Poll.IntervalS = 10
	}
	if e.Poll.AutoRead == nil {
		on := true
		e.Poll.AutoRead = &on
	}

	// ------------------------------------------------------------
	// LOG
	// ------------------------------------------------------------

	if e.Log.Level == "" {
		e.Log.Level = "info"
	}
}
