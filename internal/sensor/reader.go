// internal/sensor/reader.go
package sensor

import (
	"errors"
	"math"

	log "github.com/sirupsen/logrus"

	"github.com/Amir804-cell/iot-monitoring-V2/internal/metrics"
)

// Client is the single-register field-bus contract the reader depends on.
// One call = one transport attempt. No retries anywhere below this line.
type Client interface {
	ReadInputRegister(addr uint16) (uint16, error)
	WriteRegister(addr, value uint16) error
}

// Reader converts raw register reads into scaled or raw measurements.
// Failures are values, not errors: callers get a NaN/zero plus ok=false.
type Reader struct {
	client Client
}

// NewReader creates a reader over the given field-bus client.
func NewReader(client Client) (*Reader, error) {
	if client == nil {
		return nil, errors.New("sensor: client required")
	}
	return &Reader{client: client}, nil
}

// ReadScaled reads one input register and returns raw/10.0.
// On failure returns NaN and false; NaN means "absent", never zero.
func (r *Reader) ReadScaled(reg uint16) (float64, bool) {
	raw, err := r.client.ReadInputRegister(reg)
	if err != nil {
		metrics.RegisterReadFailures.Inc()
		log.WithFields(log.Fields{"register": reg, "error": err}).Warn("register read failed")
		return math.NaN(), false
	}
	return float64(raw) / 10.0, true
}

// ReadRaw reads one input register unscaled.
// On failure returns 0 and false.
func (r *Reader) ReadRaw(reg uint16) (uint16, bool) {
	raw, err := r.client.ReadInputRegister(reg)
	if err != nil {
		metrics.RegisterReadFailures.Inc()
		log.WithFields(log.Fields{"register": reg, "error": err}).Warn("register read failed")
		return 0, false
	}
	return raw, true
}

// WriteMode writes one control register, single attempt.
// Range validation belongs to the caller; the reader only reports outcome.
func (r *Reader) WriteMode(reg, value uint16) bool {
	if err := r.client.WriteRegister(reg, value); err != nil {
		log.WithFields(log.Fields{"register": reg, "value": value, "error": err}).Error("register write failed")
		return false
	}
	log.WithFields(log.Fields{"register": reg, "value": value}).Info("register written")
	return true
}
