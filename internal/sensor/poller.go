// internal/sensor/poller.go
package sensor

import (
	"math"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/Amir804-cell/iot-monitoring-V2/internal/metrics"
)

// Poller performs one full read pass over the fixed register table.
type Poller struct {
	reader *Reader
}

// NewPoller creates a poller bound to a reader.
func NewPoller(reader *Reader) *Poller {
	return &Poller{reader: reader}
}

// PollAll reads all 15 registers in fixed order and returns a fresh snapshot.
// A single failed read never aborts the pass; validity is decided at the end
// from the success tally (strictly more than validThreshold of TotalReads).
//
// Tally rules, kept bit-compatible with the DV10 firmware: scaled fields
// count only when the result is not NaN; the two fan-runtime counters count
// unconditionally, read failure included.
func (p *Poller) PollAll() Snapshot {
	snap := Snapshot{Timestamp: time.Now()}
	success := 0

	eff, ok := p.reader.ReadScaled(RegHeatExchangerEfficiency)
	snap.HeatExchangerEfficiency = eff
	if ok {
		success++
	}

	mode, ok := p.reader.ReadRaw(RegRunMode)
	snap.RunMode = mode
	if ok {
		success++
	}

	scaled := func(reg uint16, dst *float64) {
		v, _ := p.reader.ReadScaled(reg)
		*dst = v
		if !math.IsNaN(v) {
			success++
		}
	}

	scaled(RegOutdoorTemp, &snap.OutdoorTemp)
	scaled(RegSupplyAirTemp, &snap.SupplyAirTemp)
	scaled(RegSupplyAirSetpointTemp, &snap.SupplyAirSetpointTemp)
	scaled(RegExhaustAirTemp, &snap.ExhaustAirTemp)
	scaled(RegExtractAirTemp, &snap.ExtractAirTemp)

	scaled(RegSupplyAirPressure, &snap.SupplyAirPressure)
	scaled(RegExtractAirPressure, &snap.ExtractAirPressure)

	scaled(RegSupplyAirFlow, &snap.SupplyAirFlow)
	scaled(RegExtractAirFlow, &snap.ExtractAirFlow)
	scaled(RegExtraSupplyAirFlow, &snap.ExtraSupplyAirFlow)
	scaled(RegExtraExtractAirFlow, &snap.ExtraExtractAirFlow)

	// Runtime counters tally unconditionally.
	snap.SupplyFanRuntime, _ = p.reader.ReadRaw(RegSupplyFanRuntime)
	success++
	snap.ExtractFanRuntime, _ = p.reader.ReadRaw(RegExtractFanRuntime)
	success++

	snap.SuccessfulReads = success
	snap.DataValid = success > validThreshold

	metrics.PollsTotal.Inc()
	metrics.SuccessfulReads.Set(float64(success))
	log.WithFields(log.Fields{"ok": success, "total": TotalReads, "valid": snap.DataValid}).Info("sensor pass complete")

	return snap
}
