// internal/sensor/types.go
package sensor

import "time"

// Snapshot is the latest set of readings from the ventilation unit.
// It is written only by the poller; consumers treat it as read-only.
type Snapshot struct {
	Timestamp time.Time

	HeatExchangerEfficiency float64
	RunMode                 uint16

	OutdoorTemp           float64
	SupplyAirTemp         float64
	SupplyAirSetpointTemp float64
	ExhaustAirTemp        float64
	ExtractAirTemp        float64

	SupplyAirPressure  float64
	ExtractAirPressure float64

	SupplyAirFlow       float64
	ExtractAirFlow      float64
	ExtraSupplyAirFlow  float64
	ExtraExtractAirFlow float64

	SupplyFanRuntime  uint16
	ExtractFanRuntime uint16

	// SuccessfulReads counts registers that returned a value in the
	// most recent pass. DataValid is derived from it, never set directly.
	SuccessfulReads int
	DataValid       bool
}
