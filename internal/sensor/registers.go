// internal/sensor/registers.go
package sensor

// DV10 input register map.
// These addresses define the device protocol and MUST NOT be configurable.

// ---- SCALED REGISTERS (raw / 10.0) ----

const (
	RegHeatExchangerEfficiency uint16 = 1
	RegOutdoorTemp             uint16 = 0
	RegSupplyAirTemp           uint16 = 6
	RegSupplyAirSetpointTemp   uint16 = 7
	RegExhaustAirTemp          uint16 = 8
	RegExtractAirTemp          uint16 = 19
	RegSupplyAirPressure       uint16 = 12
	RegExtractAirPressure      uint16 = 13
	RegSupplyAirFlow           uint16 = 14
	RegExtractAirFlow          uint16 = 15
	RegExtraSupplyAirFlow      uint16 = 292
	RegExtraExtractAirFlow     uint16 = 293
)

// ---- RAW REGISTERS (unscaled uint16) ----

const (
	RegRunMode           uint16 = 2
	RegSupplyFanRuntime  uint16 = 3
	RegExtractFanRuntime uint16 = 4
)

// ---- CONTROL ----

// RegFanMode is the single writable register: 0=off 1=reduced 2=normal 3=auto.
const RegFanMode uint16 = 367

// FanModeMax is the highest accepted fan mode value.
const FanModeMax uint16 = 3

// ---- VALIDITY ----

// TotalReads is the number of register operations in one poll pass.
const TotalReads = 15

// validThreshold is the strict lower bound on SuccessfulReads for a
// snapshot to be considered publishable (valid iff reads > threshold).
const validThreshold = 10
