// internal/sparkplug/constants.go
package sparkplug

// Sparkplug-style topic namespace. The naming convention is
// <namespace>/<group>/<message-type>/<node>[/<device>] and is protocol-locked.
const Namespace = "spBv1.0"

// ---- MESSAGE TYPES ----

const (
	MessageNodeBirth   = "NBIRTH"
	MessageDeviceBirth = "DBIRTH"
)

// ---- SEQUENCE NUMBERS ----

// Birth messages always open a session with sequence 0 then 1.
const (
	SeqNodeBirth   = 0
	SeqDeviceBirth = 1
)

// ---- METRIC SCHEMA ----

// MetricType is a declared Sparkplug metric type.
type MetricType string

const (
	TypeFloat MetricType = "Float"
	TypeInt16 MetricType = "Int16"
)

// MetricDef declares one metric in the device birth schema.
type MetricDef struct {
	Name string
	Type MetricType
}

// RebirthMetric is the fixed node control metric announced at node birth.
const RebirthMetric = "NodeControl/Rebirth"

// DeviceMetrics is the full metric schema of the DV10 device, in the order
// the data payload carries them.
var DeviceMetrics = []MetricDef{
	{Name: "HeatExchangerEfficiency", Type: TypeFloat},
	{Name: "RunMode", Type: TypeInt16},
	{Name: "OutdoorTemp", Type: TypeFloat},
	{Name: "SupplyAirTemp", Type: TypeFloat},
	{Name: "SupplyAirSetpointTemp", Type: TypeFloat},
	{Name: "ExhaustAirTemp", Type: TypeFloat},
	{Name: "ExtractAirTemp", Type: TypeFloat},
	{Name: "SupplyAirPressure", Type: TypeFloat},
	{Name: "ExtractAirPressure", Type: TypeFloat},
	{Name: "SupplyAirFlow", Type: TypeFloat},
	{Name: "ExtractAirFlow", Type: TypeFloat},
	{Name: "ExtraSupplyAirFlow", Type: TypeFloat},
	{Name: "ExtraExtractAirFlow", Type: TypeFloat},
	{Name: "SupplyFanRuntime", Type: TypeInt16},
	{Name: "ExtractFanRuntime", Type: TypeInt16},
}
