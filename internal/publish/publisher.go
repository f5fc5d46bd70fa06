// internal/publish/publisher.go
package publish

import (
	"encoding/json"
	"math"
	"strconv"

	log "github.com/sirupsen/logrus"

	"github.com/Amir804-cell/iot-monitoring-V2/internal/metrics"
	"github.com/Amir804-cell/iot-monitoring-V2/internal/sensor"
	"github.com/Amir804-cell/iot-monitoring-V2/internal/transport"
)

// dataTopicPrefix is the fixed topic scheme for data payloads.
const dataTopicPrefix = "sensors/"

// measurement is a float that serializes NaN as null.
// NaN marks a failed read; downstream must see "absent", never zero.
type measurement float64

func (m measurement) MarshalJSON() ([]byte, error) {
	f := float64(m)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatFloat(f, 'g', -1, 64)), nil
}

type dataPayload struct {
	DeviceID  string `json:"device_id"`
	Timestamp int64  `json:"timestamp"`

	HeatExchangerEfficiency measurement `json:"heat_exchanger_efficiency"`
	RunMode                 int         `json:"run_mode"`

	OutdoorTemp           measurement `json:"outdoor_temp"`
	SupplyAirTemp         measurement `json:"supply_air_temp"`
	SupplyAirSetpointTemp measurement `json:"supply_air_setpoint_temp"`
	ExhaustAirTemp        measurement `json:"exhaust_air_temp"`
	ExtractAirTemp        measurement `json:"extract_air_temp"`

	SupplyAirPressure  measurement `json:"supply_air_pressure"`
	ExtractAirPressure measurement `json:"extract_air_pressure"`

	SupplyAirFlow       measurement `json:"supply_air_flow"`
	ExtractAirFlow      measurement `json:"extract_air_flow"`
	ExtraSupplyAirFlow  measurement `json:"extra_supply_air_flow"`
	ExtraExtractAirFlow measurement `json:"extra_extract_air_flow"`

	SupplyAirFanRuntime  int `json:"supply_air_fan_runtime"`
	ExtractAirFanRuntime int `json:"extract_air_fan_runtime"`
}

// Publisher serializes snapshots and hands them to the transport.
type Publisher struct {
	tr       transport.Transport
	deviceID string
	topic    string
}

// New creates a publisher. Data goes out on sensors/<node>.
func New(tr transport.Transport, deviceID, node string) *Publisher {
	return &Publisher{
		tr:       tr,
		deviceID: deviceID,
		topic:    dataTopicPrefix + node,
	}
}

// Publish sends one snapshot. Silent no-op when the snapshot is invalid or
// the session is down; the next scheduled cycle tries again. No buffering.
func (p *Publisher) Publish(snap sensor.Snapshot) bool {
	if !snap.DataValid || !p.tr.IsConnected() {
		return false
	}

	payload, err := json.Marshal(encode(snap, p.deviceID))
	if err != nil {
		log.WithField("error", err).Error("payload encode failed")
		return false
	}

	if !p.tr.Publish(p.topic, payload) {
		metrics.PublishFailures.Inc()
		log.WithField("topic", p.topic).Warn("data publish failed")
		return false
	}

	metrics.PublishesTotal.Inc()
	log.WithFields(log.Fields{"topic": p.topic, "bytes": len(payload)}).Debug("data published")
	return true
}

func encode(snap sensor.Snapshot, deviceID string) dataPayload {
	return dataPayload{
		DeviceID:  deviceID,
		Timestamp: snap.Timestamp.UnixMilli(),

		HeatExchangerEfficiency: measurement(snap.HeatExchangerEfficiency),
		RunMode:                 int(snap.RunMode),

		OutdoorTemp:           measurement(snap.OutdoorTemp),
		SupplyAirTemp:         measurement(snap.SupplyAirTemp),
		SupplyAirSetpointTemp: measurement(snap.SupplyAirSetpointTemp),
		ExhaustAirTemp:        measurement(snap.ExhaustAirTemp),
		ExtractAirTemp:        measurement(snap.ExtractAirTemp),

		SupplyAirPressure:  measurement(snap.SupplyAirPressure),
		ExtractAirPressure: measurement(snap.ExtractAirPressure),

		SupplyAirFlow:       measurement(snap.SupplyAirFlow),
		ExtractAirFlow:      measurement(snap.ExtractAirFlow),
		ExtraSupplyAirFlow:  measurement(snap.ExtraSupplyAirFlow),
		ExtraExtractAirFlow: measurement(snap.ExtraExtractAirFlow),

		SupplyAirFanRuntime:  int(snap.SupplyFanRuntime),
		ExtractAirFanRuntime: int(snap.ExtractFanRuntime),
	}
}
