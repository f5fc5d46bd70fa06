// internal/sparkplug/payload.go
package sparkplug

import (
	"encoding/json"
	"time"
)

// Birth payload encoding. Pure functions: no IO, no side effects.

type birthMetric struct {
	Name  string     `json:"name"`
	Type  MetricType `json:"type,omitempty"`
	Value *bool      `json:"value,omitempty"`
}

type birthPayload struct {
	Timestamp int64         `json:"timestamp"`
	Seq       int           `json:"seq"`
	Metrics   []birthMetric `json:"metrics"`
}

// NodeBirthTopic builds the node announcement topic.
func NodeBirthTopic(group, node string) string {
	return Namespace + "/" + group + "/" + MessageNodeBirth + "/" + node
}

// DeviceBirthTopic builds the device announcement topic.
func DeviceBirthTopic(group, node, device string) string {
	return Namespace + "/" + group + "/" + MessageDeviceBirth + "/" + node + "/" + device
}

// NodeBirthPayload encodes the node birth: sequence 0 and the single
// rebirth control metric, initially false.
func NodeBirthPayload(ts time.Time) []byte {
	off := false
	p := birthPayload{
		Timestamp: ts.UnixMilli(),
		Seq:       SeqNodeBirth,
		Metrics: []birthMetric{
			{Name: RebirthMetric, Value: &off},
		},
	}
	b, _ := json.Marshal(p)
	return b
}

// DeviceBirthPayload encodes the device birth: sequence 1 and the full
// metric schema from DeviceMetrics.
func DeviceBirthPayload(ts time.Time) []byte {
	ms := make([]birthMetric, 0, len(DeviceMetrics))
	for _, m := range DeviceMetrics {
		ms = append(ms, birthMetric{Name: m.Name, Type: m.Type})
	}
	p := birthPayload{
		Timestamp: ts.UnixMilli(),
		Seq:       SeqDeviceBirth,
		Metrics:   ms,
	}
	b, _ := json.Marshal(p)
	return b
}
