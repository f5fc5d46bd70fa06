// internal/sensor/reader_test.go
package sensor

import (
	"errors"
	"math"
	"testing"
)

// ---- fake field-bus client ----

type fakeClient struct {
	values   map[uint16]uint16
	failing  map[uint16]bool
	writes   []writeCall
	writeErr error
	reads    int
}

type writeCall struct {
	addr  uint16
	value uint16
}

func (f *fakeClient) ReadInputRegister(addr uint16) (uint16, error) {
	f.reads++
	if f.failing[addr] {
		return 0, errors.New("fake: exception 11")
	}
	return f.values[addr], nil
}

func (f *fakeClient) WriteRegister(addr, value uint16) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	f.writes = append(f.writes, writeCall{addr: addr, value: value})
	return nil
}

// ---- tests ----

func TestReadScaled_DividesByTen(t *testing.T) {
	fake := &fakeClient{values: map[uint16]uint16{RegOutdoorTemp: 215}}
	r, err := NewReader(fake)
	if err != nil {
		t.Fatalf("NewReader err=%v", err)
	}

	v, ok := r.ReadScaled(RegOutdoorTemp)
	if !ok {
		t.Fatalf("expected ok read")
	}
	if v != 21.5 {
		t.Fatalf("expected 21.5, got %v", v)
	}
}

func TestReadScaled_FailureYieldsNaN(t *testing.T) {
	fake := &fakeClient{failing: map[uint16]bool{RegOutdoorTemp: true}}
	r, _ := NewReader(fake)

	v, ok := r.ReadScaled(RegOutdoorTemp)
	if ok {
		t.Fatalf("expected failed read")
	}
	if !math.IsNaN(v) {
		t.Fatalf("expected NaN, got %v", v)
	}
	if fake.reads != 1 {
		t.Fatalf("expected exactly one transport attempt, got %d", fake.reads)
	}
}

func TestReadRaw_FailureYieldsZero(t *testing.T) {
	fake := &fakeClient{failing: map[uint16]bool{RegRunMode: true}}
	r, _ := NewReader(fake)

	v, ok := r.ReadRaw(RegRunMode)
	if ok {
		t.Fatalf("expected failed read")
	}
	if v != 0 {
		t.Fatalf("expected 0, got %d", v)
	}
}

func TestWriteMode_ReportsOutcome(t *testing.T) {
	fake := &fakeClient{}
	r, _ := NewReader(fake)

	if !r.WriteMode(RegFanMode, 2) {
		t.Fatalf("expected write success")
	}
	if len(fake.writes) != 1 || fake.writes[0].addr != RegFanMode || fake.writes[0].value != 2 {
		t.Fatalf("unexpected write calls: %+v", fake.writes)
	}

	fake.writeErr = errors.New("fake: exception 2")
	if r.WriteMode(RegFanMode, 1) {
		t.Fatalf("expected write failure")
	}
}

func TestNewReader_RequiresClient(t *testing.T) {
	if _, err := NewReader(nil); err == nil {
		t.Fatalf("expected error for nil client")
	}
}
