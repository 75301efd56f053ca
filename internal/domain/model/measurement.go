// Package model contains the benchmark records passed between layers.
package model

import (
	"fmt"
	"strings"
)

// Unit is the time unit a processing-time line was reported in.
type Unit string

// Supported units.
const (
	UnitMilliseconds Unit = "ms"
	UnitSeconds      Unit = "s"
)

const millisecondsPerSecond = 1000

// ParseUnit maps a unit token from the log to a Unit.
// "milliseconds" is accepted as a long form of "ms".
func ParseUnit(token string) (Unit, error) {
	switch strings.TrimSpace(token) {
	case "ms", "milliseconds":
		return UnitMilliseconds, nil
	case "s":
		return UnitSeconds, nil
	default:
		return "", fmt.Errorf("unknown time unit %q", token)
	}
}

// Measurement is one processing-time reading. It is immutable.
type Measurement struct {
	value float64
	unit  Unit
}

// NewMeasurement creates a Measurement.
func NewMeasurement(value float64, unit Unit) Measurement {
	return Measurement{value: value, unit: unit}
}

// Value returns the value as reported.
func (m Measurement) Value() float64 { return m.value }

// Unit returns the reported unit.
func (m Measurement) Unit() Unit { return m.unit }

// Milliseconds returns the value normalized to milliseconds.
func (m Measurement) Milliseconds() float64 {
	if m.unit == UnitSeconds {
		return m.value * millisecondsPerSecond
	}
	return m.value
}

func (m Measurement) String() string {
	return fmt.Sprintf("%g %s", m.value, m.unit)
}
