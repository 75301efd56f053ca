package model

import "fmt"

// Average is either a measured value or OutOfMemory, the marker for a run
// that produced no readings. OutOfMemory absorbs addition and ranks after
// every measured value.
type Average struct {
	value float64
	oom   bool
}

// Measured wraps a finite average.
func Measured(v float64) Average { return Average{value: v} }

// OutOfMemory returns the marker for a missing average.
func OutOfMemory() Average { return Average{oom: true} }

// IsOOM reports whether a is OutOfMemory.
func (a Average) IsOOM() bool { return a.oom }

// Value returns the measured value and false for OutOfMemory.
func (a Average) Value() (float64, bool) {
	if a.oom {
		return 0, false
	}
	return a.value, true
}

// Add sums two averages. Either side being OutOfMemory yields OutOfMemory.
func (a Average) Add(b Average) Average {
	if a.oom || b.oom {
		return OutOfMemory()
	}
	return Measured(a.value + b.value)
}

// Less orders measured values ascending with OutOfMemory last.
// Two OutOfMemory values are equal.
func (a Average) Less(b Average) bool {
	switch {
	case a.oom:
		return false
	case b.oom:
		return true
	default:
		return a.value < b.value
	}
}

func (a Average) String() string {
	if a.oom {
		return "OOM"
	}
	return fmt.Sprintf("%g", a.value)
}
