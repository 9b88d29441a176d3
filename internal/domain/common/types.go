package common

import (
	"fmt"
	"strconv"
	"time"
)

// Millis is a timestamp that travels as Unix epoch milliseconds in JSON,
// the encoding the legacy store uses for every createdAt field.
type Millis struct {
	time.Time
}

// Now returns the current time as a Millis value.
func Now() Millis {
	return Millis{time.Now()}
}

// FromUnixMilli builds a Millis from an epoch-milliseconds value.
func FromUnixMilli(ms int64) Millis {
	return Millis{time.UnixMilli(ms)}
}

// MarshalJSON encodes the timestamp as a bare integer of epoch milliseconds.
func (m Millis) MarshalJSON() ([]byte, error) {
	return strconv.AppendInt(nil, m.UnixMilli(), 10), nil
}

// UnmarshalJSON accepts an integer (or fractional) epoch-milliseconds value.
func (m *Millis) UnmarshalJSON(data []byte) error {
	s := string(data)
	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		m.Time = time.UnixMilli(ms)
		return nil
	}
	// Date.now() is integral, but be lenient with floats from other writers.
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		m.Time = time.UnixMilli(int64(f))
		return nil
	}
	return fmt.Errorf("invalid millis timestamp: %s", s)
}

// After reports whether m is strictly later than other.
func (m Millis) After(other Millis) bool {
	return m.Time.After(other.Time)
}

// Before reports whether m is strictly earlier than other.
func (m Millis) Before(other Millis) bool {
	return m.Time.Before(other.Time)
}
