package common

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMillisRoundTrip(t *testing.T) {
	m := FromUnixMilli(1724800000123)

	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, "1724800000123", string(data))

	var back Millis
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, int64(1724800000123), back.UnixMilli())
}

func TestMillisAcceptsFloat(t *testing.T) {
	var m Millis
	require.NoError(t, json.Unmarshal([]byte("1724800000123.0"), &m))
	assert.Equal(t, int64(1724800000123), m.UnixMilli())
}

func TestMillisRejectsGarbage(t *testing.T) {
	var m Millis
	assert.Error(t, json.Unmarshal([]byte(`"yesterday"`), &m))
}

func TestMillisOrdering(t *testing.T) {
	earlier := FromUnixMilli(100)
	later := FromUnixMilli(200)
	assert.True(t, later.After(earlier))
	assert.True(t, earlier.Before(later))
	assert.False(t, earlier.After(earlier))
}
