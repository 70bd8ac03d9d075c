package timex

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type holder struct {
	TTL Duration `json:"ttl" yaml:"ttl"`
}

func TestDuration_JSON(t *testing.T) {
	var h holder
	require.NoError(t, json.Unmarshal([]byte(`{"ttl":"1m30s"}`), &h))
	assert.Equal(t, 90*time.Second, h.TTL.Duration)

	require.NoError(t, json.Unmarshal([]byte(`{"ttl":1000000000}`), &h))
	assert.Equal(t, time.Second, h.TTL.Duration)

	assert.Error(t, json.Unmarshal([]byte(`{"ttl":"soon"}`), &h))
	assert.Error(t, json.Unmarshal([]byte(`{"ttl":true}`), &h))

	out, err := json.Marshal(holder{TTL: Duration{5 * time.Minute}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"ttl":"5m0s"}`, string(out))
}

func TestDuration_YAML(t *testing.T) {
	var h holder
	require.NoError(t, yaml.Unmarshal([]byte("ttl: 15s\n"), &h))
	assert.Equal(t, 15*time.Second, h.TTL.Duration)

	require.NoError(t, yaml.Unmarshal([]byte("ttl: 2000\n"), &h))
	assert.Equal(t, 2*time.Microsecond, h.TTL.Duration)

	assert.Error(t, yaml.Unmarshal([]byte("ttl: later\n"), &h))
}
