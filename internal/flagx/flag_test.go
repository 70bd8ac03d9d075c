package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "separate value",
			args:    []string{"-d", "postgres://x", "-a", ":50051"},
			allowed: []string{"-d"},
			want:    []string{"-d", "postgres://x"},
		},
		{
			name:    "equals form",
			args:    []string{"-h=:8080", "-a", ":50051"},
			allowed: []string{"-h"},
			want:    []string{"-h=:8080"},
		},
		{
			name:    "order preserved across forms",
			args:    []string{"-a=:1", "-x", "1", "-a", ":2"},
			allowed: []string{"-a"},
			want:    []string{"-a=:1", "-a", ":2"},
		},
		{
			name:    "unknown flags and positionals dropped",
			args:    []string{"-x", "1", "--y=2", "positional"},
			allowed: []string{"-a"},
			want:    []string{},
		},
		{
			name:    "trailing flag without value",
			args:    []string{"-a"},
			allowed: []string{"-a"},
			want:    []string{"-a"},
		},
		{
			name:    "next token is a flag, not a value",
			args:    []string{"-a", "-b"},
			allowed: []string{"-a"},
			want:    []string{"-a"},
		},
		{
			name:    "empty input",
			args:    nil,
			allowed: []string{"-a"},
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowed))
		})
	}
}

func TestConfigFileFlag(t *testing.T) {
	assert.Equal(t, "server.yaml", ConfigFileFlag([]string{"-a", ":1", "-c", "server.yaml"}))
	assert.Equal(t, "server.json", ConfigFileFlag([]string{"-config=server.json"}))
	assert.Equal(t, "", ConfigFileFlag([]string{"-a", ":1"}))
}
