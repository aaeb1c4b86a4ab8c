package config

import (
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {

	// Test cases
	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{name: "all flags", args: []string{"cmd", "-a", "http://api:8000", "-d", "x.db", "-w", ":9090", "-l", "debug"}, expectPanic: false,
			expected: &Config{APIBaseURL: "http://api:8000", DatabasePath: "x.db", WebAddr: ":9090", LogLevel: "debug"}},
		{name: "foreign flags ignored", args: []string{"cmd", "-x", "1", "-a=http://api:8000"}, expectPanic: false,
			expected: &Config{APIBaseURL: "http://api:8000"}},
		{name: "missing value", args: []string{"cmd", "-a"}, expectPanic: true, expected: &Config{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldArgs := os.Args
			t.Cleanup(func() { os.Args = oldArgs })
			os.Args = tt.args

			config := &Config{}

			if !tt.expectPanic {
				require.NotPanics(t, func() { parseFlags(config) })
				assert.Empty(t, cmp.Diff(config, tt.expected))
			} else {
				require.Panics(t, func() { parseFlags(config) })
			}
		})
	}
}
