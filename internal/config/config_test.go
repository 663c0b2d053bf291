package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:   "defaults",
			config: Config{MaxExtentsPerChunk: 1024, OutputFormat: "table"},
		},
		{
			name:   "json output",
			config: Config{MaxExtentsPerChunk: 1, OutputFormat: "json"},
		},
		{
			name:    "zero chunk capacity",
			config:  Config{OutputFormat: "table"},
			wantErr: true,
		},
		{
			name:    "bad output format",
			config:  Config{MaxExtentsPerChunk: 1024, OutputFormat: "csv"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
