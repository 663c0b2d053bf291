package mapfile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		request *Request
		wantErr bool
	}{
		{
			name: "valid request",
			request: &Request{
				Paths:              []string{"/var/log/syslog"},
				MaxExtentsPerChunk: 1024,
			},
			wantErr: false,
		},
		{
			name: "multiple paths",
			request: &Request{
				Paths:              []string{"a", "b", "c"},
				MaxExtentsPerChunk: 1,
			},
			wantErr: false,
		},
		{
			name:    "no paths",
			request: &Request{MaxExtentsPerChunk: 1024},
			wantErr: true,
		},
		{
			name: "empty path",
			request: &Request{
				Paths:              []string{"a", ""},
				MaxExtentsPerChunk: 1024,
			},
			wantErr: true,
		},
		{
			name: "zero chunk capacity",
			request: &Request{
				Paths: []string{"a"},
			},
			wantErr: true,
		},
		{
			name: "chunk capacity over the limit",
			request: &Request{
				Paths:              []string{"a"},
				MaxExtentsPerChunk: MaxExtentsPerChunkLimit + 1,
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
