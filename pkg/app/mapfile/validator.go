package mapfile

import (
	"github.com/deploymenttheory/go-fiemap/pkg/app"
)

// MaxExtentsPerChunkLimit bounds the per-query buffer so a single request
// cannot ask the kernel for an absurd allocation.
const MaxExtentsPerChunkLimit = 65536

// Validate validates a mapping request
func (r *Request) Validate() error {
	if len(r.Paths) == 0 {
		return app.NewError(app.ErrCodeInvalidInput, "at least one file path is required", nil)
	}
	for _, p := range r.Paths {
		if p == "" {
			return app.NewError(app.ErrCodeInvalidInput, "file paths must not be empty", nil)
		}
	}
	if r.MaxExtentsPerChunk == 0 {
		return app.NewError(app.ErrCodeInvalidInput, "max extents per chunk must be at least 1", nil)
	}
	if r.MaxExtentsPerChunk > MaxExtentsPerChunkLimit {
		return app.NewError(app.ErrCodeInvalidInput, "max extents per chunk is too large", nil)
	}
	return nil
}
