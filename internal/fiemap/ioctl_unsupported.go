//go:build !linux

package fiemap

import (
	"os"

	"github.com/pkg/errors"
)

// Only Linux exposes FS_IOC_FIEMAP. Other platforms still compile so the
// querier can be exercised against simulated sources, but mapping a real
// file fails up front.
type ioctlSource struct {
	f *os.File
}

func newIoctlSource(f *os.File) *ioctlSource {
	return &ioctlSource{f: f}
}

func (s *ioctlSource) QueryExtents(start, length uint64, maxExtents uint32, sync bool) ([]Extent, error) {
	return nil, errors.Errorf("fiemap is not supported on this platform (%s)", s.f.Name())
}
