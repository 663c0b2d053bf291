// Package fiemap retrieves the physical extent layout of files through the
// Linux FS_IOC_FIEMAP ioctl. The retrieval is chunked: some filesystems
// (notably XFS) report extents for only one allocation group per call, so
// the querier drives the ioctl repeatedly and accumulates the per-chunk
// results into a single sequence covering the whole file.
package fiemap

import (
	"time"

	"github.com/deploymenttheory/go-fiemap/internal/types"
)

// Extent is one contiguous mapped region of a file. Values are produced by
// the kernel and never mutated after being accumulated.
type Extent struct {
	// Logical is the byte offset of the region within the file.
	Logical uint64
	// Physical is the byte offset of the region on the underlying device.
	Physical uint64
	// Length is the region length in bytes.
	Length uint64
	// Flags is the raw FiemapExtent* bit set, passed through uninterpreted
	// except for the last-extent bit.
	Flags uint32
}

// IsLast reports whether the kernel marked this extent as the final extent
// of its file.
func (e Extent) IsLast() bool {
	return e.Flags&types.FiemapExtentLast != 0
}

// End returns the logical byte offset one past the region.
func (e Extent) End() uint64 {
	return e.Logical + e.Length
}

// FlagNames renders the extent's flags as filefrag-style short names.
func (e Extent) FlagNames() []string {
	return types.ExtentFlagNames(e.Flags)
}

// FileMap is the complete extent sequence retrieved for one file, in
// increasing logical order as reported by the filesystem.
type FileMap struct {
	// Extents holds every mapped extent of the file.
	Extents []Extent
	// FileSize is the file's byte size at the time of mapping.
	FileSize uint64
	// Chunks is the number of ioctl round trips the retrieval needed.
	Chunks int
	// Elapsed is the wall-clock duration of the whole retrieval.
	Elapsed time.Duration
}

// MappedBytes returns the total byte length covered by the map's extents.
func (m *FileMap) MappedBytes() uint64 {
	var total uint64
	for _, e := range m.Extents {
		total += e.Length
	}
	return total
}
