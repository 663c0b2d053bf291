package interfaces

import (
	"os"

	"github.com/deploymenttheory/go-fiemap/internal/fiemap"
)

// FileMapper produces the complete, ordered extent sequence for an open
// file. Implementations must never return a partial sequence: a failure
// mid-retrieval abandons the whole file rather than misreporting its
// layout.
type FileMapper interface {
	// MapFile returns every extent backing the file, in increasing logical
	// order. A zero-size file yields an empty sequence and no error.
	MapFile(f *os.File) (*fiemap.FileMap, error)
}

// FragmentationAnalyzer derives layout metrics from a mapped file.
type FragmentationAnalyzer interface {
	// Analyze computes fragmentation metrics for the given extent map.
	Analyze(fm *fiemap.FileMap) (*FragmentationReport, error)
}

// FragmentationReport contains information about how a file's data is
// spread across the device.
type FragmentationReport struct {
	// The total number of extents backing the file
	ExtentCount int

	// The average extent length in bytes
	AverageExtentSize float64

	// The largest extent length in bytes
	LargestExtent uint64

	// The smallest extent length in bytes
	SmallestExtent uint64

	// The fragmentation level as a percentage (0-100). Zero means the
	// file is a single contiguous run.
	FragmentationLevel float64

	// The number of physically contiguous extent pairs
	ContiguousPairs int

	// The number of logical bytes not backed by any extent (holes)
	SparseBytes uint64
}
