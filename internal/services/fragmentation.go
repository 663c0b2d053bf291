// Package services provides analysis layered on top of retrieved extent
// maps.
package services

import (
	"fmt"

	"github.com/deploymenttheory/go-fiemap/internal/fiemap"
	"github.com/deploymenttheory/go-fiemap/internal/interfaces"
)

// FragmentationService derives layout metrics from extent maps.
type FragmentationService struct{}

// NewFragmentationService creates a new fragmentation analyzer.
func NewFragmentationService() *FragmentationService {
	return &FragmentationService{}
}

// Analyze computes fragmentation metrics for the given extent map.
// An empty map (zero-size or fully sparse file) yields a zeroed report.
func (s *FragmentationService) Analyze(fm *fiemap.FileMap) (*interfaces.FragmentationReport, error) {
	if fm == nil {
		return nil, fmt.Errorf("no extent map to analyze")
	}

	report := &interfaces.FragmentationReport{
		ExtentCount: len(fm.Extents),
	}
	if len(fm.Extents) == 0 {
		report.SparseBytes = fm.FileSize
		return report, nil
	}

	var totalLength uint64
	smallest := fm.Extents[0].Length
	largest := fm.Extents[0].Length

	for i, e := range fm.Extents {
		totalLength += e.Length
		if e.Length < smallest {
			smallest = e.Length
		}
		if e.Length > largest {
			largest = e.Length
		}
		if i > 0 {
			prev := fm.Extents[i-1]
			if prev.Physical+prev.Length == e.Physical {
				report.ContiguousPairs++
			}
			if e.Logical > prev.End() {
				report.SparseBytes += e.Logical - prev.End()
			}
		}
	}

	// Leading hole before the first extent and trailing hole after the
	// last one both count as sparse.
	report.SparseBytes += fm.Extents[0].Logical
	if end := fm.Extents[len(fm.Extents)-1].End(); fm.FileSize > end {
		report.SparseBytes += fm.FileSize - end
	}

	report.AverageExtentSize = float64(totalLength) / float64(len(fm.Extents))
	report.LargestExtent = largest
	report.SmallestExtent = smallest

	// A single extent is unfragmented; otherwise score by how many extent
	// boundaries are physical discontinuities.
	if len(fm.Extents) > 1 {
		breaks := len(fm.Extents) - 1 - report.ContiguousPairs
		report.FragmentationLevel = float64(breaks) / float64(len(fm.Extents)-1) * 100.0
	}

	return report, nil
}
