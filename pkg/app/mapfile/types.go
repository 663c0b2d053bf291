package mapfile

import (
	"time"

	"github.com/deploymenttheory/go-fiemap/internal/interfaces"
)

// Request represents an extent-mapping request for one or more files
type Request struct {
	Paths []string

	// Retrieval options
	MaxExtentsPerChunk uint32
	SyncBeforeMap      bool

	// Output options
	ShowFlagNames bool

	// Analyze attaches a fragmentation report to each mapped file
	Analyze bool
}

// Response represents the results of mapping a batch of files
type Response struct {
	Files        []FileReport  `json:"files"`
	Failures     []FileFailure `json:"failures,omitempty"`
	TotalExtents int           `json:"total_extents"`
	TotalTime    time.Duration `json:"total_time"`
}

// FileReport represents the extent map of one file
type FileReport struct {
	ReportID    string                          `json:"report_id"`
	Path        string                          `json:"path"`
	FileSize    uint64                          `json:"file_size"`
	Extents     []ExtentResult                  `json:"extents"`
	ExtentCount int                             `json:"extent_count"`
	Chunks      int                             `json:"chunks"`
	MapTime     time.Duration                   `json:"map_time"`
	Analysis    *interfaces.FragmentationReport `json:"analysis,omitempty"`
}

// ExtentResult represents one mapped extent for display
type ExtentResult struct {
	Index     int      `json:"index"`
	Logical   uint64   `json:"logical"`
	Physical  uint64   `json:"physical"`
	Length    uint64   `json:"length"`
	Flags     uint32   `json:"flags"`
	FlagNames []string `json:"flag_names,omitempty"`
}

// FileFailure records a file that could not be mapped. Failures never
// abort the batch; the remaining files are still processed.
type FileFailure struct {
	Path  string `json:"path"`
	Code  string `json:"code"`
	Error string `json:"error"`
}
