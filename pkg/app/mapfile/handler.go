package mapfile

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/deploymenttheory/go-fiemap/internal/fiemap"
	"github.com/deploymenttheory/go-fiemap/internal/interfaces"
	"github.com/deploymenttheory/go-fiemap/internal/services"
	"github.com/deploymenttheory/go-fiemap/pkg/app"
)

// Handler runs mapping requests. The mapper and analyzer are injectable so
// tests can substitute a simulated filesystem.
type Handler struct {
	Mapper   interfaces.FileMapper
	Analyzer interfaces.FragmentationAnalyzer
}

// NewHandler builds a Handler wired to the real FS_IOC_FIEMAP interface
// with the request's retrieval options.
func NewHandler(req *Request) *Handler {
	return &Handler{
		Mapper:   fiemap.NewQuerier(req.MaxExtentsPerChunk, req.SyncBeforeMap),
		Analyzer: services.NewFragmentationService(),
	}
}

// Handle processes a mapping request
func Handle(ctx *app.Context, req *Request) (*Response, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return NewHandler(req).Handle(ctx, req)
}

// Handle maps every requested file. Per-file failures are recorded in the
// response and reported through the context; they never abort the batch.
func (h *Handler) Handle(ctx *app.Context, req *Request) (*Response, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	startTime := time.Now()
	response := &Response{}

	for _, path := range req.Paths {
		ctx.Log(fmt.Sprintf("Mapping extents of: %s", path))

		report, failure := h.mapOne(req, path)
		if failure != nil {
			ctx.Error(fmt.Sprintf("%s: %s", failure.Path, failure.Error))
			response.Failures = append(response.Failures, *failure)
			continue
		}

		response.Files = append(response.Files, *report)
		response.TotalExtents += report.ExtentCount
	}

	response.TotalTime = time.Since(startTime)
	return response, nil
}

// mapOne opens and maps a single file. All state is local to this call, so
// files in a batch never share anything beyond the handler's collaborators.
func (h *Handler) mapOne(req *Request, path string) (*FileReport, *FileFailure) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &FileFailure{Path: path, Code: app.ErrCodeOpenFailure, Error: err.Error()}
	}
	defer f.Close()

	fm, err := h.Mapper.MapFile(f)
	if err != nil {
		return nil, &FileFailure{Path: path, Code: failureCode(err), Error: err.Error()}
	}

	report := &FileReport{
		ReportID:    uuid.New().String(),
		Path:        path,
		FileSize:    fm.FileSize,
		Extents:     make([]ExtentResult, 0, len(fm.Extents)),
		ExtentCount: len(fm.Extents),
		Chunks:      fm.Chunks,
		MapTime:     fm.Elapsed,
	}

	for i, e := range fm.Extents {
		res := ExtentResult{
			Index:    i,
			Logical:  e.Logical,
			Physical: e.Physical,
			Length:   e.Length,
			Flags:    e.Flags,
		}
		if req.ShowFlagNames {
			res.FlagNames = e.FlagNames()
		}
		report.Extents = append(report.Extents, res)
	}

	if req.Analyze {
		analysis, err := h.Analyzer.Analyze(fm)
		if err != nil {
			return nil, &FileFailure{Path: path, Code: app.ErrCodeQueryFailure, Error: err.Error()}
		}
		report.Analysis = analysis
	}

	return report, nil
}

// failureCode maps retrieval errors onto application error codes.
func failureCode(err error) string {
	switch {
	case errors.Is(err, fiemap.ErrSizeLookup):
		return app.ErrCodeSizeLookup
	case errors.Is(err, fiemap.ErrQuery), errors.Is(err, fiemap.ErrCursorStalled):
		return app.ErrCodeQueryFailure
	default:
		return app.ErrCodeQueryFailure
	}
}
