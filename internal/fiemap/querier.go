package fiemap

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// DefaultMaxExtentsPerChunk is the extent capacity of one query buffer.
// Large fragmented files simply take more round trips.
const DefaultMaxExtentsPerChunk = 1024

// ExtentSource answers one bounded extent-map query. A source may report
// only part of the requested range per call (XFS stops at allocation-group
// boundaries), so completion must be decided from the last-extent flag or
// an empty response, never from the returned count alone.
type ExtentSource interface {
	// QueryExtents maps up to maxExtents extents in [start, start+length).
	// An empty slice with a nil error means nothing is mapped there. On
	// error the slice must be ignored.
	QueryExtents(start, length uint64, maxExtents uint32, sync bool) ([]Extent, error)
}

// Querier retrieves complete extent maps for files. The zero value is not
// usable; construct with NewQuerier.
type Querier struct {
	maxExtentsPerChunk uint32
	syncBeforeMap      bool
}

// NewQuerier returns a Querier that requests up to maxExtentsPerChunk
// extents per ioctl round trip (0 selects the default) and, when syncFirst
// is set, asks the filesystem to flush pending writes before reporting.
func NewQuerier(maxExtentsPerChunk uint32, syncFirst bool) *Querier {
	if maxExtentsPerChunk == 0 {
		maxExtentsPerChunk = DefaultMaxExtentsPerChunk
	}
	return &Querier{
		maxExtentsPerChunk: maxExtentsPerChunk,
		syncBeforeMap:      syncFirst,
	}
}

// MapFile returns the complete, ordered extent sequence for an open file.
// A zero-size file yields an empty sequence and no error.
func (q *Querier) MapFile(f *os.File) (*FileMap, error) {
	info, err := f.Stat()
	if err != nil {
		return nil, errors.Wrapf(ErrSizeLookup, "%s: %v", f.Name(), err)
	}
	return q.MapSource(newIoctlSource(f), uint64(info.Size()))
}

// MapSource drives an ExtentSource until the file's extents are exhausted
// and returns the accumulated sequence. Any query failure abandons the
// whole retrieval: no partial sequence is ever returned, to avoid silently
// misreporting a file's layout.
func (q *Querier) MapSource(src ExtentSource, size uint64) (*FileMap, error) {
	started := time.Now()

	var acc accumulator
	chunks := 0

	for start := uint64(0); start < size; {
		chunkStarted := time.Now()
		chunk, err := src.QueryExtents(start, size, q.maxExtentsPerChunk, q.syncBeforeMap)
		if err != nil {
			acc.release()
			return nil, errors.Wrapf(ErrQuery, "chunk %d at offset %d: %v", chunks, start, err)
		}
		chunks++

		logrus.WithFields(logrus.Fields{
			"chunk":   chunks,
			"start":   start,
			"extents": len(chunk),
			"elapsed": time.Since(chunkStarted),
		}).Debug("fiemap chunk retrieved")

		// Nothing mapped in the remainder, e.g. a trailing hole.
		if len(chunk) == 0 {
			break
		}

		acc.append(chunk)

		last := acc.last()
		if last.IsLast() {
			break
		}
		next := last.End()
		if next <= start {
			acc.release()
			return nil, errors.Wrapf(ErrCursorStalled, "offset %d after chunk %d", start, chunks)
		}
		// The filesystem reported partial coverage; resume after the last
		// extent it gave us.
		start = next
	}

	fm := &FileMap{
		Extents:  acc.finalize(),
		FileSize: size,
		Chunks:   chunks,
		Elapsed:  time.Since(started),
	}

	logrus.WithFields(logrus.Fields{
		"extents": len(fm.Extents),
		"chunks":  fm.Chunks,
		"elapsed": fm.Elapsed,
	}).Debug("fiemap retrieval done")

	return fm, nil
}
