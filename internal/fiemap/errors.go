package fiemap

import "errors"

// Retrieval failures are always fatal for the file being mapped and never
// produce a partial extent sequence. Callers processing a batch treat them
// as per-file errors and move on.
var (
	// ErrSizeLookup means the file's byte size could not be determined.
	ErrSizeLookup = errors.New("cannot determine file size")

	// ErrQuery means the extent-query ioctl reported an OS-level error.
	// Any output present in the query buffer is discarded.
	ErrQuery = errors.New("fiemap query failed")

	// ErrCursorStalled means a query returned extents but the retrieval
	// cursor did not advance, which would loop forever. The kernel never
	// does this for a well-behaved filesystem, so it is treated as a
	// fatal inconsistency rather than retried.
	ErrCursorStalled = errors.New("fiemap cursor did not advance")
)
