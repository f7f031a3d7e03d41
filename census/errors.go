package census

import "errors"

// Errors returned by the OpenCensus view backend.
var (
	// ErrUnsupportedKind is returned by RegisterView when the descriptor
	// carries a metric kind with no OpenCensus aggregation mapping.
	ErrUnsupportedKind = errors.New("unsupported metric kind")

	// ErrInvalidTagKey is returned by RegisterView when a view column name
	// is rejected by OpenCensus (empty, too long, or non-printable ASCII).
	ErrInvalidTagKey = errors.New("invalid tag key")
)
