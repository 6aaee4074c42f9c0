package domain

import "errors"

// ErrCatalogUnavailable means the reference data is missing or corrupt.
// It is the only failure that aborts a planning request.
var ErrCatalogUnavailable = errors.New("catalog unavailable")
