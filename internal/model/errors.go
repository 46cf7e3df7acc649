package model

import "errors"

// Engine failure kinds. All are value-level failures: the caller is expected
// to present a partial or placeholder result rather than crash, and a
// failure is resolved only by correcting the input.
var (
	// ErrInvalidOutline indicates a malformed or missing custom outline.
	ErrInvalidOutline = errors.New("invalid outline")

	// ErrInvalidDimension indicates a non-positive or missing required
	// numeric parameter.
	ErrInvalidDimension = errors.New("invalid dimension")

	// ErrNoCatalogData indicates a material with no thickness records.
	ErrNoCatalogData = errors.New("no catalog data for material")
)
