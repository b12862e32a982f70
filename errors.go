package hcube

import "errors"

// Sentinel errors for the hcube package.
var (
	// ErrInvalidIndex is returned by ParseIndex for text that is not an
	// integer in 0..65535.
	ErrInvalidIndex = errors.New("hcube: invalid piece index")
)
