package data

import "errors"

// Shared sentinel errors for data-layer repositories.
var (
	// Job offer repository sentinels.
	ErrOfferNotFound = errors.New("job offer not found")

	// Application repository sentinels.
	ErrApplicationNotFound = errors.New("job application not found")
)
