package domain

import "errors"

// Sentinel errors for the trip cost calendar domain.
// Callers match these with errors.Is after wrapping with fmt.Errorf("%w: ...").
var (
	// ErrUnknownCity indicates a city identifier not present in the catalog.
	ErrUnknownCity = errors.New("unknown city")

	// ErrInvalidTripLength indicates a trip length outside the supported range.
	ErrInvalidTripLength = errors.New("invalid trip length")

	// ErrStoreUnavailable indicates the quote store could not be reached or
	// failed while reading. Fatal to the request that triggered it; the core
	// never retries.
	ErrStoreUnavailable = errors.New("quote store unavailable")
)
