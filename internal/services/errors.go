package services

import "errors"

// Planning failure categories reported to the orchestrator. Callers
// match them with errors.Is; the underlying cause is carried in the
// wrapped message. None of these are retried internally.
var (
	// An input location could not be resolved. The whole planning run
	// fails; no partial schedule is returned.
	ErrGeocodingUnavailable = errors.New("geocoding unavailable")
	// A leg's distance or duration could not be retrieved.
	ErrRoutingUnavailable = errors.New("routing unavailable")
	// A malformed or temporally inconsistent stop sequence was passed
	// to synthesis.
	ErrInvalidInput = errors.New("invalid input")
	// A trip's own attributes fail validation.
	ErrValidation = errors.New("validation failed")
)
