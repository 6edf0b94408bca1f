package search

import "errors"

// Machine-readable validation codes surfaced to clients with HTTP 422.
const (
	CodeCoordinatesIncomplete = "COORDINATES_INCOMPLETE"
	CodeInvalidRadius         = "INVALID_RADIUS"
	CodeInvalidBounds         = "INVALID_BOUNDS"
	CodeInvalidRating         = "INVALID_RATING"
	CodeInvalidHoursFilter    = "INVALID_HOURS_FILTER"
	CodeInvalidPage           = "INVALID_PAGE"
	CodeInvalidPageSize       = "INVALID_PAGE_SIZE"
)

// ErrDataSource means the catalog fetch failed; the request gets a
// generic 5xx with no partial results and no internal detail.
var ErrDataSource = errors.New("data source unavailable")

type ValidationError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return e.Code + ": " + e.Message
}

func invalid(code, message string) *ValidationError {
	return &ValidationError{Code: code, Message: message}
}
