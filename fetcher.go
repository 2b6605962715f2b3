package docubot

import (
	"context"
	"fmt"
)

// Fetcher retrieves raw HTML from URLs.
type Fetcher interface {
	// Fetch performs one HTTP GET and returns the response body.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases client resources.
	Close() error
}

// FetchErrorKind distinguishes transport failures from HTTP status failures.
type FetchErrorKind string

// Fetch error kinds.
const (
	// FetchErrNetwork covers DNS, connection, and timeout failures.
	FetchErrNetwork FetchErrorKind = "network"
	// FetchErrStatus covers non-2xx HTTP responses.
	FetchErrStatus FetchErrorKind = "status"
)

// FetchError reports a failed fetch. StatusCode is set only for
// FetchErrStatus.
type FetchError struct {
	URL        string
	Kind       FetchErrorKind
	StatusCode int
	Err        error
}

// Error implements the error interface.
func (e *FetchError) Error() string {
	if e.Kind == FetchErrStatus {
		return fmt.Sprintf("HTTP %d for %s", e.StatusCode, e.URL)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

// Unwrap returns the underlying transport error, if any.
func (e *FetchError) Unwrap() error { return e.Err }
