package rickmorty

import (
	"errors"
	"fmt"
	"net/http"
)

// HTTPError is returned for non-2xx responses and for requests that never
// got a response. StatusCode is 0 in the latter case and Err holds the
// underlying network error.
type HTTPError struct {
	StatusCode int
	StatusText string
	URL        string
	Body       string
	Err        error
}

func (e *HTTPError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("http failure response for %s: %d %s: %v", e.URL, e.StatusCode, e.StatusText, e.Err)
	}
	return fmt.Sprintf("http failure response for %s: %d %s", e.URL, e.StatusCode, e.StatusText)
}

func (e *HTTPError) Unwrap() error { return e.Err }

// Network reports whether the request failed before a response arrived.
func (e *HTTPError) Network() bool { return e.Err != nil }

// IsNotFound reports whether err is a 404 from the API.
func IsNotFound(err error) bool {
	var httpErr *HTTPError
	return errors.As(err, &httpErr) && httpErr.StatusCode == http.StatusNotFound
}
