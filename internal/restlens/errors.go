package restlens

import (
	"fmt"
	"net/http"
)

// UploadError is returned when the service rejects a specification upload.
// Body is the service's response verbatim.
type UploadError struct {
	Filename   string
	StatusCode int
	Body       string
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("upload of %s failed (status %d): %s", e.Filename, e.StatusCode, e.Body)
}

// RequestError is an unexpected response, or no response at all, while
// reading evaluation results.
type RequestError struct {
	VersionID  string
	StatusCode int
	Body       string
	Err        error
}

func (e *RequestError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fetching violations for %s: %v", e.VersionID, e.Err)
	}
	return fmt.Sprintf("fetching violations for %s failed (status %d): %s", e.VersionID, e.StatusCode, e.Body)
}

func (e *RequestError) Unwrap() error { return e.Err }

// NotFound reports whether the service had no evaluation artifact yet.
func (e *RequestError) NotFound() bool {
	return e.Err == nil && e.StatusCode == http.StatusNotFound
}

type FeedbackError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *FeedbackError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("posting PR feedback: %v", e.Err)
	}
	return fmt.Sprintf("posting PR feedback failed (status %d): %s", e.StatusCode, e.Body)
}

func (e *FeedbackError) Unwrap() error { return e.Err }
