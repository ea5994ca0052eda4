package catalog

import "fmt"

// RemoteError reports a failed store API call. A zero StatusCode means the
// request never produced a response.
type RemoteError struct {
	Store      string
	Method     string
	URL        string
	StatusCode int
	Body       string
	Err        error
}

func (e *RemoteError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("store %s: %s %s: %v", e.Store, e.Method, e.URL, e.Err)
	}
	if e.Err != nil {
		return fmt.Sprintf("store %s: %s %s: status %d: %v", e.Store, e.Method, e.URL, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("store %s: %s %s: status %d: %s", e.Store, e.Method, e.URL, e.StatusCode, e.Body)
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}
