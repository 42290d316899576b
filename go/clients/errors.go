package clients

import "fmt"

// RequestError reports a failed HTTP request: either a transport error
// (Err set, StatusCode zero) or a non-success response (StatusCode set).
type RequestError struct {
	URL        string
	StatusCode int
	Body       []byte
	Err        error
}

func (e *RequestError) Error() string {
	if e.StatusCode != 0 {
		if len(e.Body) > 0 {
			return fmt.Sprintf("API returned status code: %d, response: %s", e.StatusCode, string(e.Body))
		}
		return fmt.Sprintf("API returned status code: %d", e.StatusCode)
	}
	return fmt.Sprintf("request to %s failed: %v", e.URL, e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}
