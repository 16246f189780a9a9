package itunes

import "fmt"

// HTTPStatusError reports a catalog response outside the 2xx range.
type HTTPStatusError struct {
	URL        string
	StatusCode int
}

func (e *HTTPStatusError) Error() string {
	if e == nil {
		return "HTTP status error"
	}
	return fmt.Sprintf("catalog returned HTTP %d", e.StatusCode)
}
