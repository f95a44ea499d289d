package llm

import "fmt"

// UpstreamError indicates the completion service call failed, timed out, or
// returned no usable content. It is not retried; the HTTP layer maps it to a
// 500 with the underlying message attached for diagnostics.
type UpstreamError struct {
	Message string
	Cause   error
}

func (e *UpstreamError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *UpstreamError) Unwrap() error {
	return e.Cause
}
