package webhook

import "fmt"

// ValidationError reports a message or URL that failed local checks
// before any network activity.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "webhook: invalid request: " + e.Reason
}

// EncodingError reports a payload that could not be serialized.
type EncodingError struct {
	Err error
}

func (e *EncodingError) Error() string {
	return "webhook: encode payload: " + e.Err.Error()
}

func (e *EncodingError) Unwrap() error { return e.Err }

// TransportError reports a request that never produced an HTTP response,
// such as connection failures and timeouts.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return "webhook: request failed: " + e.Err.Error()
}

func (e *TransportError) Unwrap() error { return e.Err }

// StatusError reports a non-2xx response from the webhook endpoint.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("webhook: unexpected status %d", e.Code)
}
