package openrouter

import "fmt"

// ToolNotFoundError is returned when a function tool-choice references
// a tool that has not been added to the request.
type ToolNotFoundError struct {
	Name string
}

func (e *ToolNotFoundError) Error() string {
	return fmt.Sprintf("tool not found: %q", e.Name)
}

// BadRequestError carries the raw body of a 400 response. The API uses
// 400 to report malformed schemas and tool definitions, so the body is
// surfaced verbatim for the caller to inspect.
type BadRequestError struct {
	Body string
}

func (e *BadRequestError) Error() string {
	return fmt.Sprintf("bad request (status 400): %s", e.Body)
}

// StatusError reports a non-success status other than 400. Only the
// status code is carried; the body is logged for diagnostics.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status code: %d", e.StatusCode)
}

// DecodeError reports a failure to decode a response body.
type DecodeError struct {
	Cause error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding response: %v", e.Cause)
}

func (e *DecodeError) Unwrap() error {
	return e.Cause
}
