package twx

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidArgument matches every *ArgumentError.
	ErrInvalidArgument = errors.New("twx: invalid argument")
	// ErrParse matches every *ParseError.
	ErrParse = errors.New("twx: parse error")
)

// ArgumentError reports a missing or malformed caller-supplied parameter.
// It is always returned before any network call is made.
type ArgumentError struct {
	Param  string
	Reason string
}

func (e *ArgumentError) Error() string {
	reason := e.Reason
	if reason == "" {
		reason = "is a required parameter"
	}
	return fmt.Sprintf("twx: %s %s", e.Param, reason)
}

func (e *ArgumentError) Is(target error) bool { return target == ErrInvalidArgument }

func requireParam(name, value string) error {
	if value == "" {
		return &ArgumentError{Param: name}
	}
	return nil
}

// ParseError reports a payload that does not match the shape selected by
// its UserAction.
type ParseError struct {
	Action UserAction
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("twx: parse %s: %v", e.Action, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

func (e *ParseError) Is(target error) bool { return target == ErrParse }

// ErrorDetail is one entry of the API's {"errors":[...]} envelope.
type ErrorDetail struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// APIError is returned for non-2xx responses and for 2xx responses whose body
// is an error envelope.
type APIError struct {
	StatusCode int
	Body       string
	Errors     []ErrorDetail
}

func (e *APIError) Error() string {
	if len(e.Errors) > 0 {
		msgs := make([]string, 0, len(e.Errors))
		for _, d := range e.Errors {
			msgs = append(msgs, fmt.Sprintf("%d %s", d.Code, d.Message))
		}
		return fmt.Sprintf("twx: http %d: %s", e.StatusCode, strings.Join(msgs, "; "))
	}
	if e.Body == "" {
		return fmt.Sprintf("twx: http %d", e.StatusCode)
	}
	return fmt.Sprintf("twx: http %d: %s", e.StatusCode, e.Body)
}

// HTTPStatusCode returns the HTTP status code for API errors.
func HTTPStatusCode(err error) (int, bool) {
	var e *APIError
	if !errors.As(err, &e) {
		return 0, false
	}
	return e.StatusCode, true
}

// HTTPErrorBody returns the response body for API errors.
func HTTPErrorBody(err error) (string, bool) {
	var e *APIError
	if !errors.As(err, &e) {
		return "", false
	}
	return e.Body, true
}

// ErrorCodes returns the API error codes carried by err, if any.
func ErrorCodes(err error) []int {
	var e *APIError
	if !errors.As(err, &e) {
		return nil
	}
	codes := make([]int, 0, len(e.Errors))
	for _, d := range e.Errors {
		codes = append(codes, d.Code)
	}
	return codes
}
