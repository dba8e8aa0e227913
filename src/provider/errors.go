package provider

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUsage   = errors.New("usage error")
	ErrNetwork = errors.New("network error")
	ErrParse   = errors.New("response parse error")
	ErrOutput  = errors.New("output error")
)

// Exit codes returned by the CLI for each error class.
const (
	ExitOK      = 0
	ExitUsage   = 1
	ExitNetwork = 2
	ExitParse   = 3
	ExitOutput  = 4
)

// HTTPError is returned when the CI server answers with a non-2xx status.
type HTTPError struct {
	StatusCode int
	URL        string
	Body       []byte
}

func (e *HTTPError) Error() string {
	msg := fmt.Sprintf("HTTP %d from %s", e.StatusCode, e.URL)
	if len(e.Body) > 0 {
		body := strings.TrimSpace(string(e.Body))
		if len(body) > 200 {
			body = body[:200] + "..."
		}
		msg += ": " + body
	}
	return msg
}

// UserError wraps errors with user-friendly messages
type UserError struct {
	Message string
	Hint    string
	Err     error
}

func (e *UserError) Error() string {
	msg := e.Message
	if e.Hint != "" {
		msg += "\n\nHint: " + e.Hint
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\n\nDetails: %v", e.Err)
	}
	return msg
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// WrapError converts a fetch failure for jobName into a user-friendly error.
// Errors other than network failures are returned unchanged.
func WrapError(err error, jobName string) error {
	if err == nil {
		return nil
	}

	if !errors.Is(err, ErrNetwork) {
		return err
	}

	var userErr *UserError
	if errors.As(err, &userErr) {
		return err
	}

	code := "connection failed"
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		code = fmt.Sprintf("%d", httpErr.StatusCode)
	}

	return &UserError{
		Message: "URL Error: " + code,
		Hint:    "job name [" + jobName + "] probably wrong",
		Err:     err,
	}
}

// ExitCode maps an error to the process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrUsage):
		return ExitUsage
	case errors.Is(err, ErrNetwork):
		return ExitNetwork
	case errors.Is(err, ErrParse):
		return ExitParse
	default:
		return ExitOutput
	}
}
