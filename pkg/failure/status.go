package failure

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// StatusError is returned when an HTTP response status code
// is not in the 2xx range.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s: %d", ErrBadHTTPStatus, e.Code)
	}
	return fmt.Sprintf("%s: %d: %s", ErrBadHTTPStatus, e.Code, e.Body)
}

func (e *StatusError) Unwrap() error {
	return ErrBadHTTPStatus
}

// CheckStatus returns a *StatusError if the response status code is
// not successful, with the first bytes of the response body in it.
// It does not close the response body.
func CheckStatus(response *http.Response) (err error) {
	const minSuccess, maxSuccess = 200, 299
	if response.StatusCode >= minSuccess && response.StatusCode <= maxSuccess {
		return nil
	}
	return &StatusError{
		Code: response.StatusCode,
		Body: bodyToSingleLine(response.Body),
	}
}

// StatusCode returns the HTTP status code carried by err
// and true if err wraps a *StatusError.
func StatusCode(err error) (code int, ok bool) {
	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		return 0, false
	}
	return statusErr.Code, true
}

func bodyToSingleLine(body io.Reader) (line string) {
	if body == nil {
		return ""
	}
	const maxBytes = 256
	b, err := io.ReadAll(io.LimitReader(body, maxBytes))
	if err != nil {
		return ""
	}
	line = strings.ReplaceAll(string(b), "\n", "")
	line = strings.ReplaceAll(line, "\r", "")
	line = strings.ReplaceAll(line, "  ", " ")
	return strings.TrimSpace(line)
}
