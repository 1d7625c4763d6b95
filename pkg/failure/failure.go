// Package failure classifies errors from HTTP exchanges into a small
// set of kinds shared by the public IP fetchers and the record updater.
package failure

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
)

type Kind uint8

const (
	None Kind = iota
	Timeout
	Connect
	Transport
	BadStatus
	Malformed
)

func (k Kind) String() string {
	switch k {
	case None:
		return "none"
	case Timeout:
		return "timeout"
	case Connect:
		return "connection error"
	case Transport:
		return "transport error"
	case BadStatus:
		return "bad HTTP status"
	case Malformed:
		return "malformed response"
	default:
		return "unknown"
	}
}

var (
	ErrTimeout       = errors.New("timed out")
	ErrConnect       = errors.New("connection failed")
	ErrTransport     = errors.New("transport error")
	ErrBadHTTPStatus = errors.New("bad HTTP status")
	ErrMalformed     = errors.New("malformed response")
)

// WrapTransport wraps an error returned by an HTTP client
// Do call with the sentinel error matching its kind.
func WrapTransport(err error) error {
	if err == nil {
		return nil
	}
	var sentinel error
	switch transportKind(err) {
	case Timeout:
		sentinel = ErrTimeout
	case Connect:
		sentinel = ErrConnect
	default:
		sentinel = ErrTransport
	}
	return fmt.Errorf("%w: %w", sentinel, err)
}

// Classify returns the kind of the error given.
// Errors not wrapping any of this package sentinel errors
// are classified from their network characteristics, and
// default to Transport.
func Classify(err error) Kind {
	switch {
	case err == nil:
		return None
	case errors.Is(err, ErrBadHTTPStatus):
		return BadStatus
	case errors.Is(err, ErrMalformed):
		return Malformed
	case errors.Is(err, ErrTimeout):
		return Timeout
	case errors.Is(err, ErrConnect):
		return Connect
	case errors.Is(err, ErrTransport):
		return Transport
	default:
		return transportKind(err)
	}
}

func transportKind(err error) Kind {
	if errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, os.ErrDeadlineExceeded) {
		return Timeout
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return Timeout
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return Connect
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Op == "dial" {
		return Connect
	}

	return Transport
}
