package rickmorty

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
)

// NetworkError reports a transport failure or a non-2xx response.
// StatusCode is zero when no response was received.
type NetworkError struct {
	Op         string
	URL        string
	StatusCode int
	Status     string
	Err        error
}

func (e *NetworkError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s %s: status %s", e.Op, e.URL, e.statusText())
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// Timeout reports whether the request gave up waiting for the server.
func (e *NetworkError) Timeout() bool {
	if e == nil || e.Err == nil {
		return false
	}
	if errors.Is(e.Err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(e.Err, &netErr) && netErr.Timeout()
}

// NotFound reports whether the server answered 404.
func (e *NetworkError) NotFound() bool {
	return e != nil && e.StatusCode == http.StatusNotFound
}

func (e *NetworkError) statusText() string {
	if s := strings.TrimSpace(e.Status); s != "" {
		return s
	}
	if text := http.StatusText(e.StatusCode); text != "" {
		return fmt.Sprintf("%d %s", e.StatusCode, text)
	}
	return fmt.Sprintf("%d", e.StatusCode)
}

// DecodeError reports a response body that does not match the expected schema.
type DecodeError struct {
	Op  string
	URL string
	Err error
}

func (e *DecodeError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s %s: decode response: %v", e.Op, e.URL, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// FailureKind classifies a fetch failure for display.
type FailureKind int

const (
	FailureOther FailureKind = iota
	FailureStatus
	FailureTimeout
	FailureCancelled
	FailureNetwork
	FailureDecode
)

// Failure is the display-oriented summary of an error. It never carries the
// raw error text.
type Failure struct {
	Kind       FailureKind
	StatusCode int
	Status     string
}

// Classify maps err onto a Failure.
func Classify(err error) Failure {
	var decErr *DecodeError
	if errors.As(err, &decErr) {
		return Failure{Kind: FailureDecode}
	}
	var netErr *NetworkError
	if errors.As(err, &netErr) {
		switch {
		case netErr.StatusCode > 0:
			return Failure{Kind: FailureStatus, StatusCode: netErr.StatusCode, Status: netErr.statusText()}
		case netErr.Timeout():
			return Failure{Kind: FailureTimeout}
		case errors.Is(netErr.Err, context.Canceled):
			return Failure{Kind: FailureCancelled}
		default:
			return Failure{Kind: FailureNetwork}
		}
	}
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return Failure{Kind: FailureTimeout}
	case errors.Is(err, context.Canceled):
		return Failure{Kind: FailureCancelled}
	}
	return Failure{Kind: FailureOther}
}

// Describe returns a short English summary of err suitable for logs and
// plain-text output. Unclassified errors are summarized as "unknown error";
// the raw text is never returned.
func Describe(err error) string {
	if err == nil {
		return ""
	}
	f := Classify(err)
	switch f.Kind {
	case FailureStatus:
		return "server returned " + f.Status
	case FailureTimeout:
		return "request timed out"
	case FailureCancelled:
		return "request cancelled"
	case FailureNetwork:
		return "network unavailable"
	case FailureDecode:
		return "unexpected response format"
	default:
		return "unknown error"
	}
}
