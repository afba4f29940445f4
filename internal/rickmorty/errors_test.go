package rickmorty

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestClassifyAndDescribe(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		wantKind FailureKind
		want     string
	}{
		{
			name:     "not found",
			err:      &NetworkError{Op: "GET", URL: "u", StatusCode: http.StatusNotFound, Status: "404 Not Found"},
			wantKind: FailureStatus,
			want:     "server returned 404 Not Found",
		},
		{
			name:     "status without text",
			err:      &NetworkError{Op: "GET", URL: "u", StatusCode: http.StatusBadGateway},
			wantKind: FailureStatus,
			want:     "server returned 502 Bad Gateway",
		},
		{
			name:     "timeout",
			err:      &NetworkError{Op: "GET", URL: "u", Err: context.DeadlineExceeded},
			wantKind: FailureTimeout,
			want:     "request timed out",
		},
		{
			name:     "cancelled",
			err:      &NetworkError{Op: "GET", URL: "u", Err: fmt.Errorf("%w: boom", context.Canceled)},
			wantKind: FailureCancelled,
			want:     "request cancelled",
		},
		{
			name:     "dns",
			err:      &NetworkError{Op: "GET", URL: "u", Err: errors.New("no such host")},
			wantKind: FailureNetwork,
			want:     "network unavailable",
		},
		{
			name:     "decode wrapped",
			err:      fmt.Errorf("get item: %w", &DecodeError{Op: "GET", URL: "u", Err: errors.New("bad")}),
			wantKind: FailureDecode,
			want:     "unexpected response format",
		},
		{
			name:     "other",
			err:      errors.New("boom"),
			wantKind: FailureOther,
			want:     "unknown error",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Classify(tc.err).Kind; got != tc.wantKind {
				t.Fatalf("Classify(%v).Kind = %d, want %d", tc.err, got, tc.wantKind)
			}
			if got := Describe(tc.err); got != tc.want {
				t.Fatalf("Describe(%v) = %q, want %q", tc.err, got, tc.want)
			}
		})
	}
}

func TestDescribe_NilIsEmpty(t *testing.T) {
	if got := Describe(nil); got != "" {
		t.Fatalf("Describe(nil) = %q, want empty", got)
	}
}

func TestNetworkError_UnwrapAndMessage(t *testing.T) {
	cause := errors.New("connection refused")
	err := &NetworkError{Op: "GET", URL: "http://x/api/character", Err: cause}
	if !errors.Is(err, cause) {
		t.Fatalf("errors.Is(NetworkError, cause) = false, want true")
	}
	if got := err.Error(); got != "GET http://x/api/character: connection refused" {
		t.Fatalf("Error() = %q", got)
	}
}
