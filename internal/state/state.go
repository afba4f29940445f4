package state

// Status identifies which variant a State holds.
type Status int

const (
	StatusPending Status = iota
	StatusReady
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusReady:
		return "ready"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// State is a tagged union over Pending, Ready(value) and Failed(reason).
// The zero value is Pending.
type State[T any] struct {
	status Status
	value  T
	reason string
}

// Pending returns the in-flight variant.
func Pending[T any]() State[T] {
	return State[T]{status: StatusPending}
}

// Ready returns the success variant holding value.
func Ready[T any](value T) State[T] {
	return State[T]{status: StatusReady, value: value}
}

// Failed returns the failure variant holding a display reason.
func Failed[T any](reason string) State[T] {
	return State[T]{status: StatusFailed, reason: reason}
}

// Status reports the active variant.
func (s State[T]) Status() Status { return s.status }

// IsPending reports whether the fetch has not resolved yet.
func (s State[T]) IsPending() bool { return s.status == StatusPending }

// IsReady reports whether a value is available.
func (s State[T]) IsReady() bool { return s.status == StatusReady }

// IsFailed reports whether the fetch failed.
func (s State[T]) IsFailed() bool { return s.status == StatusFailed }

// Value returns the Ready value. ok is false for any other variant.
func (s State[T]) Value() (value T, ok bool) {
	if s.status != StatusReady {
		var zero T
		return zero, false
	}
	return s.value, true
}

// Reason returns the Failed reason. ok is false for any other variant.
func (s State[T]) Reason() (reason string, ok bool) {
	if s.status != StatusFailed {
		return "", false
	}
	return s.reason, true
}
