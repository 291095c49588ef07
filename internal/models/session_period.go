package models

import (
	"errors"
	"fmt"
	"math"
	"time"
)

var ErrInvalidConfiguration = errors.New("invalid configuration")

// DefaultSessionPeriod is the inactivity gap that closes a session when none is configured.
const DefaultSessionPeriod = SessionPeriod(30 * time.Minute)

// SessionPeriod is the inactivity threshold: two consecutive events of a client belong to the same
// session only when they are strictly less than one period apart.
type SessionPeriod time.Duration

// MaxSessionPeriod is the longest representable period. Longer periods are clamped to it.
const MaxSessionPeriod = SessionPeriod(math.MaxInt64)

// NewSessionPeriod validates a period given in seconds. The period must be at least one
// nanosecond; anything beyond MaxSessionPeriod is clamped.
func NewSessionPeriod(seconds float64) (SessionPeriod, error) {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) || seconds <= 0 {
		return 0, fmt.Errorf("%w: session period must be a positive number of seconds, got %v", ErrInvalidConfiguration, seconds)
	}
	nanos := seconds * float64(time.Second)
	if nanos < 1 {
		return 0, fmt.Errorf("%w: session period must be at least one nanosecond, got %v seconds", ErrInvalidConfiguration, seconds)
	}
	// float64(math.MaxInt64) rounds up to 2^63, so >= catches every overflowing value.
	if nanos >= float64(math.MaxInt64) {
		return MaxSessionPeriod, nil
	}
	return SessionPeriod(time.Duration(nanos)), nil
}

func (p SessionPeriod) Duration() time.Duration {
	return time.Duration(p)
}

func (p SessionPeriod) Seconds() float64 {
	return time.Duration(p).Seconds()
}

// Validate reports ErrInvalidConfiguration for zero or negative periods.
func (p SessionPeriod) Validate() error {
	if p <= 0 {
		return fmt.Errorf("%w: session period must be positive, got %s", ErrInvalidConfiguration, time.Duration(p))
	}
	return nil
}

// Continues reports whether an event at next extends a session whose latest event is at last.
func (p SessionPeriod) Continues(last, next time.Time) bool {
	return next.Sub(last) < time.Duration(p)
}
