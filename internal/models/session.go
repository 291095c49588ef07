package models

import (
	"fmt"
	"sort"
	"time"
)

// SessionMode selects what a session counts.
type SessionMode string

const (
	// SessionModeRaw counts every event.
	SessionModeRaw SessionMode = "raw"
	// SessionModeDistinct counts an event only the first time its request appears in the session.
	SessionModeDistinct SessionMode = "distinct"
)

func (m SessionMode) Validate() error {
	switch m {
	case SessionModeRaw, SessionModeDistinct:
		return nil
	default:
		return fmt.Errorf("%w: unknown session mode %q", ErrInvalidConfiguration, string(m))
	}
}

// Session is a maximal run of one client's events whose consecutive gaps are under the session period.
//
// Timestamps holds the counted events in chronological order. In raw mode that is every event;
// in distinct mode only the events whose request was first seen in this session, with Requests
// listing those requests in the same order.
type Session struct {
	Timestamps []time.Time `json:"timestamps"`
	Requests   []string    `json:"requests,omitempty"`
}

func (s *Session) Len() int {
	return len(s.Timestamps)
}

func (s *Session) Start() time.Time {
	return s.Timestamps[0]
}

func (s *Session) End() time.Time {
	return s.Timestamps[len(s.Timestamps)-1]
}

// Duration is the span between the first and last counted event; zero for single-event sessions.
func (s *Session) Duration() time.Duration {
	if len(s.Timestamps) < 2 {
		return 0
	}
	return s.End().Sub(s.Start())
}

// IsMultiEvent reports whether the session has a measurable duration.
func (s *Session) IsMultiEvent() bool {
	return len(s.Timestamps) >= 2
}

// ClientSessionTimeline maps each client key to its chronologically ordered sessions.
// It is built once by a session builder and read-only afterwards.
type ClientSessionTimeline struct {
	Mode     SessionMode           `json:"mode"`
	Period   SessionPeriod         `json:"period"`
	Sessions map[string][]*Session `json:"sessions"`
}

func NewClientSessionTimeline(mode SessionMode, period SessionPeriod) *ClientSessionTimeline {
	return &ClientSessionTimeline{
		Mode:     mode,
		Period:   period,
		Sessions: make(map[string][]*Session),
	}
}

// ClientKeys returns the client keys in lexical order.
func (t *ClientSessionTimeline) ClientKeys() []string {
	keys := make([]string, 0, len(t.Sessions))
	for k := range t.Sessions {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (t *ClientSessionTimeline) ClientCount() int {
	return len(t.Sessions)
}

func (t *ClientSessionTimeline) SessionCount() int {
	count := 0
	for _, sessions := range t.Sessions {
		count += len(sessions)
	}
	return count
}

// EventCount is the number of counted events over all sessions.
func (t *ClientSessionTimeline) EventCount() int {
	count := 0
	for _, sessions := range t.Sessions {
		for _, session := range sessions {
			count += session.Len()
		}
	}
	return count
}
