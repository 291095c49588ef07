package aggregators

import (
	"fmt"
	"sort"
	"time"

	"session-analytics/internal/models"
)

// SessionAggregator answers read-only queries over a session timeline. Every query takes the
// timeline explicitly; no query depends on state left behind by another.
type SessionAggregator interface {
	// AverageHitsPerSession is the raw event count over all sessions divided by the session count.
	AverageHitsPerSession(timeline *models.ClientSessionTimeline) (float64, error)
	// AverageSessionDuration averages last-minus-first over sessions with at least two events, in seconds.
	AverageSessionDuration(timeline *models.ClientSessionTimeline) (float64, error)
	// AverageDistinctPerSession is AverageHitsPerSession over a distinct-mode timeline.
	AverageDistinctPerSession(timeline *models.ClientSessionTimeline) (float64, error)
	// MostEngagedClients returns every client whose summed multi-event session duration is the maximum,
	// ordered by client key.
	MostEngagedClients(timeline *models.ClientSessionTimeline) (*models.EngagedClients, error)
}

type sessionAggregator struct{}

func NewSessionAggregator() SessionAggregator {
	return &sessionAggregator{}
}

func (a *sessionAggregator) AverageHitsPerSession(timeline *models.ClientSessionTimeline) (float64, error) {
	if err := requireMode(timeline, models.SessionModeRaw); err != nil {
		return 0, err
	}
	return averageEventsPerSession(timeline)
}

func (a *sessionAggregator) AverageDistinctPerSession(timeline *models.ClientSessionTimeline) (float64, error) {
	if err := requireMode(timeline, models.SessionModeDistinct); err != nil {
		return 0, err
	}
	return averageEventsPerSession(timeline)
}

func (a *sessionAggregator) AverageSessionDuration(timeline *models.ClientSessionTimeline) (float64, error) {
	if err := requireMode(timeline, models.SessionModeRaw); err != nil {
		return 0, err
	}

	var (
		total time.Duration
		count int
	)
	for _, sessions := range timeline.Sessions {
		for _, session := range sessions {
			if !session.IsMultiEvent() {
				continue
			}
			total += session.Duration()
			count++
		}
	}
	if count == 0 {
		return 0, fmt.Errorf("%w: no session has more than one event", ErrNoData)
	}
	return total.Seconds() / float64(count), nil
}

func (a *sessionAggregator) MostEngagedClients(timeline *models.ClientSessionTimeline) (*models.EngagedClients, error) {
	if err := requireMode(timeline, models.SessionModeRaw); err != nil {
		return nil, err
	}

	var (
		best    time.Duration
		leaders []string
	)
	for clientKey, sessions := range timeline.Sessions {
		engaged, ok := engagementTotal(sessions)
		if !ok {
			continue
		}
		switch {
		case leaders == nil || engaged > best:
			best = engaged
			leaders = []string{clientKey}
		case engaged == best:
			leaders = append(leaders, clientKey)
		}
	}
	if leaders == nil {
		return nil, fmt.Errorf("%w: no client has a session with more than one event", ErrNoData)
	}

	sort.Strings(leaders)
	result := &models.EngagedClients{
		TotalSeconds: best.Seconds(),
		Clients:      make([]models.EngagedClient, 0, len(leaders)),
	}
	for _, clientKey := range leaders {
		result.Clients = append(result.Clients, models.EngagedClient{ClientKey: clientKey})
	}
	return result, nil
}

// engagementTotal sums the durations of the multi-event sessions. ok is false when there are none.
func engagementTotal(sessions []*models.Session) (total time.Duration, ok bool) {
	for _, session := range sessions {
		if !session.IsMultiEvent() {
			continue
		}
		total += session.Duration()
		ok = true
	}
	return total, ok
}

func averageEventsPerSession(timeline *models.ClientSessionTimeline) (float64, error) {
	sessionCount := timeline.SessionCount()
	if sessionCount == 0 {
		return 0, fmt.Errorf("%w: no sessions", ErrNoData)
	}
	return float64(timeline.EventCount()) / float64(sessionCount), nil
}

func requireMode(timeline *models.ClientSessionTimeline, mode models.SessionMode) error {
	if timeline == nil {
		return fmt.Errorf("%w: nil timeline", ErrTimelineModeMismatch)
	}
	if timeline.Mode != mode {
		return fmt.Errorf("%w: expected %s, got %s", ErrTimelineModeMismatch, mode, timeline.Mode)
	}
	return nil
}
