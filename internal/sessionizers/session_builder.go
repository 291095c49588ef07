package sessionizers

import (
	"context"
	"slices"
	"time"

	"session-analytics/internal/models"
	"session-analytics/internal/shared/loggers"
)

// SessionBuilder turns decoded records into per-client sessions.
type SessionBuilder interface {
	// Build groups records by client key, sorts each group by timestamp (stable) and splits it into sessions
	// wherever the gap to the previous event is at least period. records is not modified.
	Build(ctx context.Context, records []*models.LogRecord, period models.SessionPeriod, mode models.SessionMode) (*models.ClientSessionTimeline, error)
}

type sessionBuilder struct{}

func NewSessionBuilder() SessionBuilder {
	return &sessionBuilder{}
}

func (b *sessionBuilder) Build(ctx context.Context, records []*models.LogRecord, period models.SessionPeriod, mode models.SessionMode) (*models.ClientSessionTimeline, error) {
	if err := validateBuildOptions(period, mode); err != nil {
		return nil, err
	}

	groups := groupByClient(records)
	timeline := models.NewClientSessionTimeline(mode, period)
	for _, group := range groups {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		timeline.Sessions[group.clientKey] = sessionizeClient(group.records, period, mode)
	}

	observeTimeline(ctx, builderSequential, timeline)
	return timeline, nil
}

func validateBuildOptions(period models.SessionPeriod, mode models.SessionMode) error {
	if err := period.Validate(); err != nil {
		return err
	}
	if err := mode.Validate(); err != nil {
		return err
	}
	return nil
}

// clientRecords holds one client's records in input order.
type clientRecords struct {
	clientKey string
	records   []*models.LogRecord
}

// groupByClient buckets records by client key, keeping input order inside each bucket
// and ordering buckets by first appearance.
func groupByClient(records []*models.LogRecord) []clientRecords {
	index := make(map[string]int)
	groups := make([]clientRecords, 0)
	for _, record := range records {
		i, ok := index[record.ClientKey]
		if !ok {
			i = len(groups)
			index[record.ClientKey] = i
			groups = append(groups, clientRecords{clientKey: record.ClientKey})
		}
		groups[i].records = append(groups[i].records, record)
	}
	return groups
}

// sessionizeClient walks one client's records in time order. The gap is always measured from the
// latest event seen, whether or not distinct mode counted it.
func sessionizeClient(records []*models.LogRecord, period models.SessionPeriod, mode models.SessionMode) []*models.Session {
	sorted := slices.Clone(records)
	slices.SortStableFunc(sorted, func(a, b *models.LogRecord) int {
		return a.Timestamp.Compare(b.Timestamp)
	})

	var (
		sessions []*models.Session
		current  *models.Session
		seen     map[string]struct{}
		last     time.Time
	)
	for i, record := range sorted {
		if i == 0 || !period.Continues(last, record.Timestamp) {
			current = &models.Session{}
			sessions = append(sessions, current)
			if mode == models.SessionModeDistinct {
				seen = make(map[string]struct{})
			}
		}
		last = record.Timestamp

		switch mode {
		case models.SessionModeDistinct:
			if _, ok := seen[record.Request]; ok {
				continue
			}
			seen[record.Request] = struct{}{}
			current.Timestamps = append(current.Timestamps, record.Timestamp)
			current.Requests = append(current.Requests, record.Request)
		default:
			current.Timestamps = append(current.Timestamps, record.Timestamp)
		}
	}
	return sessions
}

const (
	builderSequential = "sequential"
	builderParallel   = "parallel"
)

func observeTimeline(ctx context.Context, builder string, timeline *models.ClientSessionTimeline) {
	sessionCount := timeline.SessionCount()
	metricSessionsBuiltTotal.WithLabelValues(builder, string(timeline.Mode)).Add(float64(sessionCount))

	loggers.Ctx(ctx).Debug().
		Str("builder", builder).
		Str("mode", string(timeline.Mode)).
		Int("client_count", timeline.ClientCount()).
		Int(loggers.FieldSessionCount, sessionCount).
		Msgf("built %s session timeline", timeline.Mode)
}
