package aggregators

import (
	"context"
	"testing"
	"time"

	"session-analytics/internal/models"
	"session-analytics/internal/sessionizers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2015, 7, 22, 9, 0, 0, 0, time.UTC)

const period30m = models.SessionPeriod(30 * time.Minute)

func session(offsetsSeconds ...float64) *models.Session {
	s := &models.Session{}
	for _, o := range offsetsSeconds {
		s.Timestamps = append(s.Timestamps, t0.Add(time.Duration(o*float64(time.Second))))
	}
	return s
}

func timeline(mode models.SessionMode, sessions map[string][]*models.Session) *models.ClientSessionTimeline {
	tl := models.NewClientSessionTimeline(mode, period30m)
	for k, v := range sessions {
		tl.Sessions[k] = v
	}
	return tl
}

func record(client string, offsetSeconds float64, request, userAgent string) *models.LogRecord {
	fields := make([]string, models.ELBSchema.Len())
	fields[models.ELBSchema.IndexOf(models.FieldUserAgent)] = userAgent
	ts := t0.Add(time.Duration(offsetSeconds * float64(time.Second)))
	return models.NewLogRecord(0, ts, client, request, fields, models.ELBSchema)
}

func TestSessionAggregator_AverageHitsPerSession(t *testing.T) {
	t.Parallel()

	tl := timeline(models.SessionModeRaw, map[string][]*models.Session{
		"a": {session(0, 10, 20), session(4000)},
		"b": {session(5, 6)},
	})

	got, err := NewSessionAggregator().AverageHitsPerSession(tl)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, got, 1e-9)
}

func TestSessionAggregator_AverageSessionDuration_ExcludesSingleEventSessions(t *testing.T) {
	t.Parallel()

	tl := timeline(models.SessionModeRaw, map[string][]*models.Session{
		"multi":  {session(0, 100)},
		"single": {session(50)},
	})
	aggregator := NewSessionAggregator()

	hits, err := aggregator.AverageHitsPerSession(tl)
	require.NoError(t, err)
	assert.InDelta(t, 1.5, hits, 1e-9, "single-event client still counts towards hits")

	duration, err := aggregator.AverageSessionDuration(tl)
	require.NoError(t, err)
	assert.InDelta(t, 100.0, duration, 1e-9)
}

func TestSessionAggregator_AverageSessionDuration_FractionalSeconds(t *testing.T) {
	t.Parallel()

	tl := timeline(models.SessionModeRaw, map[string][]*models.Session{
		"a": {session(0, 0.5), session(4000, 4001)},
		"b": {session(7, 7)},
	})

	got, err := NewSessionAggregator().AverageSessionDuration(tl)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, got, 1e-9, "(0.5 + 1 + 0) / 3")
}

func TestSessionAggregator_DistinctAgainstRawCounts(t *testing.T) {
	t.Parallel()

	records := []*models.LogRecord{
		record("c", 0, "/a", ""),
		record("c", 1, "/b", ""),
		record("c", 2, "/a", ""),
		record("c", 3, "/c", ""),
	}
	builder := sessionizers.NewSessionBuilder()
	raw, err := builder.Build(context.Background(), records, period30m, models.SessionModeRaw)
	require.NoError(t, err)
	distinct, err := builder.Build(context.Background(), records, period30m, models.SessionModeDistinct)
	require.NoError(t, err)

	aggregator := NewSessionAggregator()
	hits, err := aggregator.AverageHitsPerSession(raw)
	require.NoError(t, err)
	distinctHits, err := aggregator.AverageDistinctPerSession(distinct)
	require.NoError(t, err)

	assert.InDelta(t, 4.0, hits, 1e-9)
	assert.InDelta(t, 3.0, distinctHits, 1e-9)
}

func TestSessionAggregator_MostEngagedClients(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		sessions      map[string][]*models.Session
		expectedKeys  []string
		expectedTotal float64
	}{
		{
			name: "single leader sums sessions",
			sessions: map[string][]*models.Session{
				"a": {session(0, 60), session(4000, 4100)},
				"b": {session(0, 150)},
			},
			expectedKeys:  []string{"a"},
			expectedTotal: 160,
		},
		{
			name: "ties are all reported in key order",
			sessions: map[string][]*models.Session{
				"z": {session(0, 100)},
				"m": {session(0, 40), session(5000, 5060)},
				"c": {session(0, 99)},
			},
			expectedKeys:  []string{"m", "z"},
			expectedTotal: 100,
		},
		{
			name: "single-event sessions add nothing",
			sessions: map[string][]*models.Session{
				"a": {session(0, 10), session(9000)},
				"b": {session(0), session(5000), session(9999)},
			},
			expectedKeys:  []string{"a"},
			expectedTotal: 10,
		},
		{
			name: "zero-length multi-event session qualifies",
			sessions: map[string][]*models.Session{
				"a": {session(3, 3)},
				"b": {session(8)},
			},
			expectedKeys:  []string{"a"},
			expectedTotal: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := NewSessionAggregator().MostEngagedClients(timeline(models.SessionModeRaw, tt.sessions))
			require.NoError(t, err)
			assert.Equal(t, tt.expectedKeys, got.ClientKeys())
			assert.InDelta(t, tt.expectedTotal, got.TotalSeconds, 1e-9)
		})
	}
}

func TestSessionAggregator_NoData(t *testing.T) {
	t.Parallel()

	aggregator := NewSessionAggregator()
	empty := timeline(models.SessionModeRaw, nil)
	emptyDistinct := timeline(models.SessionModeDistinct, nil)
	singles := timeline(models.SessionModeRaw, map[string][]*models.Session{"a": {session(0)}, "b": {session(1)}})

	_, err := aggregator.AverageHitsPerSession(empty)
	assert.ErrorIs(t, err, ErrNoData)
	_, err = aggregator.AverageSessionDuration(empty)
	assert.ErrorIs(t, err, ErrNoData)
	_, err = aggregator.AverageDistinctPerSession(emptyDistinct)
	assert.ErrorIs(t, err, ErrNoData)
	_, err = aggregator.MostEngagedClients(empty)
	assert.ErrorIs(t, err, ErrNoData)

	_, err = aggregator.AverageSessionDuration(singles)
	assert.ErrorIs(t, err, ErrNoData)
	_, err = aggregator.MostEngagedClients(singles)
	assert.ErrorIs(t, err, ErrNoData)
	_, err = aggregator.AverageHitsPerSession(singles)
	assert.NoError(t, err)
}

func TestSessionAggregator_RejectsWrongMode(t *testing.T) {
	t.Parallel()

	aggregator := NewSessionAggregator()
	raw := timeline(models.SessionModeRaw, map[string][]*models.Session{"a": {session(0, 1)}})
	distinct := timeline(models.SessionModeDistinct, map[string][]*models.Session{"a": {session(0, 1)}})

	_, err := aggregator.AverageHitsPerSession(distinct)
	assert.ErrorIs(t, err, ErrTimelineModeMismatch)
	_, err = aggregator.AverageSessionDuration(distinct)
	assert.ErrorIs(t, err, ErrTimelineModeMismatch)
	_, err = aggregator.MostEngagedClients(distinct)
	assert.ErrorIs(t, err, ErrTimelineModeMismatch)
	_, err = aggregator.AverageDistinctPerSession(raw)
	assert.ErrorIs(t, err, ErrTimelineModeMismatch)
	_, err = aggregator.AverageHitsPerSession(nil)
	assert.ErrorIs(t, err, ErrTimelineModeMismatch)
}
