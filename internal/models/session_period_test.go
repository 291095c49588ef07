package models

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSessionPeriod(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		seconds  float64
		expected time.Duration
		wantErr  bool
	}{
		{name: "thirty minutes", seconds: 1800, expected: 30 * time.Minute},
		{name: "fractional seconds", seconds: 0.5, expected: 500 * time.Millisecond},
		{name: "zero", seconds: 0, wantErr: true},
		{name: "negative", seconds: -1, wantErr: true},
		{name: "not a number", seconds: math.NaN(), wantErr: true},
		{name: "infinite", seconds: math.Inf(1), wantErr: true},
		{name: "below one nanosecond", seconds: 1e-10, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			period, err := NewSessionPeriod(tt.seconds)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidConfiguration)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, period.Duration())
			assert.Equal(t, tt.seconds, period.Seconds())
		})
	}
}

func TestNewSessionPeriod_ClampsLongPeriods(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		seconds float64
	}{
		{name: "just past the limit", seconds: 9.3e9},
		{name: "ten billion seconds", seconds: 1e10},
		{name: "max float", seconds: math.MaxFloat64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			period, err := NewSessionPeriod(tt.seconds)
			require.NoError(t, err)
			assert.Equal(t, MaxSessionPeriod, period)
			assert.NoError(t, period.Validate())
		})
	}
}

func TestNewSessionPeriod_OneNanosecond(t *testing.T) {
	t.Parallel()

	period, err := NewSessionPeriod(1e-9)
	require.NoError(t, err)
	assert.Equal(t, time.Nanosecond, period.Duration())
}

func TestSessionPeriod_Validate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, DefaultSessionPeriod.Validate())
	assert.ErrorIs(t, SessionPeriod(0).Validate(), ErrInvalidConfiguration)
	assert.ErrorIs(t, SessionPeriod(-time.Second).Validate(), ErrInvalidConfiguration)
}

func TestSessionPeriod_Continues(t *testing.T) {
	t.Parallel()

	period := SessionPeriod(1800 * time.Second)
	base := time.Date(2015, 7, 22, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		gap      time.Duration
		expected bool
	}{
		{name: "same instant", gap: 0, expected: true},
		{name: "just under the period", gap: 1799 * time.Second, expected: true},
		{name: "one nanosecond under", gap: 1800*time.Second - time.Nanosecond, expected: true},
		{name: "exactly the period", gap: 1800 * time.Second, expected: false},
		{name: "over the period", gap: 3600 * time.Second, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, period.Continues(base, base.Add(tt.gap)))
		})
	}
}
