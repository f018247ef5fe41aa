//go:build unit

package promotion_test

import (
	"testing"
	"time"

	"promo-pricing-service/internal/domain/promotion"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClockTime(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{name: "midnight", input: "00:00", want: 0},
		{name: "midday", input: "12:30", want: 750},
		{name: "last minute", input: "23:59", want: 1439},
		{name: "hour out of range", input: "24:00", wantErr: true},
		{name: "minute out of range", input: "12:60", wantErr: true},
		{name: "missing colon", input: "1200", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "garbage", input: "ab:cd", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := promotion.ParseClockTime(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, promotion.ErrInvalidClockTime)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClockSpanContains(t *testing.T) {
	t.Run("normal span with inclusive bounds", func(t *testing.T) {
		span, err := promotion.NewClockSpan("14:00", "17:00")
		require.NoError(t, err)

		assert.True(t, span.Contains(14*60))
		assert.True(t, span.Contains(15*60+30))
		assert.True(t, span.Contains(17*60))
		assert.False(t, span.Contains(13*60+59))
		assert.False(t, span.Contains(17*60+1))
	})

	t.Run("span crossing midnight", func(t *testing.T) {
		span, err := promotion.NewClockSpan("23:00", "02:00")
		require.NoError(t, err)

		assert.True(t, span.Contains(23*60), "start boundary is in")
		assert.True(t, span.Contains(1*60), "01:00 is in")
		assert.True(t, span.Contains(2*60), "end boundary is in")
		assert.True(t, span.Contains(0))
		assert.False(t, span.Contains(12*60), "12:00 is out")
		assert.False(t, span.Contains(22*60+59))
		assert.False(t, span.Contains(2*60+1))
	})

	t.Run("out of range minutes never match", func(t *testing.T) {
		span, err := promotion.NewClockSpan("00:00", "23:59")
		require.NoError(t, err)

		assert.False(t, span.Contains(-1))
		assert.False(t, span.Contains(24*60))
	})
}

func TestRecurrenceMatches(t *testing.T) {
	// Monday 2025-06-02
	monday1500 := time.Date(2025, 6, 2, 15, 0, 0, 0, time.UTC)
	sunday1500 := time.Date(2025, 6, 1, 15, 0, 0, 0, time.UTC)

	t.Run("empty recurrence never limits", func(t *testing.T) {
		r := promotion.NewRecurrence(nil, nil)
		assert.True(t, r.IsAlwaysOn())
		assert.True(t, r.Matches(monday1500))
	})

	t.Run("slot only", func(t *testing.T) {
		span, err := promotion.NewClockSpan("14:00", "17:00")
		require.NoError(t, err)
		r := promotion.NewRecurrence([]promotion.ClockSpan{span}, nil)

		assert.True(t, r.Matches(monday1500))
		assert.False(t, r.Matches(time.Date(2025, 6, 2, 18, 0, 0, 0, time.UTC)))
	})

	t.Run("weekday only", func(t *testing.T) {
		r := promotion.NewRecurrence(nil, []time.Weekday{time.Monday, time.Friday})

		assert.True(t, r.Matches(monday1500))
		assert.False(t, r.Matches(sunday1500))
	})

	t.Run("weekday and slot must both hold", func(t *testing.T) {
		span, err := promotion.NewClockSpan("14:00", "17:00")
		require.NoError(t, err)
		r := promotion.NewRecurrence([]promotion.ClockSpan{span}, []time.Weekday{time.Monday})

		assert.True(t, r.Matches(monday1500))
		assert.False(t, r.Matches(sunday1500), "right time, wrong day")
		assert.False(t, r.Matches(time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)), "right day, wrong time")
	})

	t.Run("any matching slot suffices", func(t *testing.T) {
		morning, err := promotion.NewClockSpan("07:00", "09:00")
		require.NoError(t, err)
		evening, err := promotion.NewClockSpan("17:00", "19:00")
		require.NoError(t, err)
		r := promotion.NewRecurrence([]promotion.ClockSpan{morning, evening}, nil)

		assert.True(t, r.Matches(time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)))
		assert.True(t, r.Matches(time.Date(2025, 6, 2, 18, 0, 0, 0, time.UTC)))
		assert.False(t, r.Matches(monday1500))
	})
}
