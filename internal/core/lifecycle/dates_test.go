package lifecycle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kostdesk/internal/core/domain"
)

var testNow = time.Date(2024, 12, 11, 9, 30, 0, 0, time.UTC)

func day(offset int) time.Time {
	y, m, d := testNow.Date()
	return time.Date(y, m, d+offset, 0, 0, 0, 0, time.UTC)
}

func TestDaysBetween(t *testing.T) {
	t.Parallel()
	p := DefaultPolicy()

	tests := []struct {
		name string
		a    time.Time
		want int
	}{
		{"same day", day(0), 0},
		{"same day later hour", testNow.Add(10 * time.Hour), 0},
		{"tomorrow", day(1), 1},
		{"tomorrow early morning", day(1).Add(30 * time.Minute), 1},
		{"yesterday", day(-1), -1},
		{"yesterday late evening", day(-1).Add(23 * time.Hour), -1},
		{"thirty days", day(30), 30},
		{"across year end", time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC), 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, p.DaysBetween(tt.a, testNow))
		})
	}
}

func TestDaysBetween_UsesPolicyLocation(t *testing.T) {
	t.Parallel()
	jakarta := time.FixedZone("WIB", 7*60*60)
	p := Policy{ExpiringThresholdDays: 30, Location: jakarta}

	// 18:00 UTC on the 11th is already the 12th in Jakarta.
	now := time.Date(2024, 12, 11, 18, 0, 0, 0, time.UTC)
	due := time.Date(2024, 12, 12, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 0, p.DaysBetween(due, now))
	assert.Equal(t, 1, DefaultPolicy().DaysBetween(due, now))
}

func TestIsPastAndIsWithinDays(t *testing.T) {
	t.Parallel()
	p := DefaultPolicy()

	assert.True(t, p.IsPast(day(-1), testNow))
	assert.False(t, p.IsPast(day(0), testNow))
	assert.False(t, p.IsPast(day(1), testNow))

	assert.True(t, p.IsWithinDays(day(0), 7, testNow))
	assert.True(t, p.IsWithinDays(day(7), 7, testNow))
	assert.False(t, p.IsWithinDays(day(8), 7, testNow))
	assert.False(t, p.IsWithinDays(day(-1), 7, testNow))
}

func TestRelativeTime(t *testing.T) {
	t.Parallel()
	p := DefaultPolicy()

	tests := []struct {
		offset int
		want   string
	}{
		{0, "today"},
		{1, "tomorrow"},
		{-1, "yesterday"},
		{5, "in 5 days"},
		{-12, "12 days ago"},
		{30, "in 1 month"},
		{75, "in 2 months"},
		{-30, "1 month ago"},
		{-95, "3 months ago"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, p.RelativeTime(day(tt.offset), testNow))
		})
	}
}

func TestParseDate(t *testing.T) {
	t.Parallel()

	got, err := ParseDate("contract", 7, "end_date", "2025-01-31", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC), got)

	got, err = ParseDate("contract", 7, "end_date", "2025-01-31T10:00:00+07:00", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, 3, got.UTC().Hour())

	for _, bad := range []string{"", "   ", "31/01/2025", "2025-02-30", "tomorrow"} {
		_, err := ParseDate("contract", 7, "end_date", bad, time.UTC)
		require.Error(t, err, bad)
		assert.ErrorIs(t, err, domain.ErrValidation)

		var ve *domain.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "end_date", ve.Field)
		assert.Equal(t, uint(7), ve.RecordID)
	}
}
