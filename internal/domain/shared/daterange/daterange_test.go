package daterange

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smarthost/internal/domain/shared/domainerr"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNewRejectsNonIncreasingRange(t *testing.T) {
	tests := []struct {
		name    string
		in, out time.Time
	}{
		{"reversed", day(2024, 1, 5), day(2024, 1, 1)},
		{"same day", day(2024, 1, 5), day(2024, 1, 5)},
		{"same day different hours", day(2024, 1, 5).Add(2 * time.Hour), day(2024, 1, 5).Add(20 * time.Hour)},
		{"zero", time.Time{}, day(2024, 1, 5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.in, tt.out)
			require.Error(t, err)
			assert.True(t, domainerr.IsValidation(err))
		})
	}
}

func TestNewTruncatesToDays(t *testing.T) {
	loc := time.FixedZone("AST", -4*60*60)
	dr, err := New(time.Date(2024, 1, 1, 23, 0, 0, 0, loc), time.Date(2024, 1, 5, 1, 0, 0, 0, loc))
	require.NoError(t, err)
	assert.Equal(t, day(2024, 1, 1), dr.CheckIn)
	assert.Equal(t, day(2024, 1, 5), dr.CheckOut)
	assert.Equal(t, 4, dr.Nights())
}

func TestParseAndFormatRoundTrip(t *testing.T) {
	for _, raw := range []string{"2024-01-01", "2024-02-29", "1999-12-31"} {
		parsed, err := ParseDate(raw)
		require.NoError(t, err)
		assert.Equal(t, raw, FormatDate(parsed))
	}

	parsed, err := ParseDate("2024-03-10T15:04:05Z")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-10", FormatDate(parsed))

	_, err = ParseDate("10/03/2024")
	assert.True(t, domainerr.IsValidation(err))
}
