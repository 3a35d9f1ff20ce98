package dateutil

import (
	"testing"

	"github.com/amp-labs/daily-dev-lab/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDaysBetween(t *testing.T) {
	t.Parallel()

	tests := []struct {
		a, b     string
		expected int
	}{
		{a: "2025-12-01", b: "2025-12-25", expected: 24},
		{a: "2025-12-25", b: "2025-12-01", expected: 24},
		{a: "2024-02-28", b: "2024-03-01", expected: 2},
		{a: "2025-01-01", b: "2025-01-01", expected: 0},
		{a: "2024-01-01", b: "2025-01-01", expected: 366},
		{a: "0001-01-01", b: "2024-01-01", expected: 738885},
		{a: "9999-12-31", b: "0001-01-01", expected: 3652058},
		{a: "1700-01-01", b: "2100-01-01", expected: 146097},
	}

	for _, tt := range tests {
		got, err := DaysBetween(tt.a, tt.b)

		require.NoError(t, err)
		assert.Equal(t, tt.expected, got, "%s..%s", tt.a, tt.b)
	}

	_, err := DaysBetween("2025-13-01", "2025-01-01")
	require.ErrorIs(t, err, errors.ErrInvalidDate)

	_, err = DaysBetween("2025-01-01", "yesterday")
	require.ErrorIs(t, err, errors.ErrInvalidDate)
}

func TestAddDays(t *testing.T) {
	t.Parallel()

	got, err := AddDays("2025-12-30", 3)
	require.NoError(t, err)
	assert.Equal(t, "2026-01-02", got)

	got, err = AddDays("2024-03-01", -1)
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", got)

	_, err = AddDays("30/12/2025", 1)
	require.ErrorIs(t, err, errors.ErrInvalidDate)
}

func TestIsWeekend(t *testing.T) {
	t.Parallel()

	tests := map[string]bool{
		"2025-12-20": true,  // Saturday
		"2025-12-21": true,  // Sunday
		"2025-12-22": false, // Monday
		"2025-12-25": false, // Thursday
	}

	for date, expected := range tests {
		got, err := IsWeekend(date)

		require.NoError(t, err)
		assert.Equal(t, expected, got, date)
	}

	_, err := IsWeekend("")
	require.ErrorIs(t, err, errors.ErrInvalidDate)
}

func TestFormat(t *testing.T) {
	t.Parallel()

	got, err := Format("2025-12-25", DateLayout, LongLayout)
	require.NoError(t, err)
	assert.Equal(t, "December 25, 2025", got)

	got, err = Format("25/12/2025", "02/01/2006", DateLayout)
	require.NoError(t, err)
	assert.Equal(t, "2025-12-25", got)

	_, err = Format("2025-12-25", "02/01/2006", DateLayout)
	require.ErrorIs(t, err, errors.ErrInvalidDate)
}
