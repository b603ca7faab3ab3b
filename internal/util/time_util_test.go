package util

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompactDate(t *testing.T) {
	require.Equal(t, "20250718", CompactDate("2025-07-18"))
}

func TestMonthBounds(t *testing.T) {
	t.Run("31 day month", func(t *testing.T) {
		start, end, err := MonthBounds("2025-07")
		require.NoError(t, err)
		require.Equal(t, "2025-07-01", start)
		require.Equal(t, "2025-07-31", end)
	})

	t.Run("february in a leap year", func(t *testing.T) {
		start, end, err := MonthBounds("2024-02")
		require.NoError(t, err)
		require.Equal(t, "2024-02-01", start)
		require.Equal(t, "2024-02-29", end)
	})

	t.Run("december rolls the year", func(t *testing.T) {
		start, end, err := MonthBounds("2025-12")
		require.NoError(t, err)
		require.Equal(t, "2025-12-01", start)
		require.Equal(t, "2025-12-31", end)
	})

	t.Run("bad input", func(t *testing.T) {
		_, _, err := MonthBounds("july 2025")
		require.Error(t, err)
	})
}
