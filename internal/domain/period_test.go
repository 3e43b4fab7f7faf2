package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParsePeriod(t *testing.T) {
	t.Run("accepts the known set", func(t *testing.T) {
		for _, s := range []string{"1mo", "3mo", "6mo", "1y", "2y", "5y", "10y", "ytd", "max"} {
			p, err := ParsePeriod(s)
			require.NoError(t, err)
			require.Equal(t, Period(s), p)
		}
	})

	t.Run("rejects everything else", func(t *testing.T) {
		for _, s := range []string{"", "7d", "1w", "5Y", "forever"} {
			_, err := ParsePeriod(s)
			require.Error(t, err, s)
		}
	})
}

func TestPeriod_Start(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	t.Run("calendar offsets", func(t *testing.T) {
		require.Equal(t, time.Date(2025, 5, 15, 12, 0, 0, 0, time.UTC), Period1Mo.Start(now))
		require.Equal(t, time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC), Period1Y.Start(now))
		require.Equal(t, time.Date(2020, 6, 15, 12, 0, 0, 0, time.UTC), Period5Y.Start(now))
	})

	t.Run("ytd starts at jan 1", func(t *testing.T) {
		require.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), PeriodYTD.Start(now))
	})

	t.Run("max predates listed history", func(t *testing.T) {
		require.True(t, PeriodMax.Start(now).Before(time.Date(1971, 1, 1, 0, 0, 0, 0, time.UTC)))
	})
}
