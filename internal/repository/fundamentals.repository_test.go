package repository

import (
	"math"
	"testing"

	"stockhealth/internal/domain"

	"github.com/stretchr/testify/require"
)

func Test_sanitize(t *testing.T) {
	t.Run("nil passes through", func(t *testing.T) {
		require.Nil(t, sanitize(nil, 1))
	})

	t.Run("non-finite values are dropped", func(t *testing.T) {
		require.Nil(t, sanitize(domain.Float64Ptr(math.NaN()), 1))
		require.Nil(t, sanitize(domain.Float64Ptr(math.Inf(1)), 100))
		require.Nil(t, sanitize(domain.Float64Ptr(math.Inf(-1)), 1))
	})

	t.Run("fractions scale to percent", func(t *testing.T) {
		got := sanitize(domain.Float64Ptr(0.0891), 100)
		require.NotNil(t, got)
		require.InDelta(t, 8.91, *got, 1e-9)
	})

	t.Run("debt to equity percent scales to ratio", func(t *testing.T) {
		got := sanitize(domain.Float64Ptr(41.148), 0.01)
		require.NotNil(t, got)
		require.InDelta(t, 0.41148, *got, 1e-9)
	})

	t.Run("present zero stays present", func(t *testing.T) {
		got := sanitize(domain.Float64Ptr(0), 100)
		require.NotNil(t, got)
		require.Equal(t, 0.0, *got)
	})
}
