package controllers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveMenuWindow(t *testing.T) {
	now := time.Date(2026, 9, 1, 15, 45, 0, 0, time.UTC)

	t.Run("defaults to today", func(t *testing.T) {
		start, end, err := resolveMenuWindow("", "", "", now)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), start)
		assert.Equal(t, time.Date(2026, 9, 1, 23, 59, 59, 999999999, time.UTC), end)
	})

	t.Run("single date", func(t *testing.T) {
		start, end, err := resolveMenuWindow("2026-09-05", "", "", now)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC), start)
		assert.Equal(t, time.Date(2026, 9, 5, 23, 59, 59, 999999999, time.UTC), end)
	})

	t.Run("explicit range", func(t *testing.T) {
		start, end, err := resolveMenuWindow("", "2026-09-03", "2026-09-07", now)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC), start)
		assert.Equal(t, time.Date(2026, 9, 7, 23, 59, 59, 999999999, time.UTC), end)
	})

	t.Run("range takes priority over date", func(t *testing.T) {
		start, _, err := resolveMenuWindow("2026-09-20", "2026-09-03", "2026-09-07", now)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC), start)
	})

	t.Run("single day range", func(t *testing.T) {
		start, end, err := resolveMenuWindow("", "2026-09-04", "2026-09-04", now)
		require.NoError(t, err)
		assert.Equal(t, startOfDay(start), start)
		assert.True(t, end.After(start))
	})

	t.Run("end before start", func(t *testing.T) {
		_, _, err := resolveMenuWindow("", "2026-09-07", "2026-09-03", now)
		assert.Error(t, err)
	})

	t.Run("malformed date", func(t *testing.T) {
		_, _, err := resolveMenuWindow("09/05/2026", "", "", now)
		assert.Error(t, err)
	})

	t.Run("malformed range start", func(t *testing.T) {
		_, _, err := resolveMenuWindow("", "next-monday", "2026-09-07", now)
		assert.Error(t, err)
	})
}
