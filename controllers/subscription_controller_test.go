package controllers

import (
	"testing"
	"time"

	"github.com/Nithin-812/DabbaDash/models"
	"github.com/stretchr/testify/assert"
)

func TestSubscriptionWindow(t *testing.T) {
	now := time.Date(2026, 1, 15, 9, 30, 0, 0, time.UTC)

	start, end := subscriptionWindow(models.DurationMonthly, now)
	assert.Equal(t, now, start)
	assert.Equal(t, time.Date(2026, 2, 15, 9, 30, 0, 0, time.UTC), end)

	start, end = subscriptionWindow(models.DurationYearly, now)
	assert.Equal(t, now, start)
	assert.Equal(t, time.Date(2027, 1, 15, 9, 30, 0, 0, time.UTC), end)
}

func TestSubscriptionWindowMonthEndNormalization(t *testing.T) {
	// Jan 31 + 1 month rolls into early March per time.AddDate
	now := time.Date(2026, 1, 31, 12, 0, 0, 0, time.UTC)
	_, end := subscriptionWindow(models.DurationMonthly, now)
	assert.Equal(t, time.Date(2026, 3, 3, 12, 0, 0, 0, time.UTC), end)
}

func TestSubscriptionWindowRenewalExtends(t *testing.T) {
	// Each renewal is anchored at its own purchase time, so successive
	// windows always end later than the previous one.
	first := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	_, firstEnd := subscriptionWindow(models.DurationMonthly, first)

	renewedAt := firstEnd.Add(-24 * time.Hour)
	_, renewedEnd := subscriptionWindow(models.DurationMonthly, renewedAt)

	assert.True(t, renewedEnd.After(firstEnd))
}
