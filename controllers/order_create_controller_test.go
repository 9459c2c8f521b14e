package controllers

import (
	"testing"
	"time"

	"github.com/Nithin-812/DabbaDash/models"
	"github.com/stretchr/testify/assert"
)

func TestValidateDeliveryLeadTime(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		orderType string
		delivery  time.Time
		wantErr   bool
	}{
		{
			name:      "single order well in advance",
			orderType: models.OrderTypeSingle,
			delivery:  now.Add(36 * time.Hour),
			wantErr:   false,
		},
		{
			name:      "single order exactly at 12h cutoff passes",
			orderType: models.OrderTypeSingle,
			delivery:  now.Add(12 * time.Hour),
			wantErr:   false,
		},
		{
			name:      "single order one second inside cutoff fails",
			orderType: models.OrderTypeSingle,
			delivery:  now.Add(12*time.Hour - time.Second),
			wantErr:   true,
		},
		{
			name:      "single order in the past fails",
			orderType: models.OrderTypeSingle,
			delivery:  now.Add(-2 * time.Hour),
			wantErr:   true,
		},
		{
			name:      "event order exactly at 48h cutoff passes",
			orderType: models.OrderTypeEvent,
			delivery:  now.Add(48 * time.Hour),
			wantErr:   false,
		},
		{
			name:      "event order one minute inside cutoff fails",
			orderType: models.OrderTypeEvent,
			delivery:  now.Add(48*time.Hour - time.Minute),
			wantErr:   true,
		},
		{
			name:      "event order needs more notice than a single order",
			orderType: models.OrderTypeEvent,
			delivery:  now.Add(24 * time.Hour),
			wantErr:   true,
		},
		{
			name:      "subscription daily order has no cutoff",
			orderType: models.OrderTypeSubscriptionDaily,
			delivery:  now.Add(time.Hour),
			wantErr:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateDeliveryLeadTime(tt.orderType, tt.delivery, now)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
