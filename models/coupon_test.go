package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCouponUsable(t *testing.T) {
	now := time.Date(2026, 6, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		coupon  Coupon
		wantErr error
	}{
		{
			name:    "active and unexpired",
			coupon:  Coupon{Code: "WELCOME10", IsActive: true, ExpiryDate: now.AddDate(0, 1, 0)},
			wantErr: nil,
		},
		{
			name:    "expiring exactly now is still usable",
			coupon:  Coupon{Code: "LASTDAY", IsActive: true, ExpiryDate: now},
			wantErr: nil,
		},
		{
			name:    "expired",
			coupon:  Coupon{Code: "OLD20", IsActive: true, ExpiryDate: now.AddDate(0, 0, -1)},
			wantErr: ErrCouponExpired,
		},
		{
			name:    "inactive",
			coupon:  Coupon{Code: "PAUSED", IsActive: false, ExpiryDate: now.AddDate(0, 1, 0)},
			wantErr: ErrCouponInactive,
		},
		{
			name:    "inactive and expired reports inactive",
			coupon:  Coupon{Code: "DEAD", IsActive: false, ExpiryDate: now.AddDate(0, 0, -5)},
			wantErr: ErrCouponInactive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.coupon.Usable(now)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
