package models

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	// ErrCouponInactive is returned when the coupon has been disabled
	ErrCouponInactive = errors.New("coupon is no longer active")
	// ErrCouponExpired is returned when the coupon is past its expiry date
	ErrCouponExpired = errors.New("coupon has expired")
)

// Coupon is a percentage discount code. Codes are stored uppercase.
type Coupon struct {
	ID                 uint           `gorm:"primaryKey" json:"id"`
	Code               string         `gorm:"uniqueIndex;not null" json:"code"`
	DiscountPercentage float64        `gorm:"not null" json:"discount_percentage"`
	ExpiryDate         time.Time      `gorm:"not null" json:"expiry_date"`
	IsActive           bool           `gorm:"default:true" json:"is_active"`
	Description        string         `json:"description"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"`
}

// Usable checks whether the coupon can be applied at the given time.
// Inactive wins over expired, matching the redemption flow order.
func (c *Coupon) Usable(now time.Time) error {
	if !c.IsActive {
		return ErrCouponInactive
	}
	if now.After(c.ExpiryDate) {
		return ErrCouponExpired
	}
	return nil
}
