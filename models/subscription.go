package models

import (
	"time"
)

// Subscription status constants
const (
	SubscriptionStatusActive    = "Active"
	SubscriptionStatusExpired   = "Expired"
	SubscriptionStatusCancelled = "Cancelled"
)

// Subscription is a user's purchased instance of a Plan with an active window.
// Renewal overwrites the dates and payment fields in place rather than
// creating a new record.
type Subscription struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `json:"user_id"`
	User       User      `json:"-" gorm:"foreignKey:UserID"`
	PlanID     uint      `json:"plan_id"`
	Plan       Plan      `json:"plan" gorm:"foreignKey:PlanID"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
	Status     string    `json:"status" gorm:"default:'Active'"`
	PaymentID  string    `json:"payment_id,omitempty"`
	AmountPaid float64   `json:"amount_paid"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
