package models

import (
	"time"

	"gorm.io/gorm"
)

// User roles
const (
	RoleUser     = "user"
	RoleEmployee = "employee"
	RoleAdmin    = "admin"
)

// User represents a customer, employee or admin in the system
type User struct {
	gorm.Model
	Name                  string        `gorm:"not null" json:"name"`
	Email                 string        `gorm:"uniqueIndex;not null" json:"email"`
	Password              string        `json:"-"`
	Phone                 string        `json:"phone"`
	Role                  string        `gorm:"default:'user'" json:"role"`
	IsVerified            bool          `json:"is_verified" gorm:"default:false"`
	IsBlocked             bool          `json:"is_blocked" gorm:"default:false"`
	GoogleID              string        `gorm:"default:null" json:"google_id,omitempty"`
	LastLoginAt           time.Time     `json:"last_login_at"`
	CurrentSubscriptionID *uint         `json:"current_subscription_id"`
	CurrentSubscription   *Subscription `json:"current_subscription,omitempty" gorm:"foreignKey:CurrentSubscriptionID"`
}

// IsStaff reports whether the user may access staff endpoints
func (u *User) IsStaff() bool {
	return u.Role == RoleAdmin || u.Role == RoleEmployee
}

// Plan tiers and billing durations
const (
	PlanBasic   = "Basic"
	PlanPremium = "Premium"
	PlanExotic  = "Exotic"

	DurationMonthly = "monthly"
	DurationYearly  = "yearly"
)

// Plan represents a priced subscription tier
type Plan struct {
	gorm.Model
	Name        string   `gorm:"not null" json:"name"`
	Price       float64  `gorm:"not null" json:"price"`
	Duration    string   `gorm:"not null" json:"duration"`
	Description string   `json:"description"`
	Features    []string `gorm:"serializer:json" json:"features"`
}

// ValidTier reports whether name is one of the fixed plan tiers
func ValidTier(name string) bool {
	return name == PlanBasic || name == PlanPremium || name == PlanExotic
}

// ValidDuration reports whether d is a supported billing duration
func ValidDuration(d string) bool {
	return d == DurationMonthly || d == DurationYearly
}
