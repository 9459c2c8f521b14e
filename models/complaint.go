package models

import (
	"time"
)

// Complaint status constants
const (
	ComplaintStatusOpen       = "Open"
	ComplaintStatusInProgress = "In Progress"
	ComplaintStatusResolved   = "Resolved"
)

// ValidComplaintStatus reports whether s is an allowed complaint status
func ValidComplaintStatus(s string) bool {
	return s == ComplaintStatusOpen || s == ComplaintStatusInProgress || s == ComplaintStatusResolved
}

// Complaint is a user-filed issue, optionally tied to an order
type Complaint struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `json:"user_id"`
	User         User      `json:"user" gorm:"foreignKey:UserID"`
	OrderID      *uint     `json:"order_id,omitempty"`
	Order        *Order    `json:"order,omitempty" gorm:"foreignKey:OrderID"`
	Subject      string    `gorm:"not null" json:"subject"`
	Description  string    `gorm:"not null" json:"description"`
	Status       string    `gorm:"default:'Open'" json:"status"`
	AssignedToID *uint     `json:"assigned_to_id,omitempty"`
	AssignedTo   *User     `json:"assigned_to,omitempty" gorm:"foreignKey:AssignedToID"`
	Resolution   string    `json:"resolution,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
