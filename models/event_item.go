package models

import (
	"time"
)

// Event item categories
const (
	EventCategoryStarter    = "Starter"
	EventCategoryMainCourse = "Main Course"
	EventCategoryDessert    = "Dessert"
	EventCategoryBeverage   = "Beverage"
)

// ValidEventCategory reports whether c is an allowed catering category
func ValidEventCategory(c string) bool {
	switch c {
	case EventCategoryStarter, EventCategoryMainCourse, EventCategoryDessert, EventCategoryBeverage:
		return true
	}
	return false
}

// EventItem is a catering menu item priced per plate
type EventItem struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Category    string    `gorm:"not null" json:"category"`
	Price       float64   `gorm:"not null" json:"price"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
