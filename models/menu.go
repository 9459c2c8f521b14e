package models

import (
	"time"
)

// Menu holds the lunch and dinner item lists for one plan tier on one
// calendar day. The (date, plan_type) pair is unique.
type Menu struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	Date             time.Time `gorm:"uniqueIndex:idx_menus_date_plan_type;not null" json:"date"`
	PlanType         string    `gorm:"uniqueIndex:idx_menus_date_plan_type;not null" json:"plan_type"`
	LunchItems       []string  `gorm:"serializer:json" json:"lunch_items"`
	DinnerItems      []string  `gorm:"serializer:json" json:"dinner_items"`
	IsWeekendSpecial bool      `json:"is_weekend_special" gorm:"default:false"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
