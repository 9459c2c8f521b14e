package models

import (
	"time"
)

// Order status constants
const (
	OrderStatusPending        = "Pending"
	OrderStatusConfirmed      = "Confirmed"
	OrderStatusPreparing      = "Preparing"
	OrderStatusOutForDelivery = "Out for Delivery"
	OrderStatusDelivered      = "Delivered"
	OrderStatusCancelled      = "Cancelled"
)

// Order type constants
const (
	OrderTypeSingle               = "single"
	OrderTypeEvent                = "event"
	OrderTypeSubscriptionDaily    = "subscription_daily"
	OrderTypeSubscriptionPurchase = "subscription_purchase"
)

// Payment status constants
const (
	PaymentStatusPending = "Pending"
	PaymentStatusPaid    = "Paid"
	PaymentStatusFailed  = "Failed"
)

// ValidOrderStatus reports whether s is an allowed order status
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusPreparing,
		OrderStatusOutForDelivery, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// ValidOrderType reports whether t is an allowed order type
func ValidOrderType(t string) bool {
	switch t {
	case OrderTypeSingle, OrderTypeEvent, OrderTypeSubscriptionDaily, OrderTypeSubscriptionPurchase:
		return true
	}
	return false
}

// DeliveryAddress is stored inline on the order
type DeliveryAddress struct {
	Street string `json:"street"`
	City   string `json:"city"`
	Zip    string `json:"zip"`
}

type Order struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	UserID          uint            `json:"user_id"`
	User            User            `json:"user" gorm:"foreignKey:UserID"`
	Items           []OrderItem     `json:"items" gorm:"foreignKey:OrderID"`
	TotalAmount     float64         `json:"total_amount"`
	DiscountAmount  float64         `json:"discount_amount" gorm:"default:0"`
	CouponCode      string          `json:"coupon_code,omitempty"`
	Status          string          `json:"status" gorm:"default:'Pending'"`
	Type            string          `json:"type"`
	DeliveryDate    time.Time       `json:"delivery_date"`
	DeliveryAddress DeliveryAddress `json:"delivery_address" gorm:"embedded;embeddedPrefix:delivery_"`
	PaymentStatus   string          `json:"payment_status" gorm:"default:'Pending'"`
	PaymentID       string          `json:"payment_id,omitempty"`
	SubscriptionID  *uint           `json:"subscription_id,omitempty"`
	Subscription    *Subscription   `json:"subscription,omitempty" gorm:"foreignKey:SubscriptionID"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

type OrderItem struct {
	ID            uint     `gorm:"primaryKey" json:"id"`
	OrderID       uint     `json:"order_id"`
	Name          string   `json:"name"`
	Quantity      int      `json:"quantity"`
	Price         float64  `json:"price"`
	SelectedItems []string `gorm:"serializer:json" json:"selected_items,omitempty"`
	MealTime      string   `json:"meal_time,omitempty"` // "Lunch" or "Dinner"
}
