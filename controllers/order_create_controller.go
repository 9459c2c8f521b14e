package controllers

import (
	"fmt"
	"time"

	"github.com/Nithin-812/DabbaDash/config"
	"github.com/Nithin-812/DabbaDash/models"
	"github.com/Nithin-812/DabbaDash/utils"
	"github.com/gin-gonic/gin"
)

// Minimum lead times between order placement and delivery
const (
	singleOrderLeadTime = 12 * time.Hour
	eventOrderLeadTime  = 48 * time.Hour
)

// validateDeliveryLeadTime enforces the delivery cutoff for an order type.
// The comparison is strict: a delivery exactly at the cutoff is accepted.
func validateDeliveryLeadTime(orderType string, deliveryDate, now time.Time) error {
	lead := deliveryDate.Sub(now)
	switch orderType {
	case models.OrderTypeSingle:
		if lead < singleOrderLeadTime {
			return fmt.Errorf("single day orders must be placed at least 12 hours in advance")
		}
	case models.OrderTypeEvent:
		if lead < eventOrderLeadTime {
			return fmt.Errorf("event orders must be placed at least 48 hours in advance")
		}
	}
	return nil
}

// OrderItemRequest is one line item of a checkout
type OrderItemRequest struct {
	Name          string   `json:"name" binding:"required"`
	Quantity      int      `json:"quantity" binding:"required"`
	Price         float64  `json:"price"`
	SelectedItems []string `json:"selected_items"`
	MealTime      string   `json:"meal_time"`
}

// CreateOrderRequest represents the checkout request body
type CreateOrderRequest struct {
	Items           []OrderItemRequest     `json:"items" binding:"required"`
	TotalAmount     float64                `json:"total_amount" binding:"required"`
	Type            string                 `json:"type" binding:"required"`
	DeliveryDate    time.Time              `json:"delivery_date" binding:"required"`
	DeliveryAddress models.DeliveryAddress `json:"delivery_address"`
	PaymentID       string                 `json:"payment_id"`
	DiscountAmount  float64                `json:"discount_amount"`
	CouponCode      string                 `json:"coupon_code"`
}

// CreateOrder persists a checkout as a paid, confirmed order. Payment is
// verified separately before this is called (see VerifyPayment).
func CreateOrder(c *gin.Context) {
	utils.LogInfo("CreateOrder called")

	userVal, exists := c.Get("user")
	if !exists {
		utils.LogError("User not found in context")
		utils.Unauthorized(c, "User not found")
		return
	}
	user := userVal.(models.User)

	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid order request for user ID: %d: %v", user.ID, err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	if len(req.Items) == 0 {
		utils.BadRequest(c, "No order items", nil)
		return
	}
	if !models.ValidOrderType(req.Type) {
		utils.BadRequest(c, "Invalid order type", nil)
		return
	}
	if req.TotalAmount < 0 {
		utils.BadRequest(c, "Total amount cannot be negative", nil)
		return
	}

	if err := validateDeliveryLeadTime(req.Type, req.DeliveryDate, time.Now()); err != nil {
		utils.LogError("Lead time violation for user ID: %d: %v", user.ID, err)
		utils.BadRequest(c, err.Error(), nil)
		return
	}

	paymentID := req.PaymentID
	if paymentID == "" {
		paymentID = "DUMMY_PAYMENT_ID"
	}

	order := models.Order{
		UserID:          user.ID,
		TotalAmount:     req.TotalAmount,
		DiscountAmount:  req.DiscountAmount,
		CouponCode:      req.CouponCode,
		Type:            req.Type,
		DeliveryDate:    req.DeliveryDate,
		DeliveryAddress: req.DeliveryAddress,
		PaymentID:       paymentID,
		PaymentStatus:   models.PaymentStatusPaid,
		Status:          models.OrderStatusConfirmed,
	}
	for _, item := range req.Items {
		order.Items = append(order.Items, models.OrderItem{
			Name:          item.Name,
			Quantity:      item.Quantity,
			Price:         item.Price,
			SelectedItems: item.SelectedItems,
			MealTime:      item.MealTime,
		})
	}

	if err := config.DB.Create(&order).Error; err != nil {
		utils.LogError("Failed to create order for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to create order", err.Error())
		return
	}

	utils.LogInfo("Created order ID: %d for user ID: %d", order.ID, user.ID)
	utils.Created(c, "Order placed successfully", gin.H{"order": order})
}
