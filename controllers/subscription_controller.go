package controllers

import (
	"fmt"
	"os"
	"time"

	"github.com/Nithin-812/DabbaDash/config"
	"github.com/Nithin-812/DabbaDash/models"
	"github.com/Nithin-812/DabbaDash/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// subscriptionWindow computes the active window purchased at now for the
// given billing duration
func subscriptionWindow(duration string, now time.Time) (time.Time, time.Time) {
	if duration == models.DurationYearly {
		return now, now.AddDate(1, 0, 0)
	}
	return now, now.AddDate(0, 1, 0)
}

// setCurrentSubscription is the single write path for the user's
// current-subscription pointer. Purchase, renewal and cancellation all go
// through here so the pointer cannot drift.
func setCurrentSubscription(tx *gorm.DB, userID uint, subscriptionID *uint) error {
	return tx.Model(&models.User{}).Where("id = ?", userID).
		Update("current_subscription_id", subscriptionID).Error
}

// BuySubscriptionRequest represents the purchase initiation body
type BuySubscriptionRequest struct {
	PlanID uint `json:"plan_id" binding:"required"`
}

// BuySubscription creates a payment intent for the plan's price
func BuySubscription(c *gin.Context) {
	utils.LogInfo("BuySubscription called")

	userVal, exists := c.Get("user")
	if !exists {
		utils.LogError("User not found in context")
		utils.Unauthorized(c, "User not found")
		return
	}
	user := userVal.(models.User)

	var req BuySubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid purchase request for user ID: %d: %v", user.ID, err)
		utils.BadRequest(c, "Invalid request. plan_id is required", err.Error())
		return
	}

	var plan models.Plan
	if err := config.DB.First(&plan, req.PlanID).Error; err != nil {
		utils.LogError("Plan not found: %d", req.PlanID)
		utils.NotFound(c, "Plan not found")
		return
	}

	rzOrder, err := createPaymentIntent(plan.Price, "receipt_order")
	if err != nil {
		utils.LogError("Failed to create Razorpay order for plan ID: %d: %v", plan.ID, err)
		respondPaymentIntentError(c, err)
		return
	}

	utils.LogInfo("Created subscription payment intent %v for user ID: %d", rzOrder["id"], user.ID)
	utils.Success(c, "Payment order created", gin.H{
		"order_id": rzOrder["id"],
		"amount":   rzOrder["amount"],
		"currency": rzOrder["currency"],
		"plan_id":  plan.ID,
	})
}

// VerifySubscriptionRequest represents the purchase confirmation body
type VerifySubscriptionRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id" binding:"required"`
	RazorpayPaymentID string `json:"razorpay_payment_id" binding:"required"`
	RazorpaySignature string `json:"razorpay_signature" binding:"required"`
	PlanID            uint   `json:"plan_id" binding:"required"`
}

// VerifySubscriptionPayment verifies the gateway signature and, only then,
// activates the subscription: creates the record, points the user at it and
// writes the companion purchase order. The three writes share a transaction.
func VerifySubscriptionPayment(c *gin.Context) {
	utils.LogInfo("VerifySubscriptionPayment called")

	userVal, exists := c.Get("user")
	if !exists {
		utils.LogError("User not found in context")
		utils.Unauthorized(c, "User not found")
		return
	}
	user := userVal.(models.User)

	var req VerifySubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid verification request for user ID: %d: %v", user.ID, err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	secret := os.Getenv("RAZORPAY_KEY_SECRET")
	if !utils.VerifyRazorpaySignature(req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature, secret) {
		utils.LogError("Signature mismatch on subscription purchase for user ID: %d", user.ID)
		utils.BadRequest(c, "Invalid payment signature", nil)
		return
	}
	utils.LogInfo("Payment signature verified for user ID: %d", user.ID)

	var plan models.Plan
	if err := config.DB.First(&plan, req.PlanID).Error; err != nil {
		utils.LogError("Plan not found: %d", req.PlanID)
		utils.NotFound(c, "Plan not found")
		return
	}

	startDate, endDate := subscriptionWindow(plan.Duration, time.Now())

	tx := config.DB.Begin()
	if tx.Error != nil {
		utils.LogError("Failed to start transaction for user ID: %d: %v", user.ID, tx.Error)
		utils.InternalServerError(c, "Failed to start transaction", nil)
		return
	}

	subscription := models.Subscription{
		UserID:     user.ID,
		PlanID:     plan.ID,
		StartDate:  startDate,
		EndDate:    endDate,
		Status:     models.SubscriptionStatusActive,
		PaymentID:  req.RazorpayPaymentID,
		AmountPaid: plan.Price,
	}
	if err := tx.Create(&subscription).Error; err != nil {
		tx.Rollback()
		utils.LogError("Failed to create subscription for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to create subscription", err.Error())
		return
	}

	if err := setCurrentSubscription(tx, user.ID, &subscription.ID); err != nil {
		tx.Rollback()
		utils.LogError("Failed to set current subscription for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to update user", err.Error())
		return
	}

	order := models.Order{
		UserID: user.ID,
		Items: []models.OrderItem{{
			Name:     fmt.Sprintf("%s Plan (%s)", plan.Name, plan.Duration),
			Quantity: 1,
			Price:    plan.Price,
		}},
		TotalAmount:    plan.Price,
		Status:         models.OrderStatusConfirmed,
		Type:           models.OrderTypeSubscriptionPurchase,
		DeliveryDate:   time.Now(),
		PaymentStatus:  models.PaymentStatusPaid,
		PaymentID:      req.RazorpayPaymentID,
		SubscriptionID: &subscription.ID,
	}
	if err := tx.Create(&order).Error; err != nil {
		tx.Rollback()
		utils.LogError("Failed to create purchase order for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to create order", err.Error())
		return
	}

	if err := tx.Commit().Error; err != nil {
		utils.LogError("Failed to commit transaction for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to commit transaction", err.Error())
		return
	}

	subscription.Plan = plan
	utils.LogInfo("Activated subscription ID: %d for user ID: %d", subscription.ID, user.ID)
	utils.Created(c, "Subscription activated", gin.H{
		"subscription": subscription,
		"order":        order,
	})
}

// GetMySubscription returns the caller's active subscription. A window that
// has run out is marked Expired on read.
func GetMySubscription(c *gin.Context) {
	userVal, exists := c.Get("user")
	if !exists {
		utils.LogError("User not found in context")
		utils.Unauthorized(c, "User not found")
		return
	}
	user := userVal.(models.User)

	var subscription models.Subscription
	if err := config.DB.Preload("Plan").
		Where("user_id = ? AND status = ?", user.ID, models.SubscriptionStatusActive).
		First(&subscription).Error; err != nil {
		utils.NotFound(c, "No active subscription found")
		return
	}

	if time.Now().After(subscription.EndDate) {
		utils.LogInfo("Marking subscription ID: %d expired for user ID: %d", subscription.ID, user.ID)
		if err := config.DB.Model(&subscription).Update("status", models.SubscriptionStatusExpired).Error; err != nil {
			utils.LogError("Failed to expire subscription ID: %d: %v", subscription.ID, err)
		}
		if user.CurrentSubscriptionID != nil && *user.CurrentSubscriptionID == subscription.ID {
			_ = setCurrentSubscription(config.DB, user.ID, nil)
		}
		utils.NotFound(c, "No active subscription found")
		return
	}

	utils.Success(c, "Subscription retrieved successfully", gin.H{"subscription": subscription})
}
