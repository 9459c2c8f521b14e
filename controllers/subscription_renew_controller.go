package controllers

import (
	"os"
	"time"

	"github.com/Nithin-812/DabbaDash/config"
	"github.com/Nithin-812/DabbaDash/models"
	"github.com/Nithin-812/DabbaDash/utils"
	"github.com/gin-gonic/gin"
)

// RenewSubscriptionRequest represents the renewal initiation body
type RenewSubscriptionRequest struct {
	SubscriptionID uint `json:"subscription_id" binding:"required"`
}

// RenewSubscription creates a payment intent for renewing the caller's
// subscription at its plan's current price
func RenewSubscription(c *gin.Context) {
	utils.LogInfo("RenewSubscription called")

	userVal, exists := c.Get("user")
	if !exists {
		utils.LogError("User not found in context")
		utils.Unauthorized(c, "User not found")
		return
	}
	user := userVal.(models.User)

	var req RenewSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid renewal request for user ID: %d: %v", user.ID, err)
		utils.BadRequest(c, "Invalid request. subscription_id is required", err.Error())
		return
	}

	var subscription models.Subscription
	if err := config.DB.Preload("Plan").
		Where("id = ? AND user_id = ?", req.SubscriptionID, user.ID).
		First(&subscription).Error; err != nil {
		utils.LogError("Subscription not found: %d for user ID: %d", req.SubscriptionID, user.ID)
		utils.NotFound(c, "Subscription not found")
		return
	}

	if subscription.Plan.ID == 0 {
		utils.LogError("Plan missing for subscription ID: %d", subscription.ID)
		utils.NotFound(c, "Plan associated with this subscription was not found. Please buy a new subscription.")
		return
	}

	rzOrder, err := createPaymentIntent(subscription.Plan.Price, "receipt_renew")
	if err != nil {
		utils.LogError("Failed to create renewal intent for subscription ID: %d: %v", subscription.ID, err)
		respondPaymentIntentError(c, err)
		return
	}

	utils.LogInfo("Created renewal intent %v for subscription ID: %d", rzOrder["id"], subscription.ID)
	utils.Success(c, "Payment order created", gin.H{
		"order_id":        rzOrder["id"],
		"amount":          rzOrder["amount"],
		"currency":        rzOrder["currency"],
		"subscription_id": subscription.ID,
		"plan_id":         subscription.Plan.ID,
	})
}

// VerifyRenewalRequest represents the renewal confirmation body
type VerifyRenewalRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id" binding:"required"`
	RazorpayPaymentID string `json:"razorpay_payment_id" binding:"required"`
	RazorpaySignature string `json:"razorpay_signature" binding:"required"`
	SubscriptionID    uint   `json:"subscription_id" binding:"required"`
}

// VerifyRenewal verifies the gateway signature, then overwrites the
// subscription's window, status and payment fields in place, re-points the
// user at it and refreshes the order linked to the subscription if one
// exists. No new order is created on renewal.
func VerifyRenewal(c *gin.Context) {
	utils.LogInfo("VerifyRenewal called")

	userVal, exists := c.Get("user")
	if !exists {
		utils.LogError("User not found in context")
		utils.Unauthorized(c, "User not found")
		return
	}
	user := userVal.(models.User)

	var req VerifyRenewalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid renewal verification for user ID: %d: %v", user.ID, err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	secret := os.Getenv("RAZORPAY_KEY_SECRET")
	if !utils.VerifyRazorpaySignature(req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature, secret) {
		utils.LogError("Signature mismatch on renewal for user ID: %d", user.ID)
		utils.BadRequest(c, "Invalid payment signature", nil)
		return
	}
	utils.LogInfo("Renewal signature verified for user ID: %d", user.ID)

	var subscription models.Subscription
	if err := config.DB.Preload("Plan").
		Where("id = ? AND user_id = ?", req.SubscriptionID, user.ID).
		First(&subscription).Error; err != nil {
		utils.LogError("Subscription not found: %d for user ID: %d", req.SubscriptionID, user.ID)
		utils.NotFound(c, "Subscription not found")
		return
	}

	plan := subscription.Plan
	if plan.ID == 0 {
		utils.LogError("Plan missing for subscription ID: %d", subscription.ID)
		utils.NotFound(c, "Plan associated with this subscription was not found. Please buy a new subscription.")
		return
	}

	startDate, endDate := subscriptionWindow(plan.Duration, time.Now())

	tx := config.DB.Begin()
	if tx.Error != nil {
		utils.LogError("Failed to start transaction for user ID: %d: %v", user.ID, tx.Error)
		utils.InternalServerError(c, "Failed to start transaction", nil)
		return
	}

	if err := tx.Model(&subscription).Updates(map[string]interface{}{
		"start_date":  startDate,
		"end_date":    endDate,
		"status":      models.SubscriptionStatusActive,
		"payment_id":  req.RazorpayPaymentID,
		"amount_paid": plan.Price,
	}).Error; err != nil {
		tx.Rollback()
		utils.LogError("Failed to renew subscription ID: %d: %v", subscription.ID, err)
		utils.InternalServerError(c, "Failed to renew subscription", err.Error())
		return
	}

	if err := setCurrentSubscription(tx, user.ID, &subscription.ID); err != nil {
		tx.Rollback()
		utils.LogError("Failed to set current subscription for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to update user", err.Error())
		return
	}

	// Refresh the order that purchased this subscription, when there is one.
	// After multiple renewals the first linked order is refreshed.
	var order models.Order
	orderFound := tx.Where("subscription_id = ?", subscription.ID).
		Order("created_at ASC").First(&order).Error == nil
	if orderFound {
		if err := tx.Model(&order).Updates(map[string]interface{}{
			"payment_status": models.PaymentStatusPaid,
			"payment_id":     req.RazorpayPaymentID,
			"status":         models.OrderStatusConfirmed,
			"delivery_date":  time.Now(),
			"updated_at":     time.Now(),
		}).Error; err != nil {
			tx.Rollback()
			utils.LogError("Failed to refresh order ID: %d: %v", order.ID, err)
			utils.InternalServerError(c, "Failed to update order", err.Error())
			return
		}
	}

	if err := tx.Commit().Error; err != nil {
		utils.LogError("Failed to commit transaction for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to commit transaction", err.Error())
		return
	}

	subscription.StartDate = startDate
	subscription.EndDate = endDate
	subscription.Status = models.SubscriptionStatusActive
	subscription.PaymentID = req.RazorpayPaymentID
	subscription.AmountPaid = plan.Price

	utils.LogInfo("Renewed subscription ID: %d for user ID: %d", subscription.ID, user.ID)
	resp := gin.H{"subscription": subscription}
	if orderFound {
		resp["order"] = order
	}
	utils.Success(c, "Subscription renewed successfully", resp)
}
