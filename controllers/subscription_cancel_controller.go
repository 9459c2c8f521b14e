package controllers

import (
	"strconv"

	"github.com/Nithin-812/DabbaDash/config"
	"github.com/Nithin-812/DabbaDash/models"
	"github.com/Nithin-812/DabbaDash/utils"
	"github.com/gin-gonic/gin"
)

// CancelSubscriptionRequest represents the self-service cancel body
type CancelSubscriptionRequest struct {
	SubscriptionID uint `json:"subscription_id" binding:"required"`
}

// cancelSubscription applies the shared cancellation rules: only Active
// subscriptions can be cancelled, and the owner's pointer is cleared when it
// referenced the cancelled one.
func cancelSubscription(subscription *models.Subscription) error {
	tx := config.DB.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	if err := tx.Model(subscription).Update("status", models.SubscriptionStatusCancelled).Error; err != nil {
		tx.Rollback()
		return err
	}

	var owner models.User
	if err := tx.First(&owner, subscription.UserID).Error; err == nil {
		if owner.CurrentSubscriptionID != nil && *owner.CurrentSubscriptionID == subscription.ID {
			if err := setCurrentSubscription(tx, owner.ID, nil); err != nil {
				tx.Rollback()
				return err
			}
		}
	}

	return tx.Commit().Error
}

// CancelSubscription cancels the caller's own subscription
func CancelSubscription(c *gin.Context) {
	utils.LogInfo("CancelSubscription called")

	userVal, exists := c.Get("user")
	if !exists {
		utils.LogError("User not found in context")
		utils.Unauthorized(c, "User not found")
		return
	}
	user := userVal.(models.User)

	var req CancelSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid cancel request for user ID: %d: %v", user.ID, err)
		utils.BadRequest(c, "Invalid request. subscription_id is required", err.Error())
		return
	}

	var subscription models.Subscription
	if err := config.DB.Where("id = ? AND user_id = ?", req.SubscriptionID, user.ID).
		First(&subscription).Error; err != nil {
		utils.LogError("Subscription not found: %d for user ID: %d", req.SubscriptionID, user.ID)
		utils.NotFound(c, "Subscription not found")
		return
	}

	if subscription.Status != models.SubscriptionStatusActive {
		utils.LogError("Cancel attempted on non-active subscription ID: %d", subscription.ID)
		utils.Conflict(c, "Subscription is not active", nil)
		return
	}

	if err := cancelSubscription(&subscription); err != nil {
		utils.LogError("Failed to cancel subscription ID: %d: %v", subscription.ID, err)
		utils.InternalServerError(c, "Failed to cancel subscription", err.Error())
		return
	}
	subscription.Status = models.SubscriptionStatusCancelled

	utils.LogInfo("Cancelled subscription ID: %d for user ID: %d", subscription.ID, user.ID)
	utils.Success(c, "Subscription cancelled successfully", gin.H{"subscription": subscription})
}

// AdminCancelSubscription cancels any user's subscription (staff path)
func AdminCancelSubscription(c *gin.Context) {
	utils.LogInfo("AdminCancelSubscription called")

	subID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid subscription ID", nil)
		return
	}

	var subscription models.Subscription
	if err := config.DB.First(&subscription, subID).Error; err != nil {
		utils.LogError("Subscription not found: %d", subID)
		utils.NotFound(c, "Subscription not found")
		return
	}

	if subscription.Status != models.SubscriptionStatusActive {
		utils.LogError("Cancel attempted on non-active subscription ID: %d", subscription.ID)
		utils.Conflict(c, "Subscription is not active", nil)
		return
	}

	if err := cancelSubscription(&subscription); err != nil {
		utils.LogError("Failed to cancel subscription ID: %d: %v", subscription.ID, err)
		utils.InternalServerError(c, "Failed to cancel subscription", err.Error())
		return
	}
	subscription.Status = models.SubscriptionStatusCancelled

	utils.LogInfo("Staff cancelled subscription ID: %d", subscription.ID)
	utils.Success(c, "Subscription cancelled successfully", gin.H{"subscription": subscription})
}

// GetSubscriptions returns all subscriptions for staff, newest first
func GetSubscriptions(c *gin.Context) {
	var subscriptions []models.Subscription
	if err := config.DB.Preload("Plan").Preload("User").
		Order("created_at DESC").
		Find(&subscriptions).Error; err != nil {
		utils.LogError("Failed to fetch subscriptions: %v", err)
		utils.InternalServerError(c, "Failed to fetch subscriptions", err.Error())
		return
	}

	utils.Success(c, "Subscriptions retrieved successfully", gin.H{"subscriptions": subscriptions})
}
