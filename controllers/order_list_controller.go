package controllers

import (
	"strconv"

	"github.com/Nithin-812/DabbaDash/config"
	"github.com/Nithin-812/DabbaDash/models"
	"github.com/Nithin-812/DabbaDash/utils"
	"github.com/gin-gonic/gin"
)

// GetMyOrders returns the caller's orders, newest first
func GetMyOrders(c *gin.Context) {
	userVal, exists := c.Get("user")
	if !exists {
		utils.LogError("User not found in context")
		utils.Unauthorized(c, "User not found")
		return
	}
	user := userVal.(models.User)

	var orders []models.Order
	if err := config.DB.Where("user_id = ?", user.ID).
		Preload("Items").
		Preload("Subscription").
		Preload("Subscription.Plan").
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		utils.LogError("Failed to fetch orders for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to fetch orders", err.Error())
		return
	}

	utils.Success(c, "Orders retrieved successfully", gin.H{"orders": orders})
}

// GetOrders returns all orders for staff, newest first
func GetOrders(c *gin.Context) {
	var orders []models.Order
	if err := config.DB.
		Preload("Items").
		Preload("User").
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		utils.LogError("Failed to fetch orders: %v", err)
		utils.InternalServerError(c, "Failed to fetch orders", err.Error())
		return
	}

	utils.Success(c, "Orders retrieved successfully", gin.H{"orders": orders})
}

// GetOrderByID returns one order to its owner or to staff
func GetOrderByID(c *gin.Context) {
	userVal, exists := c.Get("user")
	if !exists {
		utils.LogError("User not found in context")
		utils.Unauthorized(c, "User not found")
		return
	}
	user := userVal.(models.User)

	orderID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid order ID", nil)
		return
	}

	var order models.Order
	if err := config.DB.
		Preload("Items").
		Preload("User").
		Preload("Subscription").
		First(&order, orderID).Error; err != nil {
		utils.LogError("Order not found: %d", orderID)
		utils.NotFound(c, "Order not found")
		return
	}

	if order.UserID != user.ID && !user.IsStaff() {
		utils.LogError("User ID: %d attempted to view order ID: %d", user.ID, order.ID)
		utils.Unauthorized(c, "Not authorized to view this order")
		return
	}

	utils.Success(c, "Order retrieved successfully", gin.H{"order": order})
}
