package controllers

import (
	"strconv"

	"github.com/Nithin-812/DabbaDash/config"
	"github.com/Nithin-812/DabbaDash/models"
	"github.com/Nithin-812/DabbaDash/utils"
	"github.com/gin-gonic/gin"
)

// UpdateOrderStatusRequest represents the status update request body
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateOrderStatus lets staff move an order through its lifecycle
func UpdateOrderStatus(c *gin.Context) {
	utils.LogInfo("UpdateOrderStatus called")

	orderID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid order ID", nil)
		return
	}

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid status request: %v", err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	if !models.ValidOrderStatus(req.Status) {
		utils.BadRequest(c, "Invalid order status", nil)
		return
	}

	var order models.Order
	if err := config.DB.First(&order, orderID).Error; err != nil {
		utils.LogError("Order not found: %d", orderID)
		utils.NotFound(c, "Order not found")
		return
	}

	if err := config.DB.Model(&order).Update("status", req.Status).Error; err != nil {
		utils.LogError("Failed to update order ID: %d: %v", order.ID, err)
		utils.InternalServerError(c, "Failed to update order", err.Error())
		return
	}
	order.Status = req.Status

	utils.LogInfo("Updated order ID: %d status to %s", order.ID, req.Status)
	utils.Success(c, "Order status updated", gin.H{"order": order})
}
