package controllers

import (
	"strconv"

	"github.com/Nithin-812/DabbaDash/config"
	"github.com/Nithin-812/DabbaDash/models"
	"github.com/Nithin-812/DabbaDash/utils"
	"github.com/gin-gonic/gin"
)

// CreateComplaintRequest represents the create complaint request body
type CreateComplaintRequest struct {
	Subject     string `json:"subject" binding:"required"`
	Description string `json:"description" binding:"required"`
	OrderID     *uint  `json:"order_id"`
}

// CreateComplaint files a complaint for the caller, optionally tied to one
// of their orders
func CreateComplaint(c *gin.Context) {
	utils.LogInfo("CreateComplaint called")

	userVal, exists := c.Get("user")
	if !exists {
		utils.LogError("User not found in context")
		utils.Unauthorized(c, "User not found")
		return
	}
	user := userVal.(models.User)

	var req CreateComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid complaint request for user ID: %d: %v", user.ID, err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	if req.OrderID != nil {
		var order models.Order
		if err := config.DB.Where("id = ? AND user_id = ?", *req.OrderID, user.ID).
			First(&order).Error; err != nil {
			utils.LogError("Order not found: %d for user ID: %d", *req.OrderID, user.ID)
			utils.NotFound(c, "Order not found")
			return
		}
	}

	complaint := models.Complaint{
		UserID:      user.ID,
		OrderID:     req.OrderID,
		Subject:     utils.SanitizeString(req.Subject),
		Description: utils.SanitizeString(req.Description),
		Status:      models.ComplaintStatusOpen,
	}
	if err := config.DB.Create(&complaint).Error; err != nil {
		utils.LogError("Failed to create complaint for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to create complaint", err.Error())
		return
	}

	utils.LogInfo("Created complaint ID: %d for user ID: %d", complaint.ID, user.ID)
	utils.Created(c, "Complaint submitted successfully", gin.H{"complaint": complaint})
}

// GetMyComplaints returns the caller's complaints, newest first
func GetMyComplaints(c *gin.Context) {
	userVal, exists := c.Get("user")
	if !exists {
		utils.LogError("User not found in context")
		utils.Unauthorized(c, "User not found")
		return
	}
	user := userVal.(models.User)

	var complaints []models.Complaint
	if err := config.DB.Where("user_id = ?", user.ID).
		Order("created_at DESC").
		Find(&complaints).Error; err != nil {
		utils.LogError("Failed to fetch complaints for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to fetch complaints", err.Error())
		return
	}

	utils.Success(c, "Complaints retrieved successfully", gin.H{"complaints": complaints})
}

// GetComplaints returns all complaints for staff, newest first
func GetComplaints(c *gin.Context) {
	var complaints []models.Complaint
	if err := config.DB.Preload("User").
		Order("created_at DESC").
		Find(&complaints).Error; err != nil {
		utils.LogError("Failed to fetch complaints: %v", err)
		utils.InternalServerError(c, "Failed to fetch complaints", err.Error())
		return
	}

	utils.Success(c, "Complaints retrieved successfully", gin.H{"complaints": complaints})
}

// UpdateComplaint lets staff update status and resolution; the actor is
// recorded as the assignee
func UpdateComplaint(c *gin.Context) {
	utils.LogInfo("UpdateComplaint called")

	userVal, exists := c.Get("user")
	if !exists {
		utils.LogError("User not found in context")
		utils.Unauthorized(c, "User not found")
		return
	}
	staff := userVal.(models.User)

	complaintID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid complaint ID", nil)
		return
	}

	var complaint models.Complaint
	if err := config.DB.First(&complaint, complaintID).Error; err != nil {
		utils.LogError("Complaint not found: %d", complaintID)
		utils.NotFound(c, "Complaint not found")
		return
	}

	var req struct {
		Status     string `json:"status"`
		Resolution string `json:"resolution"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	if req.Status != "" {
		if !models.ValidComplaintStatus(req.Status) {
			utils.BadRequest(c, "Invalid complaint status", nil)
			return
		}
		complaint.Status = req.Status
	}
	if req.Resolution != "" {
		complaint.Resolution = utils.SanitizeString(req.Resolution)
	}
	complaint.AssignedToID = &staff.ID

	if err := config.DB.Save(&complaint).Error; err != nil {
		utils.LogError("Failed to update complaint ID: %d: %v", complaint.ID, err)
		utils.InternalServerError(c, "Failed to update complaint", err.Error())
		return
	}

	utils.LogInfo("Updated complaint ID: %d by staff ID: %d", complaint.ID, staff.ID)
	utils.Success(c, "Complaint updated successfully", gin.H{"complaint": complaint})
}
