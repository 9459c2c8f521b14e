package controllers

import (
	"strconv"

	"github.com/Nithin-812/DabbaDash/config"
	"github.com/Nithin-812/DabbaDash/models"
	"github.com/Nithin-812/DabbaDash/utils"
	"github.com/gin-gonic/gin"
)

// GetPlans returns all plans
func GetPlans(c *gin.Context) {
	var plans []models.Plan
	if err := config.DB.Find(&plans).Error; err != nil {
		utils.LogError("Failed to fetch plans: %v", err)
		utils.InternalServerError(c, "Failed to fetch plans", err.Error())
		return
	}
	utils.Success(c, "Plans retrieved successfully", gin.H{"plans": plans})
}

// PlanRequest represents the create/update plan request body
type PlanRequest struct {
	Name        string   `json:"name" binding:"required"`
	Price       float64  `json:"price" binding:"required"`
	Duration    string   `json:"duration" binding:"required"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
}

// CreatePlan creates a new subscription plan
func CreatePlan(c *gin.Context) {
	utils.LogInfo("CreatePlan called")

	var req PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid plan request: %v", err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	if !models.ValidTier(req.Name) {
		utils.BadRequest(c, "Plan name must be one of Basic, Premium or Exotic", nil)
		return
	}
	if !models.ValidDuration(req.Duration) {
		utils.BadRequest(c, "Duration must be monthly or yearly", nil)
		return
	}
	if req.Price <= 0 {
		utils.BadRequest(c, "Price must be greater than zero", nil)
		return
	}

	plan := models.Plan{
		Name:        req.Name,
		Price:       req.Price,
		Duration:    req.Duration,
		Description: req.Description,
		Features:    req.Features,
	}
	if err := config.DB.Create(&plan).Error; err != nil {
		utils.LogError("Failed to create plan: %v", err)
		utils.InternalServerError(c, "Failed to create plan", err.Error())
		return
	}

	utils.LogInfo("Created plan ID: %d", plan.ID)
	utils.Created(c, "Plan created successfully", gin.H{"plan": plan})
}

// UpdatePlan updates an existing plan
func UpdatePlan(c *gin.Context) {
	utils.LogInfo("UpdatePlan called")

	planID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid plan ID", nil)
		return
	}

	var plan models.Plan
	if err := config.DB.First(&plan, planID).Error; err != nil {
		utils.LogError("Plan not found: %d", planID)
		utils.NotFound(c, "Plan not found")
		return
	}

	var req struct {
		Name        string   `json:"name"`
		Price       float64  `json:"price"`
		Duration    string   `json:"duration"`
		Description string   `json:"description"`
		Features    []string `json:"features"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	if req.Name != "" {
		if !models.ValidTier(req.Name) {
			utils.BadRequest(c, "Plan name must be one of Basic, Premium or Exotic", nil)
			return
		}
		plan.Name = req.Name
	}
	if req.Price != 0 {
		if req.Price < 0 {
			utils.BadRequest(c, "Price must be greater than zero", nil)
			return
		}
		plan.Price = req.Price
	}
	if req.Duration != "" {
		if !models.ValidDuration(req.Duration) {
			utils.BadRequest(c, "Duration must be monthly or yearly", nil)
			return
		}
		plan.Duration = req.Duration
	}
	if req.Description != "" {
		plan.Description = req.Description
	}
	if req.Features != nil {
		plan.Features = req.Features
	}

	if err := config.DB.Save(&plan).Error; err != nil {
		utils.LogError("Failed to update plan ID: %d: %v", plan.ID, err)
		utils.InternalServerError(c, "Failed to update plan", err.Error())
		return
	}

	utils.LogInfo("Updated plan ID: %d", plan.ID)
	utils.Success(c, "Plan updated successfully", gin.H{"plan": plan})
}

// DeletePlan removes a plan
func DeletePlan(c *gin.Context) {
	utils.LogInfo("DeletePlan called")

	planID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid plan ID", nil)
		return
	}

	var plan models.Plan
	if err := config.DB.First(&plan, planID).Error; err != nil {
		utils.LogError("Plan not found: %d", planID)
		utils.NotFound(c, "Plan not found")
		return
	}

	if err := config.DB.Delete(&plan).Error; err != nil {
		utils.LogError("Failed to delete plan ID: %d: %v", plan.ID, err)
		utils.InternalServerError(c, "Failed to delete plan", err.Error())
		return
	}

	utils.LogInfo("Deleted plan ID: %d", plan.ID)
	utils.Success(c, "Plan removed", nil)
}
