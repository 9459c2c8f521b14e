package controllers

import (
	"strconv"
	"time"

	"github.com/Nithin-812/DabbaDash/config"
	"github.com/Nithin-812/DabbaDash/models"
	"github.com/Nithin-812/DabbaDash/utils"
	"github.com/gin-gonic/gin"
)

// MenuRequest represents the create menu request body
type MenuRequest struct {
	Date             string   `json:"date" binding:"required"`
	PlanType         string   `json:"plan_type" binding:"required"`
	LunchItems       []string `json:"lunch_items"`
	DinnerItems      []string `json:"dinner_items"`
	IsWeekendSpecial bool     `json:"is_weekend_special"`
}

// CreateMenu creates the menu for one (date, plan tier) pair. A second
// entry for the same pair is rejected with a conflict.
func CreateMenu(c *gin.Context) {
	utils.LogInfo("CreateMenu called")

	var req MenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid menu request: %v", err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	if !models.ValidTier(req.PlanType) {
		utils.BadRequest(c, "Plan type must be one of Basic, Premium or Exotic", nil)
		return
	}

	day, err := time.ParseInLocation(menuDateLayout, req.Date, time.Local)
	if err != nil {
		utils.BadRequest(c, "Invalid date, expected YYYY-MM-DD", err.Error())
		return
	}
	day = startOfDay(day)

	var existing models.Menu
	if err := config.DB.Where("date = ? AND plan_type = ?", day, req.PlanType).First(&existing).Error; err == nil {
		utils.LogError("Duplicate menu for %s / %s", req.Date, req.PlanType)
		utils.Conflict(c, "A menu already exists for this date and plan", nil)
		return
	}

	menu := models.Menu{
		Date:             day,
		PlanType:         req.PlanType,
		LunchItems:       req.LunchItems,
		DinnerItems:      req.DinnerItems,
		IsWeekendSpecial: req.IsWeekendSpecial,
	}
	if err := config.DB.Create(&menu).Error; err != nil {
		// Unique index may still trip under concurrent creates
		utils.LogError("Failed to create menu: %v", err)
		utils.Conflict(c, "A menu already exists for this date and plan", err.Error())
		return
	}

	utils.LogInfo("Created menu ID: %d for %s / %s", menu.ID, req.Date, req.PlanType)
	utils.Created(c, "Menu created successfully", gin.H{"menu": menu})
}

// UpdateMenu replaces the item lists of an existing menu entry
func UpdateMenu(c *gin.Context) {
	utils.LogInfo("UpdateMenu called")

	menuID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid menu ID", nil)
		return
	}

	var menu models.Menu
	if err := config.DB.First(&menu, menuID).Error; err != nil {
		utils.LogError("Menu not found: %d", menuID)
		utils.NotFound(c, "Menu not found")
		return
	}

	var req struct {
		LunchItems       []string `json:"lunch_items"`
		DinnerItems      []string `json:"dinner_items"`
		IsWeekendSpecial *bool    `json:"is_weekend_special"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	if req.LunchItems != nil {
		menu.LunchItems = req.LunchItems
	}
	if req.DinnerItems != nil {
		menu.DinnerItems = req.DinnerItems
	}
	if req.IsWeekendSpecial != nil {
		menu.IsWeekendSpecial = *req.IsWeekendSpecial
	}

	if err := config.DB.Save(&menu).Error; err != nil {
		utils.LogError("Failed to update menu ID: %d: %v", menu.ID, err)
		utils.InternalServerError(c, "Failed to update menu", err.Error())
		return
	}

	utils.LogInfo("Updated menu ID: %d", menu.ID)
	utils.Success(c, "Menu updated successfully", gin.H{"menu": menu})
}

// DeleteMenu removes a menu entry
func DeleteMenu(c *gin.Context) {
	utils.LogInfo("DeleteMenu called")

	menuID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid menu ID", nil)
		return
	}

	var menu models.Menu
	if err := config.DB.First(&menu, menuID).Error; err != nil {
		utils.LogError("Menu not found: %d", menuID)
		utils.NotFound(c, "Menu not found")
		return
	}

	if err := config.DB.Delete(&menu).Error; err != nil {
		utils.LogError("Failed to delete menu ID: %d: %v", menu.ID, err)
		utils.InternalServerError(c, "Failed to delete menu", err.Error())
		return
	}

	utils.LogInfo("Deleted menu ID: %d", menu.ID)
	utils.Success(c, "Menu removed", nil)
}
