package controllers

import (
	"strconv"

	"github.com/Nithin-812/DabbaDash/config"
	"github.com/Nithin-812/DabbaDash/models"
	"github.com/Nithin-812/DabbaDash/utils"
	"github.com/gin-gonic/gin"
)

// GetEventItems returns the catering menu
func GetEventItems(c *gin.Context) {
	var items []models.EventItem
	if err := config.DB.Find(&items).Error; err != nil {
		utils.LogError("Failed to fetch event items: %v", err)
		utils.InternalServerError(c, "Failed to fetch event items", err.Error())
		return
	}

	utils.Success(c, "Event items retrieved successfully", gin.H{"items": items})
}

// EventItemRequest represents the create/update event item body
type EventItemRequest struct {
	Name        string  `json:"name" binding:"required"`
	Category    string  `json:"category" binding:"required"`
	Price       float64 `json:"price" binding:"required"`
	Description string  `json:"description"`
}

// CreateEventItem adds a catering item
func CreateEventItem(c *gin.Context) {
	utils.LogInfo("CreateEventItem called")

	var req EventItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid event item request: %v", err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	if !models.ValidEventCategory(req.Category) {
		utils.BadRequest(c, "Category must be one of Starter, Main Course, Dessert or Beverage", nil)
		return
	}
	if req.Price <= 0 {
		utils.BadRequest(c, "Price must be greater than zero", nil)
		return
	}

	item := models.EventItem{
		Name:        req.Name,
		Category:    req.Category,
		Price:       req.Price,
		Description: req.Description,
	}
	if err := config.DB.Create(&item).Error; err != nil {
		utils.LogError("Failed to create event item: %v", err)
		utils.InternalServerError(c, "Failed to create event item", err.Error())
		return
	}

	utils.LogInfo("Created event item ID: %d", item.ID)
	utils.Created(c, "Event item created successfully", gin.H{"item": item})
}

// UpdateEventItem edits a catering item
func UpdateEventItem(c *gin.Context) {
	utils.LogInfo("UpdateEventItem called")

	itemID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid event item ID", nil)
		return
	}

	var item models.EventItem
	if err := config.DB.First(&item, itemID).Error; err != nil {
		utils.LogError("Event item not found: %d", itemID)
		utils.NotFound(c, "Event item not found")
		return
	}

	var req struct {
		Name        string  `json:"name"`
		Category    string  `json:"category"`
		Price       float64 `json:"price"`
		Description string  `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	if req.Name != "" {
		item.Name = req.Name
	}
	if req.Category != "" {
		if !models.ValidEventCategory(req.Category) {
			utils.BadRequest(c, "Category must be one of Starter, Main Course, Dessert or Beverage", nil)
			return
		}
		item.Category = req.Category
	}
	if req.Price > 0 {
		item.Price = req.Price
	}
	if req.Description != "" {
		item.Description = req.Description
	}

	if err := config.DB.Save(&item).Error; err != nil {
		utils.LogError("Failed to update event item ID: %d: %v", item.ID, err)
		utils.InternalServerError(c, "Failed to update event item", err.Error())
		return
	}

	utils.LogInfo("Updated event item ID: %d", item.ID)
	utils.Success(c, "Event item updated successfully", gin.H{"item": item})
}

// DeleteEventItem removes a catering item
func DeleteEventItem(c *gin.Context) {
	utils.LogInfo("DeleteEventItem called")

	itemID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid event item ID", nil)
		return
	}

	var item models.EventItem
	if err := config.DB.First(&item, itemID).Error; err != nil {
		utils.LogError("Event item not found: %d", itemID)
		utils.NotFound(c, "Event item not found")
		return
	}

	if err := config.DB.Delete(&item).Error; err != nil {
		utils.LogError("Failed to delete event item ID: %d: %v", item.ID, err)
		utils.InternalServerError(c, "Failed to delete event item", err.Error())
		return
	}

	utils.LogInfo("Deleted event item ID: %d", item.ID)
	utils.Success(c, "Event item removed", nil)
}
