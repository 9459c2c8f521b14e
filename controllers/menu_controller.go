package controllers

import (
	"fmt"
	"time"

	"github.com/Nithin-812/DabbaDash/config"
	"github.com/Nithin-812/DabbaDash/models"
	"github.com/Nithin-812/DabbaDash/utils"
	"github.com/gin-gonic/gin"
)

const menuDateLayout = "2006-01-02"

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999999999, t.Location())
}

// resolveMenuWindow turns the query parameters into an inclusive day-aligned
// window. Priority: explicit range, then single date, then today.
func resolveMenuWindow(dateStr, startStr, endStr string, now time.Time) (time.Time, time.Time, error) {
	if startStr != "" && endStr != "" {
		start, err := time.ParseInLocation(menuDateLayout, startStr, now.Location())
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid startDate: %v", err)
		}
		end, err := time.ParseInLocation(menuDateLayout, endStr, now.Location())
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid endDate: %v", err)
		}
		if end.Before(start) {
			return time.Time{}, time.Time{}, fmt.Errorf("endDate is before startDate")
		}
		return startOfDay(start), endOfDay(end), nil
	}

	if dateStr != "" {
		day, err := time.ParseInLocation(menuDateLayout, dateStr, now.Location())
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid date: %v", err)
		}
		return startOfDay(day), endOfDay(day), nil
	}

	return startOfDay(now), endOfDay(now), nil
}

// GetMenu returns menu entries for a date window, optionally filtered by
// plan tier, ordered by date ascending
func GetMenu(c *gin.Context) {
	start, end, err := resolveMenuWindow(
		c.Query("date"), c.Query("startDate"), c.Query("endDate"), time.Now())
	if err != nil {
		utils.LogError("Invalid menu query: %v", err)
		utils.BadRequest(c, "Invalid date range", err.Error())
		return
	}

	query := config.DB.Where("date >= ? AND date <= ?", start, end)
	if planType := c.Query("planType"); planType != "" {
		query = query.Where("plan_type = ?", planType)
	}

	var menus []models.Menu
	if err := query.Order("date ASC").Find(&menus).Error; err != nil {
		utils.LogError("Failed to fetch menus: %v", err)
		utils.InternalServerError(c, "Failed to fetch menus", err.Error())
		return
	}

	utils.Success(c, "Menus retrieved successfully", gin.H{"menus": menus})
}
