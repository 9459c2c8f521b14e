package controllers

import (
	"strconv"
	"strings"
	"time"

	"github.com/Nithin-812/DabbaDash/config"
	"github.com/Nithin-812/DabbaDash/models"
	"github.com/Nithin-812/DabbaDash/utils"
	"github.com/gin-gonic/gin"
)

// CreateCouponRequest represents the create coupon request body
type CreateCouponRequest struct {
	Code               string  `json:"code" binding:"required"`
	DiscountPercentage float64 `json:"discount_percentage" binding:"required"`
	ExpiryDate         string  `json:"expiry_date" binding:"required"`
	Description        string  `json:"description"`
}

// CreateCoupon creates a discount code. Codes are stored uppercase and must
// be unique.
func CreateCoupon(c *gin.Context) {
	utils.LogInfo("CreateCoupon called")

	var req CreateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid coupon request: %v", err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	code := strings.ToUpper(strings.TrimSpace(req.Code))
	if code == "" {
		utils.BadRequest(c, "Coupon code is required", nil)
		return
	}
	if req.DiscountPercentage <= 0 || req.DiscountPercentage > 100 {
		utils.BadRequest(c, "Discount percentage must be between 0 and 100", nil)
		return
	}

	expiry, err := time.ParseInLocation("2006-01-02", req.ExpiryDate, time.Local)
	if err != nil {
		utils.BadRequest(c, "Invalid expiry date, expected YYYY-MM-DD", err.Error())
		return
	}

	var existing models.Coupon
	if err := config.DB.Where("code = ?", code).First(&existing).Error; err == nil {
		utils.LogError("Duplicate coupon code: %s", code)
		utils.BadRequest(c, "Coupon already exists", nil)
		return
	}

	coupon := models.Coupon{
		Code:               code,
		DiscountPercentage: req.DiscountPercentage,
		ExpiryDate:         expiry,
		IsActive:           true,
		Description:        req.Description,
	}
	if err := config.DB.Create(&coupon).Error; err != nil {
		utils.LogError("Failed to create coupon: %v", err)
		utils.InternalServerError(c, "Failed to create coupon", err.Error())
		return
	}

	utils.LogInfo("Created coupon %s", coupon.Code)
	utils.Created(c, "Coupon created successfully", gin.H{"coupon": coupon})
}

// GetCoupons returns all coupons for staff, newest first
func GetCoupons(c *gin.Context) {
	var coupons []models.Coupon
	if err := config.DB.Order("created_at DESC").Find(&coupons).Error; err != nil {
		utils.LogError("Failed to fetch coupons: %v", err)
		utils.InternalServerError(c, "Failed to fetch coupons", err.Error())
		return
	}

	utils.Success(c, "Coupons retrieved successfully", gin.H{"coupons": coupons})
}

// DeleteCoupon removes a coupon
func DeleteCoupon(c *gin.Context) {
	utils.LogInfo("DeleteCoupon called")

	couponID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid coupon ID", nil)
		return
	}

	var coupon models.Coupon
	if err := config.DB.First(&coupon, couponID).Error; err != nil {
		utils.LogError("Coupon not found: %d", couponID)
		utils.NotFound(c, "Coupon not found")
		return
	}

	if err := config.DB.Delete(&coupon).Error; err != nil {
		utils.LogError("Failed to delete coupon ID: %d: %v", coupon.ID, err)
		utils.InternalServerError(c, "Failed to delete coupon", err.Error())
		return
	}

	utils.LogInfo("Deleted coupon %s", coupon.Code)
	utils.Success(c, "Coupon removed", nil)
}

// GetActiveCoupons returns the active, unexpired coupons visible to users.
// Only the redeemable fields are returned.
func GetActiveCoupons(c *gin.Context) {
	var coupons []models.Coupon
	if err := config.DB.
		Where("is_active = ? AND expiry_date >= ?", true, time.Now()).
		Find(&coupons).Error; err != nil {
		utils.LogError("Failed to fetch active coupons: %v", err)
		utils.InternalServerError(c, "Failed to fetch coupons", err.Error())
		return
	}

	out := make([]gin.H, 0, len(coupons))
	for _, coupon := range coupons {
		out = append(out, gin.H{
			"code":                coupon.Code,
			"discount_percentage": coupon.DiscountPercentage,
			"expiry_date":         coupon.ExpiryDate,
			"description":         coupon.Description,
		})
	}

	utils.Success(c, "Coupons retrieved successfully", gin.H{"coupons": out})
}

// ValidateCouponRequest represents the validation request body
type ValidateCouponRequest struct {
	Code string `json:"code" binding:"required"`
}

// ValidateCoupon checks a code for the requesting client. The check is
// advisory: the discount is applied client-side before checkout.
func ValidateCoupon(c *gin.Context) {
	utils.LogInfo("ValidateCoupon called")

	var req ValidateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid validation request: %v", err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	code := strings.ToUpper(strings.TrimSpace(req.Code))

	var coupon models.Coupon
	if err := config.DB.Where("code = ?", code).First(&coupon).Error; err != nil {
		utils.LogError("Unknown coupon code: %s", code)
		utils.NotFound(c, "Invalid coupon code")
		return
	}

	if err := coupon.Usable(time.Now()); err != nil {
		utils.LogError("Coupon %s rejected: %v", coupon.Code, err)
		utils.BadRequest(c, err.Error(), nil)
		return
	}

	utils.Success(c, "Coupon applied successfully", gin.H{
		"code":                coupon.Code,
		"discount_percentage": coupon.DiscountPercentage,
	})
}
