package controllers

import (
	"bytes"
	"fmt"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	"github.com/Nithin-812/DabbaDash/config"
	"github.com/Nithin-812/DabbaDash/models"
	"github.com/Nithin-812/DabbaDash/utils"
)

// DownloadOrderReportExcel exports an order report for the given period
// (day, week or month) as an Excel workbook
func DownloadOrderReportExcel(c *gin.Context) {
	utils.LogInfo("DownloadOrderReportExcel called")

	period := c.DefaultQuery("period", "day")

	now := time.Now()
	var startDate, endDate time.Time

	switch period {
	case "day":
		startDate = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		endDate = time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 999999999, now.Location())
	case "week":
		endDate = time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 999999999, now.Location())
		startDate = endDate.AddDate(0, 0, -6)
		startDate = time.Date(startDate.Year(), startDate.Month(), startDate.Day(), 0, 0, 0, 0, startDate.Location())
	case "month":
		endDate = time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 999999999, now.Location())
		startDate = endDate.AddDate(0, -1, 0)
	default:
		utils.LogError("Invalid period specified: %s", period)
		utils.BadRequest(c, "Invalid period", "Period must be day, week, or month")
		return
	}

	var orders []models.Order
	if err := config.DB.Where("created_at >= ? AND created_at <= ?", startDate, endDate).
		Preload("User").
		Preload("Items").
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		utils.LogError("Failed to fetch orders for report: %v", err)
		utils.InternalServerError(c, "Failed to fetch orders", err.Error())
		return
	}
	utils.LogDebug("Retrieved %d orders for Excel report", len(orders))

	var summary struct {
		TotalOrders     int
		TotalRevenue    float64
		TotalItems      int
		TotalCustomers  int
		TotalDiscounts  float64
		AverageOrderVal float64
	}
	customerSet := make(map[uint]bool)
	byType := make(map[string]int)
	for _, order := range orders {
		summary.TotalOrders++
		summary.TotalRevenue += order.TotalAmount
		summary.TotalDiscounts += order.DiscountAmount
		customerSet[order.UserID] = true
		byType[order.Type]++
		for _, item := range order.Items {
			summary.TotalItems += item.Quantity
		}
	}
	summary.TotalCustomers = len(customerSet)
	if summary.TotalOrders > 0 {
		summary.AverageOrderVal = math.Round((summary.TotalRevenue/float64(summary.TotalOrders))*100) / 100
	}
	summary.TotalRevenue = math.Round(summary.TotalRevenue*100) / 100
	summary.TotalDiscounts = math.Round(summary.TotalDiscounts*100) / 100

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Order Report")
	if err != nil {
		utils.LogError("Failed to create Excel sheet: %v", err)
		utils.InternalServerError(c, "Failed to create Excel sheet", err.Error())
		return
	}

	headerRow := sheet.AddRow()
	headerRow.AddCell().SetString("DABBADASH - Order Report")
	headerRow = sheet.AddRow()
	headerRow.AddCell().SetString("42 Spice Lane, Koramangala, Bengaluru")
	headerRow = sheet.AddRow()
	headerRow.AddCell().SetString("Email: support@dabbadash.in")
	headerRow = sheet.AddRow()
	headerRow.AddCell().SetString("Period: " + strings.ToUpper(period) + " | " + startDate.Format("2006-01-02") + " to " + endDate.Format("2006-01-02"))
	sheet.AddRow() // spacing

	headers := []string{"Order ID", "User ID", "User Name", "Date", "Type", "Items", "Total", "Discount", "Coupon", "Payment Status", "Status"}
	row := sheet.AddRow()
	for _, h := range headers {
		row.AddCell().SetString(h)
	}

	for _, order := range orders {
		itemCount := 0
		for _, item := range order.Items {
			itemCount += item.Quantity
		}
		row := sheet.AddRow()
		row.AddCell().SetInt(int(order.ID))
		row.AddCell().SetInt(int(order.UserID))
		row.AddCell().SetString(order.User.Name)
		row.AddCell().SetString(order.CreatedAt.Format("2006-01-02 15:04"))
		row.AddCell().SetString(order.Type)
		row.AddCell().SetInt(itemCount)
		row.AddCell().SetString(fmt.Sprintf("%.2f", order.TotalAmount))
		row.AddCell().SetString(fmt.Sprintf("%.2f", order.DiscountAmount))
		row.AddCell().SetString(order.CouponCode)
		row.AddCell().SetString(order.PaymentStatus)
		row.AddCell().SetString(order.Status)
	}

	sheet.AddRow() // spacing
	summaryRows := [][2]string{
		{"Total Orders", fmt.Sprintf("%d", summary.TotalOrders)},
		{"Total Revenue", fmt.Sprintf("%.2f", summary.TotalRevenue)},
		{"Total Items", fmt.Sprintf("%d", summary.TotalItems)},
		{"Total Customers", fmt.Sprintf("%d", summary.TotalCustomers)},
		{"Total Discounts", fmt.Sprintf("%.2f", summary.TotalDiscounts)},
		{"Average Order Value", fmt.Sprintf("%.2f", summary.AverageOrderVal)},
	}
	for _, sr := range summaryRows {
		row := sheet.AddRow()
		row.AddCell().SetString(sr[0])
		row.AddCell().SetString(sr[1])
	}
	for orderType, count := range byType {
		row := sheet.AddRow()
		row.AddCell().SetString("Orders (" + orderType + ")")
		row.AddCell().SetInt(count)
	}

	var buf bytes.Buffer
	if err := file.Write(&buf); err != nil {
		utils.LogError("Failed to write Excel file: %v", err)
		utils.InternalServerError(c, "Failed to generate report", err.Error())
		return
	}
	utils.LogInfo("Generated order report for period: %s", period)

	filename := fmt.Sprintf("order-report-%s-%s.xlsx", period, now.Format("2006-01-02"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
