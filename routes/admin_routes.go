package routes

import (
	"github.com/Nithin-812/DabbaDash/controllers"
	"github.com/Nithin-812/DabbaDash/middleware"
	"github.com/gin-gonic/gin"
)

// initAdminRoutes initializes staff and admin routes
func initAdminRoutes(router *gin.RouterGroup) {
	// Staff routes: admins and employees
	staff := router.Group("")
	staff.Use(middleware.AuthMiddleware(), middleware.StaffMiddleware())
	{
		staff.GET("/orders", controllers.GetOrders)
		staff.PUT("/orders/:id/status", controllers.UpdateOrderStatus)

		staff.GET("/subscriptions", controllers.GetSubscriptions)
		staff.POST("/subscriptions/:id/cancel", controllers.AdminCancelSubscription)

		staff.GET("/complaints", controllers.GetComplaints)
		staff.PUT("/complaints/:id", controllers.UpdateComplaint)
	}

	// Admin-only routes: catalog and reporting
	admin := router.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.POST("/plans", controllers.CreatePlan)
		admin.PUT("/plans/:id", controllers.UpdatePlan)
		admin.DELETE("/plans/:id", controllers.DeletePlan)

		admin.POST("/menu", controllers.CreateMenu)
		admin.PUT("/menu/:id", controllers.UpdateMenu)
		admin.DELETE("/menu/:id", controllers.DeleteMenu)

		admin.POST("/coupons", controllers.CreateCoupon)
		admin.GET("/coupons", controllers.GetCoupons)
		admin.DELETE("/coupons/:id", controllers.DeleteCoupon)

		admin.POST("/event-items", controllers.CreateEventItem)
		admin.PUT("/event-items/:id", controllers.UpdateEventItem)
		admin.DELETE("/event-items/:id", controllers.DeleteEventItem)

		admin.GET("/reports/orders/excel", controllers.DownloadOrderReportExcel)
	}
}
