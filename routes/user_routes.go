package routes

import (
	"github.com/Nithin-812/DabbaDash/controllers"
	"github.com/Nithin-812/DabbaDash/middleware"
	"github.com/gin-gonic/gin"
)

// initUserRoutes initializes public and user-facing routes
func initUserRoutes(router *gin.RouterGroup) {
	// Public routes (no authentication required)
	router.POST("/auth/register", controllers.RegisterUser)
	router.POST("/auth/verify-otp", controllers.VerifyOTP)
	router.POST("/auth/login", controllers.LoginUser)

	router.GET("/plans", controllers.GetPlans)
	router.GET("/menu", controllers.GetMenu)
	router.GET("/event-items", controllers.GetEventItems)

	// Protected routes (require authentication)
	protected := router.Group("")
	protected.Use(middleware.AuthMiddleware())
	{
		// Orders and checkout
		protected.POST("/orders", controllers.CreateOrder)
		protected.GET("/orders/myorders", controllers.GetMyOrders)
		protected.POST("/orders/razorpay", controllers.CreateRazorpayOrder)
		protected.POST("/orders/verify", controllers.VerifyPayment)
		protected.GET("/orders/:id", controllers.GetOrderByID)
		protected.GET("/orders/:id/invoice", controllers.DownloadInvoice)

		// Subscriptions
		protected.POST("/subscriptions", controllers.BuySubscription)
		protected.POST("/subscriptions/verify", controllers.VerifySubscriptionPayment)
		protected.POST("/subscriptions/cancel", controllers.CancelSubscription)
		protected.POST("/subscriptions/renew-init", controllers.RenewSubscription)
		protected.POST("/subscriptions/renew-verify", controllers.VerifyRenewal)
		protected.GET("/subscriptions/me", controllers.GetMySubscription)

		// Coupons
		protected.GET("/coupons/active", controllers.GetActiveCoupons)
		protected.POST("/coupons/validate", controllers.ValidateCoupon)

		// Complaints
		protected.POST("/complaints", controllers.CreateComplaint)
		protected.GET("/complaints/my", controllers.GetMyComplaints)
	}
}
