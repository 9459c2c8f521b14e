package controllers

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/Nithin-812/DabbaDash/models"
	"github.com/Nithin-812/DabbaDash/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	razorpay "github.com/razorpay/razorpay-go"
)

func razorpayClient() *razorpay.Client {
	return razorpay.NewClient(os.Getenv("RAZORPAY_KEY_ID"), os.Getenv("RAZORPAY_KEY_SECRET"))
}

// createPaymentIntent asks the gateway for a payment order over the given
// rupee amount and returns the raw gateway response
func createPaymentIntent(amount float64, receiptPrefix string) (map[string]interface{}, error) {
	orderData := map[string]interface{}{
		"amount":   int(math.Round(amount * 100)), // paise
		"currency": "INR",
		"receipt":  fmt.Sprintf("%s_%s", receiptPrefix, uuid.New().String()[:8]),
	}
	rzOrder, err := razorpayClient().Order.Create(orderData, nil)
	if err != nil {
		return nil, utils.UpstreamError("payment gateway rejected order creation", err)
	}
	return rzOrder, nil
}

// respondPaymentIntentError maps a gateway failure onto the response. Upstream
// rejections surface as 502, anything else as 500.
func respondPaymentIntentError(c *gin.Context, err error) {
	var appErr *utils.AppError
	if errors.As(err, &appErr) {
		utils.Error(c, appErr.Code, appErr.Message, nil)
		return
	}
	utils.InternalServerError(c, "Error creating payment order", err.Error())
}

// CreateRazorpayOrderRequest represents the intent request body
type CreateRazorpayOrderRequest struct {
	Amount float64 `json:"amount" binding:"required"`
}

// CreateRazorpayOrder creates a payment intent for a cart checkout and
// returns the gateway handle unchanged
func CreateRazorpayOrder(c *gin.Context) {
	utils.LogInfo("CreateRazorpayOrder called")

	userVal, exists := c.Get("user")
	if !exists {
		utils.LogError("User not found in context")
		utils.Unauthorized(c, "User not found")
		return
	}
	user := userVal.(models.User)

	var req CreateRazorpayOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid intent request for user ID: %d: %v", user.ID, err)
		utils.BadRequest(c, "Invalid request. amount is required", err.Error())
		return
	}
	if req.Amount <= 0 {
		utils.BadRequest(c, "Amount must be greater than zero", nil)
		return
	}

	rzOrder, err := createPaymentIntent(req.Amount, "receipt_cart")
	if err != nil {
		utils.LogError("Failed to create Razorpay order for user ID: %d: %v", user.ID, err)
		respondPaymentIntentError(c, err)
		return
	}

	utils.LogInfo("Created Razorpay order %v for user ID: %d", rzOrder["id"], user.ID)
	utils.Success(c, "Payment order created", gin.H{
		"id":       rzOrder["id"],
		"currency": rzOrder["currency"],
		"amount":   rzOrder["amount"],
	})
}

// VerifyPaymentRequest represents the payment confirmation request body
type VerifyPaymentRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id" binding:"required"`
	RazorpayPaymentID string `json:"razorpay_payment_id" binding:"required"`
	RazorpaySignature string `json:"razorpay_signature" binding:"required"`
}

// VerifyPayment checks the gateway confirmation signature. This is purely
// functional: nothing is persisted here, and a mismatch must stop the
// client from proceeding to order creation.
func VerifyPayment(c *gin.Context) {
	utils.LogInfo("VerifyPayment called")

	var req VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid verification request: %v", err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	secret := os.Getenv("RAZORPAY_KEY_SECRET")
	if !utils.VerifyRazorpaySignature(req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature, secret) {
		utils.LogError("Payment signature mismatch for order %s", req.RazorpayOrderID)
		utils.BadRequest(c, "Invalid payment signature", nil)
		return
	}

	utils.LogInfo("Payment signature verified for order %s", req.RazorpayOrderID)
	utils.Success(c, "Payment verified successfully", gin.H{
		"payment_id": req.RazorpayPaymentID,
	})
}
