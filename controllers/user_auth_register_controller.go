package controllers

import (
	"time"

	"github.com/Nithin-812/DabbaDash/config"
	"github.com/Nithin-812/DabbaDash/models"
	"github.com/Nithin-812/DabbaDash/utils"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// RegisterRequest represents the registration request body
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Phone    string `json:"phone"`
}

// RegistrationData represents the pending registration stored in session
// until the OTP is verified
type RegistrationData struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	Phone      string `json:"phone"`
	OTP        string `json:"otp"`
	OTPExpires int64  `json:"otp_expires"`
}

// RegisterUser validates the registration request, mails an OTP and parks
// the pending registration in the session
func RegisterUser(c *gin.Context) {
	utils.LogInfo("RegisterUser called")

	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid registration request: %v", err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	req.Name = utils.SanitizeString(req.Name)
	var fieldErrs utils.FieldValidationErrors
	if !utils.ValidateEmail(req.Email) {
		fieldErrs = append(fieldErrs, utils.FieldValidationError{Field: "email", Message: "invalid email address"})
	}
	if req.Phone != "" && !utils.ValidatePhone(req.Phone) {
		fieldErrs = append(fieldErrs, utils.FieldValidationError{Field: "phone", Message: "invalid phone number"})
	}
	if err := utils.ValidatePassword(req.Password); err != nil {
		fieldErrs = append(fieldErrs, utils.FieldValidationError{Field: "password", Message: err.Error()})
	}
	if len(fieldErrs) > 0 {
		utils.LogError("Registration validation failed: %v", fieldErrs)
		utils.ValidationError(c, "Validation failed", fieldErrs)
		return
	}

	var existing models.User
	if err := config.DB.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		utils.LogError("Registration attempted with existing email: %s", req.Email)
		utils.BadRequest(c, "Email already registered", nil)
		return
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		utils.LogError("Failed to hash password: %v", err)
		utils.InternalServerError(c, "Failed to process registration", nil)
		return
	}

	otp := utils.GenerateOTP()
	data := RegistrationData{
		Name:       req.Name,
		Email:      req.Email,
		Password:   hashed,
		Phone:      req.Phone,
		OTP:        otp,
		OTPExpires: time.Now().Add(15 * time.Minute).Unix(),
	}

	session := sessions.Default(c)
	session.Set("registration_data", data)
	if err := session.Save(); err != nil {
		utils.LogError("Failed to save session: %v", err)
		utils.InternalServerError(c, "Failed to save session", err.Error())
		return
	}

	if err := utils.SendOTP(req.Email, otp); err != nil {
		utils.LogError("Failed to send OTP to %s: %v", req.Email, err)
		utils.InternalServerError(c, "Failed to send verification email", nil)
		return
	}

	utils.LogInfo("Registration OTP sent to %s", req.Email)
	utils.Success(c, "OTP sent to your email. Please verify to complete registration.", gin.H{
		"email": req.Email,
	})
}

// VerifyOTPRequest represents the OTP verification request body
type VerifyOTPRequest struct {
	Email string `json:"email" binding:"required"`
	OTP   string `json:"otp" binding:"required"`
}

// VerifyOTP completes a pending registration
func VerifyOTP(c *gin.Context) {
	utils.LogInfo("VerifyOTP called")

	var req VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid OTP verification request: %v", err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	session := sessions.Default(c)
	val := session.Get("registration_data")
	data, ok := val.(RegistrationData)
	if !ok {
		utils.LogError("No pending registration in session for %s", req.Email)
		utils.BadRequest(c, "No pending registration found. Please register again.", nil)
		return
	}

	if data.Email != req.Email {
		utils.BadRequest(c, "Email does not match pending registration", nil)
		return
	}
	if time.Now().Unix() > data.OTPExpires {
		utils.BadRequest(c, "OTP has expired. Please register again.", nil)
		return
	}
	if data.OTP != req.OTP {
		utils.LogError("OTP mismatch for %s", req.Email)
		utils.BadRequest(c, "Invalid OTP", nil)
		return
	}

	user := models.User{
		Name:       data.Name,
		Email:      data.Email,
		Password:   data.Password,
		Phone:      data.Phone,
		Role:       models.RoleUser,
		IsVerified: true,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		utils.LogError("Failed to create user %s: %v", data.Email, err)
		utils.InternalServerError(c, "Failed to create user", err.Error())
		return
	}

	session.Delete("registration_data")
	_ = session.Save()

	token, err := utils.GenerateToken(&user)
	if err != nil {
		utils.LogError("Failed to generate token for %s: %v", user.Email, err)
		utils.InternalServerError(c, "Failed to generate token", nil)
		return
	}

	utils.LogInfo("User %d registered successfully", user.ID)
	utils.Created(c, "Registration complete", gin.H{
		"token": token,
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"role":  user.Role,
		},
	})
}
