package controllers

import (
	"os"

	"github.com/Nithin-812/DabbaDash/config"
	"github.com/Nithin-812/DabbaDash/models"
	"github.com/Nithin-812/DabbaDash/utils"
)

// CreateSampleAdmin ensures an admin account exists at startup. Credentials
// come from ADMIN_EMAIL/ADMIN_PASSWORD, with dev defaults.
func CreateSampleAdmin() error {
	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@dabbadash.in"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "Admin@1234"
	}

	var existing models.User
	if err := config.DB.Where("email = ?", email).First(&existing).Error; err == nil {
		return nil
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	admin := models.User{
		Name:       "Admin",
		Email:      email,
		Password:   hashed,
		Role:       models.RoleAdmin,
		IsVerified: true,
	}
	if err := config.DB.Create(&admin).Error; err != nil {
		return err
	}

	utils.LogInfo("Created sample admin account: %s", email)
	return nil
}
