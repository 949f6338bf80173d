package services

import (
	"log"
	"os"

	"backend/config"
	"backend/models"
	"backend/utils"
)

func FindAdminByEmail(email string) (models.AdminUser, error) {
	var admin models.AdminUser
	err := config.DB.Where("email = ?", email).First(&admin).Error
	return admin, err
}

func RegisterAdmin(email, password, fullName string) error {
	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	admin := models.AdminUser{
		Email:    email,
		Password: hashedPassword,
		FullName: fullName,
	}
	return config.DB.Create(&admin).Error
}

// SeedAdmin creates the initial admin account from ADMIN_EMAIL/ADMIN_PASSWORD
// when it does not exist yet. Admins are otherwise provisioned out of band.
func SeedAdmin() {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		return
	}

	if _, err := FindAdminByEmail(email); err == nil {
		return
	}

	if err := RegisterAdmin(email, password, "Administrator"); err != nil {
		log.Printf("Failed to seed admin account: %v", err)
	}
}
