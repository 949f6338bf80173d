package models

import (
	"time"

	"gorm.io/gorm"
)

type AdminUser struct {
	gorm.Model
	Email         string `gorm:"uniqueIndex;not null"`
	Password      string `gorm:"not null"`
	FullName      string
	ResetToken    string
	ResetTokenExp time.Time
}
