package db

import (
	"errors"
	"time"

	"github.com/fallowfield/lendora/internal/models"
	"gorm.io/gorm"
)

const AdminUsername = "admin"

// EnsureAdminUser seeds the single administrator account on first start.
// An existing admin row is never touched, so password changes survive
// restarts. The default credential must be rotated before any real
// deployment; main.go reads it from ADMIN_PASSWORD.
func EnsureAdminUser(database *gorm.DB, passwordHash string) error {
	var existing models.User
	err := database.Where("username = ?", AdminUsername).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	admin := models.User{
		Username:     AdminUsername,
		PasswordHash: passwordHash,
		FullName:     "Administrator",
		Email:        "admin@lendora.local",
		Role:         models.RoleAdmin,
		CreatedAt:    time.Now(),
	}
	return database.Create(&admin).Error
}
