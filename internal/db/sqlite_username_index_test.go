package db

import (
	"testing"
	"time"

	"github.com/fallowfield/lendora/internal/models"
)

func TestOpenSQLiteCreatesUniqueUsernameIndex(t *testing.T) {
	database := openTestDatabase(t)

	seedTestUser(t, database, "alice")

	duplicate := models.User{
		Username:     "alice",
		PasswordHash: "other-hash",
		FullName:     "Other Alice",
		Email:        "other@lendora.local",
		Role:         models.RoleBorrower,
		CreatedAt:    time.Now().UTC(),
	}
	if err := database.Create(&duplicate).Error; err == nil {
		t.Fatal("expected duplicate username insert to fail")
	}
}
