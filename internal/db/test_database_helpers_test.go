package db

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/fallowfield/lendora/internal/models"
	"gorm.io/gorm"
)

func openTestDatabase(t *testing.T) *gorm.DB {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "lendora-test.db")
	database, err := OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return database
}

func seedTestUser(t *testing.T, database *gorm.DB, username string) models.User {
	t.Helper()

	user := models.User{
		Username:     username,
		PasswordHash: "test-hash",
		FullName:     "Test User",
		Email:        username + "@lendora.local",
		Role:         models.RoleBorrower,
		CreatedAt:    time.Now().UTC(),
	}
	if err := database.Create(&user).Error; err != nil {
		t.Fatalf("seed user %s: %v", username, err)
	}
	return user
}

func seedApprovedLoan(t *testing.T, database *gorm.DB, userID uint, amount float64) models.Loan {
	t.Helper()

	now := time.Now().UTC()
	due := now.AddDate(0, 0, 360)
	loan := models.Loan{
		UserID:       userID,
		Amount:       amount,
		InterestRate: 6.5,
		TermMonths:   12,
		Status:       models.LoanStatusApproved,
		AppliedAt:    now,
		ApprovedAt:   &now,
		DueAt:        &due,
		PenaltyRate:  models.DefaultPenaltyRate,
	}
	if err := database.Create(&loan).Error; err != nil {
		t.Fatalf("seed loan: %v", err)
	}
	return loan
}
