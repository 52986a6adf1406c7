package db

import (
	"time"

	"github.com/fallowfield/lendora/internal/models"
	"gorm.io/gorm"
)

type LoanRepository struct {
	database *gorm.DB
}

func NewLoanRepository(database *gorm.DB) *LoanRepository {
	return &LoanRepository{database: database}
}

func (repo *LoanRepository) Create(loan *models.Loan) error {
	return repo.database.Create(loan).Error
}

func (repo *LoanRepository) FindByID(loanID uint) (models.Loan, error) {
	var loan models.Loan
	if err := repo.database.First(&loan, loanID).Error; err != nil {
		return models.Loan{}, err
	}
	return loan, nil
}

func (repo *LoanRepository) ListByUserID(userID uint) ([]models.Loan, error) {
	loans := make([]models.Loan, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("id").
		Find(&loans).Error; err != nil {
		return nil, err
	}
	return loans, nil
}

func (repo *LoanRepository) ListAllWithBorrowers() ([]models.BorrowerLoan, error) {
	rows := make([]models.BorrowerLoan, 0)
	if err := repo.database.
		Model(&models.Loan{}).
		Select("loans.*, users.username AS username").
		Joins("JOIN users ON users.id = loans.user_id").
		Order("loans.id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (repo *LoanRepository) SetStatus(loanID uint, status string) error {
	return repo.database.Model(&models.Loan{}).Where("id = ?", loanID).Update("status", status).Error
}

func (repo *LoanRepository) Approve(loanID uint, approvedAt time.Time, dueAt time.Time) error {
	return repo.database.Model(&models.Loan{}).Where("id = ?", loanID).Updates(map[string]any{
		"status":      models.LoanStatusApproved,
		"approved_at": approvedAt,
		"due_at":      dueAt,
	}).Error
}

// RecordPayment appends a payment row and decrements the loan balance in one
// transaction. The decrement is conditional on the current balance still
// covering the payment, so two concurrent payments cannot drive the balance
// negative; applied reports whether the balance row was actually updated.
func (repo *LoanRepository) RecordPayment(loanID uint, amount float64, paidAt time.Time) (applied bool, err error) {
	err = repo.database.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Loan{}).
			Where("id = ? AND status = ? AND amount >= ?", loanID, models.LoanStatusApproved, amount).
			Update("amount", gorm.Expr("amount - ?", amount))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}

		applied = true
		return tx.Create(&models.Payment{
			LoanID: loanID,
			Amount: amount,
			PaidAt: paidAt,
		}).Error
	})
	if err != nil {
		return false, err
	}
	return applied, nil
}

func (repo *LoanRepository) ListPaymentsByLoanID(loanID uint) ([]models.Payment, error) {
	payments := make([]models.Payment, 0)
	if err := repo.database.
		Where("loan_id = ?", loanID).
		Order("id").
		Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}
