package db

import (
	"github.com/fallowfield/lendora/internal/models"
	"gorm.io/gorm"
)

type ReportRepository struct {
	database *gorm.DB
}

func NewReportRepository(database *gorm.DB) *ReportRepository {
	return &ReportRepository{database: database}
}

func (repo *ReportRepository) CountLoans() (int64, error) {
	var count int64
	err := repo.database.Model(&models.Loan{}).Count(&count).Error
	return count, err
}

func (repo *ReportRepository) CountLoansByStatus(status string) (int64, error) {
	var count int64
	err := repo.database.Model(&models.Loan{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

// ApprovedAmountTotal sums the remaining balances of approved loans, which is
// what "amount" holds once payments start coming in.
func (repo *ReportRepository) ApprovedAmountTotal() (float64, error) {
	var total *float64
	err := repo.database.Model(&models.Loan{}).
		Where("status = ?", models.LoanStatusApproved).
		Select("SUM(amount)").
		Scan(&total).Error
	if err != nil || total == nil {
		return 0, err
	}
	return *total, nil
}

// AverageCreditScore averages across every profile row, historical rows
// included, matching the admin analytics contract.
func (repo *ReportRepository) AverageCreditScore() (float64, error) {
	var average *float64
	err := repo.database.Model(&models.Profile{}).
		Select("AVG(credit_score)").
		Scan(&average).Error
	if err != nil || average == nil {
		return 0, err
	}
	return *average, nil
}
