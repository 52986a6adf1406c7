package services

import (
	"time"

	"github.com/fallowfield/lendora/internal/models"
	"gorm.io/gorm"
)

type fakeProfileRepository struct {
	rows   []models.Profile
	nextID uint
}

func (repo *fakeProfileRepository) Create(profile *models.Profile) error {
	repo.nextID++
	profile.ID = repo.nextID
	repo.rows = append(repo.rows, *profile)
	return nil
}

func (repo *fakeProfileRepository) FindLatestByUserID(userID uint) (models.Profile, error) {
	for i := len(repo.rows) - 1; i >= 0; i-- {
		if repo.rows[i].UserID == userID {
			return repo.rows[i], nil
		}
	}
	return models.Profile{}, gorm.ErrRecordNotFound
}

func (repo *fakeProfileRepository) ListByUserID(userID uint) ([]models.Profile, error) {
	matched := make([]models.Profile, 0)
	for i := len(repo.rows) - 1; i >= 0; i-- {
		if repo.rows[i].UserID == userID {
			matched = append(matched, repo.rows[i])
		}
	}
	return matched, nil
}

type fakeLoanRepository struct {
	loans    map[uint]*models.Loan
	payments []models.Payment
	nextID   uint
}

func newFakeLoanRepository() *fakeLoanRepository {
	return &fakeLoanRepository{loans: make(map[uint]*models.Loan)}
}

func (repo *fakeLoanRepository) Create(loan *models.Loan) error {
	repo.nextID++
	loan.ID = repo.nextID
	stored := *loan
	repo.loans[loan.ID] = &stored
	return nil
}

func (repo *fakeLoanRepository) FindByID(loanID uint) (models.Loan, error) {
	loan, ok := repo.loans[loanID]
	if !ok {
		return models.Loan{}, gorm.ErrRecordNotFound
	}
	return *loan, nil
}

func (repo *fakeLoanRepository) ListByUserID(userID uint) ([]models.Loan, error) {
	matched := make([]models.Loan, 0)
	for id := uint(1); id <= repo.nextID; id++ {
		if loan, ok := repo.loans[id]; ok && loan.UserID == userID {
			matched = append(matched, *loan)
		}
	}
	return matched, nil
}

func (repo *fakeLoanRepository) ListAllWithBorrowers() ([]models.BorrowerLoan, error) {
	rows := make([]models.BorrowerLoan, 0)
	for id := uint(1); id <= repo.nextID; id++ {
		if loan, ok := repo.loans[id]; ok {
			rows = append(rows, models.BorrowerLoan{Loan: *loan, Username: "borrower"})
		}
	}
	return rows, nil
}

func (repo *fakeLoanRepository) SetStatus(loanID uint, status string) error {
	loan, ok := repo.loans[loanID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	loan.Status = status
	return nil
}

func (repo *fakeLoanRepository) Approve(loanID uint, approvedAt time.Time, dueAt time.Time) error {
	loan, ok := repo.loans[loanID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	loan.Status = models.LoanStatusApproved
	loan.ApprovedAt = &approvedAt
	loan.DueAt = &dueAt
	return nil
}

func (repo *fakeLoanRepository) RecordPayment(loanID uint, amount float64, paidAt time.Time) (bool, error) {
	loan, ok := repo.loans[loanID]
	if !ok || loan.Status != models.LoanStatusApproved || loan.Amount < amount {
		return false, nil
	}
	loan.Amount -= amount
	repo.payments = append(repo.payments, models.Payment{
		LoanID: loanID,
		Amount: amount,
		PaidAt: paidAt,
	})
	return true, nil
}

func (repo *fakeLoanRepository) ListPaymentsByLoanID(loanID uint) ([]models.Payment, error) {
	matched := make([]models.Payment, 0)
	for _, payment := range repo.payments {
		if payment.LoanID == loanID {
			matched = append(matched, payment)
		}
	}
	return matched, nil
}

func fixedRatio(ratio float64) PaymentHistorySampler {
	return func() float64 { return ratio }
}
