package services

import (
	"errors"
	"time"

	"github.com/fallowfield/lendora/internal/models"
)

var (
	ErrProfileRequired       = errors.New("profile required before applying")
	ErrInvalidLoanAmount     = errors.New("invalid loan amount")
	ErrInvalidLoanTerm       = errors.New("invalid loan term")
	ErrLoanNotFound          = errors.New("loan not found")
	ErrLoanNotPayable        = errors.New("loan is not accepting payments")
	ErrInvalidPaymentAmount  = errors.New("invalid payment amount")
	ErrPaymentExceedsBalance = errors.New("payment exceeds remaining balance")
	ErrInvalidLoanStatus     = errors.New("invalid loan status")
)

const (
	MinLoanAmount = 100
	MaxLoanAmount = 1_000_000
	MinLoanTerm   = 6
	MaxLoanTerm   = 60
)

type LoanRepository interface {
	Create(loan *models.Loan) error
	FindByID(loanID uint) (models.Loan, error)
	ListByUserID(userID uint) ([]models.Loan, error)
	ListAllWithBorrowers() ([]models.BorrowerLoan, error)
	SetStatus(loanID uint, status string) error
	Approve(loanID uint, approvedAt time.Time, dueAt time.Time) error
	RecordPayment(loanID uint, amount float64, paidAt time.Time) (bool, error)
	ListPaymentsByLoanID(loanID uint) ([]models.Payment, error)
}

type LoanService struct {
	loans    LoanRepository
	profiles ProfileRepository
}

func NewLoanService(loans LoanRepository, profiles ProfileRepository) *LoanService {
	return &LoanService{loans: loans, profiles: profiles}
}

func ValidateLoanRequest(amount float64, termMonths int) error {
	if amount < MinLoanAmount || amount > MaxLoanAmount {
		return ErrInvalidLoanAmount
	}
	if termMonths < MinLoanTerm || termMonths > MaxLoanTerm {
		return ErrInvalidLoanTerm
	}
	return nil
}

// Apply creates a loan application for the user's newest profile. The
// auto-approval decision uses the stored credit score and income; an
// auto-approved loan is stamped with its approval and due dates immediately,
// anything else starts out pending for admin review.
func (service *LoanService) Apply(userID uint, amount float64, termMonths int, purpose string, now time.Time) (models.Loan, error) {
	if err := ValidateLoanRequest(amount, termMonths); err != nil {
		return models.Loan{}, err
	}

	profile, err := service.profiles.FindLatestByUserID(userID)
	if err != nil {
		return models.Loan{}, ErrProfileRequired
	}

	quote := QuoteTerms(profile.CreditScore)
	status := DecideApplication(profile.CreditScore, amount, profile.Income)

	loan := models.Loan{
		UserID:       userID,
		Amount:       amount,
		InterestRate: quote.InterestRate,
		TermMonths:   termMonths,
		Status:       status,
		Purpose:      purpose,
		AppliedAt:    now,
		PenaltyRate:  models.DefaultPenaltyRate,
	}
	if status == models.LoanStatusApproved {
		approvedAt := now
		dueAt := LoanDueDate(now, termMonths)
		loan.ApprovedAt = &approvedAt
		loan.DueAt = &dueAt
	}

	if err := service.loans.Create(&loan); err != nil {
		return models.Loan{}, err
	}
	return loan, nil
}

func (service *LoanService) ListForUser(userID uint) ([]models.Loan, error) {
	return service.loans.ListByUserID(userID)
}

func (service *LoanService) ListAllWithBorrowers() ([]models.BorrowerLoan, error) {
	return service.loans.ListAllWithBorrowers()
}

func (service *LoanService) FindForUser(userID uint, loanID uint) (models.Loan, error) {
	loan, err := service.loans.FindByID(loanID)
	if err != nil || loan.UserID != userID {
		return models.Loan{}, ErrLoanNotFound
	}
	return loan, nil
}

// Pay records a manual payment against the borrower's own approved loan.
// The payment must satisfy 0 < amount <= remaining balance; paying the exact
// remaining balance is allowed and leaves the balance at zero. The final
// balance check happens inside the store transaction, so a concurrent
// payment that empties the loan first surfaces as ErrPaymentExceedsBalance.
func (service *LoanService) Pay(userID uint, loanID uint, amount float64, now time.Time) error {
	loan, err := service.FindForUser(userID, loanID)
	if err != nil {
		return err
	}
	if loan.Status != models.LoanStatusApproved {
		return ErrLoanNotPayable
	}
	if amount <= 0 {
		return ErrInvalidPaymentAmount
	}
	if amount > loan.Amount {
		return ErrPaymentExceedsBalance
	}

	applied, err := service.loans.RecordPayment(loanID, amount, now)
	if err != nil {
		return err
	}
	if !applied {
		return ErrPaymentExceedsBalance
	}
	return nil
}

// UpdateStatus is the admin review action. Approving stamps the approval and
// due dates; moving to pending or rejected changes the status only and leaves
// any previous dates untouched.
func (service *LoanService) UpdateStatus(loanID uint, newStatus string, now time.Time) error {
	if !models.IsValidLoanStatus(newStatus) {
		return ErrInvalidLoanStatus
	}

	loan, err := service.loans.FindByID(loanID)
	if err != nil {
		return ErrLoanNotFound
	}

	if newStatus == models.LoanStatusApproved {
		return service.loans.Approve(loan.ID, now, LoanDueDate(now, loan.TermMonths))
	}
	return service.loans.SetStatus(loan.ID, newStatus)
}

func (service *LoanService) PaymentsForLoan(loanID uint) ([]models.Payment, error) {
	return service.loans.ListPaymentsByLoanID(loanID)
}
