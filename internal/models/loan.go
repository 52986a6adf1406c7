package models

import "time"

const (
	LoanStatusPending  = "pending"
	LoanStatusApproved = "approved"
	LoanStatusRejected = "rejected"
)

// DefaultPenaltyRate is the yearly penalty rate applied to overdue balances
// when computing the informational late fee.
const DefaultPenaltyRate = 0.05

// Loan.Amount always holds the remaining balance: payments decrement it in
// place and the original principal is not retained separately.
type Loan struct {
	ID           uint    `gorm:"primaryKey"`
	UserID       uint    `gorm:"not null;index"`
	Amount       float64 `gorm:"not null"`
	InterestRate float64 `gorm:"not null"`
	TermMonths   int     `gorm:"not null"`
	Status       string  `gorm:"not null;default:pending"`
	Purpose      string
	AppliedAt    time.Time `gorm:"not null"`
	ApprovedAt   *time.Time
	DueAt        *time.Time
	PenaltyRate  float64 `gorm:"not null;default:0.05"`
}

// BorrowerLoan is the admin read model: a loan joined with its borrower's
// username.
type BorrowerLoan struct {
	Loan
	Username string
}

func IsValidLoanStatus(status string) bool {
	switch status {
	case LoanStatusPending, LoanStatusApproved, LoanStatusRejected:
		return true
	default:
		return false
	}
}
