package services

import (
	"time"

	"github.com/fallowfield/lendora/internal/models"
)

const (
	autoApproveMinCreditScore = 650
	autoApproveIncomeShare    = 0.5
	daysPerTermMonth          = 30
)

// Quote is the rate and approval chance offered for a credit score band.
type Quote struct {
	InterestRate   float64
	ApprovalChance string
}

// QuoteTerms maps a credit score to the fixed rate table. Breakpoints are
// inclusive on their lower bound.
func QuoteTerms(creditScore int) Quote {
	switch {
	case creditScore >= 750:
		return Quote{InterestRate: 5.5, ApprovalChance: "Very High"}
	case creditScore >= 700:
		return Quote{InterestRate: 6.5, ApprovalChance: "High"}
	case creditScore >= 650:
		return Quote{InterestRate: 8.0, ApprovalChance: "Moderate"}
	case creditScore >= 600:
		return Quote{InterestRate: 10.5, ApprovalChance: "Low"}
	default:
		return Quote{InterestRate: 15.0, ApprovalChance: "Very Low"}
	}
}

// DecideApplication auto-approves when the score reaches 650 and the
// requested amount is at most half the declared income. A zero income can
// never satisfy the amount rule, so those applications always stay pending.
func DecideApplication(creditScore int, amount float64, income float64) string {
	if creditScore >= autoApproveMinCreditScore && amount <= income*autoApproveIncomeShare {
		return models.LoanStatusApproved
	}
	return models.LoanStatusPending
}

// LoanDueDate computes the repayment deadline as termMonths thirty-day
// months after approval.
func LoanDueDate(approvedAt time.Time, termMonths int) time.Time {
	return approvedAt.AddDate(0, 0, termMonths*daysPerTermMonth)
}

// DaysOverdue floors to whole days; partial days do not count.
func DaysOverdue(now time.Time, dueAt time.Time) int {
	if !now.After(dueAt) {
		return 0
	}
	return int(now.Sub(dueAt).Hours() / 24)
}

// OverduePenalty is the simple-interest late charge shown to the borrower.
// It is informational only and is never added to the stored balance.
func OverduePenalty(remaining float64, penaltyRate float64, daysOverdue int) float64 {
	if daysOverdue <= 0 {
		return 0
	}
	return remaining * penaltyRate * float64(daysOverdue) / 365
}
