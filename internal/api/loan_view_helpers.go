package api

import (
	"time"

	"github.com/fallowfield/lendora/internal/models"
	"github.com/fallowfield/lendora/internal/services"
)

// loanView decorates a loan with the overdue state computed for display.
// The penalty is informational and never mutates the stored balance.
type loanView struct {
	models.Loan
	DaysOverdue int
	Penalty     float64
	IsOverdue   bool
	IsPaidOff   bool
}

func buildLoanView(loan models.Loan, now time.Time) loanView {
	view := loanView{Loan: loan}
	view.IsPaidOff = loan.Status == models.LoanStatusApproved && loan.Amount <= 0

	if loan.Status != models.LoanStatusApproved || loan.DueAt == nil || loan.Amount <= 0 {
		return view
	}

	view.DaysOverdue = services.DaysOverdue(now, *loan.DueAt)
	if view.DaysOverdue > 0 {
		view.IsOverdue = true
		view.Penalty = services.OverduePenalty(loan.Amount, loan.PenaltyRate, view.DaysOverdue)
	}
	return view
}

func buildLoanViews(loans []models.Loan, now time.Time) []loanView {
	views := make([]loanView, 0, len(loans))
	for _, loan := range loans {
		views = append(views, buildLoanView(loan, now))
	}
	return views
}

type borrowerLoanView struct {
	loanView
	Username string
}

func buildBorrowerLoanViews(rows []models.BorrowerLoan, now time.Time) []borrowerLoanView {
	views := make([]borrowerLoanView, 0, len(rows))
	for _, row := range rows {
		views = append(views, borrowerLoanView{
			loanView: buildLoanView(row.Loan, now),
			Username: row.Username,
		})
	}
	return views
}
