package api

import (
	"time"

	"github.com/fallowfield/lendora/internal/models"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) ShowDashboard(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	handler.ensureDependencies()
	profile, hasProfile, err := handler.profileService.LatestProfile(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load profile")
	}

	loans, err := handler.loanService.ListForUser(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load loans")
	}

	now := time.Now().In(handler.location)
	views := buildLoanViews(loans, now)

	flash := handler.popFlashCookie(c)
	return handler.render(c, "dashboard", fiber.Map{
		"Title":          "Dashboard",
		"HasProfile":     hasProfile,
		"Profile":        profile,
		"Loans":          views,
		"ActiveLoans":    countLoansByStatus(loans, models.LoanStatusApproved),
		"PendingLoans":   countLoansByStatus(loans, models.LoanStatusPending),
		"OutstandingSum": outstandingTotal(loans),
		"FormError":      flash.FormError,
		"FormSuccess":    flash.FormSuccess,
	})
}

func countLoansByStatus(loans []models.Loan, status string) int {
	count := 0
	for _, loan := range loans {
		if loan.Status == status {
			count++
		}
	}
	return count
}

func outstandingTotal(loans []models.Loan) float64 {
	total := 0.0
	for _, loan := range loans {
		if loan.Status == models.LoanStatusApproved {
			total += loan.Amount
		}
	}
	return total
}
