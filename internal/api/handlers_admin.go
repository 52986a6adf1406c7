package api

import (
	"errors"
	"strings"
	"time"

	"github.com/fallowfield/lendora/internal/models"
	"github.com/fallowfield/lendora/internal/services"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func (handler *Handler) ShowAdminPage(c *fiber.Ctx) error {
	handler.ensureDependencies()

	overview, err := handler.reportService.Overview()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load reports")
	}

	searchQuery := strings.TrimSpace(c.Query("q"))
	var users []models.User
	if searchQuery != "" {
		users, err = handler.reportService.SearchUsers(searchQuery)
	} else {
		users, err = handler.reportService.ListUsers()
	}
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load users")
	}

	rows, err := handler.loanService.ListAllWithBorrowers()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load loans")
	}

	now := time.Now().In(handler.location)
	flash := handler.popFlashCookie(c)
	return handler.render(c, "admin", fiber.Map{
		"Title":       "Admin Panel",
		"Overview":    overview,
		"Users":       users,
		"Loans":       buildBorrowerLoanViews(rows, now),
		"SearchQuery": searchQuery,
		"Statuses":    []string{models.LoanStatusPending, models.LoanStatusApproved, models.LoanStatusRejected},
		"FormError":   flash.FormError,
		"FormSuccess": flash.FormSuccess,
	})
}

func (handler *Handler) ShowAdminUserPage(c *fiber.Ctx) error {
	userID, err := parseIDParam(c, "id")
	if err != nil {
		return c.Redirect("/admin", fiber.StatusSeeOther)
	}

	handler.ensureDependencies()
	detail, err := handler.reportService.UserDetailByID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Redirect("/admin", fiber.StatusSeeOther)
	}
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load user")
	}

	now := time.Now().In(handler.location)
	return handler.render(c, "admin_user", fiber.Map{
		"Title":    "Borrower Detail",
		"Borrower": detail.User,
		"Profiles": detail.Profiles,
		"Loans":    buildLoanViews(detail.Loans, now),
	})
}

func (handler *Handler) UpdateLoanStatus(c *fiber.Ctx) error {
	loanID, err := parseIDParam(c, "id")
	if err != nil {
		return handler.respondFormError(c, fiber.StatusBadRequest, "invalid loan", "/admin")
	}

	input, err := parseLoanStatus(c)
	if err != nil {
		return handler.respondFormError(c, fiber.StatusBadRequest, "invalid input", "/admin")
	}

	handler.ensureDependencies()
	now := time.Now().In(handler.location)
	if err := handler.loanService.UpdateStatus(loanID, input.Status, now); err != nil {
		status := fiber.StatusBadRequest
		message := "invalid status"
		if errors.Is(err, services.ErrLoanNotFound) {
			status = fiber.StatusNotFound
			message = "loan not found"
		}
		return handler.respondFormError(c, status, message, "/admin")
	}

	return handler.respondFormSuccess(c, "loan status updated", "/admin")
}

func (handler *Handler) ReportOverview(c *fiber.Ctx) error {
	handler.ensureDependencies()
	overview, err := handler.reportService.Overview()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load reports")
	}
	return c.JSON(fiber.Map{
		"total_loans":          overview.TotalLoans,
		"approved_loans":       overview.ApprovedLoans,
		"pending_loans":        overview.PendingLoans,
		"rejected_loans":       overview.RejectedLoans,
		"approved_amount":      overview.ApprovedAmount,
		"average_credit_score": overview.AverageCreditScore,
	})
}
