package api

import (
	"errors"
	"time"

	"github.com/fallowfield/lendora/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) ShowApplyLoanPage(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	handler.ensureDependencies()
	profile, hasProfile, err := handler.profileService.LatestProfile(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load profile")
	}

	data := fiber.Map{
		"Title":      "Apply for a Loan",
		"HasProfile": hasProfile,
		"Profile":    profile,
		"MinAmount":  services.MinLoanAmount,
		"MaxAmount":  services.MaxLoanAmount,
		"MinTerm":    services.MinLoanTerm,
		"MaxTerm":    services.MaxLoanTerm,
	}
	if hasProfile {
		data["Quote"] = services.QuoteTerms(profile.CreditScore)
	}

	flash := handler.popFlashCookie(c)
	data["FormError"] = flash.FormError
	data["FormSuccess"] = flash.FormSuccess
	return handler.render(c, "apply_loan", data)
}

func (handler *Handler) ApplyLoan(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	form, err := parseLoanApplication(c)
	if err != nil {
		return handler.respondFormError(c, fiber.StatusBadRequest, "invalid input", "/apply-loan")
	}

	amount, err := parseFloatField(form.Amount)
	if err != nil {
		return handler.respondFormError(c, fiber.StatusBadRequest, "amount must be a number", "/apply-loan")
	}
	termMonths, err := parseIntField(form.TermMonths)
	if err != nil {
		return handler.respondFormError(c, fiber.StatusBadRequest, "term must be a whole number of months", "/apply-loan")
	}

	handler.ensureDependencies()
	now := time.Now().In(handler.location)
	loan, err := handler.loanService.Apply(user.ID, amount, termMonths, form.Purpose, now)
	if err != nil {
		return handler.respondFormError(c, fiber.StatusBadRequest, loanErrorMessage(err), "/apply-loan")
	}

	message := "application submitted and pending review"
	if loan.ApprovedAt != nil {
		message = "loan approved automatically"
	}
	return handler.respondFormSuccess(c, message, "/my-loans")
}

func (handler *Handler) ShowMyLoansPage(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	handler.ensureDependencies()
	loans, err := handler.loanService.ListForUser(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load loans")
	}

	now := time.Now().In(handler.location)
	flash := handler.popFlashCookie(c)
	return handler.render(c, "my_loans", fiber.Map{
		"Title":       "My Loans",
		"Loans":       buildLoanViews(loans, now),
		"FormError":   flash.FormError,
		"FormSuccess": flash.FormSuccess,
	})
}

func (handler *Handler) MakePayment(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	loanID, err := parseIDParam(c, "id")
	if err != nil {
		return handler.respondFormError(c, fiber.StatusBadRequest, "invalid loan", "/my-loans")
	}

	form, err := parsePayment(c)
	if err != nil {
		return handler.respondFormError(c, fiber.StatusBadRequest, "invalid input", "/my-loans")
	}
	amount, err := parseFloatField(form.Amount)
	if err != nil {
		return handler.respondFormError(c, fiber.StatusBadRequest, "payment must be a number", "/my-loans")
	}

	handler.ensureDependencies()
	now := time.Now().In(handler.location)
	if err := handler.loanService.Pay(user.ID, loanID, amount, now); err != nil {
		status := fiber.StatusBadRequest
		if errors.Is(err, services.ErrLoanNotFound) {
			status = fiber.StatusNotFound
		}
		return handler.respondFormError(c, status, paymentErrorMessage(err), "/my-loans")
	}

	return handler.respondFormSuccess(c, "payment recorded", "/my-loans")
}

func loanErrorMessage(err error) string {
	switch {
	case errors.Is(err, services.ErrProfileRequired):
		return "complete your credit profile before applying"
	case errors.Is(err, services.ErrInvalidLoanAmount):
		return "loan amount is out of the allowed range"
	case errors.Is(err, services.ErrInvalidLoanTerm):
		return "loan term is out of the allowed range"
	default:
		return "invalid input"
	}
}

func paymentErrorMessage(err error) string {
	switch {
	case errors.Is(err, services.ErrLoanNotFound):
		return "loan not found"
	case errors.Is(err, services.ErrLoanNotPayable):
		return "only approved loans accept payments"
	case errors.Is(err, services.ErrInvalidPaymentAmount):
		return "payment must be greater than zero"
	case errors.Is(err, services.ErrPaymentExceedsBalance):
		return "payment exceeds the remaining balance"
	default:
		return "invalid input"
	}
}
