package api

import (
	"errors"
	"time"

	"github.com/fallowfield/lendora/internal/models"
	"github.com/fallowfield/lendora/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) ShowCreditScorePage(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	handler.ensureDependencies()
	profile, hasProfile, err := handler.profileService.LatestProfile(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load profile")
	}

	flash := handler.popFlashCookie(c)
	return handler.render(c, "credit_score", fiber.Map{
		"Title":              "Credit Score",
		"HasProfile":         hasProfile,
		"Profile":            profile,
		"EmploymentStatuses": models.EmploymentStatuses(),
		"FormError":          flash.FormError,
		"FormSuccess":        flash.FormSuccess,
	})
}

func (handler *Handler) ShowCivilScorePage(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	handler.ensureDependencies()
	profile, hasProfile, err := handler.profileService.LatestProfile(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load profile")
	}

	return handler.render(c, "civil_score", fiber.Map{
		"Title":      "Civil Score",
		"HasProfile": hasProfile,
		"Profile":    profile,
	})
}

// SaveProfile recomputes both scores from the submitted financial details
// and appends a new profile row; older rows stay as history.
func (handler *Handler) SaveProfile(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	form, err := parseProfileForm(c)
	if err != nil {
		return handler.respondFormError(c, fiber.StatusBadRequest, "invalid input", "/credit-score")
	}

	age, err := parseIntField(form.Age)
	if err != nil {
		return handler.respondFormError(c, fiber.StatusBadRequest, "age must be a whole number", "/credit-score")
	}
	income, err := parseFloatField(form.Income)
	if err != nil {
		return handler.respondFormError(c, fiber.StatusBadRequest, "income must be a number", "/credit-score")
	}

	handler.ensureDependencies()
	now := time.Now().In(handler.location)
	if _, err := handler.profileService.SaveProfile(user.ID, age, income, form.EmploymentStatus, now); err != nil {
		return handler.respondFormError(c, fiber.StatusBadRequest, profileErrorMessage(err), "/credit-score")
	}

	return handler.respondFormSuccess(c, "profile updated, scores recalculated", "/credit-score")
}

func profileErrorMessage(err error) string {
	switch {
	case errors.Is(err, services.ErrInvalidAge):
		return "age must be between 18 and 100"
	case errors.Is(err, services.ErrInvalidIncome):
		return "income must be zero or more"
	case errors.Is(err, services.ErrInvalidEmployment):
		return "unknown employment status"
	default:
		return "invalid input"
	}
}
