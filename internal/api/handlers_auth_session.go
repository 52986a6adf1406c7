package api

import (
	"errors"
	"time"

	"github.com/fallowfield/lendora/internal/models"
	"github.com/fallowfield/lendora/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) Register(c *fiber.Ctx) error {
	form, err := parseRegistrationForm(c)
	if err != nil {
		return handler.respondAuthError(c, fiber.StatusBadRequest, "invalid input")
	}

	input, err := services.ValidateRegistrationInput(form.Username, form.Password, form.ConfirmPassword, form.FullName, form.Email)
	if err != nil {
		return handler.respondAuthError(c, fiber.StatusBadRequest, registrationErrorMessage(err))
	}

	handler.ensureDependencies()
	exists, err := handler.authService.RegistrationUsernameExists(input.Username)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create account")
	}
	if exists {
		return handler.respondAuthError(c, fiber.StatusConflict, "username already taken")
	}

	user := models.User{
		Username:  input.Username,
		FullName:  input.FullName,
		Email:     input.Email,
		Role:      models.RoleBorrower,
		CreatedAt: time.Now().In(handler.location),
	}
	if err := handler.authService.CreateUser(&user, input.Password); err != nil {
		return handler.respondAuthError(c, fiber.StatusConflict, "username already taken")
	}

	if err := handler.setAuthCookie(c, &user); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}
	return redirectOrJSON(c, "/dashboard")
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	credentials, err := parseCredentials(c)
	if err != nil {
		return handler.respondAuthError(c, fiber.StatusBadRequest, "invalid input")
	}

	username, password, err := services.NormalizeCredentialsInput(credentials.Username, credentials.Password)
	if err != nil {
		return handler.respondAuthError(c, fiber.StatusBadRequest, "invalid credentials")
	}

	limiterKey := requestLimiterKey(c)
	now := time.Now()
	if handler.loginLimiter.tooManyRecent(limiterKey, now, loginAttemptLimit, loginAttemptWindow) {
		return handler.respondAuthError(c, fiber.StatusTooManyRequests, "too many login attempts, try again later")
	}

	handler.ensureDependencies()
	user, err := handler.authService.Authenticate(username, password)
	if err != nil {
		handler.loginLimiter.addFailure(limiterKey, now, loginAttemptWindow)
		return handler.respondAuthError(c, fiber.StatusUnauthorized, "invalid credentials")
	}
	handler.loginLimiter.reset(limiterKey)

	if err := handler.setAuthCookie(c, &user); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}
	return redirectOrJSON(c, postLoginRedirectPath(&user))
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.clearAuthCookie(c)
	if isHTMX(c) {
		c.Set("HX-Redirect", "/login")
		return c.SendStatus(fiber.StatusOK)
	}
	if acceptsJSON(c) {
		return c.JSON(fiber.Map{"ok": true})
	}
	return c.Redirect("/login", fiber.StatusSeeOther)
}

func postLoginRedirectPath(user *models.User) string {
	if user.IsAdmin() {
		return "/admin"
	}
	return "/dashboard"
}

func registrationErrorMessage(err error) string {
	switch {
	case errors.Is(err, services.ErrInvalidUsername):
		return "username must be 3-32 characters: lowercase letters, digits, dot, dash or underscore"
	case errors.Is(err, services.ErrPasswordMismatch):
		return "passwords do not match"
	case errors.Is(err, services.ErrWeakPassword):
		return "password must be at least 8 characters with upper, lower and a digit"
	case errors.Is(err, services.ErrFullNameRequired):
		return "full name is required"
	case errors.Is(err, services.ErrInvalidEmail):
		return "invalid email address"
	default:
		return "invalid input"
	}
}
