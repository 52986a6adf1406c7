package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) respondAuthError(c *fiber.Ctx, status int, message string) error {
	if strings.HasPrefix(c.Path(), "/api/auth/") && !acceptsJSON(c) && !isHTMX(c) {
		flash := FlashPayload{AuthError: message}
		switch c.Path() {
		case "/api/auth/register":
			handler.setFlashCookie(c, flash)
			return c.Redirect("/register", fiber.StatusSeeOther)
		default:
			flash.LoginUsername = strings.ToLower(strings.TrimSpace(c.FormValue("username")))
			handler.setFlashCookie(c, flash)
			return c.Redirect("/login", fiber.StatusSeeOther)
		}
	}
	return apiError(c, status, message)
}

// respondFormError flashes the message and sends the browser back to the
// page the form lives on; API clients get a JSON error instead.
func (handler *Handler) respondFormError(c *fiber.Ctx, status int, message string, backPath string) error {
	if !acceptsJSON(c) && !isHTMX(c) {
		handler.setFlashCookie(c, FlashPayload{FormError: message})
		return c.Redirect(backPath, fiber.StatusSeeOther)
	}
	return apiError(c, status, message)
}

func (handler *Handler) respondFormSuccess(c *fiber.Ctx, message string, backPath string) error {
	if !acceptsJSON(c) && !isHTMX(c) {
		handler.setFlashCookie(c, FlashPayload{FormSuccess: message})
		return c.Redirect(backPath, fiber.StatusSeeOther)
	}
	return redirectOrJSON(c, backPath)
}
