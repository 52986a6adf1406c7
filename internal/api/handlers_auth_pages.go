package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) ShowLoginPage(c *fiber.Ctx) error {
	redirected, err := handler.redirectAuthenticatedUserIfPresent(c)
	if err != nil {
		return err
	}
	if redirected {
		return nil
	}

	flash := handler.popFlashCookie(c)
	return handler.render(c, "login", fiber.Map{
		"Title":         "Sign In",
		"AuthError":     flash.AuthError,
		"LoginUsername": flash.LoginUsername,
	})
}

func (handler *Handler) ShowRegisterPage(c *fiber.Ctx) error {
	redirected, err := handler.redirectAuthenticatedUserIfPresent(c)
	if err != nil {
		return err
	}
	if redirected {
		return nil
	}

	flash := handler.popFlashCookie(c)
	return handler.render(c, "register", fiber.Map{
		"Title":     "Create Account",
		"AuthError": flash.AuthError,
	})
}

func (handler *Handler) redirectAuthenticatedUserIfPresent(c *fiber.Ctx) (bool, error) {
	if _, err := handler.authenticateRequest(c); err == nil {
		if redirectErr := c.Redirect("/dashboard", fiber.StatusSeeOther); redirectErr != nil {
			return false, redirectErr
		}
		return true, nil
	}
	return false, nil
}
