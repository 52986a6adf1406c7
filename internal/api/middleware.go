package api

import (
	"github.com/fallowfield/lendora/internal/models"
	"github.com/gofiber/fiber/v2"
)

const (
	authCookieName  = "lendora_auth"
	flashCookieName = "lendora_flash"
	contextUserKey  = "current_user"
)

func currentUser(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals(contextUserKey).(*models.User)
	return user, ok
}
