package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	registerPageRoutes(app, handler)
	registerAPIRoutes(app, handler)
}

func registerPageRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	app.Get("/favicon.ico", sendNoContent)

	app.Get("/login", handler.ShowLoginPage)
	app.Get("/register", handler.ShowRegisterPage)

	app.Get("/", handler.AuthRequired, handler.ShowDashboard)
	app.Get("/dashboard", handler.AuthRequired, handler.ShowDashboard)
	app.Get("/credit-score", handler.AuthRequired, handler.ShowCreditScorePage)
	app.Get("/civil-score", handler.AuthRequired, handler.ShowCivilScorePage)
	app.Get("/apply-loan", handler.AuthRequired, handler.ShowApplyLoanPage)
	app.Get("/my-loans", handler.AuthRequired, handler.ShowMyLoansPage)

	app.Get("/admin", handler.AuthRequired, handler.AdminOnly, handler.ShowAdminPage)
	app.Get("/admin/users/:id", handler.AuthRequired, handler.AdminOnly, handler.ShowAdminUserPage)
}

func registerAPIRoutes(app *fiber.App, handler *Handler) {
	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)

	profile := api.Group("/profile", handler.AuthRequired)
	profile.Post("", handler.SaveProfile)

	loans := api.Group("/loans", handler.AuthRequired)
	loans.Post("/apply", handler.ApplyLoan)
	loans.Post("/:id/payments", handler.MakePayment)

	admin := api.Group("/admin", handler.AuthRequired, handler.AdminOnly)
	admin.Post("/loans/:id/status", handler.UpdateLoanStatus)
	admin.Get("/reports/overview", handler.ReportOverview)
}

func sendNoContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}
