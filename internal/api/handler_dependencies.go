package api

import (
	"github.com/fallowfield/lendora/internal/db"
	"github.com/fallowfield/lendora/internal/services"
	"gorm.io/gorm"
)

func (handler *Handler) withDependencies(database *gorm.DB) *Handler {
	handler.repositories = db.NewRepositories(database)
	handler.authService = services.NewAuthService(handler.repositories.Users)
	handler.profileService = services.NewProfileService(handler.repositories.Profiles, nil)
	handler.loanService = services.NewLoanService(handler.repositories.Loans, handler.repositories.Profiles)
	handler.reportService = services.NewReportService(
		handler.repositories.Reports,
		handler.repositories.Users,
		handler.repositories.Profiles,
		handler.repositories.Loans,
	)
	return handler
}

func (handler *Handler) ensureDependencies() {
	if handler.repositories == nil {
		if handler.db == nil {
			return
		}
		handler.withDependencies(handler.db)
	}
}
