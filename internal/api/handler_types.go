package api

import (
	"html/template"
	"time"

	"github.com/fallowfield/lendora/internal/db"
	"github.com/fallowfield/lendora/internal/services"
	"gorm.io/gorm"
)

type Handler struct {
	db           *gorm.DB
	secretKey    []byte
	location     *time.Location
	cookieSecure bool
	templates    map[string]*template.Template
	loginLimiter *attemptLimiter

	repositories   *db.Repositories
	authService    *services.AuthService
	profileService *services.ProfileService
	loanService    *services.LoanService
	reportService  *services.ReportService
}

// FlashPayload survives one redirect and is shown on the next page render.
type FlashPayload struct {
	AuthError     string `json:"auth_error,omitempty"`
	FormError     string `json:"form_error,omitempty"`
	FormSuccess   string `json:"form_success,omitempty"`
	LoginUsername string `json:"login_username,omitempty"`
}

const authTokenTTL = 24 * time.Hour

const (
	loginAttemptLimit  = 10
	loginAttemptWindow = 15 * time.Minute
)
