package services

import (
	"errors"

	"github.com/fallowfield/lendora/internal/models"
	"gorm.io/gorm"
)

type ReportRepository interface {
	CountLoans() (int64, error)
	CountLoansByStatus(status string) (int64, error)
	ApprovedAmountTotal() (float64, error)
	AverageCreditScore() (float64, error)
}

type UserDirectory interface {
	ListAll() ([]models.User, error)
	SearchByUsername(needle string) ([]models.User, error)
	FindByID(userID uint) (models.User, error)
}

// LoanOverview is the admin analytics snapshot.
type LoanOverview struct {
	TotalLoans         int64
	ApprovedLoans      int64
	PendingLoans       int64
	RejectedLoans      int64
	ApprovedAmount     float64
	AverageCreditScore float64
}

type ReportService struct {
	reports  ReportRepository
	users    UserDirectory
	profiles ProfileRepository
	loans    LoanRepository
}

func NewReportService(reports ReportRepository, users UserDirectory, profiles ProfileRepository, loans LoanRepository) *ReportService {
	return &ReportService{reports: reports, users: users, profiles: profiles, loans: loans}
}

func (service *ReportService) Overview() (LoanOverview, error) {
	overview := LoanOverview{}

	var err error
	if overview.TotalLoans, err = service.reports.CountLoans(); err != nil {
		return LoanOverview{}, err
	}
	if overview.ApprovedLoans, err = service.reports.CountLoansByStatus(models.LoanStatusApproved); err != nil {
		return LoanOverview{}, err
	}
	if overview.PendingLoans, err = service.reports.CountLoansByStatus(models.LoanStatusPending); err != nil {
		return LoanOverview{}, err
	}
	if overview.RejectedLoans, err = service.reports.CountLoansByStatus(models.LoanStatusRejected); err != nil {
		return LoanOverview{}, err
	}
	if overview.ApprovedAmount, err = service.reports.ApprovedAmountTotal(); err != nil {
		return LoanOverview{}, err
	}
	if overview.AverageCreditScore, err = service.reports.AverageCreditScore(); err != nil {
		return LoanOverview{}, err
	}
	return overview, nil
}

func (service *ReportService) ListUsers() ([]models.User, error) {
	return service.users.ListAll()
}

// SearchUsers looks up users whose username contains the needle. An empty
// needle or no match yields an empty slice, never an error.
func (service *ReportService) SearchUsers(needle string) ([]models.User, error) {
	return service.users.SearchByUsername(needle)
}

// UserDetail collects the admin drill-down for one user: the profile history
// (newest first) and every loan. A user with no profile yields an empty
// profile list, not an error.
type UserDetail struct {
	User     models.User
	Profiles []models.Profile
	Loans    []models.Loan
}

func (service *ReportService) UserDetailByID(userID uint) (UserDetail, error) {
	user, err := service.users.FindByID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return UserDetail{}, err
	}
	if err != nil {
		return UserDetail{}, err
	}

	profiles, err := service.profiles.ListByUserID(userID)
	if err != nil {
		return UserDetail{}, err
	}
	loans, err := service.loans.ListByUserID(userID)
	if err != nil {
		return UserDetail{}, err
	}

	return UserDetail{User: user, Profiles: profiles, Loans: loans}, nil
}
