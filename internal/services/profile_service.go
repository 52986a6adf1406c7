package services

import (
	"errors"
	"time"

	"github.com/fallowfield/lendora/internal/models"
	"gorm.io/gorm"
)

type ProfileRepository interface {
	Create(profile *models.Profile) error
	FindLatestByUserID(userID uint) (models.Profile, error)
	ListByUserID(userID uint) ([]models.Profile, error)
}

type ProfileService struct {
	profiles      ProfileRepository
	sampleHistory PaymentHistorySampler
}

func NewProfileService(profiles ProfileRepository, sampleHistory PaymentHistorySampler) *ProfileService {
	if sampleHistory == nil {
		sampleHistory = SimulatedPaymentHistory
	}
	return &ProfileService{profiles: profiles, sampleHistory: sampleHistory}
}

// SaveProfile validates the form input, computes both scores, and inserts a
// new profile row. Prior rows are kept as history; readers always see the
// newest row.
func (service *ProfileService) SaveProfile(userID uint, age int, income float64, employmentStatus string, now time.Time) (models.Profile, error) {
	if err := ValidateProfileInput(age, income, employmentStatus); err != nil {
		return models.Profile{}, err
	}
	status := NormalizeEmploymentStatus(employmentStatus)

	paymentHistory := service.sampleHistory()
	creditScore := CreditScore(income, status, paymentHistory)
	civilScore := CivilScore(age, status, creditScore)

	profile := models.Profile{
		UserID:           userID,
		Age:              age,
		Income:           income,
		EmploymentStatus: status,
		CreditScore:      creditScore,
		CivilScore:       civilScore,
		UpdatedAt:        now,
	}
	if err := service.profiles.Create(&profile); err != nil {
		return models.Profile{}, err
	}
	return profile, nil
}

// LatestProfile reports the user's current profile; found is false when the
// user has never completed the profile form.
func (service *ProfileService) LatestProfile(userID uint) (models.Profile, bool, error) {
	profile, err := service.profiles.FindLatestByUserID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Profile{}, false, nil
	}
	if err != nil {
		return models.Profile{}, false, err
	}
	return profile, true, nil
}
