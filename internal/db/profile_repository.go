package db

import (
	"github.com/fallowfield/lendora/internal/models"
	"gorm.io/gorm"
)

type ProfileRepository struct {
	database *gorm.DB
}

func NewProfileRepository(database *gorm.DB) *ProfileRepository {
	return &ProfileRepository{database: database}
}

func (repo *ProfileRepository) Create(profile *models.Profile) error {
	return repo.database.Create(profile).Error
}

// FindLatestByUserID returns the newest profile row for the user. Saving the
// profile form inserts a fresh row each time, so older rows stay behind as
// history and only the latest one is authoritative.
func (repo *ProfileRepository) FindLatestByUserID(userID uint) (models.Profile, error) {
	var profile models.Profile
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("id DESC").
		First(&profile).Error; err != nil {
		return models.Profile{}, err
	}
	return profile, nil
}

func (repo *ProfileRepository) ListByUserID(userID uint) ([]models.Profile, error) {
	profiles := make([]models.Profile, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("id DESC").
		Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}
