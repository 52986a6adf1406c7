package db

import (
	"strings"

	"github.com/fallowfield/lendora/internal/models"
	"gorm.io/gorm"
)

type UserRepository struct {
	database *gorm.DB
}

func NewUserRepository(database *gorm.DB) *UserRepository {
	return &UserRepository{database: database}
}

func (repo *UserRepository) FindByID(userID uint) (models.User, error) {
	var user models.User
	if err := repo.database.First(&user, userID).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (repo *UserRepository) FindByNormalizedUsername(username string) (models.User, error) {
	var user models.User
	if err := repo.database.Where("lower(trim(username)) = ?", username).First(&user).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (repo *UserRepository) ExistsByNormalizedUsername(username string) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.User{}).
		Where("lower(trim(username)) = ?", username).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

func (repo *UserRepository) Create(user *models.User) error {
	return repo.database.Create(user).Error
}

func (repo *UserRepository) ListAll() ([]models.User, error) {
	users := make([]models.User, 0)
	if err := repo.database.Order("id").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// SearchByUsername matches a substring of the username with a parameterized
// LIKE; % and _ in the needle are escaped so they match literally.
func (repo *UserRepository) SearchByUsername(needle string) ([]models.User, error) {
	escaped := escapeLikePattern(strings.TrimSpace(needle))
	users := make([]models.User, 0)
	if err := repo.database.
		Where(`username LIKE ? ESCAPE '\'`, "%"+escaped+"%").
		Order("id").
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func escapeLikePattern(value string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return replacer.Replace(value)
}
