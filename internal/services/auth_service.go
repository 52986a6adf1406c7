package services

import (
	"errors"

	"github.com/fallowfield/lendora/internal/models"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type AuthUserRepository interface {
	ExistsByNormalizedUsername(username string) (bool, error)
	FindByNormalizedUsername(username string) (models.User, error)
	FindByID(userID uint) (models.User, error)
	Create(user *models.User) error
}

type AuthService struct {
	users AuthUserRepository
}

func NewAuthService(users AuthUserRepository) *AuthService {
	return &AuthService{users: users}
}

func (service *AuthService) RegistrationUsernameExists(username string) (bool, error) {
	return service.users.ExistsByNormalizedUsername(username)
}

// CreateUser hashes the password and inserts the user. The username unique
// index is the final arbiter for duplicates; the handler pre-check only
// provides a friendlier message.
func (service *AuthService) CreateUser(user *models.User, password string) error {
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(passwordHash)

	if err := service.users.Create(user); err != nil {
		return ErrUsernameTaken
	}
	return nil
}

// Authenticate verifies the password against the stored bcrypt hash and
// returns the matching user. Lookup and comparison failures collapse into
// ErrInvalidCredentials so responses cannot reveal which usernames exist.
func (service *AuthService) Authenticate(username string, password string) (models.User, error) {
	user, err := service.users.FindByNormalizedUsername(username)
	if err != nil {
		return models.User{}, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return models.User{}, ErrInvalidCredentials
	}
	return user, nil
}

func (service *AuthService) FindByID(userID uint) (models.User, error) {
	return service.users.FindByID(userID)
}
