package services

import (
	"errors"
	"testing"

	"github.com/fallowfield/lendora/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeUserRepository struct {
	users  map[uint]models.User
	nextID uint
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: make(map[uint]models.User)}
}

func (repo *fakeUserRepository) ExistsByNormalizedUsername(username string) (bool, error) {
	for _, user := range repo.users {
		if user.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (repo *fakeUserRepository) FindByNormalizedUsername(username string) (models.User, error) {
	for _, user := range repo.users {
		if user.Username == username {
			return user, nil
		}
	}
	return models.User{}, gorm.ErrRecordNotFound
}

func (repo *fakeUserRepository) FindByID(userID uint) (models.User, error) {
	user, ok := repo.users[userID]
	if !ok {
		return models.User{}, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (repo *fakeUserRepository) Create(user *models.User) error {
	if exists, _ := repo.ExistsByNormalizedUsername(user.Username); exists {
		return gorm.ErrDuplicatedKey
	}
	repo.nextID++
	user.ID = repo.nextID
	repo.users[user.ID] = *user
	return nil
}

func TestCreateUserHashesPassword(t *testing.T) {
	repo := newFakeUserRepository()
	service := NewAuthService(repo)

	user := models.User{Username: "alice", FullName: "Alice", Email: "alice@example.com", Role: models.RoleBorrower}
	if err := service.CreateUser(&user, "StrongPass1"); err != nil {
		t.Fatalf("create user: %v", err)
	}

	stored := repo.users[user.ID]
	if stored.PasswordHash == "StrongPass1" || stored.PasswordHash == "" {
		t.Fatal("expected password to be stored as a hash")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("StrongPass1")); err != nil {
		t.Fatalf("stored hash does not verify: %v", err)
	}
}

func TestCreateUserRejectsDuplicateUsername(t *testing.T) {
	repo := newFakeUserRepository()
	service := NewAuthService(repo)

	first := models.User{Username: "alice", FullName: "Alice", Email: "alice@example.com"}
	if err := service.CreateUser(&first, "StrongPass1"); err != nil {
		t.Fatalf("first create: %v", err)
	}

	second := models.User{Username: "alice", FullName: "Other Alice", Email: "other@example.com"}
	if err := service.CreateUser(&second, "StrongPass1"); !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestAuthenticate(t *testing.T) {
	repo := newFakeUserRepository()
	service := NewAuthService(repo)

	user := models.User{Username: "alice", FullName: "Alice", Email: "alice@example.com"}
	if err := service.CreateUser(&user, "StrongPass1"); err != nil {
		t.Fatalf("create user: %v", err)
	}

	authenticated, err := service.Authenticate("alice", "StrongPass1")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if authenticated.ID != user.ID {
		t.Fatalf("expected user %d, got %d", user.ID, authenticated.ID)
	}

	if _, err := service.Authenticate("alice", "WrongPass1"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", err)
	}
	if _, err := service.Authenticate("nobody", "StrongPass1"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown user, got %v", err)
	}
}
