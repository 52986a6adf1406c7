package models

import "time"

const (
	RoleAdmin    = "admin"
	RoleBorrower = "borrower"
)

type User struct {
	ID           uint      `gorm:"primaryKey"`
	Username     string    `gorm:"uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
	FullName     string    `gorm:"not null"`
	Email        string    `gorm:"not null"`
	Role         string    `gorm:"not null;default:borrower"`
	CreatedAt    time.Time `gorm:"not null"`
}

func (user *User) IsAdmin() bool {
	return user != nil && user.Role == RoleAdmin
}
