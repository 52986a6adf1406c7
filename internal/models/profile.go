package models

import "time"

const (
	EmploymentEmployed     = "employed"
	EmploymentSelfEmployed = "self-employed"
	EmploymentUnemployed   = "unemployed"
	EmploymentStudent      = "student"
	EmploymentRetired      = "retired"
)

// EmploymentStatuses lists the options offered by the profile form, in
// display order. Scoring matches statuses case-insensitively and treats
// anything outside this list as neutral.
func EmploymentStatuses() []string {
	return []string{
		EmploymentEmployed,
		EmploymentSelfEmployed,
		EmploymentUnemployed,
		EmploymentStudent,
		EmploymentRetired,
	}
}

type Profile struct {
	ID               uint      `gorm:"primaryKey"`
	UserID           uint      `gorm:"not null;index"`
	Age              int       `gorm:"not null"`
	Income           float64   `gorm:"not null"`
	EmploymentStatus string    `gorm:"not null"`
	CreditScore      int       `gorm:"not null"`
	CivilScore       int       `gorm:"not null"`
	UpdatedAt        time.Time `gorm:"not null"`
}
