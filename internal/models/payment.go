package models

import "time"

// Payments are append-only; rows are never updated or deleted.
type Payment struct {
	ID     uint      `gorm:"primaryKey"`
	LoanID uint      `gorm:"not null;index"`
	Amount float64   `gorm:"not null"`
	PaidAt time.Time `gorm:"not null"`
}
