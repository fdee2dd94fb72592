package models

import "time"

// Booking stores date and time exactly as submitted. The forms send
// plain strings and no normalization is applied anywhere.
type Booking struct {
	ID         uint     `gorm:"primaryKey"`
	CustomerID uint     `gorm:"not null;index"`
	Customer   Customer `gorm:"foreignKey:CustomerID;references:ID"`
	Date       string   `gorm:"type:varchar(20);not null"`
	Time       string   `gorm:"type:varchar(5);not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
