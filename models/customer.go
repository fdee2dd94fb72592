package models

import "time"

type Customer struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"type:varchar(100);not null"`
	Phone        string `gorm:"type:varchar(20);not null"`
	Email        string `gorm:"type:varchar(120);unique;not null"`
	PasswordHash string `gorm:"type:varchar(200);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Bookings []Booking `gorm:"foreignKey:CustomerID"`
}
