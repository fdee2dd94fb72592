package models

import "time"

type Admin struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"type:varchar(100);unique;not null"`
	PasswordHash string `gorm:"type:varchar(200);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
