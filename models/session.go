package models

import "time"

const (
	UserTypeCustomer = "customer"
	UserTypeAdmin    = "admin"
)

// Session is a server-side login session. The tag in UserType says which
// table UserID points into, so a customer id and an admin id can never be
// confused even when the two sequences overlap.
type Session struct {
	ID        uint   `gorm:"primaryKey"`
	Token     string `gorm:"type:varchar(64);unique;not null"`
	UserType  string `gorm:"type:varchar(16);not null"`
	UserID    uint   `gorm:"not null"`
	CreatedAt time.Time
}
