package models

import "time"

// Otp backs the mobile OTP login flow. Codes live for five minutes.
type Otp struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Mobile    string    `gorm:"size:20;index" json:"mobile"`
	Code      string    `gorm:"size:6" json:"-"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

func (o Otp) Expired(now time.Time) bool {
	return now.After(o.ExpiresAt)
}
