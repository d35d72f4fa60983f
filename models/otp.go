package models

import "time"

// OTP rows accumulate per phone; verification only ever consults the most
// recently created one. No expiry is enforced.
type OTP struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Phone     string    `gorm:"index;not null" json:"phone"`
	Code      string    `gorm:"not null" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}
