package model

import "time"

// User は会員。姓名はnull許容（プロフィール未入力）。
type User struct {
	ID           string    `gorm:"primaryKey;type:varchar(64)" json:"id"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"column:password_hash;not null" json:"-"`
	FirstName    *string   `gorm:"type:varchar(255)" json:"first_name"`
	LastName     *string   `gorm:"type:varchar(255)" json:"last_name"`
	CreatedAt    time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
