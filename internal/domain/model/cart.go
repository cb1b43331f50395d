package model

import "time"

type CartStatus string

const (
	CartStatusActive     CartStatus = "ACTIVE"
	CartStatusCheckedOut CartStatus = "CHECKED_OUT"
)

// Cart はサーバー側カートのヘッダ。ユーザーにつきACTIVEは常に1つ。
type Cart struct {
	ID        string     `gorm:"primaryKey;type:varchar(64)" json:"id"`
	UserID    string     `gorm:"type:varchar(64);not null;index" json:"user_id"`
	Status    CartStatus `gorm:"type:varchar(20);not null;index" json:"status"`
	CreatedAt time.Time  `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
