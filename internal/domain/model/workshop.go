package model

import "time"

// Workshop はワークショップ（定員つきイベント）。
// SpotsLeft は残席。登録・キャンセルで増減する。
type Workshop struct {
	ID          string    `gorm:"primaryKey;type:varchar(64)" json:"id"`
	Title       string    `gorm:"type:varchar(255);not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	StartsAt    time.Time `gorm:"not null" json:"starts_at"`
	Capacity    int64     `gorm:"not null" json:"capacity"`
	SpotsLeft   int64     `gorm:"not null" json:"spots_left"`
	ImageURL    string    `gorm:"type:varchar(512)" json:"image_url"`
	CreatedAt   time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
