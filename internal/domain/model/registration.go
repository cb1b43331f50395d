package model

import "time"

// Registration はユーザーのワークショップ登録。
// 「参加中」かどうかはこの一覧とワークショップ詳細の突き合わせで導出する。
type Registration struct {
	ID         string    `gorm:"primaryKey;type:varchar(64)" json:"id"`
	UserID     string    `gorm:"type:varchar(64);not null;index" json:"user_id"`
	WorkshopID string    `gorm:"type:varchar(64);not null;index" json:"workshop_id"`
	CreatedAt  time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
