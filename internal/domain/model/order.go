package model

import "time"

type OrderStatus string

const (
	OrderStatusPending  OrderStatus = "PENDING"
	OrderStatusPaid     OrderStatus = "PAID"
	OrderStatusCanceled OrderStatus = "CANCELED"
)

// Order は注文。チェックアウトでACTIVEカートから生成される。
// 状態遷移は PENDING → PAID のみ（クライアントにキャンセル経路はない）。
type Order struct {
	ID         string      `gorm:"primaryKey;type:varchar(64)" json:"id"`
	UserID     string      `gorm:"type:varchar(64);not null;index" json:"user_id"`
	Status     OrderStatus `gorm:"type:varchar(20);not null;index" json:"status"`
	TotalPrice int64       `gorm:"not null" json:"total_price"`
	CreatedAt  time.Time   `gorm:"not null;autoCreateTime" json:"created_at"`
	PaidAt     *time.Time  `json:"paid_at"`
	UpdatedAt  time.Time   `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
