package model

import (
	"strings"
	"time"
)

// CartItem はサーバー側カートの明細行。
// UnitPriceSnapshot（追加時点の価格）を必ず保存する。
type CartItem struct {
	ID                string    `gorm:"primaryKey;type:varchar(64)" json:"id"`
	CartID            string    `gorm:"type:varchar(64);not null;index" json:"cart_id"`
	ProductID         string    `gorm:"type:varchar(64);not null;index" json:"product_id"`
	Quantity          int64     `gorm:"not null" json:"quantity"`
	UnitPriceSnapshot int64     `gorm:"not null;column:unit_price_snapshot" json:"unit_price_snapshot"`
	CreatedAt         time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

// LocalIDPrefix はゲストカート明細のID接頭辞。
// サーバー発番のIDと衝突しないよう名前空間を分ける。
const LocalIDPrefix = "local-"

// CartLine はクライアントが扱うカート明細の表示形。
// ゲストモードではローカルスロットにこの形でそのまま永続化される。
type CartLine struct {
	ID        string `json:"id"`
	ProductID string `json:"product_id"`
	Title     string `json:"title"`
	Price     int64  `json:"price"`
	Quantity  int64  `json:"quantity"`
}

// IsLocal はゲスト発番の明細かどうか。
func (l CartLine) IsLocal() bool {
	return strings.HasPrefix(l.ID, LocalIDPrefix)
}

// Subtotal は明細小計（単価×数量）。
func (l CartLine) Subtotal() int64 {
	return l.Price * l.Quantity
}

// LinesSubtotal は明細集合の小計。価格計算は単純乗算の合算のみ。
func LinesSubtotal(lines []CartLine) int64 {
	var total int64
	for _, l := range lines {
		total += l.Subtotal()
	}
	return total
}
