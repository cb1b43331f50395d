package model

import "time"

// OrderItem は注文明細。商品名と単価は注文時点のスナップショット。
type OrderItem struct {
	ID                string    `gorm:"primaryKey;type:varchar(64)" json:"id"`
	OrderID           string    `gorm:"type:varchar(64);not null;index" json:"order_id"`
	ProductID         string    `gorm:"type:varchar(64);not null" json:"product_id"`
	TitleSnapshot     string    `gorm:"type:varchar(255);not null;column:title_snapshot" json:"title"`
	UnitPriceSnapshot int64     `gorm:"not null;column:unit_price_snapshot" json:"price"`
	Quantity          int64     `gorm:"not null" json:"quantity"`
	CreatedAt         time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
