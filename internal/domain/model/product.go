package model

import (
	"time"

	"gorm.io/gorm"
)

// Product は販売中のオファー（サービス商品）。
// Price はセント単位。カート追加時にスナップショットされる。
type Product struct {
	ID          string         `gorm:"primaryKey;type:varchar(64)" json:"id"`
	Title       string         `gorm:"type:varchar(255);not null" json:"title"`
	Description string         `gorm:"type:text" json:"description"`
	Price       int64          `gorm:"not null" json:"price"`
	ImageURL    string         `gorm:"type:varchar(512)" json:"image_url"`
	IsActive    bool           `gorm:"not null;default:true" json:"is_active"`
	CreatedAt   time.Time      `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"not null;autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// ProductRef はカート追加時に渡す商品参照（タイトルと単価は追加時点のもの）。
type ProductRef struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Price int64  `json:"price"`
}
