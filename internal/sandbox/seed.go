package sandbox

import (
	"time"

	"app/internal/domain/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Seed は商品とワークショップが空のときだけ初期データを入れる。
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.Product{}).Count(&count).Error; err != nil {
		return err
	}

	if count == 0 {
		products := []model.Product{
			{
				ID:          uuid.NewString(),
				Title:       "Brand Identity Package",
				Description: "Logo, color palette and typography for your studio.",
				Price:       49900,
				ImageURL:    "/images/offers/brand-identity.jpg",
				IsActive:    true,
			},
			{
				ID:          uuid.NewString(),
				Title:       "Portfolio Website",
				Description: "A single-page portfolio site, content included.",
				Price:       89900,
				ImageURL:    "/images/offers/portfolio-site.jpg",
				IsActive:    true,
			},
			{
				ID:          uuid.NewString(),
				Title:       "Social Media Kit",
				Description: "Templates and guidelines for three platforms.",
				Price:       19900,
				ImageURL:    "/images/offers/social-kit.jpg",
				IsActive:    true,
			},
		}
		if err := db.Create(&products).Error; err != nil {
			return err
		}
	}

	if err := db.Model(&model.Workshop{}).Count(&count).Error; err != nil {
		return err
	}

	if count == 0 {
		now := time.Now()
		workshops := []model.Workshop{
			{
				ID:          uuid.NewString(),
				Title:       "Intro to Brand Design",
				Description: "Hands-on basics of building a brand.",
				StartsAt:    now.AddDate(0, 1, 0),
				Capacity:    12,
				SpotsLeft:   12,
				ImageURL:    "/images/workshops/brand-design.jpg",
			},
			{
				ID:          uuid.NewString(),
				Title:       "Figma for Founders",
				Description: "Design your own marketing pages.",
				StartsAt:    now.AddDate(0, 2, 0),
				Capacity:    8,
				SpotsLeft:   8,
				ImageURL:    "/images/workshops/figma.jpg",
			},
		}
		if err := db.Create(&workshops).Error; err != nil {
			return err
		}
	}

	return nil
}
