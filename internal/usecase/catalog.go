package usecase

import (
	"context"

	"app/internal/domain/model"
)

// ProductCatalog は公開中の商品一覧。
func (s *Session) ProductCatalog(ctx context.Context) ([]model.Product, error) {
	return s.api.Products(ctx)
}

// ProductDetail は商品詳細。
func (s *Session) ProductDetail(ctx context.Context, id string) (*model.Product, error) {
	return s.api.Product(ctx, id)
}
