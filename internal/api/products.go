package api

import (
	"context"
	"net/http"
	"net/url"

	"app/internal/domain/model"
)

type ProductListResponse struct {
	Items []model.Product `json:"items"`
}

// Products は商品一覧（公開のみ）。
func (c *Client) Products(ctx context.Context) ([]model.Product, error) {
	var out ProductListResponse
	if err := c.doJSON(ctx, http.MethodGet, "/api/products", nil, &out); err != nil {
		return nil, err
	}
	return out.Items, nil
}

// Product は商品詳細。
func (c *Client) Product(ctx context.Context, id string) (*model.Product, error) {
	var p model.Product
	if err := c.doJSON(ctx, http.MethodGet, "/api/products/"+url.PathEscape(id), nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}
