package api

import (
	"context"
	"net/http"
	"net/url"
)

// CartItemDTO はサーバーカートの明細。タイトルは含まれない
// （クライアントが商品詳細を引いて補完する）。
type CartItemDTO struct {
	ID        string `json:"id"`
	ProductID string `json:"product_id"`
	Price     int64  `json:"price"`
	Quantity  int64  `json:"quantity"`
}

type CartResponse struct {
	Items []CartItemDTO `json:"items"`
	Total int64         `json:"total"`
}

type AddCartItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
}

type UpdateCartItemRequest struct {
	Quantity int64 `json:"quantity"`
}

// GetCart は自分のサーバーカート取得。
func (c *Client) GetCart(ctx context.Context) (CartResponse, error) {
	var out CartResponse
	if err := c.doJSON(ctx, http.MethodGet, "/api/carts/me", nil, &out); err != nil {
		return CartResponse{}, err
	}
	return out, nil
}

// AddCartItem は明細追加（同一商品は数量加算）。
func (c *Client) AddCartItem(ctx context.Context, productID string, quantity int64) (CartResponse, error) {
	var out CartResponse
	req := AddCartItemRequest{ProductID: productID, Quantity: quantity}
	if err := c.doJSON(ctx, http.MethodPost, "/api/cart-items", req, &out); err != nil {
		return CartResponse{}, err
	}
	return out, nil
}

// UpdateCartItem は数量変更。
func (c *Client) UpdateCartItem(ctx context.Context, itemID string, quantity int64) (CartResponse, error) {
	var out CartResponse
	req := UpdateCartItemRequest{Quantity: quantity}
	if err := c.doJSON(ctx, http.MethodPatch, "/api/cart-items/"+url.PathEscape(itemID), req, &out); err != nil {
		return CartResponse{}, err
	}
	return out, nil
}

// DeleteCartItem は明細削除。
func (c *Client) DeleteCartItem(ctx context.Context, itemID string) (CartResponse, error) {
	var out CartResponse
	if err := c.doJSON(ctx, http.MethodDelete, "/api/cart-items/"+url.PathEscape(itemID), nil, &out); err != nil {
		return CartResponse{}, err
	}
	return out, nil
}
