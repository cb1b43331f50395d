package api

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"app/internal/domain/model"
)

// OrderItemDTO は注文明細（タイトル・単価は注文時スナップショット）。
type OrderItemDTO struct {
	ID        string `json:"id"`
	ProductID string `json:"product_id"`
	Title     string `json:"title"`
	Price     int64  `json:"price"`
	Quantity  int64  `json:"quantity"`
}

type OrderDTO struct {
	ID         string            `json:"id"`
	Status     model.OrderStatus `json:"status"`
	TotalPrice int64             `json:"total_price"`
	CreatedAt  time.Time         `json:"created_at"`
	PaidAt     *time.Time        `json:"paid_at"`
	Items      []OrderItemDTO    `json:"items"`
}

type OrderListResponse struct {
	Items []OrderDTO `json:"items"`
}

// Orders は自分の注文一覧。
func (c *Client) Orders(ctx context.Context) ([]OrderDTO, error) {
	var out OrderListResponse
	if err := c.doJSON(ctx, http.MethodGet, "/api/orders", nil, &out); err != nil {
		return nil, err
	}
	return out.Items, nil
}

// Checkout はACTIVEカートを注文へ変換する（サーバー側でアトミック）。
func (c *Client) Checkout(ctx context.Context) (OrderDTO, error) {
	var out OrderDTO
	if err := c.doJSON(ctx, http.MethodPost, "/api/orders/checkout", nil, &out); err != nil {
		return OrderDTO{}, err
	}
	return out, nil
}

// PayOrder は注文を PENDING → PAID へ進める。
func (c *Client) PayOrder(ctx context.Context, orderID string) (OrderDTO, error) {
	var out OrderDTO
	path := "/api/orders/" + url.PathEscape(orderID) + "/pay"
	if err := c.doJSON(ctx, http.MethodPatch, path, nil, &out); err != nil {
		return OrderDTO{}, err
	}
	return out, nil
}
