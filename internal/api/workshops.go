package api

import (
	"context"
	"net/http"
	"net/url"

	"app/internal/domain/model"
)

type WorkshopListResponse struct {
	Items []model.Workshop `json:"items"`
}

type RegistrationListResponse struct {
	Items []model.Registration `json:"items"`
}

// Workshops はワークショップ一覧。
func (c *Client) Workshops(ctx context.Context) ([]model.Workshop, error) {
	var out WorkshopListResponse
	if err := c.doJSON(ctx, http.MethodGet, "/api/workshops", nil, &out); err != nil {
		return nil, err
	}
	return out.Items, nil
}

// Workshop はワークショップ詳細（残席含む）。
func (c *Client) Workshop(ctx context.Context, id string) (*model.Workshop, error) {
	var w model.Workshop
	if err := c.doJSON(ctx, http.MethodGet, "/api/workshops/"+url.PathEscape(id), nil, &w); err != nil {
		return nil, err
	}
	return &w, nil
}

// RegisterWorkshop はワークショップ登録。
func (c *Client) RegisterWorkshop(ctx context.Context, workshopID string) (*model.Registration, error) {
	var r model.Registration
	path := "/api/workshop-registrations/" + url.PathEscape(workshopID) + "/register"
	if err := c.doJSON(ctx, http.MethodPost, path, nil, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// CancelRegistration は登録キャンセル。
func (c *Client) CancelRegistration(ctx context.Context, workshopID string) error {
	path := "/api/workshop-registrations/" + url.PathEscape(workshopID) + "/cancel"
	return c.doJSON(ctx, http.MethodDelete, path, nil, nil)
}

// MyRegistrations は自分の登録一覧。
func (c *Client) MyRegistrations(ctx context.Context) ([]model.Registration, error) {
	var out RegistrationListResponse
	if err := c.doJSON(ctx, http.MethodGet, "/api/workshop-registrations/user/my-registrations", nil, &out); err != nil {
		return nil, err
	}
	return out.Items, nil
}
