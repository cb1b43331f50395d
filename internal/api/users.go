package api

import (
	"context"
	"net/http"

	"app/internal/domain/model"
)

type SignupRequest struct {
	Email     string  `json:"email"`
	Password  string  `json:"password"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
}

type UpdateProfileRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
}

// Signup は会員登録。
func (c *Client) Signup(ctx context.Context, req SignupRequest) (*model.User, error) {
	var u model.User
	if err := c.doJSON(ctx, http.MethodPost, "/api/users", req, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// UpdateProfile はプロフィール更新。
func (c *Client) UpdateProfile(ctx context.Context, req UpdateProfileRequest) (*model.User, error) {
	var u model.User
	if err := c.doJSON(ctx, http.MethodPut, "/api/users/me", req, &u); err != nil {
		return nil, err
	}
	return &u, nil
}
