package api

import (
	"context"
	"net/http"
	"net/url"

	"app/internal/domain/model"
)

// Me はセッション確認（who am i）。セッションが無ければ ErrUnauthorized。
func (c *Client) Me(ctx context.Context) (*model.User, error) {
	var u model.User
	if err := c.doJSON(ctx, http.MethodGet, "/api/auth/me", nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Login はログイン。成功時にセッションcookieがjarへ入る。
// ボディは仕様どおりform-encoded。
func (c *Client) Login(ctx context.Context, email string, password string) (*model.User, error) {
	form := url.Values{}
	form.Set("email", email)
	form.Set("password", password)

	var u model.User
	if err := c.doForm(ctx, http.MethodPost, "/api/auth/login", form, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Logout はサーバー側セッションの終了。ベストエフォートで呼ぶ。
func (c *Client) Logout(ctx context.Context) error {
	return c.doJSON(ctx, http.MethodPost, "/api/auth/logout", nil, nil)
}
