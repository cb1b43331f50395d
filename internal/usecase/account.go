package usecase

import (
	"context"
	"strings"

	"app/internal/api"
	"app/internal/domain/model"
	"app/internal/validator"
)

// SignupInput は会員登録フォームの入力。姓名は任意。
type SignupInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// Signup は会員登録。ログインは別操作（登録後に自動ログインしない）。
// 検証エラーはそのままUIへ出せる。
func (s *Session) Signup(ctx context.Context, in SignupInput) (*model.User, error) {
	if err := validator.ValidateSignup(in.Email, in.Password); err != nil {
		return nil, err
	}

	req := api.SignupRequest{
		Email:     strings.TrimSpace(in.Email),
		Password:  in.Password,
		FirstName: optional(in.FirstName),
		LastName:  optional(in.LastName),
	}
	return s.api.Signup(ctx, req)
}

// UpdateProfile はプロフィール更新。成功時はセッション内のユーザーも更新。
func (s *Session) UpdateProfile(ctx context.Context, firstName string, lastName string) (*model.User, error) {
	if !s.IsAuthenticated() {
		return nil, ErrNotAuthenticated
	}

	u, err := s.api.UpdateProfile(ctx, api.UpdateProfileRequest{
		FirstName: optional(firstName),
		LastName:  optional(lastName),
	})
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.user = u
	s.mu.Unlock()

	copied := *u
	return &copied, nil
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
