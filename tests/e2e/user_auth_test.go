package e2e

import (
	"context"
	"errors"
	"testing"
	"time"

	"app/internal/api"
	"app/internal/usecase"

	"github.com/stretchr/testify/assert"
)

// Test: 登録→ログイン→me→ログアウトの一連
func TestAuth_SignupLoginLogout(t *testing.T) {
	ctx := context.Background()
	baseURL := startSandbox(t)
	sess, _, _ := newSession(t, baseURL)

	assert.False(t, sess.IsAuthenticated())

	signupAndLogin(t, ctx, sess, "taro@example.com")

	u := sess.CurrentUser()
	if assert.NotNil(t, u) {
		assert.Equal(t, "taro@example.com", u.Email)
		if assert.NotNil(t, u.FirstName) {
			assert.Equal(t, "Taro", *u.FirstName)
		}
	}

	sess.Logout(ctx)
	assert.False(t, sess.IsAuthenticated())
	assert.Nil(t, sess.CurrentUser())
}

// Test: 登録済みメールでの再登録は409
func TestAuth_DuplicateSignup(t *testing.T) {
	ctx := context.Background()
	baseURL := startSandbox(t)
	sess, _, _ := newSession(t, baseURL)

	signupAndLogin(t, ctx, sess, "dup@example.com")

	_, err := sess.Signup(ctx, usecase.SignupInput{Email: "dup@example.com", Password: "password123"})
	assert.Error(t, err)

	var ae *api.APIError
	if assert.True(t, errors.As(err, &ae)) {
		assert.Equal(t, 409, ae.Status)
		assert.Equal(t, "CONFLICT", ae.Code)
	}
}

// Test: 間違ったパスワードは資格情報エラーに分類される
func TestAuth_WrongPassword(t *testing.T) {
	ctx := context.Background()
	baseURL := startSandbox(t)
	sess, _, _ := newSession(t, baseURL)

	_, err := sess.Signup(ctx, usecase.SignupInput{Email: "taro@example.com", Password: "password123"})
	assert.NoError(t, err)

	err = sess.Login(ctx, "taro@example.com", "wrong-password")
	assert.Equal(t, usecase.ErrBadCredentials, err)
	assert.False(t, sess.IsAuthenticated())
}

// Test: プロフィール更新はセッション内ユーザーにも反映される
func TestAuth_UpdateProfile(t *testing.T) {
	ctx := context.Background()
	baseURL := startSandbox(t)
	sess, _, _ := newSession(t, baseURL)

	signupAndLogin(t, ctx, sess, "taro@example.com")

	u, err := sess.UpdateProfile(ctx, "Jiro", "Suzuki")
	assert.NoError(t, err)
	if assert.NotNil(t, u.FirstName) {
		assert.Equal(t, "Jiro", *u.FirstName)
	}

	cur := sess.CurrentUser()
	if assert.NotNil(t, cur) {
		if assert.NotNil(t, cur.LastName) {
			assert.Equal(t, "Suzuki", *cur.LastName)
		}
	}
}

// Test: 未認証のプロフィール更新は拒否
func TestAuth_UpdateProfileRequiresLogin(t *testing.T) {
	baseURL := startSandbox(t)
	sess, _, _ := newSession(t, baseURL)

	_, err := sess.UpdateProfile(context.Background(), "Jiro", "Suzuki")
	assert.Equal(t, usecase.ErrNotAuthenticated, err)
}

// Test: セッションcookieは保存→復元で別クライアントへ引き継げる（CLI再起動相当）
func TestAuth_CookiePersistence(t *testing.T) {
	ctx := context.Background()
	baseURL := startSandbox(t)
	sess, client, slot := newSession(t, baseURL)

	signupAndLogin(t, ctx, sess, "taro@example.com")
	assert.NoError(t, client.SaveCookies(slot))

	// 復元なしの新規クライアントは未認証
	fresh, err := api.New(baseURL, 10*time.Second, nil)
	assert.NoError(t, err)
	_, err = fresh.Me(ctx)
	assert.Equal(t, api.ErrUnauthorized, err)

	// 復元すればセッション継続
	assert.NoError(t, fresh.RestoreCookies(slot))
	u, err := fresh.Me(ctx)
	assert.NoError(t, err)
	assert.Equal(t, "taro@example.com", u.Email)
}
