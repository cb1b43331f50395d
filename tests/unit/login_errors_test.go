package unit

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"app/internal/api"
	"app/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// ログイン失敗の分類はサーバーの応答で決まるため、
// 固定応答のhttptestサーバーで種別ごとに確認する。

func newSessionFor(t *testing.T, baseURL string) *usecase.Session {
	t.Helper()

	client, err := api.New(baseURL, 2*time.Second, nil)
	if err != nil {
		t.Fatalf("api.New failed: %v", err)
	}
	return usecase.New(usecase.Params{API: client, Guest: new(CartStoreMock)})
}

func TestLogin_WrongCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"UNAUTHORIZED"}`))
	}))
	defer srv.Close()

	sess := newSessionFor(t, srv.URL)
	err := sess.Login(context.Background(), "taro@example.com", "wrong")
	assert.Equal(t, usecase.ErrBadCredentials, err)
	assert.False(t, sess.IsAuthenticated())
}

func TestLogin_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	sess := newSessionFor(t, srv.URL)
	err := sess.Login(context.Background(), "taro@example.com", "password123")
	assert.Equal(t, usecase.ErrServerError, err)
}

func TestLogin_UnableToConnect(t *testing.T) {
	// サーバーを先に閉じて到達不能にする
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	sess := newSessionFor(t, srv.URL)
	err := sess.Login(context.Background(), "taro@example.com", "password123")
	assert.Equal(t, usecase.ErrUnableToConnect, err)
}

func TestLogin_OtherFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	sess := newSessionFor(t, srv.URL)
	err := sess.Login(context.Background(), "taro@example.com", "password123")
	assert.Equal(t, usecase.ErrLoginFailed, err)
}

// Test: 起動時のセッション確認は失敗してもゲスト扱い
func TestStart_NoSessionBecomesGuest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	guest := new(CartStoreMock)
	guest.On("Items", mock.Anything).Return(nil, nil)

	client, err := api.New(srv.URL, 2*time.Second, nil)
	assert.NoError(t, err)

	sess := usecase.New(usecase.Params{API: client, Guest: guest})
	assert.NoError(t, sess.Start(context.Background()))
	assert.False(t, sess.IsAuthenticated())
	assert.Nil(t, sess.CurrentUser())
}
