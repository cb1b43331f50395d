package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrUnauthorized はセッション無し／認証失敗（401）。
// 起動時のセッション確認ではエラーではなく「ゲスト」として扱う。
var ErrUnauthorized = errors.New("unauthorized")

// NetworkError はトランスポート層の失敗（サーバーに届いていない）。
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network unreachable: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// APIError は2xx以外のHTTPレスポンス。
type APIError struct {
	Status int
	Code   string
}

func (e *APIError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("api error: status %d", e.Status)
	}
	return fmt.Sprintf("api error: status %d (%s)", e.Status, e.Code)
}

// ErrorResponse はAPIのエラーボディ。
type ErrorResponse struct {
	Error string `json:"error"`
}

func newStatusError(status int, body []byte) error {
	if status == http.StatusUnauthorized {
		return ErrUnauthorized
	}

	var er ErrorResponse
	_ = json.Unmarshal(body, &er)
	return &APIError{Status: status, Code: er.Error}
}

// IsServerError は5xxかどうか。
func IsServerError(err error) bool {
	var ae *APIError
	return errors.As(err, &ae) && ae.Status >= 500
}

// IsNetworkError はトランスポート層の失敗かどうか。
func IsNetworkError(err error) bool {
	var ne *NetworkError
	return errors.As(err, &ne)
}
