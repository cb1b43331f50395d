package usecase

import "errors"

// ログイン失敗をUI向けの固定カテゴリへ分類したもの。
var (
	// メールまたはパスワードが違う
	ErrBadCredentials = errors.New("invalid email or password")
	// サーバー側エラー（5xx）
	ErrServerError = errors.New("server error, please try again later")
	// サーバーに到達できない
	ErrUnableToConnect = errors.New("unable to connect")
	// 上記以外
	ErrLoginFailed = errors.New("login failed")
)

var (
	// 空カートでのチェックアウト
	ErrCartEmpty = errors.New("cart empty")
	// 認証が必要な操作
	ErrNotAuthenticated = errors.New("not authenticated")
	// 決済対象の注文が無い
	ErrNoPendingOrder = errors.New("no pending order")
)
