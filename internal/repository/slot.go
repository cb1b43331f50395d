package repository

// Slot は端末ローカルのkey-valueスロット。
// ゲストカート・決済ページへの注文引き継ぎ・セッションcookieを置く。
type Slot interface {
	Get(key string) ([]byte, bool, error)
	Put(key string, value []byte) error
	Delete(key string) error
}
