package repository

import (
	"context"

	"app/internal/domain/model"
)

// CartStore はカートの保管先の契約。
// ゲスト（ローカルスロット）とサーバーの2実装があり、
// 認証状態に応じてSessionがどちらか一方だけを正とする。
type CartStore interface {
	// Items は現在の明細一覧。
	Items(ctx context.Context) ([]model.CartLine, error)
	// Add は商品追加。同一商品は数量加算（明細は増やさない）。
	Add(ctx context.Context, ref model.ProductRef) ([]model.CartLine, error)
	// UpdateQuantity は明細IDの数量変更。
	UpdateQuantity(ctx context.Context, itemID string, quantity int64) ([]model.CartLine, error)
	// Remove は明細IDの削除。
	Remove(ctx context.Context, itemID string) ([]model.CartLine, error)
	// Clear は全明細の削除（永続先も空にする）。
	Clear(ctx context.Context) error
}
