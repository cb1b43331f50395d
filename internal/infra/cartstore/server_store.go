package cartstore

import (
	"context"

	"app/internal/api"
	"app/internal/domain/model"
	"app/internal/repository"

	"github.com/decred/slog"
)

// ServerStore は認証後のカート。すべての変更はサーバーへのリクエストで、
// 応答のカートを正とする。カートAPIはタイトルを返さないため、
// 商品詳細を明細ごとに引いて表示タイトルを補完する。
type ServerStore struct {
	api *api.Client
	log slog.Logger
}

var _ repository.CartStore = (*ServerStore)(nil)

func NewServerStore(c *api.Client, log slog.Logger) *ServerStore {
	if log == nil {
		log = slog.Disabled
	}
	return &ServerStore{api: c, log: log}
}

func (s *ServerStore) Items(ctx context.Context) ([]model.CartLine, error) {
	resp, err := s.api.GetCart(ctx)
	if err != nil {
		return nil, err
	}
	return s.lines(ctx, resp), nil
}

// 追加は数量1固定（同一商品はサーバー側で加算される）。
func (s *ServerStore) Add(ctx context.Context, ref model.ProductRef) ([]model.CartLine, error) {
	resp, err := s.api.AddCartItem(ctx, ref.ID, 1)
	if err != nil {
		return nil, err
	}
	return s.lines(ctx, resp), nil
}

func (s *ServerStore) UpdateQuantity(ctx context.Context, itemID string, quantity int64) ([]model.CartLine, error) {
	if quantity < 1 {
		return s.Items(ctx)
	}
	resp, err := s.api.UpdateCartItem(ctx, itemID, quantity)
	if err != nil {
		return nil, err
	}
	return s.lines(ctx, resp), nil
}

func (s *ServerStore) Remove(ctx context.Context, itemID string) ([]model.CartLine, error) {
	resp, err := s.api.DeleteCartItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	return s.lines(ctx, resp), nil
}

// Clear は明細を1件ずつ削除する（まとめて消すAPIは無い）。
func (s *ServerStore) Clear(ctx context.Context) error {
	resp, err := s.api.GetCart(ctx)
	if err != nil {
		return err
	}

	var last error
	for _, it := range resp.Items {
		if _, err := s.api.DeleteCartItem(ctx, it.ID); err != nil {
			s.log.Warnf("clear: delete cart item %s failed: %v", it.ID, err)
			last = err
		}
	}
	return last
}

// lines はカート応答を表示形へ変換する。タイトルは商品詳細から補完し、
// 取得に失敗した明細は価格・数量だけで残す（消さない）。
func (s *ServerStore) lines(ctx context.Context, resp api.CartResponse) []model.CartLine {
	titles := make(map[string]string, len(resp.Items))

	out := make([]model.CartLine, 0, len(resp.Items))
	for _, it := range resp.Items {
		title, ok := titles[it.ProductID]
		if !ok {
			p, err := s.api.Product(ctx, it.ProductID)
			if err != nil {
				s.log.Warnf("product lookup for cart item %s failed: %v", it.ID, err)
			} else {
				title = p.Title
			}
			titles[it.ProductID] = title
		}

		out = append(out, model.CartLine{
			ID:        it.ID,
			ProductID: it.ProductID,
			Title:     title,
			Price:     it.Price,
			Quantity:  it.Quantity,
		})
	}
	return out
}
