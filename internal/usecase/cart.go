package usecase

import (
	"context"

	"app/internal/domain/model"
	"app/internal/repository"
)

// カート変更の失敗はユーザーへは出さない。
// 失敗時は直前の状態が残り、ログにだけ記録される。

// CartItems は現在のカート明細のコピー。
func (s *Session) CartItems() []model.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.CartLine, len(s.cart))
	copy(out, s.cart)
	return out
}

// Subtotal はカート小計（セント）。
func (s *Session) Subtotal() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return model.LinesSubtotal(s.cart)
}

// AddToCart は商品追加。同一商品は数量加算。
func (s *Session) AddToCart(ctx context.Context, ref model.ProductRef) {
	store, g := s.beginCartOp()
	lines, err := store.Add(ctx, ref)
	if err != nil {
		s.log.Warnf("add to cart failed: %v", err)
		return
	}
	s.commitCart(g, lines)
}

// UpdateCartQuantity は数量変更。1未満はno-op（エラーにもしない）。
func (s *Session) UpdateCartQuantity(ctx context.Context, itemID string, quantity int64) {
	if quantity < 1 {
		return
	}

	store, g := s.beginCartOp()
	lines, err := store.UpdateQuantity(ctx, itemID, quantity)
	if err != nil {
		s.log.Warnf("update cart quantity failed: %v", err)
		return
	}
	s.commitCart(g, lines)
}

// RemoveFromCart は明細削除。
func (s *Session) RemoveFromCart(ctx context.Context, itemID string) {
	store, g := s.beginCartOp()
	lines, err := store.Remove(ctx, itemID)
	if err != nil {
		s.log.Warnf("remove from cart failed: %v", err)
		return
	}
	s.commitCart(g, lines)
}

// ClearCart はメモリと永続先の両方を空にする。
func (s *Session) ClearCart(ctx context.Context) {
	store, g := s.beginCartOp()
	if err := store.Clear(ctx); err != nil {
		s.log.Warnf("clear cart failed: %v", err)
		return
	}
	s.commitCart(g, nil)
}

// refreshCart は正となっている保管先からカートを読み直す。
func (s *Session) refreshCart(ctx context.Context) {
	store, g := s.beginCartOp()
	lines, err := store.Items(ctx)
	if err != nil {
		s.log.Warnf("cart refresh failed: %v", err)
		return
	}
	s.commitCart(g, lines)
}

// beginCartOp は世代番号を進めて現在の保管先を返す。
func (s *Session) beginCartOp() (repository.CartStore, uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	return s.activeStore(), s.gen
}

// commitCart は応答が最新世代のときだけ書き戻す。
// 追い越された応答は捨てる（後勝ちによる巻き戻りを防ぐ）。
func (s *Session) commitCart(g uint64, lines []model.CartLine) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if g != s.gen {
		s.log.Debugf("stale cart response discarded (gen %d < %d)", g, s.gen)
		return
	}
	s.cart = lines
}
