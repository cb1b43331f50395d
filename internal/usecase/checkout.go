package usecase

import (
	"context"
	"encoding/json"
	"time"

	"app/internal/api"
	"app/internal/validator"
)

// チェックアウトと決済ページをつなぐ引き継ぎスロットのキー。
const (
	pendingOrderIDKey    = "pending_order_id"
	pendingOrderItemsKey = "pending_order_items"
)

// Checkout はサーバーカートを注文へ変換する。
// 成功時はカート（メモリとローカル残骸）を空にし、注文一覧を更新し、
// 引き継ぎスロットへ注文IDと明細スナップショットを書いて注文IDを返す。
// 失敗時は空文字とエラーを返し、カートには触れない。表示は呼び出し側の責務。
func (s *Session) Checkout(ctx context.Context) (string, error) {
	s.mu.Lock()
	empty := len(s.cart) == 0
	user := s.user
	s.mu.Unlock()

	if user == nil {
		return "", ErrNotAuthenticated
	}
	if empty {
		return "", ErrCartEmpty
	}

	order, err := s.api.Checkout(ctx)
	if err != nil {
		return "", err
	}

	// ローカルスロットの残骸も含めてカートを空にする
	if err := s.guest.Clear(ctx); err != nil {
		s.log.Warnf("checkout: clearing local cart slot failed: %v", err)
	}
	s.mu.Lock()
	s.gen++
	s.cart = nil
	s.mu.Unlock()

	s.refreshOrders(ctx)

	if err := s.slot.Put(pendingOrderIDKey, []byte(order.ID)); err != nil {
		s.log.Warnf("checkout: storing pending order id failed: %v", err)
	}
	if data, err := json.Marshal(order.Items); err == nil {
		if err := s.slot.Put(pendingOrderItemsKey, data); err != nil {
			s.log.Warnf("checkout: storing pending order items failed: %v", err)
		}
	}

	return order.ID, nil
}

// PendingOrder は決済ページが読む引き継ぎスロット。
// 注文IDが無ければ ok=false。明細スナップショットは壊れていれば空。
func (s *Session) PendingOrder() (orderID string, items []api.OrderItemDTO, ok bool) {
	data, found, err := s.slot.Get(pendingOrderIDKey)
	if err != nil || !found || len(data) == 0 {
		return "", nil, false
	}
	orderID = string(data)

	if snap, found, err := s.slot.Get(pendingOrderItemsKey); err == nil && found {
		if err := json.Unmarshal(snap, &items); err != nil {
			items = nil
		}
	}
	return orderID, items, true
}

// PayOrder は模擬決済。手段ごとの入力を同期チェックし、
// 模擬レイテンシの後に注文を PAID へ進め、引き継ぎスロットを消す。
// すでにPAIDの注文への再実行はクライアントでは防がない（サーバー側の責務）。
func (s *Session) PayOrder(ctx context.Context, orderID string, details validator.PaymentDetails) error {
	if orderID == "" {
		return ErrNoPendingOrder
	}
	if err := validator.ValidatePayment(details); err != nil {
		return err
	}

	// 模擬レイテンシ（実際の決済ゲートウェイは呼ばない）
	if s.payDelay > 0 {
		timer := time.NewTimer(s.payDelay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}

	if _, err := s.api.PayOrder(ctx, orderID); err != nil {
		return err
	}

	if err := s.slot.Delete(pendingOrderIDKey); err != nil {
		s.log.Warnf("pay: clearing pending order id failed: %v", err)
	}
	if err := s.slot.Delete(pendingOrderItemsKey); err != nil {
		s.log.Warnf("pay: clearing pending order items failed: %v", err)
	}

	s.refreshOrders(ctx)
	return nil
}

// Orders は注文一覧を取得して返す（キャッシュも更新する）。
func (s *Session) Orders(ctx context.Context) ([]api.OrderDTO, error) {
	list, err := s.api.Orders(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.orders = list
	s.mu.Unlock()

	out := make([]api.OrderDTO, len(list))
	copy(out, list)
	return out, nil
}

// CachedOrders は最後に取得した注文一覧。
func (s *Session) CachedOrders() []api.OrderDTO {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]api.OrderDTO, len(s.orders))
	copy(out, s.orders)
	return out
}

// refreshOrders はベストエフォートの注文一覧更新。失敗はログのみ。
func (s *Session) refreshOrders(ctx context.Context) {
	list, err := s.api.Orders(ctx)
	if err != nil {
		s.log.Warnf("order list refresh failed: %v", err)
		return
	}
	s.mu.Lock()
	s.orders = list
	s.mu.Unlock()
}
