package cartstore

import (
	"context"
	"encoding/json"

	"app/internal/domain/model"
	"app/internal/repository"

	"github.com/decred/slog"
	"github.com/google/uuid"
)

// GuestCartKey はゲストカートを永続化するスロットのキー。
const GuestCartKey = "guest_cart"

// GuestStore は未認証時のカート。端末ローカルのスロットへ
// 毎操作後にそのまま直列化する。明細IDは local- 接頭辞つき。
type GuestStore struct {
	slot repository.Slot
	log  slog.Logger
}

var _ repository.CartStore = (*GuestStore)(nil)

func NewGuestStore(slot repository.Slot, log slog.Logger) *GuestStore {
	if log == nil {
		log = slog.Disabled
	}
	return &GuestStore{slot: slot, log: log}
}

func (s *GuestStore) load() ([]model.CartLine, error) {
	data, ok, err := s.slot.Get(GuestCartKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []model.CartLine{}, nil
	}

	var lines []model.CartLine
	if err := json.Unmarshal(data, &lines); err != nil {
		// 壊れたスロットは空扱い
		s.log.Warnf("guest cart slot corrupted, resetting: %v", err)
		return []model.CartLine{}, nil
	}
	return lines, nil
}

func (s *GuestStore) save(lines []model.CartLine) error {
	data, err := json.Marshal(lines)
	if err != nil {
		return err
	}
	return s.slot.Put(GuestCartKey, data)
}

func (s *GuestStore) Items(ctx context.Context) ([]model.CartLine, error) {
	return s.load()
}

// Add は同一商品なら数量加算、無ければローカル発番で追記。
func (s *GuestStore) Add(ctx context.Context, ref model.ProductRef) ([]model.CartLine, error) {
	lines, err := s.load()
	if err != nil {
		return nil, err
	}

	found := false
	for i := range lines {
		if lines[i].ProductID == ref.ID {
			lines[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		lines = append(lines, model.CartLine{
			ID:        model.LocalIDPrefix + uuid.NewString(),
			ProductID: ref.ID,
			Title:     ref.Title,
			Price:     ref.Price,
			Quantity:  1,
		})
	}

	if err := s.save(lines); err != nil {
		return nil, err
	}
	return lines, nil
}

func (s *GuestStore) UpdateQuantity(ctx context.Context, itemID string, quantity int64) ([]model.CartLine, error) {
	lines, err := s.load()
	if err != nil {
		return nil, err
	}
	if quantity < 1 {
		return lines, nil
	}

	found := false
	for i := range lines {
		if lines[i].ID == itemID {
			lines[i].Quantity = quantity
			found = true
			break
		}
	}
	// 対象が無ければ書き戻さない
	if !found {
		return lines, nil
	}

	if err := s.save(lines); err != nil {
		return nil, err
	}
	return lines, nil
}

func (s *GuestStore) Remove(ctx context.Context, itemID string) ([]model.CartLine, error) {
	lines, err := s.load()
	if err != nil {
		return nil, err
	}

	kept := make([]model.CartLine, 0, len(lines))
	for _, l := range lines {
		if l.ID != itemID {
			kept = append(kept, l)
		}
	}
	// 対象が無ければ書き戻さない
	if len(kept) == len(lines) {
		return lines, nil
	}

	if err := s.save(kept); err != nil {
		return nil, err
	}
	return kept, nil
}

// Clear はメモリ側だけでなく永続スロットも空にする。
func (s *GuestStore) Clear(ctx context.Context) error {
	return s.slot.Delete(GuestCartKey)
}
