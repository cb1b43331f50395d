package usecase

import (
	"context"

	"app/internal/domain/model"
)

// Workshops はワークショップ一覧。
func (s *Session) Workshops(ctx context.Context) ([]model.Workshop, error) {
	return s.api.Workshops(ctx)
}

// WorkshopDetail はワークショップ詳細（残席含む）。
func (s *Session) WorkshopDetail(ctx context.Context, id string) (*model.Workshop, error) {
	return s.api.Workshop(ctx, id)
}

// RegisterWorkshop はワークショップ登録。満席・重複はAPIエラーがそのまま返る。
func (s *Session) RegisterWorkshop(ctx context.Context, workshopID string) error {
	if !s.IsAuthenticated() {
		return ErrNotAuthenticated
	}
	if _, err := s.api.RegisterWorkshop(ctx, workshopID); err != nil {
		return err
	}
	s.refreshEnrollments(ctx)
	return nil
}

// CancelRegistration は登録キャンセル。
func (s *Session) CancelRegistration(ctx context.Context, workshopID string) error {
	if !s.IsAuthenticated() {
		return ErrNotAuthenticated
	}
	if err := s.api.CancelRegistration(ctx, workshopID); err != nil {
		return err
	}
	s.refreshEnrollments(ctx)
	return nil
}

// EnrolledWorkshops は参加中のワークショップ。登録一覧と詳細取得を
// 突き合わせて導出する。取得失敗は黙って飲み、最後に取れた内容を返す。
func (s *Session) EnrolledWorkshops(ctx context.Context) []model.Workshop {
	s.refreshEnrollments(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Workshop, len(s.enrolled))
	copy(out, s.enrolled)
	return out
}

func (s *Session) refreshEnrollments(ctx context.Context) {
	if !s.IsAuthenticated() {
		return
	}

	regs, err := s.api.MyRegistrations(ctx)
	if err != nil {
		s.log.Warnf("enrollment fetch failed: %v", err)
		return
	}

	enrolled := make([]model.Workshop, 0, len(regs))
	for _, r := range regs {
		w, err := s.api.Workshop(ctx, r.WorkshopID)
		if err != nil {
			s.log.Warnf("workshop %s lookup failed: %v", r.WorkshopID, err)
			continue
		}
		enrolled = append(enrolled, *w)
	}

	s.mu.Lock()
	s.enrolled = enrolled
	s.mu.Unlock()
}
