package usecase

import (
	"context"
	"sync"
	"time"

	"app/internal/api"
	"app/internal/domain/model"
	"app/internal/repository"

	"github.com/decred/slog"
)

// Session はクライアント状態のコンテナ。
// カート（ゲスト／サーバーの二モード）・認証状態・注文・参加ワークショップを
// 1か所で持つ。状態の読み書きはすべてこの型のメソッド経由。
//
// カートはゲストモードではローカルスロット、認証後はサーバーが正となり、
// ログイン時にローカル明細をサーバーへ移行する。ログアウトでメモリ状態を
// 破棄してゲストモードへ戻る（前のセッションが残したローカルスロットが
// あればそれが再び見える。共有端末での挙動として既知のまま）。
type Session struct {
	mu sync.Mutex

	api    *api.Client
	guest  repository.CartStore
	server repository.CartStore
	slot   repository.Slot
	log    slog.Logger

	payDelay time.Duration

	user     *model.User
	cart     []model.CartLine
	orders   []api.OrderDTO
	enrolled []model.Workshop

	// カート書き戻しの世代番号。遅れて届いた応答は捨てる。
	gen uint64

	lastMigration MigrationResult
}

// Params はSessionの依存。
type Params struct {
	API    *api.Client
	Guest  repository.CartStore
	Server repository.CartStore
	Slot   repository.Slot
	Logger slog.Logger

	// 模擬決済のレイテンシ。0なら待たない。
	PayDelay time.Duration
}

func New(p Params) *Session {
	log := p.Logger
	if log == nil {
		log = slog.Disabled
	}

	return &Session{
		api:      p.API,
		guest:    p.Guest,
		server:   p.Server,
		slot:     p.Slot,
		log:      log,
		payDelay: p.PayDelay,
	}
}

// Start は起動時のセッション確認。有効なセッションが無ければゲスト扱い
// （エラーにしない）。どちらのモードでもカートを読み込む。
func (s *Session) Start(ctx context.Context) error {
	u, err := s.api.Me(ctx)
	if err != nil {
		if err != api.ErrUnauthorized {
			s.log.Warnf("session probe failed: %v", err)
		}
		s.mu.Lock()
		s.user = nil
		s.mu.Unlock()
		s.refreshCart(ctx)
		return nil
	}

	s.mu.Lock()
	s.user = u
	s.mu.Unlock()
	s.refreshCart(ctx)
	return nil
}

// CurrentUser は認証中のユーザー。ゲストならnil。
func (s *Session) CurrentUser() *model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// IsAuthenticated は認証済みかどうか。
func (s *Session) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user != nil
}

// activeStore は現在正となっている保管先。
func (s *Session) activeStore() repository.CartStore {
	if s.user != nil {
		return s.server
	}
	return s.guest
}

// Login はログインし、ゲストカートを移行してからサーバーカートを読む。
// 失敗は固定カテゴリのエラーで返す（UIはこれをそのまま表示できる）。
func (s *Session) Login(ctx context.Context, email string, password string) error {
	u, err := s.api.Login(ctx, email, password)
	if err != nil {
		return classifyLoginError(err)
	}

	// サーバーカートを読む前にローカル明細を移行する
	s.migrateGuestCart(ctx)

	// 念のためセッションを再確認（失敗時はログイン応答のユーザーを使う）
	if probed, perr := s.api.Me(ctx); perr == nil {
		u = probed
	}

	s.mu.Lock()
	s.user = u
	s.gen++ // ゲストモードの書き戻しを無効化
	s.mu.Unlock()

	s.refreshCart(ctx)
	return nil
}

func classifyLoginError(err error) error {
	switch {
	case err == api.ErrUnauthorized:
		return ErrBadCredentials
	case api.IsNetworkError(err):
		return ErrUnableToConnect
	case api.IsServerError(err):
		return ErrServerError
	default:
		return ErrLoginFailed
	}
}

// Logout はベストエフォートでサーバーセッションを終了し、
// 成否にかかわらずメモリ上のカート・注文・参加状態を破棄して
// ゲストモードへ戻る。
func (s *Session) Logout(ctx context.Context) {
	if err := s.api.Logout(ctx); err != nil {
		s.log.Debugf("logout request failed (ignored): %v", err)
	}

	s.mu.Lock()
	s.user = nil
	s.cart = nil
	s.orders = nil
	s.enrolled = nil
	s.gen++
	s.mu.Unlock()

	s.refreshCart(ctx)
}

// MigrationResult は直近のカート移行の結果。部分失敗は黙って落ちるため、
// 後から件数だけ確認できるようにしておく。
type MigrationResult struct {
	Attempted int
	Migrated  int
}

// LastMigration は直近のログイン時カート移行の結果。
func (s *Session) LastMigration() MigrationResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastMigration
}

// migrateGuestCart はローカル明細を1件ずつサーバーへ送る。
// 件ごとの失敗はログだけ残して続行し（未移行分は消える）、
// 送り終えたらローカルスロットを無条件で空にする。
func (s *Session) migrateGuestCart(ctx context.Context) {
	lines, err := s.guest.Items(ctx)
	if err != nil {
		s.log.Warnf("migration: reading guest cart failed: %v", err)
		lines = nil
	}

	res := MigrationResult{Attempted: len(lines)}
	for _, l := range lines {
		if _, err := s.api.AddCartItem(ctx, l.ProductID, l.Quantity); err != nil {
			s.log.Warnf("migration: item %s (product %s) dropped: %v", l.ID, l.ProductID, err)
			continue
		}
		res.Migrated++
	}

	if err := s.guest.Clear(ctx); err != nil {
		s.log.Warnf("migration: clearing guest cart slot failed: %v", err)
	}

	s.mu.Lock()
	s.lastMigration = res
	s.mu.Unlock()

	if res.Migrated < res.Attempted {
		s.log.Warnf("migration: %d of %d items migrated", res.Migrated, res.Attempted)
	}
}
