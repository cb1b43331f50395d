package e2e

import (
	"context"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"app/internal/api"
	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/infra/cartstore"
	"app/internal/infra/localstore"
	"app/internal/sandbox"
	"app/internal/usecase"
	"app/internal/validator"

	"gorm.io/gorm"
)

// e2eはサンドボックスAPIをテストプロセス内で起動して、
// SDKをそのまま（HTTP越しに）当てる。外部依存なし。

func startSandbox(t *testing.T) string {
	url, _ := startSandboxDB(t)
	return url
}

func startSandboxDB(t *testing.T) (string, *gorm.DB) {
	t.Helper()

	cfg := config.SandboxConfig{
		Port:       "0",
		SQLitePath: filepath.Join(t.TempDir(), "sandbox.db"),
		JWTSecret:  "e2e_test_secret",
	}

	db, err := sandbox.Connect(cfg)
	if err != nil {
		t.Fatalf("sandbox.Connect failed: %v", err)
	}
	if err := sandbox.Migrate(db); err != nil {
		t.Fatalf("sandbox.Migrate failed: %v", err)
	}
	if err := sandbox.Seed(db); err != nil {
		t.Fatalf("sandbox.Seed failed: %v", err)
	}

	srv := httptest.NewServer(sandbox.NewServer(db, cfg, nil).Echo())
	t.Cleanup(srv.Close)

	return srv.URL, db
}

// newSession はSDK一式（APIクライアント＋ローカルスロット＋セッション）を組む。
func newSession(t *testing.T, baseURL string) (*usecase.Session, *api.Client, *localstore.Store) {
	t.Helper()

	slot, err := localstore.New(t.TempDir())
	if err != nil {
		t.Fatalf("localstore.New failed: %v", err)
	}

	client, err := api.New(baseURL, 10*time.Second, nil)
	if err != nil {
		t.Fatalf("api.New failed: %v", err)
	}

	sess := usecase.New(usecase.Params{
		API:    client,
		Guest:  cartstore.NewGuestStore(slot, nil),
		Server: cartstore.NewServerStore(client, nil),
		Slot:   slot,
		// 模擬決済の待ちはテストでは省く
		PayDelay: 0,
	})

	if err := sess.Start(context.Background()); err != nil {
		t.Fatalf("session start failed: %v", err)
	}
	return sess, client, slot
}

func signupAndLogin(t *testing.T, ctx context.Context, sess *usecase.Session, email string) {
	t.Helper()

	_, err := sess.Signup(ctx, usecase.SignupInput{
		Email:     email,
		Password:  "password123",
		FirstName: "Taro",
		LastName:  "Yamada",
	})
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	if err := sess.Login(ctx, email, "password123"); err != nil {
		t.Fatalf("login failed: %v", err)
	}
}

func firstProduct(t *testing.T, ctx context.Context, sess *usecase.Session) model.Product {
	t.Helper()

	products, err := sess.ProductCatalog(ctx)
	if err != nil {
		t.Fatalf("product list failed: %v", err)
	}
	if len(products) == 0 {
		t.Fatal("no seeded products")
	}
	return products[0]
}

func productRef(p model.Product) model.ProductRef {
	return model.ProductRef{ID: p.ID, Title: p.Title, Price: p.Price}
}

func cardPayment() validator.PaymentDetails {
	return validator.PaymentDetails{
		Method:     validator.MethodCreditCard,
		CardName:   "Taro Yamada",
		CardNumber: "4242424242424242",
		CardExpiry: "1229",
		CardCVV:    "123",
	}
}
