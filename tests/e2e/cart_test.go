package e2e

import (
	"context"
	"testing"

	"app/internal/domain/model"

	"github.com/stretchr/testify/assert"
)

// Test: ゲストカートはログインでサーバーへ移行され、ローカルは空になる
func TestCart_GuestMigratesOnLogin(t *testing.T) {
	ctx := context.Background()
	baseURL := startSandbox(t)
	sess, _, _ := newSession(t, baseURL)

	products, err := sess.ProductCatalog(ctx)
	assert.NoError(t, err)
	assert.GreaterOrEqual(t, len(products), 2)

	// ゲストで同じ商品を2回＋別商品を1回
	sess.AddToCart(ctx, productRef(products[0]))
	sess.AddToCart(ctx, productRef(products[0]))
	sess.AddToCart(ctx, productRef(products[1]))

	guestLines := sess.CartItems()
	assert.Equal(t, 2, len(guestLines))
	assert.True(t, guestLines[0].IsLocal())

	signupAndLogin(t, ctx, sess, "taro@example.com")

	mig := sess.LastMigration()
	assert.Equal(t, 2, mig.Attempted)
	assert.Equal(t, 2, mig.Migrated)

	// サーバーカートに移行済み（IDはサーバー発番、数量は保持）
	lines := sess.CartItems()
	assert.Equal(t, 2, len(lines))
	byProduct := map[string]model.CartLine{}
	for _, l := range lines {
		assert.False(t, l.IsLocal())
		byProduct[l.ProductID] = l
	}
	assert.Equal(t, int64(2), byProduct[products[0].ID].Quantity)
	assert.Equal(t, int64(1), byProduct[products[1].ID].Quantity)

	// タイトルと小計もサーバーモードで引き継がれている
	assert.Equal(t, products[0].Title, byProduct[products[0].ID].Title)
	assert.Equal(t, products[0].Price*2+products[1].Price, sess.Subtotal())
}

// Test: ログイン後の同一商品追加はサーバー側で数量加算
func TestCart_ServerModeMergesDuplicates(t *testing.T) {
	ctx := context.Background()
	baseURL := startSandbox(t)
	sess, _, _ := newSession(t, baseURL)

	signupAndLogin(t, ctx, sess, "taro@example.com")

	p := firstProduct(t, ctx, sess)
	sess.AddToCart(ctx, productRef(p))
	sess.AddToCart(ctx, productRef(p))

	lines := sess.CartItems()
	assert.Equal(t, 1, len(lines))
	assert.Equal(t, int64(2), lines[0].Quantity)
}

// Test: サーバーモードの数量変更と削除
func TestCart_ServerModeUpdateAndRemove(t *testing.T) {
	ctx := context.Background()
	baseURL := startSandbox(t)
	sess, _, _ := newSession(t, baseURL)

	signupAndLogin(t, ctx, sess, "taro@example.com")

	p := firstProduct(t, ctx, sess)
	sess.AddToCart(ctx, productRef(p))

	lines := sess.CartItems()
	assert.Equal(t, 1, len(lines))
	itemID := lines[0].ID

	sess.UpdateCartQuantity(ctx, itemID, 5)
	lines = sess.CartItems()
	assert.Equal(t, int64(5), lines[0].Quantity)
	assert.Equal(t, p.Price*5, sess.Subtotal())

	// 1未満はno-op
	sess.UpdateCartQuantity(ctx, itemID, 0)
	lines = sess.CartItems()
	assert.Equal(t, int64(5), lines[0].Quantity)

	sess.RemoveFromCart(ctx, itemID)
	assert.Equal(t, 0, len(sess.CartItems()))
}

// Test: ログアウトでメモリ上のカートが消えてゲストへ戻る
func TestCart_LogoutDropsServerCart(t *testing.T) {
	ctx := context.Background()
	baseURL := startSandbox(t)
	sess, _, _ := newSession(t, baseURL)

	signupAndLogin(t, ctx, sess, "taro@example.com")

	p := firstProduct(t, ctx, sess)
	sess.AddToCart(ctx, productRef(p))
	assert.Equal(t, 1, len(sess.CartItems()))

	sess.Logout(ctx)

	// ゲストスロットはログイン時に空にされているので、カートは空
	assert.Equal(t, 0, len(sess.CartItems()))
	assert.Equal(t, int64(0), sess.Subtotal())
}

// Test: 再ログインするとサーバーカートが戻る
func TestCart_SurvivesRelogin(t *testing.T) {
	ctx := context.Background()
	baseURL := startSandbox(t)
	sess, _, _ := newSession(t, baseURL)

	signupAndLogin(t, ctx, sess, "taro@example.com")

	p := firstProduct(t, ctx, sess)
	sess.AddToCart(ctx, productRef(p))
	sess.Logout(ctx)
	assert.Equal(t, 0, len(sess.CartItems()))

	assert.NoError(t, sess.Login(ctx, "taro@example.com", "password123"))
	lines := sess.CartItems()
	assert.Equal(t, 1, len(lines))
	assert.Equal(t, p.ID, lines[0].ProductID)
}
