package e2e

import (
	"context"
	"errors"
	"testing"

	"app/internal/api"
	"app/internal/domain/model"
	"app/internal/usecase"

	"github.com/stretchr/testify/assert"
)

// Test: 登録→参加一覧→キャンセルの一連。残席が増減する
func TestWorkshops_RegisterAndCancel(t *testing.T) {
	ctx := context.Background()
	baseURL := startSandbox(t)
	sess, _, _ := newSession(t, baseURL)

	signupAndLogin(t, ctx, sess, "taro@example.com")

	workshops, err := sess.Workshops(ctx)
	assert.NoError(t, err)
	assert.GreaterOrEqual(t, len(workshops), 2)

	w := workshops[0]
	assert.NoError(t, sess.RegisterWorkshop(ctx, w.ID))

	// 残席が1減る
	detail, err := sess.WorkshopDetail(ctx, w.ID)
	assert.NoError(t, err)
	assert.Equal(t, w.SpotsLeft-1, detail.SpotsLeft)

	// 参加一覧は登録とワークショップ詳細の突き合わせで導出
	enrolled := sess.EnrolledWorkshops(ctx)
	if assert.Equal(t, 1, len(enrolled)) {
		assert.Equal(t, w.ID, enrolled[0].ID)
		assert.Equal(t, w.Title, enrolled[0].Title)
	}

	assert.NoError(t, sess.CancelRegistration(ctx, w.ID))

	// 残席が戻り、参加一覧は空
	detail, err = sess.WorkshopDetail(ctx, w.ID)
	assert.NoError(t, err)
	assert.Equal(t, w.SpotsLeft, detail.SpotsLeft)
	assert.Equal(t, 0, len(sess.EnrolledWorkshops(ctx)))
}

// Test: 同じワークショップへの二重登録は409
func TestWorkshops_DuplicateRegistration(t *testing.T) {
	ctx := context.Background()
	baseURL := startSandbox(t)
	sess, _, _ := newSession(t, baseURL)

	signupAndLogin(t, ctx, sess, "taro@example.com")

	workshops, err := sess.Workshops(ctx)
	assert.NoError(t, err)

	w := workshops[0]
	assert.NoError(t, sess.RegisterWorkshop(ctx, w.ID))

	err = sess.RegisterWorkshop(ctx, w.ID)
	var ae *api.APIError
	if assert.True(t, errors.As(err, &ae)) {
		assert.Equal(t, 409, ae.Status)
		assert.Equal(t, "ALREADY_REGISTERED", ae.Code)
	}
}

// Test: 未認証の登録は拒否
func TestWorkshops_RegisterRequiresLogin(t *testing.T) {
	ctx := context.Background()
	baseURL := startSandbox(t)
	sess, _, _ := newSession(t, baseURL)

	workshops, err := sess.Workshops(ctx)
	assert.NoError(t, err)

	err = sess.RegisterWorkshop(ctx, workshops[0].ID)
	assert.Equal(t, usecase.ErrNotAuthenticated, err)
}

// Test: 満席のワークショップには登録できない
func TestWorkshops_FullWorkshopRejected(t *testing.T) {
	ctx := context.Background()
	baseURL, db := startSandboxDB(t)
	sess, _, _ := newSession(t, baseURL)

	signupAndLogin(t, ctx, sess, "taro@example.com")

	workshops, err := sess.Workshops(ctx)
	assert.NoError(t, err)

	w := workshops[0]
	err = db.Model(&model.Workshop{}).Where("id = ?", w.ID).Update("spots_left", 0).Error
	assert.NoError(t, err)

	err = sess.RegisterWorkshop(ctx, w.ID)
	var ae *api.APIError
	if assert.True(t, errors.As(err, &ae)) {
		assert.Equal(t, 409, ae.Status)
		assert.Equal(t, "FULL", ae.Code)
	}
}
