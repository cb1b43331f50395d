package unit

import (
	"os"
	"testing"

	"app/internal/infra/localstore"

	"github.com/stretchr/testify/assert"
)

// Test: Put/Get/Deleteの往復
func TestLocalstore_RoundTrip(t *testing.T) {
	store, err := localstore.New(t.TempDir())
	assert.NoError(t, err)

	_, ok, err := store.Get("k")
	assert.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, store.Put("k", []byte(`{"a":1}`)))
	data, ok, err := store.Get("k")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"a":1}`, string(data))

	// 上書き
	assert.NoError(t, store.Put("k", []byte(`{"a":2}`)))
	data, _, _ = store.Get("k")
	assert.Equal(t, `{"a":2}`, string(data))

	assert.NoError(t, store.Delete("k"))
	_, ok, err = store.Get("k")
	assert.NoError(t, err)
	assert.False(t, ok)

	// 存在しないキーの削除はエラーにしない
	assert.NoError(t, store.Delete("k"))
}

// Test: Putは一時ファイルを残さない（rename書き込み）
func TestLocalstore_PutLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store, err := localstore.New(dir)
	assert.NoError(t, err)

	assert.NoError(t, store.Put("guest_cart", []byte(`[]`)))
	assert.NoError(t, store.Put("guest_cart", []byte(`[{"id":"local-1"}]`)))

	entries, err := os.ReadDir(dir)
	assert.NoError(t, err)
	if assert.Equal(t, 1, len(entries)) {
		assert.Equal(t, "guest_cart.json", entries[0].Name())
	}
}
