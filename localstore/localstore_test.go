package localstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetGetRoundTrip(t *testing.T) {
	store, err := New(t.TempDir())
	require.NoError(t, err)

	type blob struct {
		Name  string  `json:"name"`
		Total float64 `json:"total"`
	}

	require.NoError(t, store.Set("orders_fallback", blob{Name: "Alice", Total: 42.5}))

	var got blob
	require.NoError(t, store.Get("orders_fallback", &got))
	assert.Equal(t, blob{Name: "Alice", Total: 42.5}, got)
}

func TestGet_MissingKeyReadsAsZero(t *testing.T) {
	store, err := New(t.TempDir())
	require.NoError(t, err)

	var got []string
	require.NoError(t, store.Get("never_written", &got))
	assert.Nil(t, got)
}

func TestGet_CorruptBlobReadsAsZero(t *testing.T) {
	dir := t.TempDir()
	store, err := New(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.json"), []byte("{truncated"), 0o644))

	var got map[string]int
	require.NoError(t, store.Get("bad", &got))
	assert.Nil(t, got)
}

func TestGet_MismatchedBlobReadsAsZero(t *testing.T) {
	dir := t.TempDir()
	store, err := New(dir)
	require.NoError(t, err)

	// Valid JSON whose tail no longer matches the element type. Unmarshal
	// fills the first element before erroring, and that partial result must
	// not leak out.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cart_s.json"), []byte(`[{"id":"p1"},5]`), 0o644))

	var got []struct {
		ID string `json:"id"`
	}
	require.NoError(t, store.Get("cart_s", &got))
	assert.Nil(t, got)
}

func TestSet_OverwritesWholeValue(t *testing.T) {
	store, err := New(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("k", []int{1, 2, 3}))
	require.NoError(t, store.Set("k", []int{9}))

	var got []int
	require.NoError(t, store.Get("k", &got))
	assert.Equal(t, []int{9}, got)
}

func TestDelete(t *testing.T) {
	store, err := New(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("k", "v"))
	require.NoError(t, store.Delete("k"))

	var got string
	require.NoError(t, store.Get("k", &got))
	assert.Empty(t, got)

	// Deleting again is a no-op.
	require.NoError(t, store.Delete("k"))
}

func TestPath_SanitizesKeys(t *testing.T) {
	dir := t.TempDir()
	store, err := New(dir)
	require.NoError(t, err)

	require.NoError(t, store.Set("../escape", "v"))

	// The blob must land inside the store directory, not above it.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	var got string
	require.NoError(t, store.Get("../escape", &got))
	assert.Equal(t, "v", got)
}
