package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectName(t *testing.T) {
	name := ObjectName("bottle shot.png")
	assert.True(t, strings.HasSuffix(name, "_bottle_shot.png"), name)
	assert.NotContains(t, name, " ")

	// Two uploads with the same original name never collide.
	assert.NotEqual(t, ObjectName("label.jpg"), ObjectName("label.jpg"))

	// Path components in the original name are stripped.
	assert.NotContains(t, ObjectName("../sneaky.png"), "..")
}

func TestRemove(t *testing.T) {
	store, err := New(t.TempDir())
	require.NoError(t, err)

	dir := filepath.Join(store.Dir(), "products")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	path := filepath.Join(dir, "img.png")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	store.Remove(PublicPrefix + "/products/img.png")
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))

	// Foreign URLs and repeat removals are ignored.
	store.Remove("https://cdn.example.com/products/img.png")
	store.Remove(PublicPrefix + "/products/img.png")
	store.Remove("")
}
