// Package storage saves uploaded files under a local directory and issues
// public URLs for them. Reusing a path overwrites the existing object.
package storage

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const PublicPrefix = "/uploads"

type ObjectStore struct {
	dir string
}

func New(dir string) (*ObjectStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &ObjectStore{dir: dir}, nil
}

// Dir is the directory gin serves statically under PublicPrefix.
func (s *ObjectStore) Dir() string {
	return s.dir
}

// Save writes the upload under folder/name and returns its public URL.
func (s *ObjectStore) Save(c *gin.Context, file *multipart.FileHeader, folder, name string) (string, error) {
	dir := filepath.Join(s.dir, folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	if err := c.SaveUploadedFile(file, filepath.Join(dir, name)); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/%s/%s", PublicPrefix, folder, name), nil
}

// Remove deletes the object behind a public URL. Best effort: URLs from
// outside our prefix and already-missing files are ignored.
func (s *ObjectStore) Remove(publicURL string) {
	rel, ok := strings.CutPrefix(publicURL, PublicPrefix+"/")
	if !ok || rel == "" {
		return
	}
	_ = os.Remove(filepath.Join(s.dir, filepath.FromSlash(rel)))
}

// ObjectName builds a collision-free stored filename from an upload's
// original name.
func ObjectName(original string) string {
	ext := filepath.Ext(original)
	base := strings.TrimSuffix(filepath.Base(original), ext)
	base = strings.ReplaceAll(base, " ", "_")
	return fmt.Sprintf("%s_%s%s", uuid.NewString(), base, ext)
}
