// Package localstore is a whole-value JSON blob store on local disk, one
// file per key. It backs the cart snapshots and the order fallback log.
// Values are always read and rewritten in full; there are no partial
// updates and no cross-process locking.
package localstore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"
)

const (
	CartKeyPrefix     = "cart_"
	OrdersFallbackKey = "orders_fallback"
)

type Store struct {
	dir string
}

// New creates the backing directory if needed.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Store{dir: dir}, nil
}

// Get decodes the blob stored under key into v. A missing key or a corrupt
// blob leaves v at its zero value and returns nil: callers of this store
// treat both the same as "nothing saved yet".
func (s *Store) Get(key string, v any) error {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	// Decode into a fresh value first: Unmarshal fills the target as it
	// goes, so a blob whose shape no longer matches must not leave v half
	// populated.
	fresh := reflect.New(reflect.TypeOf(v).Elem())
	if err := json.Unmarshal(data, fresh.Interface()); err != nil {
		// Corrupt blob reads as empty.
		return nil
	}
	reflect.ValueOf(v).Elem().Set(fresh.Elem())
	return nil
}

// Set encodes v and rewrites the blob under key. The write goes through a
// temp file and rename so a crash never leaves a half-written blob behind.
func (s *Store) Set(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(s.dir, sanitize(key)+".*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), s.path(key))
}

// Delete removes the blob under key; missing keys are a no-op.
func (s *Store) Delete(key string) error {
	err := os.Remove(s.path(key))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, sanitize(key)+".json")
}

// Keys are internal (cart_<session>, orders_fallback) but session ids come
// from tokens, so strip anything that could escape the directory.
func sanitize(key string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
			return r
		}
		return '_'
	}, key)
}
