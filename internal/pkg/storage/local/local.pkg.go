package local

import (
	"context"
	"errors"
	"fmt"
	"go-storefront/internal/pkg/storage"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// AssetStore writes derivatives below baseDir. Objects are published with a
// hard link from a private temp file, so a reader never observes a partially
// written derivative and an existing object is never replaced.
type AssetStore struct {
	baseDir   string
	publicURL string
}

// NewAssetStore creates the base directory if needed. publicURL is the URL
// prefix baseDir is served under, e.g. "http://localhost:8080/static".
func NewAssetStore(baseDir, publicURL string) (*AssetStore, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: failed to create asset directory %q: %w", baseDir, err)
	}
	abs, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, fmt.Errorf("storage: failed to resolve absolute path for %q: %w", baseDir, err)
	}
	return &AssetStore{baseDir: abs, publicURL: strings.TrimSuffix(publicURL, "/")}, nil
}

func (s *AssetStore) BaseDir() string {
	return s.baseDir
}

func (s *AssetStore) Location(key string) string {
	return filepath.Join(s.baseDir, filepath.FromSlash(path.Clean("/"+key)))
}

func (s *AssetStore) Write(_ context.Context, key string, data []byte, _ string) (string, error) {
	dest := s.Location(key)
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return "", fmt.Errorf("storage: failed to create directory for %q: %w", key, err)
	}

	suffix, err := gonanoid.New(10)
	if err != nil {
		return "", fmt.Errorf("storage: failed to name temp object for %q: %w", key, err)
	}
	tmp := dest + ".part-" + suffix
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		_ = os.Remove(tmp)
		return "", fmt.Errorf("storage: failed to write %q: %w", tmp, err)
	}
	defer os.Remove(tmp)

	if err := os.Link(tmp, dest); err != nil {
		if errors.Is(err, os.ErrExist) {
			return dest, storage.ErrObjectExists
		}
		return "", fmt.Errorf("storage: failed to publish %q: %w", key, err)
	}
	return dest, nil
}

func (s *AssetStore) URL(_ context.Context, key string) (string, error) {
	if _, err := os.Stat(s.Location(key)); err != nil {
		return "", fmt.Errorf("storage: %q: %w", key, err)
	}
	u := &url.URL{Path: path.Clean("/" + key)}
	return s.publicURL + u.EscapedPath(), nil
}

// ScratchStore holds uploads on local disk while the batch is validated. The
// directory is created on demand and names are unique per file, so requests
// share it without locking.
type ScratchStore struct {
	dir string
}

func NewScratchStore(dir string) *ScratchStore {
	return &ScratchStore{dir: dir}
}

func (s *ScratchStore) Dir() string {
	return s.dir
}

func (s *ScratchStore) EnsureDir() error {
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return fmt.Errorf("storage: failed to create scratch directory %q: %w", s.dir, err)
	}
	return nil
}

// Write creates name exclusively; a name collision is an error rather than
// an overwrite.
func (s *ScratchStore) Write(name string, data []byte) (string, error) {
	dest := filepath.Join(s.dir, filepath.Base(name))
	f, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return "", fmt.Errorf("storage: failed to create scratch file %q: %w", dest, err)
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(dest)
		return "", fmt.Errorf("storage: failed to write scratch file %q: %w", dest, err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(dest)
		return "", fmt.Errorf("storage: failed to close scratch file %q: %w", dest, err)
	}
	return dest, nil
}

// Delete removes a scratch file. A file that is already gone is not an error.
func (s *ScratchStore) Delete(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("storage: failed to delete scratch file %q: %w", path, err)
	}
	return nil
}
