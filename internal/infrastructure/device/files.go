// Package device adapts the host machine to the export pipeline: a cache
// directory for scratch files, an external command as the share target, and
// an HTML-to-PDF renderer invoked as a subprocess.
package device

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// CacheFileStore writes export scratch files under a cache directory.
type CacheFileStore struct {
	dir string
}

// NewCacheFileStore ensures dir exists and returns a store rooted there.
// An empty dir falls back to the user cache directory.
func NewCacheFileStore(dir string) (*CacheFileStore, error) {
	if dir == "" {
		base, err := os.UserCacheDir()
		if err != nil {
			return nil, fmt.Errorf("resolving cache directory: %w", err)
		}
		dir = filepath.Join(base, "spendwise")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating cache directory %s: %w", dir, err)
	}
	return &CacheFileStore{dir: dir}, nil
}

func (s *CacheFileStore) CacheDir() string {
	return s.dir
}

func (s *CacheFileStore) WriteFile(_ context.Context, path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func (s *CacheFileStore) CopyFile(_ context.Context, src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("opening %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("creating %s: %w", dst, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copying %s to %s: %w", src, dst, err)
	}
	return out.Close()
}
