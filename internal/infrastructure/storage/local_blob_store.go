// Package storage keeps uploaded deal files on the local filesystem.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"strings"

	"freight_crm/internal/usecase/interfaces"
)

var ErrInvalidKey = errors.New("invalid storage key")

// LocalBlobStore stores blobs under a root directory. Keys are slash
// separated and may not escape the root.
type LocalBlobStore struct {
	root *os.Root
}

var _ interfaces.IBlobStore = (*LocalBlobStore)(nil)

func NewLocalBlobStore(dir string) (*LocalBlobStore, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create files dir: %w", err)
	}
	root, err := os.OpenRoot(dir)
	if err != nil {
		return nil, fmt.Errorf("open files dir: %w", err)
	}
	return &LocalBlobStore{root: root}, nil
}

func (s *LocalBlobStore) Close() error {
	return s.root.Close()
}

func (s *LocalBlobStore) Put(ctx context.Context, key string, r io.Reader) (int64, error) {
	name, err := cleanKey(key)
	if err != nil {
		return 0, err
	}
	if err := s.mkdirs(path.Dir(name)); err != nil {
		return 0, err
	}

	f, err := s.root.OpenFile(name, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o640)
	if err != nil {
		return 0, err
	}
	n, err := io.Copy(f, ctxReader{ctx: ctx, r: r})
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return n, err
}

func (s *LocalBlobStore) Open(_ context.Context, key string) (io.ReadCloser, error) {
	name, err := cleanKey(key)
	if err != nil {
		return nil, err
	}
	return s.root.Open(name)
}

// Delete removes the blob. A missing blob is not an error.
func (s *LocalBlobStore) Delete(_ context.Context, key string) error {
	name, err := cleanKey(key)
	if err != nil {
		return err
	}
	if err := s.root.Remove(name); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func (s *LocalBlobStore) mkdirs(dir string) error {
	if dir == "." {
		return nil
	}
	built := ""
	for _, part := range strings.Split(dir, "/") {
		built = path.Join(built, part)
		if err := s.root.Mkdir(built, 0o750); err != nil && !errors.Is(err, fs.ErrExist) {
			return err
		}
	}
	return nil
}

func cleanKey(key string) (string, error) {
	name := path.Clean(strings.TrimSpace(key))
	if !fs.ValidPath(name) || name == "." {
		return "", fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return name, nil
}

// ctxReader stops a copy once the request is cancelled.
type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (c ctxReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
