package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotFound is returned when a requested blob does not exist.
var ErrNotFound = errors.New("file not found")

// FileStore is the blob storage collaborator. Paths are opaque,
// slash-separated keys relative to the store root; callers never see
// the underlying location.
type FileStore interface {
	// Store writes data under a destination hint and returns the path
	// the blob ended up at.
	Store(ctx context.Context, data []byte, destinationHint string) (string, error)
	Move(ctx context.Context, oldPath, newPath string) error
	Delete(ctx context.Context, path string) error
	Exists(ctx context.Context, path string) (bool, error)
}

type diskStore struct {
	root string
}

// NewDiskStore builds a FileStore rooted at the given directory,
// creating it if needed.
func NewDiskStore(root string) (FileStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("creating storage root: %w", err)
	}
	return &diskStore{root: root}, nil
}

func (d *diskStore) Store(ctx context.Context, data []byte, destinationHint string) (string, error) {
	path, err := d.clean(destinationHint)
	if err != nil {
		return "", err
	}
	full := filepath.Join(d.root, filepath.FromSlash(path))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", fmt.Errorf("creating directory: %w", err)
	}
	if err := os.WriteFile(full, data, 0o644); err != nil {
		return "", fmt.Errorf("writing file: %w", err)
	}
	return path, nil
}

func (d *diskStore) Move(ctx context.Context, oldPath, newPath string) error {
	src, err := d.clean(oldPath)
	if err != nil {
		return err
	}
	dst, err := d.clean(newPath)
	if err != nil {
		return err
	}

	srcFull := filepath.Join(d.root, filepath.FromSlash(src))
	dstFull := filepath.Join(d.root, filepath.FromSlash(dst))

	if _, err := os.Stat(srcFull); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ErrNotFound
		}
		return fmt.Errorf("checking source: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(dstFull), 0o755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}
	if err := os.Rename(srcFull, dstFull); err != nil {
		return fmt.Errorf("moving file: %w", err)
	}
	return nil
}

func (d *diskStore) Delete(ctx context.Context, path string) error {
	p, err := d.clean(path)
	if err != nil {
		return err
	}
	if err := os.Remove(filepath.Join(d.root, filepath.FromSlash(p))); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ErrNotFound
		}
		return fmt.Errorf("deleting file: %w", err)
	}
	return nil
}

func (d *diskStore) Exists(ctx context.Context, path string) (bool, error) {
	p, err := d.clean(path)
	if err != nil {
		return false, err
	}
	if _, err := os.Stat(filepath.Join(d.root, filepath.FromSlash(p))); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("checking file: %w", err)
	}
	return true, nil
}

// clean normalizes a key and rejects attempts to escape the root.
func (d *diskStore) clean(path string) (string, error) {
	p := strings.TrimPrefix(filepath.ToSlash(filepath.Clean("/"+path)), "/")
	if p == "" || p == "." {
		return "", fmt.Errorf("empty storage path")
	}
	return p, nil
}
