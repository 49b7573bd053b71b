package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	apperrors "eventflow/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/spf13/afero"
)

// BlobStore 存放 QR code 等產生出來的檔案，ref 為相對於根目錄的路徑
type BlobStore interface {
	Put(ctx context.Context, dir string, name string, data []byte) (string, error)
	Get(ctx context.Context, ref string) ([]byte, error)
	Delete(ctx context.Context, ref string) error
}

type FSBlobStore struct {
	fs afero.Fs
}

// NewFSBlobStore 以 afero.Fs 為底層；正式環境傳 NewBasePathFs(OsFs, root)，測試傳 MemMapFs
func NewFSBlobStore(fsys afero.Fs) BlobStore {
	return &FSBlobStore{fs: fsys}
}

func NewOSBlobStore(root string) (BlobStore, error) {
	osFs := afero.NewOsFs()
	if err := osFs.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create storage root: %w", err)
	}
	return NewFSBlobStore(afero.NewBasePathFs(osFs, root)), nil
}

// Put 每次都寫入新檔案（檔名帶 uuid），不覆蓋舊檔
func (s *FSBlobStore) Put(ctx context.Context, dir string, name string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if name == "" || strings.ContainsAny(name, `/\`) {
		return "", apperrors.ErrInvalidInput
	}

	if err := s.fs.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}

	ref := path.Join(dir, uuid.New().String()+"_"+name)
	if err := afero.WriteFile(s.fs, ref, data, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", ref, err)
	}
	return ref, nil
}

func (s *FSBlobStore) Get(ctx context.Context, ref string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !validRef(ref) {
		return nil, apperrors.ErrBlobNotFound
	}

	data, err := afero.ReadFile(s.fs, ref)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, apperrors.ErrBlobNotFound
		}
		return nil, fmt.Errorf("read %s: %w", ref, err)
	}
	return data, nil
}

func (s *FSBlobStore) Delete(ctx context.Context, ref string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !validRef(ref) {
		return apperrors.ErrBlobNotFound
	}

	if err := s.fs.Remove(ref); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return apperrors.ErrBlobNotFound
		}
		return fmt.Errorf("remove %s: %w", ref, err)
	}
	return nil
}

func validRef(ref string) bool {
	if ref == "" || path.IsAbs(ref) {
		return false
	}
	clean := path.Clean(ref)
	return clean == ref && !strings.HasPrefix(clean, "..")
}
