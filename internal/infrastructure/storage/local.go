package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"supportal/internal/shared/config"
)

// LocalAttachmentStore writes request images to the local filesystem. It is
// the development fallback when no S3 credentials are configured; the key
// layout mirrors the S3 store so switching backends keeps URLs stable in
// shape.
type LocalAttachmentStore struct {
	basePath  string
	urlPrefix string
}

func NewLocalAttachmentStore(cfg *config.StorageConfig) (*LocalAttachmentStore, error) {
	if cfg.LocalPath == "" {
		return nil, fmt.Errorf("local storage path is not configured")
	}

	if err := os.MkdirAll(cfg.LocalPath, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	return &LocalAttachmentStore{
		basePath:  cfg.LocalPath,
		urlPrefix: strings.TrimRight(cfg.LocalURLPrefix, "/"),
	}, nil
}

func (l *LocalAttachmentStore) Upload(ctx context.Context, requestID uint, filename, contentType string, data []byte) (string, error) {
	key := objectKey(requestID, filename)

	path := filepath.Join(l.basePath, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("failed to create request directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return fmt.Sprintf("%s/%s", l.urlPrefix, key), nil
}
