package storage

import (
	"supportal/internal/application/support/usecases"
	"supportal/internal/shared/config"
	"supportal/internal/shared/logger"
)

// NewAttachmentStore selects the S3 store when credentials are present and
// the local filesystem store otherwise.
func NewAttachmentStore(cfg *config.StorageConfig, log logger.Interface) (usecases.AttachmentStore, error) {
	if cfg.IsS3Configured() {
		log.Info("using S3 attachment store", "bucket", cfg.S3Bucket, "region", cfg.S3Region)
		return NewS3AttachmentStore(cfg)
	}

	log.Warn("S3 not configured, storing attachments on the local filesystem", "path", cfg.LocalPath)
	return NewLocalAttachmentStore(cfg)
}
