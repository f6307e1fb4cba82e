package storage

import (
	"context"
	"io"

	"FileNest/config"

	log "github.com/sirupsen/logrus"
)

// ObjectInfo describes a stored blob.
type ObjectInfo struct {
	ContentType string
	Size        int64
}

// Store abstracts blob storage. Objects are keyed by a slash-separated
// path chosen by the caller; bytes pass through unchanged.
type Store interface {
	Put(ctx context.Context, object string, reader io.Reader, size int64, contentType string) error
	Get(ctx context.Context, object string) (io.ReadCloser, ObjectInfo, error)
	Remove(ctx context.Context, object string) error
}

// Default is the main blob store instance.
var Default Store

// InitStorage selects the configured blob store backend.
func InitStorage() {
	cfg := config.StorageConfigInstance
	switch cfg.Backend {
	case "minio":
		store, err := NewMinioStore(cfg)
		if err != nil {
			log.WithError(err).Fatal("init minio store failed")
		}
		Default = store
		log.Info("init minio store success")
	default:
		Default = NewDiskStore(config.AppConfig.UploadDir)
		log.Info("init disk store success")
	}
}
