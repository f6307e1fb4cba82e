package config

import "sync"

// StorageConfig selects where uploaded blobs live.
type StorageConfig struct {
	Backend       string // disk, minio
	MinioHost     string
	MinioPort     string
	MinioUsername string
	MinioPassword string
	MinioUseSSL   bool
	BucketName    string
}

var StorageConfigInstance *StorageConfig
var storageConfigOnce sync.Once

// InitStorageConfig initializes storage config.
func InitStorageConfig() {
	storageConfigOnce.Do(func() {
		StorageConfigInstance = &StorageConfig{
			Backend:       getEnv("STORAGE_BACKEND", "disk"),
			MinioHost:     getEnv("MINIO_HOST", "localhost"),
			MinioPort:     getEnv("MINIO_PORT", "9000"),
			MinioUsername: getEnv("MINIO_USERNAME", "minioadmin"),
			MinioPassword: getEnv("MINIO_PASSWORD", "minioadmin"),
			MinioUseSSL:   getEnvBool("MINIO_USE_SSL", false),
			BucketName:    getEnv("BUCKET_NAME", "filenest"),
		}
	})
}
