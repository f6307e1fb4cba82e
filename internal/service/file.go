package service

import (
	"errors"

	"FileNest/internal/repo"
	"FileNest/internal/storage"
	"FileNest/model"

	log "github.com/sirupsen/logrus"
	"golang.org/x/net/context"
	"gorm.io/gorm"
)

// CreateFile records an uploaded file's metadata.
func CreateFile(file *model.File) error {
	return repo.Db.Create(file).Error
}

// ListFilesByOwner returns a user's files, optionally filtered by
// category, newest first.
func ListFilesByOwner(userID uint64, category string) ([]model.File, error) {
	query := repo.Db.Where("user_id = ?", userID)
	if category != "" && category != "all" {
		query = query.Where("category = ?", category)
	}

	var files []model.File
	err := query.Order("created_at DESC").Find(&files).Error
	return files, err
}

// GetOwnedFile looks up a file scoped to its owner. A file belonging to
// someone else reads as absent so existence is not leaked.
func GetOwnedFile(fileID, userID uint64) (*model.File, error) {
	var file model.File
	err := repo.Db.Where("id = ? AND user_id = ?", fileID, userID).First(&file).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &file, nil
}

// GetFileById returns a file without an ownership filter. Reachable only
// through the admin and share-token paths of the authorization gate.
func GetFileById(fileID uint64) (*model.File, error) {
	var file model.File
	if err := repo.Db.First(&file, fileID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &file, nil
}

// DeleteFile removes the row (tokens cascade) and then the blob. A blob
// that will not delete is logged and left behind.
func DeleteFile(file *model.File) error {
	if err := repo.Db.Delete(&model.File{}, file.ID).Error; err != nil {
		return err
	}
	if err := removeBlob(file.StoragePath); err != nil {
		log.WithError(err).WithField("path", file.StoragePath).Warn("delete blob failed")
	}
	return nil
}

// removeBlob drops an object from the configured blob store.
func removeBlob(path string) error {
	return storage.Default.Remove(context.Background(), path)
}
