package service

import (
	"errors"
	"time"

	"FileNest/internal/repo"
	"FileNest/model"

	"gorm.io/gorm"
)

// CreateNote creates a note for a user.
func CreateNote(userID uint64, title, content string) (*model.Note, error) {
	if title == "" || content == "" {
		return nil, ErrValidation
	}
	note := model.Note{
		UserID:  userID,
		Title:   title,
		Content: content,
	}
	if err := repo.Db.Create(&note).Error; err != nil {
		return nil, err
	}
	return &note, nil
}

// ListNotesByOwner returns a user's notes, newest first, optionally
// narrowed by a title substring.
func ListNotesByOwner(userID uint64, search string) ([]model.Note, error) {
	query := repo.Db.Where("user_id = ?", userID)
	if search != "" {
		query = query.Where("title LIKE ?", "%"+search+"%")
	}

	var notes []model.Note
	err := query.Order("created_at DESC").Find(&notes).Error
	return notes, err
}

// GetOwnedNote looks up a note scoped to its owner. Someone else's note
// reads as absent.
func GetOwnedNote(noteID, userID uint64) (*model.Note, error) {
	var note model.Note
	err := repo.Db.Where("id = ? AND user_id = ?", noteID, userID).First(&note).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &note, nil
}

// GetNoteById returns a note without an ownership filter. Reachable only
// through the admin and share-token paths of the authorization gate.
func GetNoteById(noteID uint64) (*model.Note, error) {
	var note model.Note
	if err := repo.Db.First(&note, noteID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &note, nil
}

// UpdateNote replaces a note's title and content and refreshes updated_at.
func UpdateNote(note *model.Note, title, content string) error {
	if title == "" || content == "" {
		return ErrValidation
	}
	return repo.Db.Model(note).Updates(map[string]interface{}{
		"title":      title,
		"content":    content,
		"updated_at": time.Now(),
	}).Error
}

// DeleteNote removes a note; its share token cascades.
func DeleteNote(noteID uint64) error {
	return repo.Db.Delete(&model.Note{}, noteID).Error
}
