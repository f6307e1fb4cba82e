package service

import (
	"errors"

	"FileNest/internal/repo"
	"FileNest/model"
	"FileNest/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EnsureFileToken returns the share token for a file, creating it on
// first request. Owner or admin only. Issuance is idempotent: the unique
// index on file_id plus the do-nothing insert guarantees a single token
// per file even when two first requests race.
func EnsureFileToken(fileID uint64, caller *model.Session) (*model.ShareToken, error) {
	file, err := GetFileById(fileID)
	if err != nil {
		return nil, err
	}
	if file.UserID != caller.UserID && !caller.IsAdmin {
		return nil, ErrForbidden
	}

	return ensureFileToken(fileID)
}

func ensureFileToken(fileID uint64) (*model.ShareToken, error) {
	fresh := model.ShareToken{
		FileID: fileID,
		Token:  utils.GetShareToken(),
	}
	err := repo.Db.
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "file_id"}}, DoNothing: true}).
		Create(&fresh).Error
	if err != nil {
		return nil, err
	}

	var token model.ShareToken
	if err := repo.Db.Where("file_id = ?", fileID).First(&token).Error; err != nil {
		return nil, err
	}
	return &token, nil
}

// ResolveFileToken maps a share token back to its file id.
func ResolveFileToken(token string) (uint64, error) {
	if token == "" {
		return 0, ErrInvalidToken
	}
	var record model.ShareToken
	if err := repo.Db.Where("token = ?", token).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrInvalidToken
		}
		return 0, err
	}
	return record.FileID, nil
}

// EnsureNoteToken is the note variant of EnsureFileToken. Non-owners
// see the note as absent; admins pass through.
func EnsureNoteToken(noteID uint64, caller *model.Session) (*model.NoteShareToken, error) {
	if caller.IsAdmin {
		if _, err := GetNoteById(noteID); err != nil {
			return nil, err
		}
	} else {
		if _, err := GetOwnedNote(noteID, caller.UserID); err != nil {
			return nil, err
		}
	}

	fresh := model.NoteShareToken{
		NoteID: noteID,
		Token:  utils.GetShareToken(),
	}
	err := repo.Db.
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "note_id"}}, DoNothing: true}).
		Create(&fresh).Error
	if err != nil {
		return nil, err
	}

	var token model.NoteShareToken
	if err := repo.Db.Where("note_id = ?", noteID).First(&token).Error; err != nil {
		return nil, err
	}
	return &token, nil
}

// ResolveNoteToken maps a share token back to its note id.
func ResolveNoteToken(token string) (uint64, error) {
	if token == "" {
		return 0, ErrInvalidToken
	}
	var record model.NoteShareToken
	if err := repo.Db.Where("token = ?", token).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrInvalidToken
		}
		return 0, err
	}
	return record.NoteID, nil
}
