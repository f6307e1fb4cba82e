package model

import (
	"strings"
	"time"
)

// File categories derived from the MIME type at upload time.
const (
	CategoryImage    = "image"
	CategoryVideo    = "video"
	CategoryAudio    = "audio"
	CategoryDocument = "document"
)

type File struct {
	ID uint64 `gorm:"primaryKey" json:"id"`

	UserID uint64 `gorm:"column:user_id;not null;index" json:"user_id"`
	User   User   `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE" json:"-"`

	StoredName   string `gorm:"column:stored_name;size:512;not null" json:"filename"`
	OriginalName string `gorm:"column:original_name;size:512;not null" json:"original_name"`
	MimeType     string `gorm:"column:mime_type;size:255" json:"mime_type"`
	Size         int64  `gorm:"column:size;not null;default:0" json:"size"`
	Category     string `gorm:"column:category;size:20;index" json:"category"`

	StoragePath string `gorm:"column:path;size:1024;not null" json:"path"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the database table name.
func (File) TableName() string {
	return "files"
}

// CategoryForMime maps a MIME type onto a file category.
func CategoryForMime(mimeType string) string {
	switch {
	case strings.HasPrefix(mimeType, "image/"):
		return CategoryImage
	case strings.HasPrefix(mimeType, "video/"):
		return CategoryVideo
	case strings.HasPrefix(mimeType, "audio/"):
		return CategoryAudio
	default:
		return CategoryDocument
	}
}
