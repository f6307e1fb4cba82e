package model

import "time"

// ShareToken grants anonymous read access to exactly one file. The
// unique index on file_id keeps issuance idempotent even under a race.
type ShareToken struct {
	ID uint64 `gorm:"primaryKey" json:"id"`

	FileID uint64 `gorm:"column:file_id;not null;uniqueIndex" json:"file_id"`
	File   File   `gorm:"foreignKey:FileID;references:ID;constraint:OnDelete:CASCADE" json:"-"`

	Token string `gorm:"column:token;size:64;uniqueIndex;not null" json:"token"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the database table name.
func (ShareToken) TableName() string {
	return "share_tokens"
}

// NoteShareToken is the note variant of ShareToken.
type NoteShareToken struct {
	ID uint64 `gorm:"primaryKey" json:"id"`

	NoteID uint64 `gorm:"column:note_id;not null;uniqueIndex" json:"note_id"`
	Note   Note   `gorm:"foreignKey:NoteID;references:ID;constraint:OnDelete:CASCADE" json:"-"`

	Token string `gorm:"column:token;size:64;uniqueIndex;not null" json:"token"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the database table name.
func (NoteShareToken) TableName() string {
	return "note_share_tokens"
}
