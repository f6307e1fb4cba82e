package service

import (
	"path/filepath"
	"testing"
	"time"

	"FileNest/config"
	"FileNest/internal/repo"
	"FileNest/internal/storage"
	"FileNest/model"
)

// setupDb gives each test a fresh database file and a throwaway blob
// store.
func setupDb(t *testing.T) {
	t.Helper()
	config.AppConfig = config.Config{
		SessionTTL:     time.Hour,
		MaxUploadBytes: 0,
	}
	repo.InitSqliteTest(filepath.Join(t.TempDir(), "test.db"))
	storage.Default = storage.NewDiskStore(t.TempDir())
}

// seedUser creates a user and returns the row.
func seedUser(t *testing.T, username string) *model.User {
	t.Helper()
	id, err := Register(username, "secret")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	user, err := GetUserById(id)
	if err != nil {
		t.Fatalf("GetUserById failed: %v", err)
	}
	return user
}

// seedFile creates a file row owned by userID.
func seedFile(t *testing.T, userID uint64) *model.File {
	t.Helper()
	file := &model.File{
		UserID:       userID,
		StoredName:   "abc-report.pdf",
		OriginalName: "report.pdf",
		MimeType:     "application/pdf",
		Size:         42,
		Category:     model.CategoryDocument,
		StoragePath:  "u/document/abc-report.pdf",
	}
	if err := CreateFile(file); err != nil {
		t.Fatalf("CreateFile failed: %v", err)
	}
	return file
}

// seedNote creates a note owned by userID.
func seedNote(t *testing.T, userID uint64, title string) *model.Note {
	t.Helper()
	note, err := CreateNote(userID, title, "content")
	if err != nil {
		t.Fatalf("CreateNote failed: %v", err)
	}
	return note
}

// sessionFor opens a session for a user.
func sessionFor(t *testing.T, user *model.User) *model.Session {
	t.Helper()
	profile := user.Profile()
	sid, err := CreateSession(&profile)
	if err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}
	session, err := ResolveSession(sid)
	if err != nil {
		t.Fatalf("ResolveSession failed: %v", err)
	}
	return session
}
