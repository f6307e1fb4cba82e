package service

import (
	"testing"

	"FileNest/internal/repo"
	"FileNest/model"

	"github.com/stretchr/testify/assert"
)

// TestRegisterDuplicateUsername tests that the second registration fails.
func TestRegisterDuplicateUsername(t *testing.T) {
	setupDb(t)

	if _, err := Register("alice", "secret"); err != nil {
		t.Fatalf("first Register failed: %v", err)
	}
	_, err := Register("alice", "other")
	assert.ErrorIs(t, err, ErrDuplicateUsername)
}

// TestRegisterValidation tests empty field rejection.
func TestRegisterValidation(t *testing.T) {
	setupDb(t)

	_, err := Register("", "secret")
	assert.ErrorIs(t, err, ErrValidation)
	_, err = Register("alice", "")
	assert.ErrorIs(t, err, ErrValidation)
}

// TestRegisterNeverStoresPlaintext tests that the hash differs from the
// password and verifies.
func TestRegisterNeverStoresPlaintext(t *testing.T) {
	setupDb(t)

	user := seedUser(t, "alice")
	assert.NotEqual(t, "secret", user.PasswordHash)
	assert.NotContains(t, user.PasswordHash, "secret")
}

// TestAuthenticate tests credential verification.
func TestAuthenticate(t *testing.T) {
	setupDb(t)
	seedUser(t, "alice")

	profile, err := Authenticate("alice", "secret")
	if err != nil {
		t.Fatalf("Authenticate failed: %v", err)
	}
	assert.Equal(t, "alice", profile.Username)
	assert.False(t, profile.IsAdmin)

	// wrong password and unknown user are indistinguishable
	_, err = Authenticate("alice", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = Authenticate("nobody", "secret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

// TestAuthenticateBanned tests that correct credentials still fail for a
// banned user.
func TestAuthenticateBanned(t *testing.T) {
	setupDb(t)
	user := seedUser(t, "alice")

	if err := SetBanned(user.ID, true); err != nil {
		t.Fatalf("SetBanned failed: %v", err)
	}

	_, err := Authenticate("alice", "secret")
	assert.ErrorIs(t, err, ErrBanned)
}

// TestChangePassword tests the rotation rules.
func TestChangePassword(t *testing.T) {
	setupDb(t)
	user := seedUser(t, "alice")

	assert.ErrorIs(t, ChangePassword(user.ID, "wrong", "newpass"), ErrInvalidCredentials)
	assert.ErrorIs(t, ChangePassword(user.ID, "secret", "abc"), ErrWeakPassword)

	if err := ChangePassword(user.ID, "secret", "newpass"); err != nil {
		t.Fatalf("ChangePassword failed: %v", err)
	}
	if _, err := Authenticate("alice", "newpass"); err != nil {
		t.Fatalf("Authenticate with new password failed: %v", err)
	}
	_, err := Authenticate("alice", "secret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

// TestRootProtected tests that the root admin cannot be banned or
// deleted.
func TestRootProtected(t *testing.T) {
	setupDb(t)

	var root model.User
	if err := repo.Db.Where("username = ?", model.RootUsername).First(&root).Error; err != nil {
		t.Fatalf("root admin not seeded: %v", err)
	}
	assert.True(t, root.IsAdmin)

	assert.ErrorIs(t, SetBanned(root.ID, true), ErrRootProtected)
	assert.ErrorIs(t, DeleteUser(root.ID), ErrRootProtected)
}

// TestDeleteUserCascade tests that files, notes, tokens and sessions go
// with the user.
func TestDeleteUserCascade(t *testing.T) {
	setupDb(t)
	user := seedUser(t, "alice")
	session := sessionFor(t, user)
	file := seedFile(t, user.ID)
	note := seedNote(t, user.ID, "groceries")

	if _, err := EnsureFileToken(file.ID, session); err != nil {
		t.Fatalf("EnsureFileToken failed: %v", err)
	}
	if _, err := EnsureNoteToken(note.ID, session); err != nil {
		t.Fatalf("EnsureNoteToken failed: %v", err)
	}

	if err := DeleteUser(user.ID); err != nil {
		t.Fatalf("DeleteUser failed: %v", err)
	}

	var count int64
	repo.Db.Model(&model.File{}).Where("user_id = ?", user.ID).Count(&count)
	assert.Zero(t, count, "files should cascade")
	repo.Db.Model(&model.Note{}).Where("user_id = ?", user.ID).Count(&count)
	assert.Zero(t, count, "notes should cascade")
	repo.Db.Model(&model.ShareToken{}).Count(&count)
	assert.Zero(t, count, "file share tokens should cascade")
	repo.Db.Model(&model.NoteShareToken{}).Count(&count)
	assert.Zero(t, count, "note share tokens should cascade")

	_, err := ResolveSession(session.ID)
	assert.ErrorIs(t, err, ErrUnauthorized, "sessions should die with the user")
}
