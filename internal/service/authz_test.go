package service

import (
	"testing"

	"FileNest/model"

	"github.com/stretchr/testify/assert"
)

// TestAuthorizeFileReadTiers tests the gate's ordering: admin, owner,
// token, deny.
func TestAuthorizeFileReadTiers(t *testing.T) {
	setupDb(t)
	owner := seedUser(t, "alice")
	other := seedUser(t, "bob")
	file := seedFile(t, owner.ID)

	ownerSession := sessionFor(t, owner)

	// owner reads own file
	got, err := AuthorizeFileRead(file.ID, ownerSession, "")
	if err != nil {
		t.Fatalf("owner read failed: %v", err)
	}
	assert.Equal(t, file.ID, got.ID)

	// admin reads anything
	root, err := GetUserByUsername(model.RootUsername)
	if err != nil {
		t.Fatalf("root admin missing: %v", err)
	}
	if _, err := AuthorizeFileRead(file.ID, sessionFor(t, root), ""); err != nil {
		t.Fatalf("admin read failed: %v", err)
	}

	// cross-owner reads look like a missing file, never forbidden
	_, err = AuthorizeFileRead(file.ID, sessionFor(t, other), "")
	assert.ErrorIs(t, err, ErrNotFound)

	// anonymous without a token is unauthorized
	_, err = AuthorizeFileRead(file.ID, nil, "")
	assert.ErrorIs(t, err, ErrUnauthorized)

	// anonymous with the file's token reads it
	token, err := EnsureFileToken(file.ID, ownerSession)
	if err != nil {
		t.Fatalf("EnsureFileToken failed: %v", err)
	}
	if _, err := AuthorizeFileRead(file.ID, nil, token.Token); err != nil {
		t.Fatalf("token read failed: %v", err)
	}

	// a token only opens the exact resource it is bound to
	second := seedFile(t, owner.ID)
	_, err = AuthorizeFileRead(second.ID, nil, token.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

// TestAuthorizeFileMutate tests that tokens never grant mutation.
func TestAuthorizeFileMutate(t *testing.T) {
	setupDb(t)
	owner := seedUser(t, "alice")
	other := seedUser(t, "bob")
	file := seedFile(t, owner.ID)

	_, err := AuthorizeFileMutate(file.ID, nil)
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = AuthorizeFileMutate(file.ID, sessionFor(t, other))
	assert.ErrorIs(t, err, ErrNotFound)

	if _, err := AuthorizeFileMutate(file.ID, sessionFor(t, owner)); err != nil {
		t.Fatalf("owner mutate failed: %v", err)
	}
}

// TestAuthorizeNoteMutateOwnerOnly tests that not even admins can edit
// someone else's note.
func TestAuthorizeNoteMutateOwnerOnly(t *testing.T) {
	setupDb(t)
	owner := seedUser(t, "alice")
	note := seedNote(t, owner.ID, "private")

	root, err := GetUserByUsername(model.RootUsername)
	if err != nil {
		t.Fatalf("root admin missing: %v", err)
	}
	_, err = AuthorizeNoteMutate(note.ID, sessionFor(t, root))
	assert.ErrorIs(t, err, ErrNotFound)

	if _, err := AuthorizeNoteMutate(note.ID, sessionFor(t, owner)); err != nil {
		t.Fatalf("owner mutate failed: %v", err)
	}
}

// TestAuthorizeNoteReadTiers mirrors the file gate for notes.
func TestAuthorizeNoteReadTiers(t *testing.T) {
	setupDb(t)
	owner := seedUser(t, "alice")
	other := seedUser(t, "bob")
	note := seedNote(t, owner.ID, "groceries")

	ownerSession := sessionFor(t, owner)

	if _, err := AuthorizeNoteRead(note.ID, ownerSession, ""); err != nil {
		t.Fatalf("owner read failed: %v", err)
	}

	_, err := AuthorizeNoteRead(note.ID, sessionFor(t, other), "")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = AuthorizeNoteRead(note.ID, nil, "")
	assert.ErrorIs(t, err, ErrUnauthorized)

	token, err := EnsureNoteToken(note.ID, ownerSession)
	if err != nil {
		t.Fatalf("EnsureNoteToken failed: %v", err)
	}
	got, err := AuthorizeNoteRead(note.ID, nil, token.Token)
	if err != nil {
		t.Fatalf("token read failed: %v", err)
	}
	assert.Equal(t, "groceries", got.Title)

	other2 := seedNote(t, owner.ID, "second")
	_, err = AuthorizeNoteRead(other2.ID, nil, token.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
