package service

import (
	"testing"

	"FileNest/internal/repo"
	"FileNest/model"

	"github.com/stretchr/testify/assert"
	"golang.org/x/sync/errgroup"
)

// TestEnsureFileTokenIdempotent tests that repeated share requests hand
// back the same token.
func TestEnsureFileTokenIdempotent(t *testing.T) {
	setupDb(t)
	user := seedUser(t, "alice")
	session := sessionFor(t, user)
	file := seedFile(t, user.ID)

	first, err := EnsureFileToken(file.ID, session)
	if err != nil {
		t.Fatalf("EnsureFileToken failed: %v", err)
	}
	assert.Len(t, first.Token, 64, "256 bits hex encoded")

	second, err := EnsureFileToken(file.ID, session)
	if err != nil {
		t.Fatalf("second EnsureFileToken failed: %v", err)
	}
	assert.Equal(t, first.Token, second.Token)
}

// TestEnsureFileTokenAccess tests owner/admin gating.
func TestEnsureFileTokenAccess(t *testing.T) {
	setupDb(t)
	owner := seedUser(t, "alice")
	other := seedUser(t, "bob")
	file := seedFile(t, owner.ID)

	_, err := EnsureFileToken(file.ID, sessionFor(t, other))
	assert.ErrorIs(t, err, ErrForbidden)

	root, err := GetUserByUsername(model.RootUsername)
	if err != nil {
		t.Fatalf("root admin missing: %v", err)
	}
	if _, err := EnsureFileToken(file.ID, sessionFor(t, root)); err != nil {
		t.Fatalf("admin EnsureFileToken failed: %v", err)
	}

	_, err = EnsureFileToken(9999, sessionFor(t, owner))
	assert.ErrorIs(t, err, ErrNotFound)
}

// TestEnsureFileTokenConcurrent tests that racing first-time requests
// never mint two tokens for one file.
func TestEnsureFileTokenConcurrent(t *testing.T) {
	setupDb(t)
	user := seedUser(t, "alice")
	session := sessionFor(t, user)
	file := seedFile(t, user.ID)

	var g errgroup.Group
	for i := 0; i < 8; i++ {
		g.Go(func() error {
			_, err := EnsureFileToken(file.ID, session)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("concurrent EnsureFileToken failed: %v", err)
	}

	var count int64
	repo.Db.Model(&model.ShareToken{}).Where("file_id = ?", file.ID).Count(&count)
	assert.EqualValues(t, 1, count)
}

// TestResolveFileToken tests resolution and the delete cascade.
func TestResolveFileToken(t *testing.T) {
	setupDb(t)
	user := seedUser(t, "alice")
	session := sessionFor(t, user)
	file := seedFile(t, user.ID)

	token, err := EnsureFileToken(file.ID, session)
	if err != nil {
		t.Fatalf("EnsureFileToken failed: %v", err)
	}

	fileID, err := ResolveFileToken(token.Token)
	if err != nil {
		t.Fatalf("ResolveFileToken failed: %v", err)
	}
	assert.Equal(t, file.ID, fileID)

	_, err = ResolveFileToken("no-such-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
	_, err = ResolveFileToken("")
	assert.ErrorIs(t, err, ErrInvalidToken)

	// deleting the file is the only way a token dies
	if err := DeleteFile(file); err != nil {
		t.Fatalf("DeleteFile failed: %v", err)
	}
	_, err = ResolveFileToken(token.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

// TestEnsureNoteToken tests the note variant, including the
// existence-hiding lookup for non-owners.
func TestEnsureNoteToken(t *testing.T) {
	setupDb(t)
	owner := seedUser(t, "alice")
	other := seedUser(t, "bob")
	note := seedNote(t, owner.ID, "groceries")

	// non-owners see the note as absent, not forbidden
	_, err := EnsureNoteToken(note.ID, sessionFor(t, other))
	assert.ErrorIs(t, err, ErrNotFound)

	first, err := EnsureNoteToken(note.ID, sessionFor(t, owner))
	if err != nil {
		t.Fatalf("EnsureNoteToken failed: %v", err)
	}
	second, err := EnsureNoteToken(note.ID, sessionFor(t, owner))
	if err != nil {
		t.Fatalf("second EnsureNoteToken failed: %v", err)
	}
	assert.Equal(t, first.Token, second.Token)

	noteID, err := ResolveNoteToken(first.Token)
	if err != nil {
		t.Fatalf("ResolveNoteToken failed: %v", err)
	}
	assert.Equal(t, note.ID, noteID)

	if err := DeleteNote(note.ID); err != nil {
		t.Fatalf("DeleteNote failed: %v", err)
	}
	_, err = ResolveNoteToken(first.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
