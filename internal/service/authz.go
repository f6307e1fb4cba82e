package service

import "FileNest/model"

// Authorization gate. Every resource-touching handler funnels through
// one of these checks; there is no separate admin code path. Decisions
// are stateless and re-derived from the session plus the current row.

// AuthorizeFileRead grants read access to a file's content for an admin,
// the owner, or an anonymous caller presenting a token bound to exactly
// this file.
func AuthorizeFileRead(fileID uint64, caller *model.Session, token string) (*model.File, error) {
	if token != "" {
		boundID, err := ResolveFileToken(token)
		if err != nil {
			return nil, err
		}
		if boundID != fileID {
			return nil, ErrInvalidToken
		}
		return GetFileById(fileID)
	}

	if caller == nil {
		return nil, ErrUnauthorized
	}
	if caller.IsAdmin {
		return GetFileById(fileID)
	}
	return GetOwnedFile(fileID, caller.UserID)
}

// AuthorizeFileMutate grants modify/delete access: admin or owner only.
// Tokens never authorize mutation.
func AuthorizeFileMutate(fileID uint64, caller *model.Session) (*model.File, error) {
	if caller == nil {
		return nil, ErrUnauthorized
	}
	if caller.IsAdmin {
		return GetFileById(fileID)
	}
	return GetOwnedFile(fileID, caller.UserID)
}

// AuthorizeNoteRead is the note variant of AuthorizeFileRead.
func AuthorizeNoteRead(noteID uint64, caller *model.Session, token string) (*model.Note, error) {
	if token != "" {
		boundID, err := ResolveNoteToken(token)
		if err != nil {
			return nil, err
		}
		if boundID != noteID {
			return nil, ErrInvalidToken
		}
		return GetNoteById(noteID)
	}

	if caller == nil {
		return nil, ErrUnauthorized
	}
	if caller.IsAdmin {
		return GetNoteById(noteID)
	}
	return GetOwnedNote(noteID, caller.UserID)
}

// AuthorizeNoteMutate grants modify/delete access. Unlike files, notes
// are mutable only by their owner; admins get read access elsewhere but
// cannot edit or delete someone else's note.
func AuthorizeNoteMutate(noteID uint64, caller *model.Session) (*model.Note, error) {
	if caller == nil {
		return nil, ErrUnauthorized
	}
	return GetOwnedNote(noteID, caller.UserID)
}
