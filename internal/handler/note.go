package handler

import (
	"net/http"

	"FileNest/internal/dto"
	"FileNest/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateNote creates a note for the caller.
func CreateNote(c *gin.Context) {
	session := currentSession(c)

	var req dto.NoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, service.ErrValidation)
		return
	}

	note, err := service.CreateNote(session.UserID, req.Title, req.Content)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Note created successfully",
		"noteId":  note.ID,
	})
}

// ListNotes returns the caller's notes with optional title search.
func ListNotes(c *gin.Context) {
	session := currentSession(c)

	notes, err := service.ListNotesByOwner(session.UserID, c.Query("search"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, notes)
}

// GetNote returns one of the caller's notes.
func GetNote(c *gin.Context) {
	noteID, err := pathID(c)
	if err != nil {
		fail(c, err)
		return
	}

	session := currentSession(c)
	note, err := service.GetOwnedNote(noteID, session.UserID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, note)
}

// UpdateNote rewrites a note's title and content.
func UpdateNote(c *gin.Context) {
	noteID, err := pathID(c)
	if err != nil {
		fail(c, err)
		return
	}

	var req dto.NoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, service.ErrValidation)
		return
	}

	note, err := service.AuthorizeNoteMutate(noteID, currentSession(c))
	if err != nil {
		fail(c, err)
		return
	}
	if err := service.UpdateNote(note, req.Title, req.Content); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Note updated successfully"})
}

// DeleteNote removes a note; its share token cascades away.
func DeleteNote(c *gin.Context) {
	noteID, err := pathID(c)
	if err != nil {
		fail(c, err)
		return
	}

	note, err := service.AuthorizeNoteMutate(noteID, currentSession(c))
	if err != nil {
		fail(c, err)
		return
	}
	if err := service.DeleteNote(note.ID); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Note deleted successfully"})
}

// ShareNote returns the note's public link, minting the token on first
// request.
func ShareNote(c *gin.Context) {
	noteID, err := pathID(c)
	if err != nil {
		fail(c, err)
		return
	}

	token, err := service.EnsureNoteToken(noteID, currentSession(c))
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ShareResponse{
		Token:    token.Token,
		ShareURL: shareURL(c, "notes", noteID, token.Token),
	})
}

// ViewNote returns a note's content. Anonymous callers may pass a share
// token; everyone else goes through the owner/admin path.
func ViewNote(c *gin.Context) {
	noteID, err := pathID(c)
	if err != nil {
		fail(c, err)
		return
	}

	session, err := viewerSession(c)
	if err != nil {
		fail(c, err)
		return
	}
	note, err := service.AuthorizeNoteRead(noteID, session, c.Query("token"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, note)
}
