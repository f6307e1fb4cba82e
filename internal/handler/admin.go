package handler

import (
	"net/http"

	"FileNest/internal/dto"
	"FileNest/internal/service"

	"github.com/gin-gonic/gin"
)

// Admin handlers sit behind SessionMiddleware + AdminMiddleware and use
// the gate's admin path; they share service code with the user-facing
// routes instead of duplicating it.

// AdminListUsers returns every account.
func AdminListUsers(c *gin.Context) {
	users, err := service.ListUsers()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// AdminBanUser bans or unbans an account. Root is untouchable.
func AdminBanUser(c *gin.Context) {
	userID, err := pathID(c)
	if err != nil {
		fail(c, err)
		return
	}

	var req dto.BanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, service.ErrValidation)
		return
	}

	if err := service.SetBanned(userID, req.Banned); err != nil {
		fail(c, err)
		return
	}
	if req.Banned {
		c.JSON(http.StatusOK, gin.H{"message": "User banned"})
	} else {
		c.JSON(http.StatusOK, gin.H{"message": "User unbanned"})
	}
}

// AdminDeleteUser deletes an account and everything it owns.
func AdminDeleteUser(c *gin.Context) {
	userID, err := pathID(c)
	if err != nil {
		fail(c, err)
		return
	}

	if err := service.DeleteUser(userID); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User and their files deleted"})
}

// AdminUserFiles lists any user's files.
func AdminUserFiles(c *gin.Context) {
	userID, err := pathID(c)
	if err != nil {
		fail(c, err)
		return
	}

	files, err := service.ListFilesByOwner(userID, c.Query("category"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, files)
}

// AdminUserNotes lists any user's notes.
func AdminUserNotes(c *gin.Context) {
	userID, err := pathID(c)
	if err != nil {
		fail(c, err)
		return
	}

	notes, err := service.ListNotesByOwner(userID, c.Query("search"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, notes)
}

// AdminFileContent streams any user's file as an attachment.
func AdminFileContent(c *gin.Context) {
	fileID, err := pathID(c)
	if err != nil {
		fail(c, err)
		return
	}

	file, err := service.AuthorizeFileRead(fileID, currentSession(c), "")
	if err != nil {
		fail(c, err)
		return
	}
	streamFile(c, file, "attachment")
}

// AdminFileView streams any user's file inline.
func AdminFileView(c *gin.Context) {
	fileID, err := pathID(c)
	if err != nil {
		fail(c, err)
		return
	}

	file, err := service.AuthorizeFileRead(fileID, currentSession(c), "")
	if err != nil {
		fail(c, err)
		return
	}
	streamFile(c, file, "inline")
}

// AdminDeleteFile removes any user's file.
func AdminDeleteFile(c *gin.Context) {
	fileID, err := pathID(c)
	if err != nil {
		fail(c, err)
		return
	}

	file, err := service.AuthorizeFileMutate(fileID, currentSession(c))
	if err != nil {
		fail(c, err)
		return
	}
	if err := service.DeleteFile(file); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "File deleted successfully"})
}
