package handler

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"

	"FileNest/config"
	"FileNest/internal/dto"
	"FileNest/internal/service"
	"FileNest/internal/storage"
	"FileNest/model"
	"FileNest/utils"

	"github.com/gin-gonic/gin"
)

// UploadFile stores one multipart file and records its metadata.
func UploadFile(c *gin.Context) {
	session := currentSession(c)

	if limit := config.AppConfig.MaxUploadBytes; limit > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
	}

	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}

	mimeType := header.Header.Get("Content-Type")
	category := model.CategoryForMime(mimeType)
	originalName := filepath.Base(header.Filename)
	storedName := utils.GetStoredName() + "-" + originalName
	objectKey := strings.Join([]string{session.Username, category, storedName}, "/")

	src, err := header.Open()
	if err != nil {
		fail(c, err)
		return
	}
	defer src.Close()

	if err := storage.Default.Put(c.Request.Context(), objectKey, src, header.Size, mimeType); err != nil {
		fail(c, err)
		return
	}

	file := model.File{
		UserID:       session.UserID,
		StoredName:   storedName,
		OriginalName: originalName,
		MimeType:     mimeType,
		Size:         header.Size,
		Category:     category,
		StoragePath:  objectKey,
	}
	if err := service.CreateFile(&file); err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "File uploaded successfully",
		"fileId":  file.ID,
	})
}

// ListFiles returns the caller's files, optionally filtered by category.
func ListFiles(c *gin.Context) {
	session := currentSession(c)

	files, err := service.ListFilesByOwner(session.UserID, c.Query("category"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, files)
}

// FileContent streams a file back as an attachment. Owner or admin only.
func FileContent(c *gin.Context) {
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

// FileView streams a file inline. Anonymous callers may pass a share
// token; everyone else goes through the owner/admin path.
func FileView(c *gin.Context) {
	fileID, err := pathID(c)
	if err != nil {
		fail(c, err)
		return
	}

	session, err := viewerSession(c)
	if err != nil {
		fail(c, err)
		return
	}
	file, err := service.AuthorizeFileRead(fileID, session, c.Query("token"))
	if err != nil {
		fail(c, err)
		return
	}
	streamFile(c, file, "inline")
}

// DeleteFile removes a file record and its blob.
func DeleteFile(c *gin.Context) {
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

// ShareFile returns the file's public link, minting the token on first
// request.
func ShareFile(c *gin.Context) {
	fileID, err := pathID(c)
	if err != nil {
		fail(c, err)
		return
	}

	token, err := service.EnsureFileToken(fileID, currentSession(c))
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ShareResponse{
		Token:    token.Token,
		ShareURL: shareURL(c, "files", fileID, token.Token),
	})
}

// streamFile writes a blob to the response with download headers.
func streamFile(c *gin.Context, file *model.File, disposition string) {
	object, info, err := storage.Default.Get(c.Request.Context(), file.StoragePath)
	if err != nil {
		fail(c, service.ErrNotFound)
		return
	}
	defer object.Close()

	contentType := file.MimeType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	if disposition == "attachment" {
		encoded := url.PathEscape(utils.SanitizeHeaderFilename(file.OriginalName))
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename*=UTF-8''%s", encoded))
	} else {
		c.Header("Content-Disposition", "inline")
	}
	c.Header("Content-Type", contentType)
	if info.Size > 0 {
		c.Header("Content-Length", fmt.Sprintf("%d", info.Size))
	}

	c.Status(http.StatusOK)
	_, _ = io.Copy(c.Writer, object)
}

// shareURL builds the public view link for a shared resource.
func shareURL(c *gin.Context, kind string, id uint64, token string) string {
	base := strings.TrimRight(config.AppConfig.PublicBaseURL, "/")
	if base == "" {
		scheme := "http"
		if forwarded := strings.TrimSpace(c.GetHeader("X-Forwarded-Proto")); forwarded != "" {
			scheme = forwarded
		} else if c.Request.TLS != nil {
			scheme = "https"
		}
		base = scheme + "://" + c.Request.Host
	}
	return fmt.Sprintf("%s/api/%s/%d/view?token=%s", base, kind, id, token)
}
