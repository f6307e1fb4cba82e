package handler

import (
	"errors"
	"net/http"

	"FileNest/internal/service"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// fail maps service error kinds onto HTTP statuses in one place.
func fail(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrValidation),
		errors.Is(err, service.ErrDuplicateUsername),
		errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrWeakPassword),
		errors.Is(err, service.ErrRootProtected):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrUnauthorized):
		status = http.StatusUnauthorized
	case errors.Is(err, service.ErrBanned),
		errors.Is(err, service.ErrForbidden),
		errors.Is(err, service.ErrInvalidToken):
		status = http.StatusForbidden
	case errors.Is(err, service.ErrNotFound):
		status = http.StatusNotFound
	}

	if status == http.StatusInternalServerError {
		log.WithError(err).Error("request failed")
		c.JSON(status, gin.H{"error": "server error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
