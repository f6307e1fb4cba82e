package handler

import (
	"net/http"
	"strconv"
	"time"

	"FileNest/internal/service"
	"FileNest/model"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// SessionCookie is the cookie carrying the opaque session id.
const SessionCookie = "session_id"

const sessionKey = "session"

// resolveSession reads the cookie and returns the caller's session, or
// nil for anonymous requests.
func resolveSession(c *gin.Context) *model.Session {
	sid, err := c.Cookie(SessionCookie)
	if err != nil {
		return nil
	}
	session, err := service.ResolveSession(sid)
	if err != nil {
		return nil
	}
	return session
}

// SessionMiddleware requires an authenticated caller. The ban flag is
// re-read from the users table on every request so a ban takes effect
// immediately, not at next login.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := resolveSession(c)
		if session == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": service.ErrUnauthorized.Error()})
			c.Abort()
			return
		}
		if err := service.CheckSessionBan(session); err != nil {
			fail(c, err)
			c.Abort()
			return
		}
		c.Set(sessionKey, session)
		c.Next()
	}
}

// AdminMiddleware additionally requires the admin role from the session
// snapshot.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := currentSession(c)
		if session == nil || !session.IsAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "admin privileges required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// viewerSession resolves the optional session on the public view
// routes. Banned callers are rejected the same way SessionMiddleware
// rejects them, so a ban covers the token-less view path too.
func viewerSession(c *gin.Context) (*model.Session, error) {
	session := resolveSession(c)
	if session == nil {
		return nil, nil
	}
	if err := service.CheckSessionBan(session); err != nil {
		return nil, err
	}
	return session, nil
}

// currentSession returns the session placed by SessionMiddleware.
func currentSession(c *gin.Context) *model.Session {
	value, ok := c.Get(sessionKey)
	if !ok {
		return nil
	}
	session, _ := value.(*model.Session)
	return session
}

// pathID parses a numeric :id path parameter.
func pathID(c *gin.Context) (uint64, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, service.ErrNotFound
	}
	return id, nil
}

// RequestLogger logs method, path, status and latency for each request.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.WithFields(log.Fields{
			"status":  c.Writer.Status(),
			"latency": time.Since(start).String(),
		}).Infof("%s %s", c.Request.Method, c.Request.URL.Path)
	}
}
