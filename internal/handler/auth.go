package handler

import (
	"net/http"

	"FileNest/config"
	"FileNest/internal/dto"
	"FileNest/internal/service"
	"FileNest/model"
	"FileNest/utils"

	"github.com/gin-gonic/gin"
)

var loginLimiter = utils.NewIPRateLimiter(1, 5)

// InitLoginLimiter applies configured login throttle settings.
func InitLoginLimiter() {
	loginLimiter = utils.NewIPRateLimiter(config.AppConfig.LoginRate, config.AppConfig.LoginBurst)
}

// Register creates a new account.
func Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, service.ErrValidation)
		return
	}

	userID, err := service.Register(req.Username, req.Password)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"userId":  userID,
	})
}

// Login authenticates a user and opens a session.
func Login(c *gin.Context) {
	if !loginLimiter.Allow(c.ClientIP()) {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many login attempts"})
		return
	}

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, service.ErrValidation)
		return
	}

	profile, err := service.Authenticate(req.Username, req.Password)
	if err != nil {
		fail(c, err)
		return
	}

	sid, err := service.CreateSession(profile)
	if err != nil {
		fail(c, err)
		return
	}

	c.SetCookie(SessionCookie, sid, int(config.AppConfig.SessionTTL.Seconds()), "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"user":    profile,
	})
}

// Logout destroys the caller's session.
func Logout(c *gin.Context) {
	if sid, err := c.Cookie(SessionCookie); err == nil {
		if err := service.DestroySession(sid); err != nil {
			fail(c, err)
			return
		}
	}
	c.SetCookie(SessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// Me reports the caller's session state. Anonymous callers get
// authenticated=false rather than an error.
func Me(c *gin.Context) {
	session := resolveSession(c)
	if session == nil {
		c.JSON(http.StatusOK, dto.MeResponse{Authenticated: false})
		return
	}
	c.JSON(http.StatusOK, dto.MeResponse{
		Authenticated: true,
		User: &model.Profile{
			ID:       session.UserID,
			Username: session.Username,
			IsAdmin:  session.IsAdmin,
		},
	})
}

// ChangePassword rotates the caller's password.
func ChangePassword(c *gin.Context) {
	session := currentSession(c)

	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, service.ErrValidation)
		return
	}

	if err := service.ChangePassword(session.UserID, req.CurrentPassword, req.NewPassword); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password changed successfully"})
}
