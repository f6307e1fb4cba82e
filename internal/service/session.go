package service

import (
	"errors"
	"time"

	"FileNest/config"
	"FileNest/internal/repo"
	"FileNest/model"
	"FileNest/utils"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// CreateSession issues an opaque session id bound to a login-time
// snapshot of the user's identity.
func CreateSession(profile *model.Profile) (string, error) {
	session := model.Session{
		ID:        utils.GetSessionID(),
		UserID:    profile.ID,
		Username:  profile.Username,
		IsAdmin:   profile.IsAdmin,
		ExpiresAt: time.Now().Add(config.AppConfig.SessionTTL),
	}
	if err := repo.Db.Create(&session).Error; err != nil {
		return "", err
	}
	return session.ID, nil
}

// ResolveSession maps a session id to its identity snapshot. Expired
// rows count as absent and are removed on the way out.
func ResolveSession(sessionID string) (*model.Session, error) {
	if sessionID == "" {
		return nil, ErrUnauthorized
	}

	var session model.Session
	if err := repo.Db.First(&session, "id = ?", sessionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, err
	}

	if session.Expired(time.Now()) {
		if err := repo.Db.Delete(&model.Session{}, "id = ?", sessionID).Error; err != nil {
			log.WithError(err).WithField("session", sessionID).Warn("delete expired session failed")
		}
		return nil, ErrUnauthorized
	}
	return &session, nil
}

// DestroySession invalidates a session id. Unknown ids are a no-op.
func DestroySession(sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return repo.Db.Delete(&model.Session{}, "id = ?", sessionID).Error
}

// CheckSessionBan re-reads the ban flag for the session's user. Identity
// fields stay a login-time snapshot, but bans take effect immediately
// rather than at next login.
func CheckSessionBan(session *model.Session) error {
	user, err := GetUserById(session.UserID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			// user deleted since login
			return ErrUnauthorized
		}
		return err
	}
	if user.IsBanned {
		return ErrBanned
	}
	return nil
}
