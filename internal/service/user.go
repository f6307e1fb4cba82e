package service

import (
	"errors"
	"strings"

	"FileNest/internal/repo"
	"FileNest/model"
	"FileNest/utils"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Register hashes the password and creates a user.
func Register(username, password string) (uint64, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return 0, ErrValidation
	}

	user := model.User{
		Username:     username,
		PasswordHash: utils.GetPwd(password),
	}
	if err := repo.Db.Create(&user).Error; err != nil {
		if isUniqueViolation(err) {
			return 0, ErrDuplicateUsername
		}
		return 0, err
	}
	return user.ID, nil
}

// Authenticate verifies credentials and returns the public profile.
// A missing user and a wrong password are indistinguishable to the caller.
func Authenticate(username, password string) (*model.Profile, error) {
	if username == "" || password == "" {
		return nil, ErrValidation
	}

	var user model.User
	if err := repo.Db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if user.IsBanned {
		return nil, ErrBanned
	}

	if !utils.CheckPwd(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	profile := user.Profile()
	return &profile, nil
}

// ChangePassword replaces a user's password hash after verifying the
// current one.
func ChangePassword(userID uint64, currentPassword, newPassword string) error {
	if currentPassword == "" || newPassword == "" {
		return ErrValidation
	}
	if len(newPassword) < 4 {
		return ErrWeakPassword
	}

	var user model.User
	if err := repo.Db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if !utils.CheckPwd(currentPassword, user.PasswordHash) {
		return ErrInvalidCredentials
	}

	return repo.Db.Model(&user).Update("password_hash", utils.GetPwd(newPassword)).Error
}

// GetUserById returns the current user row.
func GetUserById(userID uint64) (*model.User, error) {
	var user model.User
	if err := repo.Db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// GetUserByUsername returns a user row by username.
func GetUserByUsername(username string) (*model.User, error) {
	var user model.User
	if err := repo.Db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// ListUsers returns all users, admin view.
func ListUsers() ([]model.User, error) {
	var users []model.User
	err := repo.Db.Order("created_at").Find(&users).Error
	return users, err
}

// SetBanned flips a user's ban flag. Root is exempt.
func SetBanned(userID uint64, banned bool) error {
	user, err := GetUserById(userID)
	if err != nil {
		return err
	}
	if user.IsRoot() {
		return ErrRootProtected
	}
	return repo.Db.Model(user).Update("is_banned", banned).Error
}

// DeleteUser removes a user together with their files, notes, tokens and
// sessions. Blob deletion is best effort; the rows always go.
func DeleteUser(userID uint64) error {
	user, err := GetUserById(userID)
	if err != nil {
		return err
	}
	if user.IsRoot() {
		return ErrRootProtected
	}

	var files []model.File
	if err := repo.Db.Where("user_id = ?", userID).Find(&files).Error; err != nil {
		return err
	}
	for _, f := range files {
		if err := removeBlob(f.StoragePath); err != nil {
			log.WithError(err).WithField("path", f.StoragePath).Warn("delete blob failed")
		}
	}

	return repo.Db.Transaction(func(tx *gorm.DB) error {
		// share tokens cascade from files/notes via FK
		if err := tx.Where("user_id = ?", userID).Delete(&model.File{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&model.Note{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&model.Session{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.User{}, userID).Error
	})
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(strings.ToLower(err.Error()), "unique")
}
