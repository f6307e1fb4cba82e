package model

import "time"

// RootUsername is the seeded administrator account. It can never be
// banned, deleted or demoted.
const RootUsername = "root"

type User struct {
	ID uint64 `gorm:"primaryKey" json:"id"`

	Username string `gorm:"column:username;type:varchar(50);not null;unique" json:"username"`

	PasswordHash string `gorm:"column:password_hash;type:varchar(255);not null" json:"-"`

	IsAdmin  bool `gorm:"column:is_admin;not null;default:false" json:"is_admin"`
	IsBanned bool `gorm:"column:is_banned;not null;default:false" json:"is_banned"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the database table name.
func (User) TableName() string {
	return "users"
}

// IsRoot reports whether this is the protected root account.
func (u *User) IsRoot() bool {
	return u.Username == RootUsername
}

// Profile is the public view of a user, safe to return to clients.
type Profile struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"isAdmin"`
}

// Profile strips credential fields from a user.
func (u *User) Profile() Profile {
	return Profile{ID: u.ID, Username: u.Username, IsAdmin: u.IsAdmin}
}
