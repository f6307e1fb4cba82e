package dto

// RegisterRequest creates a new account.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest opens a session.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ChangePasswordRequest rotates the caller's password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// NoteRequest creates or updates a note.
type NoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// BanRequest flips a user's ban flag.
type BanRequest struct {
	Banned bool `json:"banned"`
}
