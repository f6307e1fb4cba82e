package service

import "errors"

// Error kinds surfaced to handlers. Handlers own the HTTP status mapping;
// services only ever return one of these (or wrap it) for caller faults.
var (
	ErrValidation         = errors.New("missing or malformed fields")
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrBanned             = errors.New("account has been banned")
	ErrWeakPassword       = errors.New("new password must be at least 4 characters")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("permission denied")
	ErrNotFound           = errors.New("not found")
	ErrInvalidToken       = errors.New("invalid share token")
	ErrRootProtected      = errors.New("root admin cannot be modified")
)
