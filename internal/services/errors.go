package services

import "errors"

// Business-rule failures. All are detected before any side effect; a
// handler can rely on errors.Is plus ErrorKind to build the response.
var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrNoActiveSession   = errors.New("no active session")
	ErrSessionConflict   = errors.New("session already active")
	ErrAlreadyRevealed   = errors.New("tile already revealed")
	ErrInvalidParameter  = errors.New("invalid parameter")
	ErrUpstream          = errors.New("upstream service failure")

	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("username or email already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrNotVerified        = errors.New("email not verified")
	ErrInvalidCode        = errors.New("invalid verification code")
)

// ErrorKind returns the machine-checkable code carried in error responses.
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, ErrInsufficientFunds):
		return "insufficient_funds"
	case errors.Is(err, ErrNoActiveSession):
		return "no_active_session"
	case errors.Is(err, ErrSessionConflict):
		return "session_conflict"
	case errors.Is(err, ErrAlreadyRevealed):
		return "already_revealed"
	case errors.Is(err, ErrInvalidParameter):
		return "invalid_parameter"
	case errors.Is(err, ErrUpstream):
		return "upstream_failure"
	case errors.Is(err, ErrUserNotFound):
		return "user_not_found"
	case errors.Is(err, ErrUserExists):
		return "user_exists"
	case errors.Is(err, ErrInvalidCredentials), errors.Is(err, ErrInvalidCode):
		return "invalid_credentials"
	case errors.Is(err, ErrNotVerified):
		return "not_verified"
	default:
		return "internal_error"
	}
}
