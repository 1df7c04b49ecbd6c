package models

import "time"

// User is the stored account record. It is persisted as JSON, so the hash
// and pending code keep real tags; responses go through PublicUser instead
// of marshaling this struct.
type User struct {
	ID           string `json:"id" redis:"id"`
	Username     string `json:"username" redis:"username"`
	Email        string `json:"email" redis:"email"`
	PasswordHash string `json:"password_hash" redis:"password_hash"`

	Verified         bool   `json:"verified" redis:"verified"`
	VerificationCode string `json:"verification_code,omitempty" redis:"verification_code"`

	CreatedAt time.Time `json:"created_at" redis:"created_at"`
	UpdatedAt time.Time `json:"updated_at" redis:"updated_at"`
}

// PublicUser is the shape returned to clients: no hash, no pending code.
type PublicUser struct {
	ID       string  `json:"id"`
	Username string  `json:"username"`
	Balance  float64 `json:"balance"`
}

func (u *User) Public(balance float64) PublicUser {
	return PublicUser{
		ID:       u.ID,
		Username: u.Username,
		Balance:  balance,
	}
}
