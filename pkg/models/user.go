package models

import (
	"time"

	"github.com/google/uuid"
)

/* =============================== Entities =============================== */

// User is a registered player or organizer.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Username  string    `gorm:"uniqueIndex;not null" json:"username"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

/* ================================= DTOs ================================= */

// CreateUserData is the payload for registering a user.
type CreateUserData struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// UpdateUserData is the payload for partial user updates. Nil fields are
// left unchanged.
type UpdateUserData struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
}

// PublicUser is the user shape exposed to other users, without contact
// details.
type PublicUser struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

// Public converts a full user record to its public shape.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Username:  u.Username,
		CreatedAt: u.CreatedAt,
	}
}

// UserCredentials carries a login attempt.
type UserCredentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserRegistration carries a signup request.
type UserRegistration struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
