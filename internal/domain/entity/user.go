package entity

import (
	"time"
)

// User is the aggregate root for the user domain.
// Hash holds the bcrypt digest of the password and must never leave the
// application layer; handlers work with UserView instead.
type User struct {
	ID        string
	Username  string
	Email     string
	Hash      string
	Bio       string
	Verified  bool
	ImagePath string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// UserView is the outward projection of a User. It has no hash field at all,
// so a response can never leak the password digest by accident.
type UserView struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Bio       string    `json:"bio"`
	Verified  bool      `json:"verified"`
	ImagePath string    `json:"image"`
	Token     string    `json:"token,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// View projects the entity into its response representation.
func (u *User) View() UserView {
	return UserView{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Bio:       u.Bio,
		Verified:  u.Verified,
		ImagePath: u.ImagePath,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
