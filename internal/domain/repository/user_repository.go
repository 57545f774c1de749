package repository

import (
	"strings"

	"github.com/radenmas/socialite-api/internal/domain/entity"
)

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	Create(u *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	Update(u *entity.User) error
}

// FollowerRepository manages the directed follower edges between users.
type FollowerRepository interface {
	Follow(followerID, userID string) error
	Unfollow(followerID, userID string) error
	Followers(userID string) ([]*entity.User, error)
	Following(followerID string) ([]*entity.User, error)
}

// ErrNotFound is returned by lookups when no row matches.
var ErrNotFound = notFoundError{}

type notFoundError struct{}

func (notFoundError) Error() string { return "record not found" }

// UniqueViolationError reports a storage-level uniqueness rejection,
// carrying the offending field names so callers can say which one clashed.
type UniqueViolationError struct {
	Fields []string
}

func (e *UniqueViolationError) Error() string {
	return "unique violation on " + strings.Join(e.Fields, ", ")
}
