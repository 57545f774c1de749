package entity

import "time"

// Follower is a directed edge: FollowerID follows UserID.
// Self-referential many-to-many over users; both endpoints are FK-enforced
// in storage so an edge can never reference a nonexistent user.
type Follower struct {
	FollowerID string
	UserID     string
	CreatedAt  time.Time
}
