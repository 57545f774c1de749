package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/radenmas/socialite-api/internal/domain/entity"
	"github.com/radenmas/socialite-api/internal/domain/repository"
)

// FollowerRepository persists directed follower edges. Both columns are
// FK-constrained to users(id); edge uniqueness is left to the primary key.
type FollowerRepository struct {
	pool *pgxpool.Pool
}

func NewFollowerRepository(pool *pgxpool.Pool) *FollowerRepository {
	return &FollowerRepository{pool: pool}
}

func (r *FollowerRepository) Follow(followerID, userID string) error {
	ctx := context.Background()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO followers (follower_id, user_id)
		VALUES ($1, $2)
		ON CONFLICT (follower_id, user_id) DO NOTHING
	`, followerID, userID)
	return err
}

func (r *FollowerRepository) Unfollow(followerID, userID string) error {
	ctx := context.Background()
	_, err := r.pool.Exec(ctx, `
		DELETE FROM followers
		WHERE follower_id = $1 AND user_id = $2
	`, followerID, userID)
	return err
}

func (r *FollowerRepository) Followers(userID string) ([]*entity.User, error) {
	return r.list(`
		SELECT u.id, u.username, u.email, u.hash, u.bio, u.verified, u.image_path, u.created_at, u.updated_at
		FROM users u
		JOIN followers f ON f.follower_id = u.id
		WHERE f.user_id = $1
		ORDER BY f.created_at
	`, userID)
}

func (r *FollowerRepository) Following(followerID string) ([]*entity.User, error) {
	return r.list(`
		SELECT u.id, u.username, u.email, u.hash, u.bio, u.verified, u.image_path, u.created_at, u.updated_at
		FROM users u
		JOIN followers f ON f.user_id = u.id
		WHERE f.follower_id = $1
		ORDER BY f.created_at
	`, followerID)
}

func (r *FollowerRepository) list(query, arg string) ([]*entity.User, error) {
	ctx := context.Background()
	rows, err := r.pool.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*entity.User
	for rows.Next() {
		u := &entity.User{}
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.Hash, &u.Bio, &u.Verified,
			&u.ImagePath, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

var _ repository.FollowerRepository = (*FollowerRepository)(nil)
