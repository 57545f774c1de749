package postgres

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/radenmas/socialite-api/internal/domain/entity"
	"github.com/radenmas/socialite-api/internal/domain/repository"
)

const uniqueViolationCode = "23505"

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

// mapUniqueViolation translates a pg unique-constraint failure into a
// repository.UniqueViolationError naming the offending field(s).
// Any other error passes through untouched.
func mapUniqueViolation(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != uniqueViolationCode {
		return err
	}
	var fields []string
	for _, f := range []string{"username", "email"} {
		if strings.Contains(pgErr.ConstraintName, f) {
			fields = append(fields, f)
		}
	}
	if len(fields) == 0 {
		fields = []string{pgErr.ConstraintName}
	}
	return &repository.UniqueViolationError{Fields: fields}
}

func (r *UserRepository) Create(u *entity.User) error {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		INSERT INTO users (username, email, hash, bio, image_path)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, verified, created_at, updated_at
	`, u.Username, u.Email, u.Hash, u.Bio, u.ImagePath)

	if err := row.Scan(&u.ID, &u.Verified, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return mapUniqueViolation(err)
	}
	return nil
}

func (r *UserRepository) GetByID(id string) (*entity.User, error) {
	return r.getBy(`WHERE id = $1`, id)
}

func (r *UserRepository) GetByEmail(email string) (*entity.User, error) {
	return r.getBy(`WHERE email = $1`, email)
}

func (r *UserRepository) GetByUsername(username string) (*entity.User, error) {
	return r.getBy(`WHERE username = $1`, username)
}

func (r *UserRepository) getBy(where string, arg any) (*entity.User, error) {
	ctx := context.Background()
	u := &entity.User{}

	row := r.pool.QueryRow(ctx, `
		SELECT id, username, email, hash, bio, verified, image_path, created_at, updated_at
		FROM users
	`+where, arg)

	if err := row.Scan(&u.ID, &u.Username, &u.Email, &u.Hash, &u.Bio, &u.Verified,
		&u.ImagePath, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return u, nil
}

func (r *UserRepository) Update(u *entity.User) error {
	ctx := context.Background()
	u.UpdatedAt = time.Now()

	res, err := r.pool.Exec(ctx, `
		UPDATE users
		SET username = $1, email = $2, hash = $3, bio = $4, image_path = $5, updated_at = $6
		WHERE id = $7
	`, u.Username, u.Email, u.Hash, u.Bio, u.ImagePath, u.UpdatedAt, u.ID)
	if err != nil {
		return mapUniqueViolation(err)
	}

	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}

	return nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
