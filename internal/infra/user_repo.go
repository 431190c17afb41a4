package infra

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"github.com/talkmate/talkmate-backend/internal/ports"
)

type userRepo struct {
	db *sql.DB
}

func NewUserRepo(db *sql.DB) ports.UserRepo {
	return &userRepo{db: db}
}

func (r *userRepo) Create(ctx context.Context, username, passwordHash string) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO users (username, password_hash, created_at)
		VALUES ($1, $2, NOW())
		RETURNING id
	`, username, passwordHash).Scan(&id)

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return 0, ports.ErrUsernameTaken
	}
	return id, err
}

func (r *userRepo) GetByUsername(ctx context.Context, username string) (ports.User, error) {
	var u ports.User
	err := r.db.QueryRowContext(ctx, `
		SELECT id, username, password_hash, created_at
		FROM users
		WHERE username = $1
	`, username).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return ports.User{}, ports.ErrNotFound
	}
	return u, err
}
