package infra

import (
	"context"
	"database/sql"
	"time"

	"github.com/talkmate/talkmate-backend/internal/ports"
)

type tokenRepo struct {
	db *sql.DB
}

func NewTokenRepo(db *sql.DB) ports.TokenRepo {
	return &tokenRepo{db: db}
}

func (r *tokenRepo) Save(ctx context.Context, jti string, userID int64, expiresAt time.Time) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO auth_tokens (jti, user_id, expires_at)
		VALUES ($1, $2, $3)
	`, jti, userID, expiresAt)
	return err
}

func (r *tokenRepo) Exists(ctx context.Context, jti string) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx, `
		SELECT 1 FROM auth_tokens
		WHERE jti = $1 AND expires_at > NOW()
	`, jti).Scan(&one)

	if err == sql.ErrNoRows {
		return false, nil
	}
	return err == nil, err
}

func (r *tokenRepo) Delete(ctx context.Context, jti string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM auth_tokens WHERE jti = $1
	`, jti)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}
