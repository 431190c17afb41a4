package infra

import (
	"context"
	"database/sql"
	"time"

	"github.com/talkmate/talkmate-backend/internal/ports"
)

type sessionRepo struct {
	db *sql.DB
}

func NewSessionRepo(db *sql.DB) ports.SessionRepo {
	return &sessionRepo{db: db}
}

func (r *sessionRepo) GetOrCreate(ctx context.Context, userID int64) (ports.Session, error) {
	var s ports.Session

	// ленивое создание при первом ходе, сессия 1:1 с пользователем
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO chat_sessions (user_id, created_at)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET user_id = EXCLUDED.user_id
		RETURNING id, user_id, created_at
	`, userID, time.Now()).Scan(&s.ID, &s.UserID, &s.CreatedAt)

	return s, err
}
