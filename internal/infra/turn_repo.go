package infra

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/talkmate/talkmate-backend/internal/ports"
)

type turnRepo struct {
	db *sql.DB
}

func NewTurnRepo(db *sql.DB) ports.TurnRepo {
	return &turnRepo{db: db}
}

func (r *turnRepo) Create(ctx context.Context, sessionID, userID int64, message, response string) (ports.Turn, error) {
	turn := ports.Turn{
		SessionID: sessionID,
		UserID:    userID,
		Message:   message,
		Response:  response,
	}
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO chat_messages (session_id, user_id, message, response, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`, sessionID, userID, message, response, time.Now()).Scan(&turn.ID, &turn.CreatedAt)
	return turn, err
}

func (r *turnRepo) GetHistory(ctx context.Context, sessionID, userID int64) ([]ports.Turn, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, session_id, user_id, message, response, corrected_message, created_at
		FROM chat_messages
		WHERE session_id = $1 AND user_id = $2
		ORDER BY created_at ASC, id ASC
	`, sessionID, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanTurns(rows)
}

func (r *turnRepo) GetLastN(ctx context.Context, sessionID int64, n int) ([]ports.Turn, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, session_id, user_id, message, response, corrected_message, created_at
		FROM chat_messages
		WHERE session_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2
	`, sessionID, n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	turns, err := scanTurns(rows)
	if err != nil {
		return nil, err
	}

	// хронологический порядок
	for i, j := 0, len(turns)-1; i < j; i, j = i+1, j-1 {
		turns[i], turns[j] = turns[j], turns[i]
	}
	return turns, nil
}

func (r *turnRepo) GetByID(ctx context.Context, id, userID int64) (ports.Turn, error) {
	var turn ports.Turn
	err := r.db.QueryRowContext(ctx, `
		SELECT id, session_id, user_id, message, response, corrected_message, created_at
		FROM chat_messages
		WHERE id = $1 AND user_id = $2
	`, id, userID).Scan(
		&turn.ID,
		&turn.SessionID,
		&turn.UserID,
		&turn.Message,
		&turn.Response,
		&turn.Corrected,
		&turn.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return ports.Turn{}, ports.ErrNotFound
	}
	return turn, err
}

func scanTurns(rows *sql.Rows) ([]ports.Turn, error) {
	var turns []ports.Turn
	for rows.Next() {
		var turn ports.Turn
		if err := rows.Scan(
			&turn.ID,
			&turn.SessionID,
			&turn.UserID,
			&turn.Message,
			&turn.Response,
			&turn.Corrected,
			&turn.CreatedAt,
		); err != nil {
			return nil, err
		}
		turns = append(turns, turn)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return turns, nil
}
