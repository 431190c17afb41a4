package ports

import (
	"context"
	"time"
)

// DTO для истории чата
type Turn struct {
	ID        int64
	SessionID int64
	UserID    int64
	Message   string
	Response  string
	Corrected *string
	CreatedAt time.Time
}

// Session — одна беседа на пользователя (1:1)
type Session struct {
	ID        int64
	UserID    int64
	CreatedAt time.Time
}

type SessionRepo interface {
	// GetOrCreate возвращает сессию пользователя, создавая её при первом обращении
	GetOrCreate(ctx context.Context, userID int64) (Session, error)
}

// Репозиторий Postgres
type TurnRepo interface {
	Create(ctx context.Context, sessionID, userID int64, message, response string) (Turn, error)
	GetHistory(ctx context.Context, sessionID, userID int64) ([]Turn, error)
	GetLastN(ctx context.Context, sessionID int64, n int) ([]Turn, error)
	GetByID(ctx context.Context, id, userID int64) (Turn, error)
}

type TurnService interface {
	Append(ctx context.Context, sessionID, userID int64, message, response string) (Turn, error)
	History(ctx context.Context, sessionID, userID int64) ([]Turn, error)

	// LastN возвращает последние n ходов в хронологическом порядке
	LastN(ctx context.Context, sessionID int64, n int) ([]Turn, error)

	// Get отдаёт ход только его владельцу, иначе ErrNotFound
	Get(ctx context.Context, id, userID int64) (Turn, error)
}
