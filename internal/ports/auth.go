package ports

import (
	"context"
	"time"
)

type User struct {
	ID           int64
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}

type UserRepo interface {
	// Create возвращает ErrUsernameTaken при дубликате username
	Create(ctx context.Context, username, passwordHash string) (int64, error)
	GetByUsername(ctx context.Context, username string) (User, error)
}

// TokenRepo — живые refresh-токены; logout == удаление
type TokenRepo interface {
	Save(ctx context.Context, jti string, userID int64, expiresAt time.Time) error
	Exists(ctx context.Context, jti string) (bool, error)
	Delete(ctx context.Context, jti string) (bool, error)
}

type TokenPair struct {
	Access  string
	Refresh string
}

type AuthService interface {
	Register(ctx context.Context, username, password string) (int64, error)
	Login(ctx context.Context, username, password string) (TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (string, error)
	Logout(ctx context.Context, refreshToken string) error

	// ValidateAccess проверяет access-токен и возвращает id пользователя
	ValidateAccess(ctx context.Context, token string) (int64, error)
}
