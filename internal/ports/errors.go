package ports

import "errors"

var (
	// ErrEmptyInput — пользователь прислал пустой текст, это не ошибка
	ErrEmptyInput = errors.New("empty input")

	// ErrGenerationUnavailable — генерация недоступна (сеть, таймаут, пустой ответ)
	ErrGenerationUnavailable = errors.New("generation backend unavailable")

	// ErrPersistence — БД недоступна, ответ не сохранён и не отдаётся
	ErrPersistence = errors.New("persistence failure")

	ErrNotFound = errors.New("not found")

	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)
