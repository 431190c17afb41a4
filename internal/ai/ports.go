package ai

import (
	"context"

	openai "github.com/sashabaranov/go-openai"

	"github.com/talkmate/talkmate-backend/internal/ports"
)

// Generator — единый интерфейс к генерации текста; никакого доступа к БД
type Generator interface {
	// Generate отправляет messages в модель model; maxTokens <= 0 — лимит модели
	Generate(ctx context.Context, messages []openai.ChatCompletionMessage, model string, maxTokens int) (string, error)
}

type SendResult struct {
	Reply     string
	MessageID int64
}

type Correction struct {
	Original  string
	Corrected string
}

type ChatService interface {
	// Send прогоняет один ход диалога: история -> промпт -> генерация -> парсинг -> запись
	Send(ctx context.Context, userID int64, text string) (SendResult, error)

	History(ctx context.Context, userID int64) ([]ports.Turn, error)

	// CheckGrammar исправляет грамматику ранее сохранённого сообщения, ничего не пишет в БД
	CheckGrammar(ctx context.Context, userID, messageID int64) (Correction, error)
}
