package ai

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/talkmate/talkmate-backend/internal/error_notificator"
	"github.com/talkmate/talkmate-backend/internal/ports"
)

const (
	// chatMaxTokens ограничивает длину реплики чат-модели
	chatMaxTokens = 120

	generationTimeout = 120 * time.Second
)

type Service struct {
	generator    Generator
	sessions     ports.SessionRepo
	turns        ports.TurnService
	Notifier     error_notificator.Notificator
	chatModel    string
	grammarModel string
}

func NewService(
	generator Generator,
	sessions ports.SessionRepo,
	turns ports.TurnService,
	notifier error_notificator.Notificator,
	chatModel string,
	grammarModel string,
) *Service {
	return &Service{
		generator:    generator,
		sessions:     sessions,
		turns:        turns,
		Notifier:     notifier,
		chatModel:    chatModel,
		grammarModel: grammarModel,
	}
}

func (s *Service) notifyGenerationError(ctx context.Context, userID int64, model string, err error) {
	s.Notifier.Notify(ctx, err,
		fmt.Sprintf("Ошибка генерации\nПользователь: %d\nМодель: %s\n%v", userID, model, err))
}

// === главный метод ===
func (s *Service) Send(ctx context.Context, userID int64, text string) (SendResult, error) {
	start := time.Now()
	log.Printf("[ai] >>> SEND user=%d", userID)

	// пустой ввод — не ошибка: тихий no-op без сессии и без генерации
	text = strings.TrimSpace(text)
	if text == "" {
		return SendResult{}, ports.ErrEmptyInput
	}

	session, err := s.sessions.GetOrCreate(ctx, userID)
	if err != nil {
		return SendResult{}, fmt.Errorf("%w: %v", ports.ErrPersistence, err)
	}

	history, err := s.turns.LastN(ctx, session.ID, historyWindow)
	if err != nil {
		return SendResult{}, fmt.Errorf("%w: %v", ports.ErrPersistence, err)
	}
	log.Printf("[ai] history entries: %d", len(history))

	messages, err := BuildMessages(history, text)
	if err != nil {
		return SendResult{}, err
	}

	ctxGen, cancel := context.WithTimeout(ctx, generationTimeout)
	defer cancel()

	raw, err := s.generator.Generate(ctxGen, messages, s.chatModel, chatMaxTokens)
	log.Printf("[ai][%.1fs] generate done err=%v", time.Since(start).Seconds(), err)

	if err != nil {
		s.notifyGenerationError(ctx, userID, s.chatModel, err)
		return SendResult{}, fmt.Errorf("%w: %v", ports.ErrGenerationUnavailable, err)
	}

	reply := ParseReply(raw)

	// без записи ответ не отдаём: пользователь должен найти его в истории
	turn, err := s.turns.Append(ctx, session.ID, userID, text, reply.Answer)
	if err != nil {
		return SendResult{}, fmt.Errorf("%w: %v", ports.ErrPersistence, err)
	}

	return SendResult{
		Reply:     reply.Answer + "\n\n" + reply.FollowUp,
		MessageID: turn.ID,
	}, nil
}

func (s *Service) History(ctx context.Context, userID int64) ([]ports.Turn, error) {
	session, err := s.sessions.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ports.ErrPersistence, err)
	}
	return s.turns.History(ctx, session.ID, userID)
}

func (s *Service) CheckGrammar(ctx context.Context, userID, messageID int64) (Correction, error) {
	start := time.Now()
	log.Printf("[ai] >>> GRAMMAR user=%d message=%d", userID, messageID)

	turn, err := s.turns.Get(ctx, messageID, userID)
	if err != nil {
		return Correction{}, err
	}

	messages := []openai.ChatCompletionMessage{
		{
			Role:    openai.ChatMessageRoleUser,
			Content: fmt.Sprintf(grammarPromptFormat, turn.Message),
		},
	}

	ctxGen, cancel := context.WithTimeout(ctx, generationTimeout)
	defer cancel()

	raw, err := s.generator.Generate(ctxGen, messages, s.grammarModel, 0)
	log.Printf("[ai][%.1fs] grammar done err=%v", time.Since(start).Seconds(), err)

	if err != nil {
		s.notifyGenerationError(ctx, userID, s.grammarModel, err)
		return Correction{}, fmt.Errorf("%w: %v", ports.ErrGenerationUnavailable, err)
	}

	return Correction{
		Original:  turn.Message,
		Corrected: strings.TrimSpace(raw),
	}, nil
}
