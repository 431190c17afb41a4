package domain

import (
	"context"
	"fmt"

	"github.com/talkmate/talkmate-backend/internal/error_notificator"
	"github.com/talkmate/talkmate-backend/internal/ports"
)

type turnService struct {
	repo     ports.TurnRepo
	notifier error_notificator.Notificator
}

func NewTurnService(repo ports.TurnRepo, n error_notificator.Notificator) ports.TurnService {
	return &turnService{
		repo:     repo,
		notifier: n,
	}
}

func (s *turnService) Append(ctx context.Context, sessionID, userID int64, message, response string) (ports.Turn, error) {
	turn, err := s.repo.Create(ctx, sessionID, userID, message, response)
	if err != nil {
		s.notifier.Notify(ctx, err,
			fmt.Sprintf("Ошибка записи хода в history: user=%d session=%d", userID, sessionID))
		return ports.Turn{}, err
	}
	return turn, nil
}

func (s *turnService) History(ctx context.Context, sessionID, userID int64) ([]ports.Turn, error) {
	return s.repo.GetHistory(ctx, sessionID, userID)
}

func (s *turnService) LastN(ctx context.Context, sessionID int64, n int) ([]ports.Turn, error) {
	return s.repo.GetLastN(ctx, sessionID, n)
}

func (s *turnService) Get(ctx context.Context, id, userID int64) (ports.Turn, error) {
	return s.repo.GetByID(ctx, id, userID)
}
