package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/campus-maps/internal/domain/repository"
	"github.com/campus-maps/internal/pkg/errors"
)

// SessionUseCase - завершение сессии
type SessionUseCase struct {
	sessionRepo repository.SessionRepository
	logger      *zap.Logger
}

func NewSessionUseCase(sessionRepo repository.SessionRepository, logger *zap.Logger) *SessionUseCase {
	return &SessionUseCase{
		sessionRepo: sessionRepo,
		logger:      logger,
	}
}

// End удаляет состояние обоих приложений; следующий запрос сессии начнёт с монтирования
func (uc *SessionUseCase) End(ctx context.Context, sessionID string) error {
	if err := uc.sessionRepo.Delete(ctx, sessionID); err != nil {
		uc.logger.Error("Failed to end session", zap.String("session_id", sessionID), zap.Error(err))
		return fmt.Errorf("end session: %w", errors.ErrSessionError)
	}

	uc.logger.Info("Session ended", zap.String("session_id", sessionID))
	return nil
}
