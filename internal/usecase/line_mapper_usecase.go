package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/campus-maps/internal/domain"
	"github.com/campus-maps/internal/domain/repository"
	"github.com/campus-maps/internal/pkg/errors"
	"github.com/campus-maps/internal/usecase/dto"
)

// LineMapperUseCase - контроллер line mapper: текст -> отрезки на карте
type LineMapperUseCase struct {
	sessionRepo repository.SessionRepository
	parseMode   ParseMode
	logger      *zap.Logger
}

// NewLineMapperUseCase - создание нового LineMapperUseCase
func NewLineMapperUseCase(
	sessionRepo repository.SessionRepository,
	parseMode ParseMode,
	logger *zap.Logger,
) *LineMapperUseCase {
	return &LineMapperUseCase{
		sessionRepo: sessionRepo,
		parseMode:   parseMode,
		logger:      logger,
	}
}

// Init - начальное состояние (Empty)
func (uc *LineMapperUseCase) Init() domain.LineMapperState {
	return domain.NewLineMapperState()
}

// Reduce сворачивает одно событие в новое состояние; входное состояние не меняется
func (uc *LineMapperUseCase) Reduce(state domain.LineMapperState, event domain.Event) (domain.LineMapperState, error) {
	switch event.Type {
	case domain.EventTextChanged:
		state.Text = event.Value
		return state, nil

	case domain.EventDraw:
		state.Segments = ParseLines(state.Text, uc.parseMode)
		state.Phase = domain.PhasePopulated
		if len(state.Segments) == 0 {
			state.Phase = domain.PhaseEmpty
		}
		uc.logger.Debug("Lines drawn",
			zap.Int("segments", len(state.Segments)),
			zap.String("mode", string(uc.parseMode)))
		return state, nil

	case domain.EventClear:
		return uc.Init(), nil
	}

	return state, errors.ErrUnknownEvent.WithDetails(map[string]interface{}{
		"type": string(event.Type),
	})
}

// Mount - новое монтирование: состояние сессии сбрасывается в Empty
func (uc *LineMapperUseCase) Mount(ctx context.Context, sessionID string) (*dto.LineMapperResponse, error) {
	state := uc.Init()
	if err := uc.save(ctx, sessionID, state); err != nil {
		return nil, err
	}
	return &dto.LineMapperResponse{State: state}, nil
}

// State возвращает текущее состояние сессии, монтируя его при отсутствии
func (uc *LineMapperUseCase) State(ctx context.Context, sessionID string) (*dto.LineMapperResponse, error) {
	state, err := uc.sessionRepo.GetLineMapper(ctx, sessionID)
	if err != nil {
		uc.logger.Error("Failed to load line mapper state", zap.String("session_id", sessionID), zap.Error(err))
		return nil, fmt.Errorf("load line mapper state: %w", errors.ErrSessionError)
	}
	if state == nil {
		return uc.Mount(ctx, sessionID)
	}
	return &dto.LineMapperResponse{State: *state}, nil
}

// Dispatch применяет события по порядку и сохраняет результат одной записью
func (uc *LineMapperUseCase) Dispatch(ctx context.Context, sessionID string, events ...domain.Event) (*dto.LineMapperResponse, error) {
	current, err := uc.State(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	state := current.State
	for _, event := range events {
		state, err = uc.Reduce(state, event)
		if err != nil {
			return nil, err
		}
	}

	if err := uc.save(ctx, sessionID, state); err != nil {
		return nil, err
	}

	return &dto.LineMapperResponse{State: state}, nil
}

func (uc *LineMapperUseCase) save(ctx context.Context, sessionID string, state domain.LineMapperState) error {
	if err := uc.sessionRepo.SaveLineMapper(ctx, sessionID, state); err != nil {
		uc.logger.Error("Failed to save line mapper state", zap.String("session_id", sessionID), zap.Error(err))
		return fmt.Errorf("save line mapper state: %w", errors.ErrSessionError)
	}
	return nil
}
