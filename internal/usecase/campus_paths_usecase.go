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

// CampusPathsUseCase - контроллер campus path finder
type CampusPathsUseCase struct {
	pathFinder  repository.PathFinderRepository
	sessionRepo repository.SessionRepository
	logger      *zap.Logger
}

// NewCampusPathsUseCase - создание нового CampusPathsUseCase
func NewCampusPathsUseCase(
	pathFinder repository.PathFinderRepository,
	sessionRepo repository.SessionRepository,
	logger *zap.Logger,
) *CampusPathsUseCase {
	return &CampusPathsUseCase{
		pathFinder:  pathFinder,
		sessionRepo: sessionRepo,
		logger:      logger,
	}
}

func noticeFrom(appErr *errors.AppError) *domain.Notice {
	return &domain.Notice{Code: appErr.Code, Message: appErr.Message}
}

// Init - монтирование: один запрос списка зданий, без повторов.
// При ошибке список пуст и возвращается уведомление.
func (uc *CampusPathsUseCase) Init(ctx context.Context) (domain.CampusPathsState, *domain.Notice) {
	buildings, err := uc.pathFinder.ListBuildings(ctx)
	if err != nil {
		uc.logger.Warn("Failed to load buildings", zap.Error(err))
		return domain.NewCampusPathsState(nil), noticeFrom(errors.ErrBuildingsUnavailable)
	}

	uc.logger.Info("Buildings loaded", zap.Int("count", len(buildings)))

	return domain.NewCampusPathsState(buildings), nil
}

// Reduce сворачивает событие в новое состояние.
// Уведомление означает, что состояние не изменилось.
func (uc *CampusPathsUseCase) Reduce(
	ctx context.Context,
	state domain.CampusPathsState,
	event domain.Event,
) (domain.CampusPathsState, *domain.Notice, error) {
	switch event.Type {
	case domain.EventStartSelected:
		state.Start = event.Value
		return state, nil, nil

	case domain.EventEndSelected:
		state.End = event.Value
		return state, nil, nil

	case domain.EventFindRoute:
		next, notice := uc.findRoute(ctx, state)
		return next, notice, nil

	case domain.EventReset:
		return domain.NewCampusPathsState(state.Buildings), nil, nil
	}

	return state, nil, errors.ErrUnknownEvent.WithDetails(map[string]interface{}{
		"type": string(event.Type),
	})
}

func (uc *CampusPathsUseCase) findRoute(ctx context.Context, state domain.CampusPathsState) (domain.CampusPathsState, *domain.Notice) {
	if state.Start == domain.NoBuilding || state.End == domain.NoBuilding {
		return state, noticeFrom(errors.ErrChooseValidBuildings)
	}
	if state.Start == state.End {
		return state, noticeFrom(errors.ErrChooseDifferentBuildings)
	}

	uc.logger.Debug("Finding route",
		zap.String("start", state.Start),
		zap.String("end", state.End),
		zap.String("phase", string(domain.PhasePending)))

	path, err := uc.pathFinder.FindPath(ctx, state.Start, state.End)
	if err != nil {
		uc.logger.Warn("Failed to find route",
			zap.String("start", state.Start),
			zap.String("end", state.End),
			zap.Error(err))
		return state, noticeFrom(errors.ErrFetchRequest)
	}

	state.Segments = path.DrawableSegments(domain.PathColor)
	state.TotalDistance = path.Cost
	state.Phase = domain.PhasePopulated

	return state, nil
}

// Mount - новое монтирование: список зданий запрашивается заново, выбор сброшен
func (uc *CampusPathsUseCase) Mount(ctx context.Context, sessionID string) (*dto.CampusPathsResponse, error) {
	state, notice := uc.Init(ctx)
	if err := uc.save(ctx, sessionID, state); err != nil {
		return nil, err
	}
	return &dto.CampusPathsResponse{State: state, Notice: notice}, nil
}

// State возвращает текущее состояние сессии, монтируя его при отсутствии
func (uc *CampusPathsUseCase) State(ctx context.Context, sessionID string) (*dto.CampusPathsResponse, error) {
	state, err := uc.sessionRepo.GetCampusPaths(ctx, sessionID)
	if err != nil {
		uc.logger.Error("Failed to load campus paths state", zap.String("session_id", sessionID), zap.Error(err))
		return nil, fmt.Errorf("load campus paths state: %w", errors.ErrSessionError)
	}
	if state == nil {
		return uc.Mount(ctx, sessionID)
	}
	return &dto.CampusPathsResponse{State: *state}, nil
}

// Dispatch применяет события по порядку; возвращается последнее уведомление
func (uc *CampusPathsUseCase) Dispatch(ctx context.Context, sessionID string, events ...domain.Event) (*dto.CampusPathsResponse, error) {
	current, err := uc.State(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	state := current.State
	notice := current.Notice
	for _, event := range events {
		var n *domain.Notice
		state, n, err = uc.Reduce(ctx, state, event)
		if err != nil {
			return nil, err
		}
		if n != nil {
			notice = n
		}
	}

	if err := uc.save(ctx, sessionID, state); err != nil {
		return nil, err
	}

	return &dto.CampusPathsResponse{State: state, Notice: notice}, nil
}

func (uc *CampusPathsUseCase) save(ctx context.Context, sessionID string, state domain.CampusPathsState) error {
	if err := uc.sessionRepo.SaveCampusPaths(ctx, sessionID, state); err != nil {
		uc.logger.Error("Failed to save campus paths state", zap.String("session_id", sessionID), zap.Error(err))
		return fmt.Errorf("save campus paths state: %w", errors.ErrSessionError)
	}
	return nil
}
