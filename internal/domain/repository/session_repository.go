package repository

import (
	"context"

	"github.com/campus-maps/internal/domain"
)

// SessionRepository хранит состояние контроллеров по сессиям.
// Get* возвращают (nil, nil), если сессии ещё нет.
type SessionRepository interface {
	GetLineMapper(ctx context.Context, sessionID string) (*domain.LineMapperState, error)
	SaveLineMapper(ctx context.Context, sessionID string, state domain.LineMapperState) error

	GetCampusPaths(ctx context.Context, sessionID string) (*domain.CampusPathsState, error)
	SaveCampusPaths(ctx context.Context, sessionID string, state domain.CampusPathsState) error

	// Delete удаляет всё состояние сессии
	Delete(ctx context.Context, sessionID string) error
}
