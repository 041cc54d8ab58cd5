package repository

import (
	"context"

	"github.com/campus-maps/internal/domain"
)

// PathFinderRepository определяет методы внешнего сервера поиска пути
type PathFinderRepository interface {
	// ListBuildings возвращает список зданий кампуса
	ListBuildings(ctx context.Context) ([]domain.Building, error)

	// FindPath возвращает кратчайший путь между двумя зданиями
	FindPath(ctx context.Context, start, end string) (*domain.Path, error)
}
