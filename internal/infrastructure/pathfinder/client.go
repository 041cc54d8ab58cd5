package pathfinder

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"time"

	"github.com/campus-maps/internal/config"
	"github.com/campus-maps/internal/domain"
	"github.com/campus-maps/internal/domain/repository"
	"github.com/campus-maps/internal/pkg/validator"
	"go.uber.org/zap"
)

const maxErrorBody = 512

type client struct {
	httpClient *http.Client
	baseURL    string
	logger     *zap.Logger
}

// NewPathFinderClient создает клиент внешнего сервера поиска пути.
// RequestTimeout == 0 оставляет запросы без таймаута.
func NewPathFinderClient(cfg *config.PathFinderConfig, logger *zap.Logger) repository.PathFinderRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.RequestTimeout) * time.Second,
		},
		baseURL: cfg.BaseURL,
		logger:  logger,
	}
}

// ListBuildings возвращает здания из GET /buildings, отсортированные по имени
func (c *client) ListBuildings(ctx context.Context) ([]domain.Building, error) {
	var names map[string]string
	if err := c.getJSON(ctx, c.baseURL+"/buildings", &names); err != nil {
		return nil, err
	}

	buildings := make([]domain.Building, 0, len(names))
	for key, name := range names {
		if key == domain.NoBuilding {
			c.logger.Warn("Skipping building with empty key", zap.String("name", name))
			continue
		}
		buildings = append(buildings, domain.Building{Key: key, Name: name})
	}
	sort.Slice(buildings, func(i, j int) bool {
		if buildings[i].Name != buildings[j].Name {
			return buildings[i].Name < buildings[j].Name
		}
		return buildings[i].Key < buildings[j].Key
	})

	c.logger.Debug("Buildings loaded", zap.Int("count", len(buildings)))

	return buildings, nil
}

// FindPath возвращает кратчайший путь из GET /findPath?start=&end=
func (c *client) FindPath(ctx context.Context, start, end string) (*domain.Path, error) {
	query := url.Values{}
	query.Set("start", start)
	query.Set("end", end)

	var resp pathDTO
	if err := c.getJSON(ctx, c.baseURL+"/findPath?"+query.Encode(), &resp); err != nil {
		return nil, err
	}

	if err := validator.Validate(&resp); err != nil {
		c.logger.Error("Path response failed validation", zap.Error(err))
		return nil, fmt.Errorf("invalid path response: %w", err)
	}

	path := resp.toDomain()

	c.logger.Debug("Path found",
		zap.String("start", start),
		zap.String("end", end),
		zap.Float64("cost", path.Cost),
		zap.Int("segments", len(path.Segments)))

	return path, nil
}

// getJSON - GET запрос с декодированием JSON; любой не-2xx статус считается ошибкой
func (c *client) getJSON(ctx context.Context, url string, out interface{}) error {
	c.logger.Debug("Calling path finder", zap.String("url", url))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute request", zap.Error(err))
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		c.logger.Error("Path finder returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return fmt.Errorf("path finder error: status %d, body: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.logger.Error("Failed to decode response", zap.Error(err))
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
