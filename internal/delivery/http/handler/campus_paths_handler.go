package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/campus-maps/internal/delivery/http/middleware"
	"github.com/campus-maps/internal/pkg/errors"
	"github.com/campus-maps/internal/pkg/utils"
	"github.com/campus-maps/internal/pkg/validator"
	"github.com/campus-maps/internal/usecase"
	"github.com/campus-maps/internal/usecase/dto"
)

// CampusPathsHandler - JSON API контроллера campus path finder
type CampusPathsHandler struct {
	campusUC *usecase.CampusPathsUseCase
	logger   *zap.Logger
}

// NewCampusPathsHandler - создание нового CampusPathsHandler
func NewCampusPathsHandler(campusUC *usecase.CampusPathsUseCase, logger *zap.Logger) *CampusPathsHandler {
	return &CampusPathsHandler{
		campusUC: campusUC,
		logger:   logger,
	}
}

// GetState godoc
// @Summary Состояние campus path finder
// @Description Текущее состояние сессии. Для новой сессии загружается список зданий; при ошибке загрузки в ответе будет notice.
// @Tags Campus
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.CampusPathsResponse}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/campus/state [get]
func (h *CampusPathsHandler) GetState(c *fiber.Ctx) error {
	sessionID := middleware.SessionID(c)
	result, err := h.campusUC.State(c.UserContext(), sessionID)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, &utils.Meta{
		Total:     len(result.State.Segments),
		SessionID: sessionID,
	})
}

// Mount godoc
// @Summary Перемонтировать campus path finder
// @Description Заново запрашивает список зданий и сбрасывает выбор и маршрут
// @Tags Campus
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.CampusPathsResponse}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/campus/mount [post]
func (h *CampusPathsHandler) Mount(c *fiber.Ctx) error {
	sessionID := middleware.SessionID(c)
	result, err := h.campusUC.Mount(c.UserContext(), sessionID)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, &utils.Meta{SessionID: sessionID})
}

// PostEvent godoc
// @Summary Событие campus path finder
// @Description Применяет событие start_selected / end_selected (value = ключ здания), find_route или reset. Ошибки выбора и ошибки сервера поиска пути возвращаются как notice с кодом 200, состояние при этом не меняется.
// @Tags Campus
// @Accept json
// @Produce json
// @Param request body dto.CampusPathsEventRequest true "Событие"
// @Success 200 {object} utils.SuccessResponse{data=dto.CampusPathsResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/campus/events [post]
func (h *CampusPathsHandler) PostEvent(c *fiber.Ctx) error {
	var req dto.CampusPathsEventRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(validator.FieldErrors(err)))
	}

	sessionID := middleware.SessionID(c)
	result, err := h.campusUC.Dispatch(c.UserContext(), sessionID, req.ToEvent())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total:     len(result.State.Segments),
		SessionID: sessionID,
	})
}
