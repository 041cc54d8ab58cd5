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

// LineMapperHandler - JSON API контроллера line mapper
type LineMapperHandler struct {
	linesUC *usecase.LineMapperUseCase
	logger  *zap.Logger
}

// NewLineMapperHandler - создание нового LineMapperHandler
func NewLineMapperHandler(linesUC *usecase.LineMapperUseCase, logger *zap.Logger) *LineMapperHandler {
	return &LineMapperHandler{
		linesUC: linesUC,
		logger:  logger,
	}
}

// GetState godoc
// @Summary Состояние line mapper
// @Description Текущее состояние сессии: текст, отрезки и фаза (empty/populated)
// @Tags Lines
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.LineMapperResponse}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/lines/state [get]
func (h *LineMapperHandler) GetState(c *fiber.Ctx) error {
	sessionID := middleware.SessionID(c)
	result, err := h.linesUC.State(c.UserContext(), sessionID)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, &utils.Meta{
		Total:     len(result.State.Segments),
		SessionID: sessionID,
	})
}

// Mount godoc
// @Summary Перемонтировать line mapper
// @Description Сбрасывает состояние сессии в начальное (empty)
// @Tags Lines
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.LineMapperResponse}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/lines/mount [post]
func (h *LineMapperHandler) Mount(c *fiber.Ctx) error {
	sessionID := middleware.SessionID(c)
	result, err := h.linesUC.Mount(c.UserContext(), sessionID)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, &utils.Meta{SessionID: sessionID})
}

// PostEvent godoc
// @Summary Событие line mapper
// @Description Применяет событие text_changed (value = текст), draw или clear
// @Tags Lines
// @Accept json
// @Produce json
// @Param request body dto.LineMapperEventRequest true "Событие"
// @Success 200 {object} utils.SuccessResponse{data=dto.LineMapperResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/lines/events [post]
func (h *LineMapperHandler) PostEvent(c *fiber.Ctx) error {
	var req dto.LineMapperEventRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(validator.FieldErrors(err)))
	}

	sessionID := middleware.SessionID(c)
	result, err := h.linesUC.Dispatch(c.UserContext(), sessionID, req.ToEvent())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total:     len(result.State.Segments),
		SessionID: sessionID,
	})
}
