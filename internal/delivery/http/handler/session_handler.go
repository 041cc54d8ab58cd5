package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/campus-maps/internal/delivery/http/middleware"
	"github.com/campus-maps/internal/pkg/utils"
	"github.com/campus-maps/internal/usecase"
)

// SessionHandler - управление сессией браузера
type SessionHandler struct {
	sessionUC *usecase.SessionUseCase
	logger    *zap.Logger
}

func NewSessionHandler(sessionUC *usecase.SessionUseCase, logger *zap.Logger) *SessionHandler {
	return &SessionHandler{
		sessionUC: sessionUC,
		logger:    logger,
	}
}

// End godoc
// @Summary Завершить сессию
// @Description Удаляет состояние обоих приложений и сбрасывает cookie session_id
// @Tags Session
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/session [delete]
func (h *SessionHandler) End(c *fiber.Ctx) error {
	sessionID := middleware.SessionID(c)
	if err := h.sessionUC.End(c.UserContext(), sessionID); err != nil {
		return utils.SendError(c, err)
	}

	c.ClearCookie(middleware.SessionCookie)
	return utils.SendSuccess(c, fiber.Map{"ended": true}, &utils.Meta{SessionID: sessionID})
}
