package utils

import (
	"github.com/campus-maps/internal/pkg/errors"
	"github.com/gofiber/fiber/v2"
)

type SuccessResponse struct {
	Data interface{} `json:"data"`
	Meta *Meta       `json:"meta,omitempty"`
}

type ErrorResponse struct {
	Error *errors.AppError `json:"error"`
}

type Meta struct {
	Total     int    `json:"total,omitempty"`
	SessionID string `json:"session_id,omitempty"`
}

func SendSuccess(c *fiber.Ctx, data interface{}, meta *Meta) error {
	return c.JSON(SuccessResponse{
		Data: data,
		Meta: meta,
	})
}

func SendError(c *fiber.Ctx, err error) error {
	if appErr, ok := errors.As(err); ok {
		return c.Status(appErr.StatusCode).JSON(ErrorResponse{
			Error: appErr,
		})
	}

	// Unknown error - return 500
	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
		Error: errors.ErrInternalServer,
	})
}
