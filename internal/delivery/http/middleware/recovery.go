package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

// Recovery - middleware для восстановления после паники, паника пишется в zap
func Recovery(logger *zap.Logger) fiber.Handler {
	return recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c *fiber.Ctx, e interface{}) {
			logger.Error("Panic recovered",
				zap.String("path", c.Path()),
				zap.Any("panic", e),
				zap.Stack("stack"))
		},
	})
}
