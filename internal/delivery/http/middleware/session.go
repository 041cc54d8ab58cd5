package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	// SessionCookie - имя cookie с идентификатором сессии
	SessionCookie = "session_id"
	// SessionLocalKey - ключ c.Locals с идентификатором сессии
	SessionLocalKey = "session_id"
)

// Session выдаёт cookie session_id (UUID), если его нет или он невалиден
func Session(ttl time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sessionID := c.Cookies(SessionCookie)
		if _, err := uuid.Parse(sessionID); err != nil {
			sessionID = uuid.NewString()
			c.Cookie(&fiber.Cookie{
				Name:     SessionCookie,
				Value:    sessionID,
				Path:     "/",
				Expires:  time.Now().Add(ttl),
				HTTPOnly: true,
				SameSite: fiber.CookieSameSiteLaxMode,
			})
		}

		c.Locals(SessionLocalKey, sessionID)
		return c.Next()
	}
}

// SessionID returns the session id set by Session.
func SessionID(c *fiber.Ctx) string {
	sessionID, _ := c.Locals(SessionLocalKey).(string)
	return sessionID
}
