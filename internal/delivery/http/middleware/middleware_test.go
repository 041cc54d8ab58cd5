package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newSessionApp() *fiber.App {
	app := fiber.New()
	app.Use(Session(time.Hour))
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(SessionID(c))
	})
	return app
}

func TestSession_IssuesCookie(t *testing.T) {
	app := newSessionApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)

	body, _ := io.ReadAll(resp.Body)
	_, err = uuid.Parse(string(body))
	assert.NoError(t, err)

	var cookie *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == SessionCookie {
			cookie = c
		}
	}
	require.NotNil(t, cookie)
	assert.Equal(t, string(body), cookie.Value)
	assert.True(t, cookie.HttpOnly)
}

func TestSession_ReusesValidCookie(t *testing.T) {
	app := newSessionApp()
	id := uuid.NewString()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: id})
	resp, err := app.Test(req)
	require.NoError(t, err)

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, id, string(body))
	assert.Empty(t, resp.Cookies())
}

func TestSession_ReplacesInvalidCookie(t *testing.T) {
	app := newSessionApp()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "../../etc/passwd"})
	resp, err := app.Test(req)
	require.NoError(t, err)

	body, _ := io.ReadAll(resp.Body)
	assert.NotEqual(t, "../../etc/passwd", string(body))
	assert.NotEmpty(t, resp.Cookies())
}

func TestLogger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	app := fiber.New()
	app.Use(Logger(zap.New(core)))
	app.Get("/ok", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/missing", func(c *fiber.Ctx) error { return fiber.ErrNotFound })

	_, err := app.Test(httptest.NewRequest(http.MethodGet, "/ok", nil))
	require.NoError(t, err)
	_, err = app.Test(httptest.NewRequest(http.MethodGet, "/missing", nil))
	require.NoError(t, err)

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, int64(200), entries[0].ContextMap()["status"])
	assert.Equal(t, int64(404), entries[1].ContextMap()["status"])
	assert.Equal(t, zap.WarnLevel, entries[1].Level)
}
