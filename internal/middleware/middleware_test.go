package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRateLimiterRejectsOverLimit(t *testing.T) {
	app := fiber.New()
	app.Use(RateLimiter(2, time.Minute))
	app.Get("/", func(c *fiber.Ctx) error { return c.SendString("ok") })

	for i := 0; i < 2; i++ {
		resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	}

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
}

func TestRequestLogLevels(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)

	app := fiber.New()
	app.Use(requestid.New())
	app.Use(RequestLog(zap.New(core)))
	app.Get("/ok", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/bad", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusBadRequest) })
	app.Get("/boom", func(c *fiber.Ctx) error { return fiber.ErrBadGateway })

	for _, path := range []string{"/ok", "/bad", "/boom"} {
		_, err := app.Test(httptest.NewRequest("GET", path, nil))
		require.NoError(t, err)
	}

	entries := logs.All()
	require.Len(t, entries, 3)

	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, "/ok", entries[0].ContextMap()["path"])
	assert.NotEmpty(t, entries[0].ContextMap()["request_id"])

	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, int64(fiber.StatusBadRequest), entries[1].ContextMap()["status"])

	assert.Equal(t, zapcore.ErrorLevel, entries[2].Level)
	assert.Equal(t, int64(fiber.StatusBadGateway), entries[2].ContextMap()["status"])
}

func TestRequestLogKeepsFieldsAfterLaterRequests(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)

	app := fiber.New()
	app.Use(requestid.New())
	app.Use(RequestLog(zap.New(core)))
	app.Get("/upload_cv", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Post("/zzzzzzzzz", func(c *fiber.Ctx) error { return c.SendString("ok") })

	_, err := app.Test(httptest.NewRequest("GET", "/upload_cv", nil))
	require.NoError(t, err)
	_, err = app.Test(httptest.NewRequest("POST", "/zzzzzzzzz", nil))
	require.NoError(t, err)

	entries := logs.All()
	require.Len(t, entries, 2)

	first := entries[0].ContextMap()
	assert.Equal(t, "GET", first["method"])
	assert.Equal(t, "/upload_cv", first["path"])
	assert.NotEqual(t, first["request_id"], entries[1].ContextMap()["request_id"])

	second := entries[1].ContextMap()
	assert.Equal(t, "POST", second["method"])
	assert.Equal(t, "/zzzzzzzzz", second["path"])
}
