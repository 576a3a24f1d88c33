package middleware

import (
	"Cocktail-Catalog/domain"
	"Cocktail-Catalog/internal/api/presenters"
	"errors"
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

type (
	Middleware interface {
		CORSMiddleware() fiber.Handler
		SecurityHeaders() fiber.Handler
	}

	middleware struct {
		allowOrigins string
	}
)

// NewMiddleware allows cross-origin API calls from any origin.
func NewMiddleware() Middleware {
	return &middleware{allowOrigins: "*"}
}

func (m *middleware) CORSMiddleware() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins: m.allowOrigins,
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	})
}

func (m *middleware) SecurityHeaders() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		c.Set("Referrer-Policy", "strict-origin-when-cross-origin")

		// Uploaded images may be linked from anywhere; everything else is same-origin.
		if !strings.HasPrefix(c.Path(), "/api") {
			c.Set("Content-Security-Policy",
				"default-src 'self'; "+
					"img-src 'self' data: https: http:; "+
					"style-src 'self'; "+
					"script-src 'none'; "+
					"form-action 'self'")
		}
		return c.Next()
	}
}

// ErrorHandler turns errors that escape a handler into the JSON error body.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := domain.MessageFailedProcessRequest

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
		message = e.Message
	}
	// Bodies over the server limit never reach the upload handler.
	if code == fiber.StatusRequestEntityTooLarge && strings.TrimSuffix(c.Path(), "/") == "/api/upload" {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadImage, domain.ErrFileTooLarge)
	}
	if code >= fiber.StatusInternalServerError {
		slog.Error("request failed",
			slog.String("method", c.Method()),
			slog.String("path", c.Path()),
			slog.Any("request_id", c.Locals(requestid.ConfigDefault.ContextKey)),
			slog.String("error", err.Error()))
	}

	return presenters.ErrorResponse(c, code, message, err)
}
