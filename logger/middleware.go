package logger

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// RequestIDKey is the ctx.Locals key under which the request ID is stored.
const RequestIDKey = "req_id"

// Middleware assigns every request an ID and logs method, path, status and
// duration once the handler chain returns. Handler errors are logged here
// and passed on to the central error handler untouched.
func Middleware(log *Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqID := c.Get("X-Request-ID")
		if reqID == "" {
			reqID = uuid.New().String()
		}
		c.Locals(RequestIDKey, reqID)

		start := time.Now()
		err := c.Next()

		entry := log.WithFields(logrus.Fields{
			RequestIDKey:  reqID,
			"method":      c.Method(),
			"path":        c.Path(),
			"remote_ip":   c.IP(),
			"duration_ms": time.Since(start).Milliseconds(),
		})
		if err != nil {
			entry.WithField("error", err.Error()).Warn("request failed")
		} else {
			entry.WithField("status", c.Response().StatusCode()).Info("request completed")
		}
		return err
	}
}

// RequestID returns the request ID assigned by Middleware, if any.
func RequestID(c *fiber.Ctx) string {
	if id, ok := c.Locals(RequestIDKey).(string); ok {
		return id
	}
	return ""
}
