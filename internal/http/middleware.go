package http

import (
	"time"

	"github.com/labstack/echo/v4"

	"kvtranslate/backend/internal/logger"
)

// RequestLoggerMiddleware logs every request once it has been handled.
// Server errors log at error, client errors at warn, the rest at debug.
func RequestLoggerMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			if err := next(c); err != nil {
				c.Error(err)
			}

			req := c.Request()
			status := c.Response().Status
			result, log := "ok", logger.Debug
			switch {
			case status >= 500:
				result, log = "failed", logger.Error
			case status >= 400:
				result, log = "failed", logger.Warn
			}

			log("http request",
				"module", "http",
				"action", "request",
				"resource", "http",
				"result", result,
				"method", req.Method,
				"path", req.URL.Path,
				"status_code", status,
				"bytes_out", c.Response().Size,
				"duration_ms", time.Since(start).Milliseconds(),
				"remote_ip", c.RealIP(),
				"user_agent", req.UserAgent(),
			)
			return nil
		}
	}
}
