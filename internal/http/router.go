package http

import (
	"fmt"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"kvtranslate/backend/internal/handler"
)

type RouterConfig struct {
	MaxUploadBytes int64
	StaticDir      string
}

func NewRouter(
	documentHandler *handler.DocumentHandler,
	batchHandler *handler.BatchHandler,
	languageHandler *handler.LanguageHandler,
	healthHandler *handler.HealthHandler,
	aiHandler *handler.AIHandler,
	cfg RouterConfig,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(RequestLoggerMiddleware())
	e.Use(middleware.CORS())
	if cfg.MaxUploadBytes > 0 {
		e.Use(middleware.BodyLimit(fmt.Sprintf("%dK", max(cfg.MaxUploadBytes>>10, 1))))
	}

	api := e.Group("/api")
	documentHandler.RegisterRoutes(api)
	batchHandler.RegisterRoutes(api)
	languageHandler.RegisterRoutes(api)
	healthHandler.RegisterRoutes(api)
	aiHandler.RegisterRoutes(api)

	// unprefixed upload and download routes for existing clients
	documentHandler.RegisterRoutes(e.Group(""))

	registerStatic(e, cfg.StaticDir)

	return e
}
