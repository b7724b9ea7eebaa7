package http

import (
	nethttp "net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"kvtranslate/backend/internal/logger"
)

// backendPrefixes are never answered with the frontend's index.html.
var backendPrefixes = []string{"/api", "/upload", "/download"}

func isBackendPath(p string) bool {
	for _, prefix := range backendPrefixes {
		if p == prefix || strings.HasPrefix(p, prefix+"/") || strings.HasPrefix(p, prefix+"-") {
			return true
		}
	}
	return false
}

// registerStatic serves a built single-page frontend from dir, if one exists.
func registerStatic(e *echo.Echo, dir string) {
	if dir == "" {
		return
	}
	indexPath := filepath.Join(dir, "index.html")
	info, err := os.Stat(indexPath)
	if err != nil || info.IsDir() {
		logger.Warn("static index missing", "module", "http", "action", "request", "resource", "static", "result", "failed", "path", indexPath)
		return
	}

	e.Use(middleware.StaticWithConfig(middleware.StaticConfig{
		Root:       ".",
		Filesystem: nethttp.Dir(dir),
		Index:      "index.html",
		HTML5:      true,
		Skipper: func(c echo.Context) bool {
			return isBackendPath(c.Request().URL.Path)
		},
	}))
	logger.Info("static assets enabled", "module", "http", "action", "request", "resource", "static", "result", "ok", "dir", dir)
}
