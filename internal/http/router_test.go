package http_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"kvtranslate/backend/internal/handler"
	transport "kvtranslate/backend/internal/http"
	"kvtranslate/backend/internal/logger"
	"kvtranslate/backend/internal/service"
	"kvtranslate/backend/internal/service/langdetect"
)

func newRouter(t *testing.T, cfg transport.RouterConfig) (http.Handler, service.Paths) {
	root := t.TempDir()
	paths := service.Paths{
		Uploads:      filepath.Join(root, "uploads"),
		Reports:      filepath.Join(root, "translations", "pdfs"),
		Translations: filepath.Join(root, "translations"),
	}
	storage := service.NewStorageService(paths)
	e := transport.NewRouter(
		handler.NewDocumentHandler(nil, storage),
		handler.NewBatchHandler(nil),
		handler.NewLanguageHandler(langdetect.DefaultLanguages()),
		handler.NewHealthHandler("test"),
		handler.NewAIHandler(nil),
		cfg,
	)
	return e, paths
}

func TestRouter_LegacyAndAPIRoutes(t *testing.T) {
	router, paths := newRouter(t, transport.RouterConfig{})
	require.NoError(t, os.MkdirAll(paths.Reports, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(paths.Reports, "a_translated.xlsx"), []byte("a"), 0o644))

	for _, p := range []string{"/api/download/a_translated.xlsx", "/download/a_translated.xlsx"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, p, nil))
		require.Equal(t, http.StatusOK, rec.Code, p)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_CORS(t *testing.T) {
	router, _ := newRouter(t, transport.RouterConfig{})

	req := httptest.NewRequest(http.MethodOptions, "/upload", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_BodyLimit(t *testing.T) {
	router, _ := newRouter(t, transport.RouterConfig{MaxUploadBytes: 1024})

	req := httptest.NewRequest(http.MethodPost, "/api/upload", bytes.NewReader(make([]byte, 4096)))
	req.Header.Set("Content-Type", "multipart/form-data; boundary=x")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestRouter_StaticFrontend(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>app</html>"), 0o644))

	router, _ := newRouter(t, transport.RouterConfig{StaticDir: dir})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/history/123", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "app")

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/download/missing.xlsx", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.JSONEq(t, `{"error":"File not found"}`, rec.Body.String())
}

func TestRequestLoggerMiddleware_LevelByStatus(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(logger.New(&buf, slog.LevelDebug, "text"))
	t.Cleanup(func() { slog.SetDefault(prev) })

	router, _ := newRouter(t, transport.RouterConfig{})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/download/missing.xlsx", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)

	line := strings.TrimSpace(buf.String())
	require.Contains(t, line, "level=warn")
	require.Contains(t, line, "status_code=404")
	require.Contains(t, line, "path=/api/download/missing.xlsx")
}
