package handler_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"kvtranslate/backend/internal/handler"
	"kvtranslate/backend/internal/service"
)

type aiServiceStub struct {
	testErr  error
	clearErr error
}

func (s *aiServiceStub) Status() service.AIStatus {
	return service.AIStatus{Provider: "anthropic", Model: "claude", Configured: true}
}

func (s *aiServiceStub) Test(context.Context) (string, error) {
	if s.testErr != nil {
		return "", s.testErr
	}
	return "Hello world", nil
}

func (s *aiServiceStub) ClearCache(context.Context) (int64, error) {
	return 3, s.clearErr
}

func TestAIHandler(t *testing.T) {
	stub := &aiServiceStub{}
	e := echo.New()
	handler.NewAIHandler(stub).RegisterRoutes(e.Group("/api"))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/ai/status", nil))
	require.JSONEq(t, `{"provider":"anthropic","model":"claude","configured":true}`, rec.Body.String())

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/ai/test", nil))
	require.JSONEq(t, `{"success":true,"message":"Hello world"}`, rec.Body.String())

	stub.testErr = errors.New("invalid api key")
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/ai/test", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"success":false,"error":"invalid api key"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/ai/cache", nil))
	require.JSONEq(t, `{"deleted":3}`, rec.Body.String())

	stub.clearErr = errors.New("locked")
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/ai/cache", nil))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
}
