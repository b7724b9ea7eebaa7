package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"kvtranslate/backend/internal/service"
)

type AIHandler struct {
	service service.AIService
}

type aiTestResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

type clearCacheResponse struct {
	Deleted int64 `json:"deleted"`
}

func NewAIHandler(service service.AIService) *AIHandler {
	return &AIHandler{service: service}
}

func (h *AIHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/ai/status", h.Status)
	g.POST("/ai/test", h.Test)
	g.DELETE("/ai/cache", h.ClearCache)
}

// Status returns the translation backend configuration.
// @Summary Translation backend status
// @Tags ai
// @Produce json
// @Success 200 {object} service.AIStatus
// @Router /ai/status [get]
func (h *AIHandler) Status(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.Status())
}

// Test checks the translation backend with a short message.
// @Summary Test translation backend
// @Tags ai
// @Produce json
// @Success 200 {object} aiTestResponse
// @Router /ai/test [post]
func (h *AIHandler) Test(c echo.Context) error {
	reply, err := h.service.Test(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusOK, aiTestResponse{Success: false, Error: err.Error()})
	}
	return c.JSON(http.StatusOK, aiTestResponse{Success: true, Message: reply})
}

// ClearCache deletes every cached translation.
// @Summary Clear translation cache
// @Tags ai
// @Produce json
// @Success 200 {object} clearCacheResponse
// @Router /ai/cache [delete]
func (h *AIHandler) ClearCache(c echo.Context) error {
	deleted, err := h.service.ClearCache(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, clearCacheResponse{Deleted: deleted})
}
