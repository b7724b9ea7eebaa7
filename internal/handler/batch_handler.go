package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"kvtranslate/backend/internal/service"
)

type BatchHandler struct {
	service service.HistoryService
}

func NewBatchHandler(service service.HistoryService) *BatchHandler {
	return &BatchHandler{service: service}
}

func (h *BatchHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/batches", h.List)
	g.GET("/batches/:id", h.Get)
}

// List returns recent upload batches, newest first.
// @Summary List upload history
// @Tags batches
// @Produce json
// @Param limit query int false "Maximum number of batches"
// @Success 200 {array} model.BatchSummary
// @Failure 400 {object} errorResponse
// @Router /batches [get]
func (h *BatchHandler) List(c echo.Context) error {
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid limit"})
		}
		limit = n
	}
	batches, err := h.service.List(c.Request().Context(), limit)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, batches)
}

// Get returns one batch with its documents.
// @Summary Get an upload batch
// @Tags batches
// @Produce json
// @Param id path string true "Batch ID"
// @Success 200 {object} model.BatchDetail
// @Failure 404 {object} errorResponse
// @Router /batches/{id} [get]
func (h *BatchHandler) Get(c echo.Context) error {
	detail, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, detail)
}
