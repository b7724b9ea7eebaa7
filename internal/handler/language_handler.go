package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"kvtranslate/backend/internal/service/ai"
	"kvtranslate/backend/internal/service/langdetect"
)

type LanguageHandler struct {
	languages langdetect.LanguageMap
}

type languageResponse struct {
	Code string `json:"code"`
	Tag  string `json:"tag"`
	Name string `json:"name"`
}

func NewLanguageHandler(languages langdetect.LanguageMap) *LanguageHandler {
	return &LanguageHandler{languages: languages}
}

func (h *LanguageHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/languages", h.List)
}

// List returns the source languages that can be translated.
// @Summary List supported languages
// @Tags languages
// @Produce json
// @Success 200 {array} languageResponse
// @Router /languages [get]
func (h *LanguageHandler) List(c echo.Context) error {
	codes := h.languages.Codes()
	response := make([]languageResponse, 0, len(codes))
	for _, code := range codes {
		tag, _ := h.languages.Lookup(code)
		response = append(response, languageResponse{Code: code, Tag: tag, Name: ai.LanguageName(tag)})
	}
	return c.JSON(http.StatusOK, response)
}
