package handler

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"path/filepath"

	"github.com/labstack/echo/v4"

	"kvtranslate/backend/internal/model"
	"kvtranslate/backend/internal/service"
)

// UploadField is the multipart field carrying the PDFs.
const UploadField = "files[]"

type DocumentHandler struct {
	documents service.DocumentService
	storage   service.StorageService
}

func NewDocumentHandler(documents service.DocumentService, storage service.StorageService) *DocumentHandler {
	return &DocumentHandler{documents: documents, storage: storage}
}

func (h *DocumentHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/upload", h.Upload)
	g.GET("/download/:filename", h.Download)
	g.GET("/download-all", h.DownloadAll)
}

// Upload translates a batch of PDFs.
// @Summary Upload PDFs
// @Description Extract key/value pairs from each PDF, translate them to English and write reports
// @Tags documents
// @Accept multipart/form-data
// @Produce json
// @Param files[] formData file true "PDF documents"
// @Success 200 {array} model.DocumentResult
// @Failure 400 {object} errorResponse
// @Router /upload [post]
func (h *DocumentHandler) Upload(c echo.Context) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "No files uploaded"})
	}
	headers := form.File[UploadField]
	if len(headers) == 0 {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "No files uploaded"})
	}

	dir, err := h.storage.NewUploadDir()
	if err != nil {
		return writeServiceError(c, err)
	}
	files := make([]service.UploadedFile, 0, len(headers))
	for _, fh := range headers {
		file, err := h.save(dir, fh)
		if err != nil {
			return writeServiceError(c, err)
		}
		files = append(files, file)
	}

	batch, err := h.documents.ProcessBatch(c.Request().Context(), files)
	if err != nil {
		return writeServiceError(c, err)
	}

	c.Response().Header().Set("X-Batch-ID", batch.ID)
	documents := batch.Documents
	if documents == nil {
		documents = []model.DocumentResult{}
	}
	return c.JSON(http.StatusOK, documents)
}

func (h *DocumentHandler) save(dir string, fh *multipart.FileHeader) (service.UploadedFile, error) {
	src, err := fh.Open()
	if err != nil {
		return service.UploadedFile{}, fmt.Errorf("open upload %q: %w", fh.Filename, err)
	}
	defer src.Close()
	return h.storage.SaveUpload(dir, fh.Filename, src)
}

// Download serves one generated report.
// @Summary Download a report
// @Tags documents
// @Produce application/octet-stream
// @Param filename path string true "Report file name"
// @Success 200 {file} file
// @Failure 404 {object} errorResponse
// @Router /download/{filename} [get]
func (h *DocumentHandler) Download(c echo.Context) error {
	path, err := h.storage.ResolveDownload(c.Param("filename"))
	if err != nil {
		return c.JSON(http.StatusNotFound, errorResponse{Error: "File not found"})
	}
	return c.Attachment(path, filepath.Base(path))
}

// DownloadAll serves every report as one zip archive.
// @Summary Download all reports
// @Tags documents
// @Produce application/zip
// @Success 200 {file} file
// @Router /download-all [get]
func (h *DocumentHandler) DownloadAll(c echo.Context) error {
	path, err := h.storage.BuildArchive(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.Attachment(path, service.ArchiveDownloadName)
}
