package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/memovasquez/hydrant/internal/service"
	"github.com/memovasquez/hydrant/pkg/response"
)

// ExportHandler exposes schedule download endpoints.
type ExportHandler struct {
	exports *service.ExportService
}

// NewExportHandler constructs ExportHandler.
func NewExportHandler(exports *service.ExportService) *ExportHandler {
	return &ExportHandler{exports: exports}
}

// PDF godoc
// @Summary Download the weekly schedule as PDF
// @Tags Export
// @Produce application/pdf
// @Security BearerAuth
// @Success 200 {file} binary
// @Router /session/export/pdf [get]
func (h *ExportHandler) PDF(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	payload, err := h.exports.RenderPDF(id)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="schedule.pdf"`)
	c.Data(http.StatusOK, "application/pdf", payload)
}

// CSV godoc
// @Summary Download the schedule event list as CSV
// @Tags Export
// @Produce text/csv
// @Security BearerAuth
// @Success 200 {file} binary
// @Router /session/export/csv [get]
func (h *ExportHandler) CSV(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	payload, err := h.exports.RenderCSV(id)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="schedule.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", payload)
}
