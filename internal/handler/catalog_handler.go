package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/memovasquez/hydrant/internal/models"
	"github.com/memovasquez/hydrant/internal/service"
	"github.com/memovasquez/hydrant/pkg/response"
)

// CatalogHandler exposes catalog browse endpoints.
type CatalogHandler struct {
	catalog *service.CatalogService
}

// NewCatalogHandler constructs CatalogHandler.
func NewCatalogHandler(catalog *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// List godoc
// @Summary List catalog classes
// @Tags Catalog
// @Produce json
// @Param search query string false "Search by number or name"
// @Param course query string false "Filter by course prefix"
// @Param term query string false "Filter by term code"
// @Param level query string false "Filter by level (U or G)"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Envelope
// @Router /classes [get]
func (h *CatalogHandler) List(c *gin.Context) {
	var filter models.CatalogFilter
	filter.Search = strings.TrimSpace(c.Query("search"))
	filter.Course = c.Query("course")
	filter.Term = c.Query("term")
	filter.Level = c.Query("level")
	if page, err := strconv.Atoi(c.DefaultQuery("page", "1")); err == nil {
		filter.Page = page
	}
	if size, err := strconv.Atoi(c.DefaultQuery("limit", "20")); err == nil {
		filter.PageSize = size
	}
	filter.SortBy = c.Query("sort")
	filter.SortOrder = c.Query("order")

	summaries, pagination, err := h.catalog.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, summaries, pagination)
}

// Get godoc
// @Summary Get class detail
// @Tags Catalog
// @Produce json
// @Param number path string true "Class number"
// @Success 200 {object} response.Envelope
// @Router /classes/{number} [get]
func (h *CatalogHandler) Get(c *gin.Context) {
	detail, err := h.catalog.Get(c.Request.Context(), c.Param("number"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, detail, nil)
}
