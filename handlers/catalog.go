package handlers

import (
	"net/http"

	"hogarlink/services/catalog"
	"hogarlink/utils"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the read-only service catalog.
type CatalogHandler struct {
	Catalog catalog.CatalogService
}

func NewCatalogHandler(svc catalog.CatalogService) *CatalogHandler {
	return &CatalogHandler{Catalog: svc}
}

// ListServices returns every bookable service.
func (h *CatalogHandler) ListServices(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"services": h.Catalog.ListEntries()})
}

// GetService returns a single catalog entry.
func (h *CatalogHandler) GetService(c *gin.Context) {
	entry, ok := h.Catalog.GetEntry(c.Param("id"))
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "unknown service", "")
		return
	}
	c.JSON(http.StatusOK, entry)
}
