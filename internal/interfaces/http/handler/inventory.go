package handler

import (
	"github.com/gin-gonic/gin"
	inventoryapp "github.com/storekit/backend/internal/application/inventory"
)

// InventoryHandler handles warehouse catalog and stock record API endpoints
type InventoryHandler struct {
	BaseHandler
	inventoryService *inventoryapp.InventoryService
}

// NewInventoryHandler creates a new InventoryHandler
func NewInventoryHandler(inventoryService *inventoryapp.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService}
}

// CreateCatalog creates a warehouse catalog
// POST /api/v1/catalogs
func (h *InventoryHandler) CreateCatalog(c *gin.Context) {
	var req inventoryapp.CreateCatalogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	catalog, err := h.inventoryService.CreateCatalog(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, catalog)
}

// GetCatalog retrieves a warehouse catalog by ID
// GET /api/v1/catalogs/:id
func (h *InventoryHandler) GetCatalog(c *gin.Context) {
	catalogID, ok := parseUUIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid catalog ID")
		return
	}

	catalog, err := h.inventoryService.GetCatalog(c.Request.Context(), catalogID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, catalog)
}

// ListCatalogs retrieves all warehouse catalogs
// GET /api/v1/catalogs
func (h *InventoryHandler) ListCatalogs(c *gin.Context) {
	catalogs, err := h.inventoryService.ListCatalogs(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, catalogs)
}

// RenameCatalog renames a warehouse catalog
// PUT /api/v1/catalogs/:id
func (h *InventoryHandler) RenameCatalog(c *gin.Context) {
	catalogID, ok := parseUUIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid catalog ID")
		return
	}

	var req inventoryapp.RenameCatalogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	catalog, err := h.inventoryService.RenameCatalog(c.Request.Context(), catalogID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, catalog)
}

// DeleteCatalog deletes a warehouse catalog
// DELETE /api/v1/catalogs/:id
func (h *InventoryHandler) DeleteCatalog(c *gin.Context) {
	catalogID, ok := parseUUIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid catalog ID")
		return
	}

	if err := h.inventoryService.DeleteCatalog(c.Request.Context(), catalogID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// Associate creates or updates the stock record tying a variant to a catalog
// POST /api/v1/variants/:id/inventory
func (h *InventoryHandler) Associate(c *gin.Context) {
	variantID, ok := parseUUIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid variant ID")
		return
	}

	var req inventoryapp.AssociateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	record, err := h.inventoryService.Associate(c.Request.Context(), variantID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, record)
}

// Dissociate removes the stock record tying a variant to a catalog
// DELETE /api/v1/variants/:id/inventory/:catalogId
func (h *InventoryHandler) Dissociate(c *gin.Context) {
	variantID, ok := parseUUIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid variant ID")
		return
	}
	catalogID, ok := parseUUIDParam(c, "catalogId")
	if !ok {
		h.BadRequest(c, "Invalid catalog ID")
		return
	}

	if err := h.inventoryService.Dissociate(c.Request.Context(), variantID, catalogID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// StockRecords lists a variant's stock records across all catalogs
// GET /api/v1/variants/:id/inventory
func (h *InventoryHandler) StockRecords(c *gin.Context) {
	variantID, ok := parseUUIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid variant ID")
		return
	}

	records, err := h.inventoryService.StockRecords(c.Request.Context(), variantID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, records)
}
