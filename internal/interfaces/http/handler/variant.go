package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	catalogapp "github.com/storekit/backend/internal/application/catalog"
)

// VariantHandler handles variant composition API endpoints
type VariantHandler struct {
	BaseHandler
	variantService *catalogapp.VariantService
}

// NewVariantHandler creates a new VariantHandler
func NewVariantHandler(variantService *catalogapp.VariantService) *VariantHandler {
	return &VariantHandler{variantService: variantService}
}

// Combinations enumerates the product's attribute combination space, up to
// an optional ?limit= bound
// GET /api/v1/products/:id/combinations
func (h *VariantHandler) Combinations(c *gin.Context) {
	productID, ok := parseUUIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			h.BadRequest(c, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	combinations, err := h.variantService.Combinations(c.Request.Context(), productID, limit)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, combinations)
}

// FindVariant matches an attribute selection against stored variants
// POST /api/v1/products/:id/variants/match
func (h *VariantHandler) FindVariant(c *gin.Context) {
	productID, ok := parseUUIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	var req catalogapp.FindVariantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	variant, err := h.variantService.FindVariant(c.Request.Context(), productID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, variant)
}

// VariantForPurchase resolves a bare-product purchase to the master variant
// GET /api/v1/products/:id/variants/purchase
func (h *VariantHandler) VariantForPurchase(c *gin.Context) {
	productID, ok := parseUUIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	variant, err := h.variantService.VariantForPurchase(c.Request.Context(), productID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, variant)
}

// CreateVariant realizes one attribute combination as a stored variant
// POST /api/v1/products/:id/variants
func (h *VariantHandler) CreateVariant(c *gin.Context) {
	productID, ok := parseUUIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	var req catalogapp.CreateVariantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	variant, err := h.variantService.CreateVariant(c.Request.Context(), productID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, variant)
}
