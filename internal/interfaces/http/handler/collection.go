package handler

import (
	"github.com/gin-gonic/gin"
	collectionapp "github.com/storekit/backend/internal/application/collection"
)

// CollectionHandler handles entity collection API endpoints
type CollectionHandler struct {
	BaseHandler
	membershipService *collectionapp.MembershipService
}

// NewCollectionHandler creates a new CollectionHandler
func NewCollectionHandler(membershipService *collectionapp.MembershipService) *CollectionHandler {
	return &CollectionHandler{membershipService: membershipService}
}

// Create creates a new entity collection
// POST /api/v1/collections
func (h *CollectionHandler) Create(c *gin.Context) {
	var req collectionapp.CreateCollectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	coll, err := h.membershipService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, coll)
}

// Get retrieves a collection by ID
// GET /api/v1/collections/:id
func (h *CollectionHandler) Get(c *gin.Context) {
	collectionID, ok := parseUUIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid collection ID")
		return
	}

	coll, err := h.membershipService.Get(c.Request.Context(), collectionID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, coll)
}

// List retrieves all collections
// GET /api/v1/collections
func (h *CollectionHandler) List(c *gin.Context) {
	collections, err := h.membershipService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, collections)
}

// Delete deletes a collection and its memberships
// DELETE /api/v1/collections/:id
func (h *CollectionHandler) Delete(c *gin.Context) {
	collectionID, ok := parseUUIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid collection ID")
		return
	}

	if err := h.membershipService.Delete(c.Request.Context(), collectionID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// AddProduct makes the product a member of the collection. Membership
// mutation is best-effort; a collection whose provider cannot be resolved
// accepts the call without effect.
// PUT /api/v1/collections/:id/products/:productId
func (h *CollectionHandler) AddProduct(c *gin.Context) {
	collectionID, ok := parseUUIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid collection ID")
		return
	}
	productID, ok := parseUUIDParam(c, "productId")
	if !ok {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	if err := h.membershipService.AddProduct(c.Request.Context(), collectionID, productID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// RemoveProduct dissolves the product's membership in the collection
// DELETE /api/v1/collections/:id/products/:productId
func (h *CollectionHandler) RemoveProduct(c *gin.Context) {
	collectionID, ok := parseUUIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid collection ID")
		return
	}
	productID, ok := parseUUIDParam(c, "productId")
	if !ok {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	if err := h.membershipService.RemoveProduct(c.Request.Context(), collectionID, productID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// CollectionsContaining lists the collections a product belongs to
// GET /api/v1/products/:id/collections
func (h *CollectionHandler) CollectionsContaining(c *gin.Context) {
	productID, ok := parseUUIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	collections, err := h.membershipService.CollectionsContaining(c.Request.Context(), productID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, collections)
}
