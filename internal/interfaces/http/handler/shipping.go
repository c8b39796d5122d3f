package handler

import (
	"github.com/gin-gonic/gin"
	shippingapp "github.com/storekit/backend/internal/application/shipping"
)

// ShippingHandler handles ship country and rate-table method API endpoints
type ShippingHandler struct {
	BaseHandler
	shipMethodService *shippingapp.ShipMethodService
}

// NewShippingHandler creates a new ShippingHandler
func NewShippingHandler(shipMethodService *shippingapp.ShipMethodService) *ShippingHandler {
	return &ShippingHandler{shipMethodService: shipMethodService}
}

// CreateShipCountry registers a destination country
// POST /api/v1/ship-countries
func (h *ShippingHandler) CreateShipCountry(c *gin.Context) {
	var req shippingapp.CreateShipCountryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	country, err := h.shipMethodService.CreateShipCountry(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, country)
}

// GetShipCountry retrieves a ship country by ID
// GET /api/v1/ship-countries/:id
func (h *ShippingHandler) GetShipCountry(c *gin.Context) {
	countryID, ok := parseUUIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid ship country ID")
		return
	}

	country, err := h.shipMethodService.GetShipCountry(c.Request.Context(), countryID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, country)
}

// ListShipCountries retrieves all ship countries
// GET /api/v1/ship-countries
func (h *ShippingHandler) ListShipCountries(c *gin.Context) {
	countries, err := h.shipMethodService.ListShipCountries(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, countries)
}

// ConfigureProvider configures a gateway provider for a ship country
// POST /api/v1/ship-countries/:id/providers
func (h *ShippingHandler) ConfigureProvider(c *gin.Context) {
	countryID, ok := parseUUIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid ship country ID")
		return
	}

	var req shippingapp.ConfigureProviderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	country, err := h.shipMethodService.ConfigureProvider(c.Request.Context(), countryID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, country)
}

// ListProviders lists the country's rate-table gateway providers
// GET /api/v1/ship-countries/:id/providers
func (h *ShippingHandler) ListProviders(c *gin.Context) {
	countryID, ok := parseUUIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid ship country ID")
		return
	}

	providers, err := h.shipMethodService.ListProvidersForCountry(c.Request.Context(), countryID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, providers)
}

// ListMethods lists the rate-table methods available for a ship country
// GET /api/v1/ship-countries/:id/methods
func (h *ShippingHandler) ListMethods(c *gin.Context) {
	countryID, ok := parseUUIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid ship country ID")
		return
	}

	methods, err := h.shipMethodService.ListMethodsForCountry(c.Request.Context(), countryID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, methods)
}

// CreateMethod asks the country's rate-table provider to construct a method
// POST /api/v1/ship-countries/:id/methods
func (h *ShippingHandler) CreateMethod(c *gin.Context) {
	countryID, ok := parseUUIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid ship country ID")
		return
	}

	var req shippingapp.CreateMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	method, err := h.shipMethodService.CreateMethod(c.Request.Context(), countryID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, method)
}

// UpdateMethod replaces a method's rate table and optionally its name
// PUT /api/v1/ship-methods/:id
func (h *ShippingHandler) UpdateMethod(c *gin.Context) {
	methodID, ok := parseUUIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid method ID")
		return
	}

	var req shippingapp.UpdateMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	method, err := h.shipMethodService.UpdateMethod(c.Request.Context(), methodID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, method)
}

// DeleteMethod removes a method from its owning provider
// DELETE /api/v1/ship-methods/:id
func (h *ShippingHandler) DeleteMethod(c *gin.Context) {
	methodID, ok := parseUUIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid method ID")
		return
	}

	if err := h.shipMethodService.DeleteMethod(c.Request.Context(), methodID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
