package router

import (
	"github.com/gin-gonic/gin"
	"github.com/storekit/backend/internal/interfaces/http/handler"
)

// Handlers aggregates the handlers the router wires into the API surface
type Handlers struct {
	Product    *handler.ProductHandler
	Variant    *handler.VariantHandler
	Inventory  *handler.InventoryHandler
	Collection *handler.CollectionHandler
	Shipping   *handler.ShippingHandler
	System     *handler.SystemHandler
}

// Setup registers all API routes under /api/v1
func Setup(engine *gin.Engine, h Handlers) {
	// Root-level probe for load balancers and container healthchecks
	engine.GET("/healthz", h.System.Health)

	api := engine.Group("/api/v1")

	system := api.Group("/system")
	{
		system.GET("/info", h.System.GetSystemInfo)
		system.GET("/health", h.System.Health)
	}

	products := api.Group("/products")
	{
		products.POST("", h.Product.Create)
		products.GET("", h.Product.List)
		products.GET("/sku/:sku", h.Product.GetBySKU)
		products.GET("/:id", h.Product.GetByID)
		products.PUT("/:id", h.Product.Update)
		products.DELETE("/:id", h.Product.Delete)
		products.POST("/:id/options", h.Product.AddOption)
		products.POST("/:id/options/:optionId/choices", h.Product.AddChoice)

		products.GET("/:id/combinations", h.Variant.Combinations)
		products.POST("/:id/variants", h.Variant.CreateVariant)
		products.POST("/:id/variants/match", h.Variant.FindVariant)
		products.GET("/:id/variants/purchase", h.Variant.VariantForPurchase)

		products.GET("/:id/collections", h.Collection.CollectionsContaining)
	}

	variants := api.Group("/variants")
	{
		variants.GET("/:id/inventory", h.Inventory.StockRecords)
		variants.POST("/:id/inventory", h.Inventory.Associate)
		variants.DELETE("/:id/inventory/:catalogId", h.Inventory.Dissociate)
	}

	catalogs := api.Group("/catalogs")
	{
		catalogs.POST("", h.Inventory.CreateCatalog)
		catalogs.GET("", h.Inventory.ListCatalogs)
		catalogs.GET("/:id", h.Inventory.GetCatalog)
		catalogs.PUT("/:id", h.Inventory.RenameCatalog)
		catalogs.DELETE("/:id", h.Inventory.DeleteCatalog)
	}

	collections := api.Group("/collections")
	{
		collections.POST("", h.Collection.Create)
		collections.GET("", h.Collection.List)
		collections.GET("/:id", h.Collection.Get)
		collections.DELETE("/:id", h.Collection.Delete)
		collections.PUT("/:id/products/:productId", h.Collection.AddProduct)
		collections.DELETE("/:id/products/:productId", h.Collection.RemoveProduct)
	}

	shipCountries := api.Group("/ship-countries")
	{
		shipCountries.POST("", h.Shipping.CreateShipCountry)
		shipCountries.GET("", h.Shipping.ListShipCountries)
		shipCountries.GET("/:id", h.Shipping.GetShipCountry)
		shipCountries.POST("/:id/providers", h.Shipping.ConfigureProvider)
		shipCountries.GET("/:id/providers", h.Shipping.ListProviders)
		shipCountries.GET("/:id/methods", h.Shipping.ListMethods)
		shipCountries.POST("/:id/methods", h.Shipping.CreateMethod)
	}

	shipMethods := api.Group("/ship-methods")
	{
		shipMethods.PUT("/:id", h.Shipping.UpdateMethod)
		shipMethods.DELETE("/:id", h.Shipping.DeleteMethod)
	}
}
