package collection

import (
	"time"

	"github.com/google/uuid"
	"github.com/storekit/backend/internal/domain/collection"
)

// CreateCollectionRequest represents a request to create an entity collection
type CreateCollectionRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	EntityType  string `json:"entity_type" binding:"required,min=1,max=50"`
	ProviderKey string `json:"provider_key" binding:"required,min=1,max=100"`
}

// CollectionResponse represents a collection in API responses
type CollectionResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	EntityType  string    `json:"entity_type"`
	ProviderKey string    `json:"provider_key"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToCollectionResponse converts a domain EntityCollection to CollectionResponse
func ToCollectionResponse(c *collection.EntityCollection) CollectionResponse {
	return CollectionResponse{
		ID:          c.ID,
		Name:        c.Name,
		EntityType:  c.EntityType,
		ProviderKey: c.ProviderKey,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
