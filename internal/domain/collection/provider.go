package collection

import (
	"context"

	"github.com/google/uuid"
	"github.com/storekit/backend/internal/domain/shared/provider"
)

// Provider manages membership for the collections registered under its key.
// Supports gates which entity families the provider will accept.
type Provider interface {
	provider.Provider
	provider.EntitySupport

	// Add makes the entity a member of the collection
	Add(ctx context.Context, collectionID, entityID uuid.UUID) error

	// Remove dissolves the entity's membership in the collection
	Remove(ctx context.Context, collectionID, entityID uuid.UUID) error
}
