package collection

import (
	"context"

	"github.com/google/uuid"
	"github.com/storekit/backend/internal/domain/collection"
	"github.com/storekit/backend/internal/domain/shared"
	"github.com/storekit/backend/internal/domain/shared/provider"
	"go.uber.org/zap"
)

// ProviderResolver resolves capability providers by key. Satisfied by the
// infrastructure provider registry.
type ProviderResolver interface {
	ResolveByKey(key string) (provider.Provider, error)
}

// MembershipService manages product membership in entity collections.
// Membership mutation is best-effort by design: when the service has no
// resolution context, or the collection's provider cannot be resolved, the
// call is a silent no-op rather than an error. Callers in checkout or
// import paths must never fail because collection bookkeeping could not run.
type MembershipService struct {
	registry    ProviderResolver
	collections collection.Repository
	logger      *zap.Logger
}

// NewMembershipService creates a new MembershipService. Either dependency
// may be nil, in which case mutation calls degrade to no-ops.
func NewMembershipService(registry ProviderResolver, collections collection.Repository, logger *zap.Logger) *MembershipService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MembershipService{
		registry:    registry,
		collections: collections,
		logger:      logger,
	}
}

// Create creates a new entity collection
func (s *MembershipService) Create(ctx context.Context, req CreateCollectionRequest) (*CollectionResponse, error) {
	if s.collections == nil {
		return nil, shared.NewDomainError("INVALID_STATE", "Collection storage is not configured")
	}

	entityCollection, err := collection.NewEntityCollection(req.Name, req.EntityType, req.ProviderKey)
	if err != nil {
		return nil, err
	}
	if err := s.collections.Save(ctx, entityCollection); err != nil {
		return nil, err
	}

	response := ToCollectionResponse(entityCollection)
	return &response, nil
}

// Get retrieves a collection by ID
func (s *MembershipService) Get(ctx context.Context, collectionID uuid.UUID) (*CollectionResponse, error) {
	if s.collections == nil {
		return nil, shared.ErrNotFound
	}

	entityCollection, err := s.collections.FindByID(ctx, collectionID)
	if err != nil {
		return nil, err
	}

	response := ToCollectionResponse(entityCollection)
	return &response, nil
}

// List retrieves all collections
func (s *MembershipService) List(ctx context.Context) ([]CollectionResponse, error) {
	if s.collections == nil {
		return []CollectionResponse{}, nil
	}

	found, err := s.collections.FindAll(ctx, shared.DefaultFilter())
	if err != nil {
		return nil, err
	}

	responses := make([]CollectionResponse, len(found))
	for i := range found {
		responses[i] = ToCollectionResponse(&found[i])
	}
	return responses, nil
}

// Delete deletes a collection and its memberships
func (s *MembershipService) Delete(ctx context.Context, collectionID uuid.UUID) error {
	if s.collections == nil {
		return shared.ErrNotFound
	}
	if _, err := s.collections.FindByID(ctx, collectionID); err != nil {
		return err
	}
	return s.collections.Delete(ctx, collectionID)
}

// AddProduct makes the product a member of the collection through the
// collection's provider. Resolution failures are silent no-ops; a provider
// that does not manage products refuses the call without error.
func (s *MembershipService) AddProduct(ctx context.Context, collectionID, productID uuid.UUID) error {
	managed := s.resolveProductProvider(ctx, collectionID)
	if managed == nil {
		return nil
	}
	return managed.Add(ctx, collectionID, productID)
}

// RemoveProduct dissolves the product's membership in the collection.
// Failure semantics mirror AddProduct.
func (s *MembershipService) RemoveProduct(ctx context.Context, collectionID, productID uuid.UUID) error {
	managed := s.resolveProductProvider(ctx, collectionID)
	if managed == nil {
		return nil
	}
	return managed.Remove(ctx, collectionID, productID)
}

// CollectionsContaining returns the collections the product belongs to.
// Without storage context the result is empty, never an error.
func (s *MembershipService) CollectionsContaining(ctx context.Context, productID uuid.UUID) ([]CollectionResponse, error) {
	if s.collections == nil {
		return []CollectionResponse{}, nil
	}

	found, err := s.collections.FindByEntityKey(ctx, productID)
	if err != nil {
		return nil, err
	}

	responses := make([]CollectionResponse, len(found))
	for i := range found {
		responses[i] = ToCollectionResponse(&found[i])
	}
	return responses, nil
}

// resolveProductProvider resolves the collection's provider and checks it
// manages products. Returns nil whenever membership must not be touched.
func (s *MembershipService) resolveProductProvider(ctx context.Context, collectionID uuid.UUID) collection.Provider {
	if s.registry == nil || s.collections == nil {
		s.logger.Debug("membership mutation skipped: no resolution context",
			zap.String("collection_id", collectionID.String()))
		return nil
	}

	key, err := s.collections.FindProviderKey(ctx, collectionID)
	if err != nil {
		s.logger.Debug("membership mutation skipped: provider key lookup failed",
			zap.String("collection_id", collectionID.String()),
			zap.Error(err))
		return nil
	}

	resolved, err := s.registry.ResolveByKey(key)
	if err != nil {
		s.logger.Debug("membership mutation skipped: provider resolution failed",
			zap.String("collection_id", collectionID.String()),
			zap.String("provider_key", key),
			zap.Error(err))
		return nil
	}

	managed, ok := resolved.(collection.Provider)
	if !ok {
		s.logger.Warn("membership refused: provider has no collection capability",
			zap.String("collection_id", collectionID.String()),
			zap.String("provider_key", key))
		return nil
	}
	if !managed.Supports(collection.EntityTypeProduct) {
		s.logger.Warn("membership refused: provider does not manage products",
			zap.String("collection_id", collectionID.String()),
			zap.String("provider_key", key))
		return nil
	}
	return managed
}
