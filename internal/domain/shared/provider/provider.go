package provider

// Kind classifies a capability provider
type Kind string

const (
	KindShipping   Kind = "shipping"
	KindCollection Kind = "collection"
)

// String returns the string representation of the kind
func (k Kind) String() string {
	return string(k)
}

// IsValid returns true if the kind is a known provider kind
func (k Kind) IsValid() bool {
	switch k {
	case KindShipping, KindCollection:
		return true
	default:
		return false
	}
}

// Provider is the base contract every capability provider satisfies.
// A provider is resolved by its stable key and lives as a process-wide
// singleton for the lifetime of the registry that constructed it.
type Provider interface {
	// Key returns the stable identifier the provider is registered under
	Key() string
	// Kind returns the capability family the provider belongs to
	Kind() Kind
	// Name returns a human-readable provider name
	Name() string
}

// EntitySupport is implemented by providers that manage associations for a
// specific family of entities (e.g. collection providers for products).
type EntitySupport interface {
	// Supports reports whether the provider can manage the given entity type
	Supports(entityType string) bool
}

// BaseProvider provides common implementation for providers
type BaseProvider struct {
	key  string
	kind Kind
	name string
}

// NewBaseProvider creates a new BaseProvider
func NewBaseProvider(key string, kind Kind, name string) BaseProvider {
	return BaseProvider{key: key, kind: kind, name: name}
}

// Key returns the provider key
func (p BaseProvider) Key() string {
	return p.key
}

// Kind returns the provider kind
func (p BaseProvider) Kind() Kind {
	return p.kind
}

// Name returns the provider name
func (p BaseProvider) Name() string {
	return p.name
}
