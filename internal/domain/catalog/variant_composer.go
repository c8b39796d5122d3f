package catalog

import (
	"iter"
	"strings"

	"github.com/google/uuid"
)

// VariantComposer derives the combination space of a product's options and
// matches attribute selections back to stored variants. It is a stateless
// domain service; all data comes from the product passed in by the caller.
type VariantComposer struct{}

// NewVariantComposer creates a new VariantComposer
func NewVariantComposer() *VariantComposer {
	return &VariantComposer{}
}

// Combinations enumerates the Cartesian product across the product's
// options, one attribute set per combination. The sequence is lazy and
// restartable: a product with k options of n_i choices spans ∏ n_i
// combinations, so callers that only need a prefix can stop early without
// the full space being materialized. Order follows option insertion order,
// with the last option's choices cycling fastest. A product with no options
// yields an empty sequence, not a single empty set.
func (c *VariantComposer) Combinations(p *Product) iter.Seq[[]ProductAttribute] {
	return func(yield func([]ProductAttribute) bool) {
		if len(p.Options) == 0 {
			return
		}
		for i := range p.Options {
			if len(p.Options[i].Choices) == 0 {
				return
			}
		}

		indices := make([]int, len(p.Options))
		for {
			combination := make([]ProductAttribute, len(p.Options))
			for i := range p.Options {
				combination[i] = p.Options[i].Choices[indices[i]]
			}
			if !yield(combination) {
				return
			}

			// Advance the rightmost index that has room, resetting the rest
			pos := len(indices) - 1
			for pos >= 0 {
				indices[pos]++
				if indices[pos] < len(p.Options[pos].Choices) {
					break
				}
				indices[pos] = 0
				pos--
			}
			if pos < 0 {
				return
			}
		}
	}
}

// FindVariant returns the unique variant whose attribute signature exactly
// equals the given selection, or nil when no stored variant matches. A
// missing match is a normal outcome, not an error.
func (c *VariantComposer) FindVariant(p *Product, selection []ProductAttribute) *ProductVariant {
	keys := make([]uuid.UUID, len(selection))
	for i := range selection {
		keys[i] = selection[i].ID
	}
	return c.FindVariantByKeys(p, keys)
}

// FindVariantByKeys is the keyed form of FindVariant for callers holding
// only attribute identifiers.
func (c *VariantComposer) FindVariantByKeys(p *Product, attributeKeys []uuid.UUID) *ProductVariant {
	signature := make(map[uuid.UUID]bool, len(attributeKeys))
	for _, key := range attributeKeys {
		signature[key] = true
	}
	for i := range p.Variants {
		if p.Variants[i].Master {
			continue
		}
		if p.Variants[i].MatchesSignature(signature) {
			return &p.Variants[i]
		}
	}
	return nil
}

// VariantForPurchaseNoOptions returns the master variant only when the
// product has zero options; otherwise nil, forcing the caller to
// disambiguate through an attribute selection.
func (c *VariantComposer) VariantForPurchaseNoOptions(p *Product) *ProductVariant {
	if p.HasOptions() {
		return nil
	}
	return p.MasterVariant()
}

// OptionsForAttributes returns every option owning at least one of the
// given attributes, in option insertion order and without duplicates.
func (c *VariantComposer) OptionsForAttributes(p *Product, attributes []ProductAttribute) []ProductOption {
	var options []ProductOption
	for i := range p.Options {
		for j := range attributes {
			if attributes[j].OptionID == p.Options[i].ID {
				options = append(options, p.Options[i])
				break
			}
		}
	}
	return options
}

// SuggestSKU proposes a variant SKU from the product SKU and the selected
// attributes' SKU fragments, joined in option insertion order.
func (c *VariantComposer) SuggestSKU(p *Product, attributes []ProductAttribute) string {
	parts := []string{p.SKU}
	for i := range p.Options {
		for j := range attributes {
			if attributes[j].OptionID != p.Options[i].ID {
				continue
			}
			fragment := attributes[j].SKUFragment
			if fragment == "" {
				fragment = attributes[j].Name
			}
			parts = append(parts, strings.ToUpper(fragment))
			break
		}
	}
	return strings.Join(parts, "-")
}
