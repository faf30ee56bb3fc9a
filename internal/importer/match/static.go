package match

import (
	"context"
	"strings"

	"github.com/norteparts/catalogsync/internal/catalog/domain"
	"github.com/norteparts/catalogsync/internal/importer/normalize"
)

// StaticIndexMatcher resolves identifiers from a lookup built once per run
// over the product-identifier table. It is the degraded pipeline mode: no
// fuzzy matching, and callers perform no product creation for its misses.
type StaticIndexMatcher struct {
	products domain.ProductRepository
	byValue  map[string]uint
	byFolded map[string]uint
}

// NewStaticIndexMatcher loads every identifier and indexes it by raw value
// and by an upper-cased, space-stripped fold.
func NewStaticIndexMatcher(ctx context.Context, identifiers domain.IdentifierRepository, products domain.ProductRepository) (*StaticIndexMatcher, error) {
	all, err := identifiers.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	m := &StaticIndexMatcher{
		products: products,
		byValue:  make(map[string]uint, len(all)),
		byFolded: make(map[string]uint, len(all)),
	}
	for _, id := range all {
		if _, seen := m.byValue[id.Value]; !seen {
			m.byValue[id.Value] = id.ProductID
		}
		folded := foldIdentifier(id.Value)
		if _, seen := m.byFolded[folded]; !seen {
			m.byFolded[folded] = id.ProductID
		}
	}
	return m, nil
}

func (m *StaticIndexMatcher) Match(ctx context.Context, rec normalize.Record) (*domain.Product, error) {
	ident := strings.TrimSpace(rec.Identifier)
	if ident == "" {
		return nil, nil
	}
	productID, ok := m.byValue[ident]
	if !ok {
		productID, ok = m.byFolded[foldIdentifier(ident)]
	}
	if !ok {
		return nil, nil
	}
	return m.products.GetByID(ctx, productID)
}

func foldIdentifier(v string) string {
	return strings.ToUpper(strings.ReplaceAll(v, " ", ""))
}
