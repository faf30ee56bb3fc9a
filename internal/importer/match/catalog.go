package match

import (
	"context"
	"strings"

	"github.com/norteparts/catalogsync/internal/catalog/domain"
	"github.com/norteparts/catalogsync/internal/importer/normalize"
)

// CatalogMatcher resolves against the product table directly. Precedence is
// strict: exact case-insensitive GTIN, then exact case-insensitive MPN, then
// the name-token search constrained by socket. First hit wins at every step.
type CatalogMatcher struct {
	products domain.ProductRepository
}

func NewCatalogMatcher(products domain.ProductRepository) *CatalogMatcher {
	return &CatalogMatcher{products: products}
}

func (m *CatalogMatcher) Match(ctx context.Context, rec normalize.Record) (*domain.Product, error) {
	if gtin := strings.TrimSpace(rec.GTIN); gtin != "" {
		p, err := m.products.GetByGTIN(ctx, gtin)
		if err != nil || p != nil {
			return p, err
		}
	}
	if mpn := strings.TrimSpace(rec.MPN); mpn != "" {
		p, err := m.products.GetByMPN(ctx, mpn)
		if err != nil || p != nil {
			return p, err
		}
	}
	if name := strings.TrimSpace(rec.Name); name != "" {
		tokens := NameTokens(name)
		if len(tokens) == 0 {
			return nil, nil
		}
		return m.products.SearchByNameTokens(ctx, tokens, strings.ToUpper(strings.TrimSpace(rec.Socket)))
	}
	return nil, nil
}
