// Package application exposes the administrative catalog operations the
// excluded presentation layer calls: supplier and product management plus
// read access to offers and jobs.
package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/norteparts/catalogsync/internal/catalog/domain"
)

type CatalogService struct {
	repos domain.Repositories
}

func NewCatalogService(repos domain.Repositories) *CatalogService {
	return &CatalogService{repos: repos}
}

// CreateSupplier registers a feed source. The slug is derived from the name
// when omitted.
func (s *CatalogService) CreateSupplier(ctx context.Context, name, slug, website string, columnMap domain.ColumnMap, usdDefault bool) (*domain.Supplier, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("supplier name is required")
	}
	if slug == "" {
		slug = domain.Slugify(name)
	}
	supplier := &domain.Supplier{
		Name:       name,
		Slug:       slug,
		Website:    website,
		ColumnMap:  columnMap,
		USDDefault: usdDefault,
	}
	if err := s.repos.Suppliers.Save(ctx, supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

// UpdateColumnMap replaces a supplier's feed configuration; everything else
// about a supplier is immutable.
func (s *CatalogService) UpdateColumnMap(ctx context.Context, slug string, columnMap domain.ColumnMap) error {
	supplier, err := s.repos.Suppliers.GetBySlug(ctx, slug)
	if err != nil {
		return err
	}
	supplier.ColumnMap = columnMap
	return s.repos.Suppliers.Save(ctx, supplier)
}

// CreateProduct adds a catalog entity with its slug derived from
// brand+MPN/GTIN/name.
func (s *CatalogService) CreateProduct(ctx context.Context, p *domain.Product) error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("product name is required")
	}
	p.Socket = strings.ToUpper(strings.TrimSpace(p.Socket))
	p.DeriveSlug()
	return s.repos.Products.Create(ctx, p)
}

// AddIdentifier attaches a typed alias to a product, classifying the value
// when kind is empty.
func (s *CatalogService) AddIdentifier(ctx context.Context, productID uint, kind domain.IdentifierKind, value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return fmt.Errorf("identifier value is required")
	}
	if kind == "" {
		kind = domain.ClassifyIdentifier(value)
	}
	return s.repos.Identifiers.Create(ctx, &domain.ProductIdentifier{
		ProductID: productID,
		Kind:      kind,
		Value:     value,
	})
}

// ListOffers returns a supplier's offer rows.
func (s *CatalogService) ListOffers(ctx context.Context, supplierSlug string) ([]domain.SupplierOffer, error) {
	supplier, err := s.repos.Suppliers.GetBySlug(ctx, supplierSlug)
	if err != nil {
		return nil, err
	}
	return s.repos.Offers.ListBySupplier(ctx, supplier.ID)
}

// GetJob returns one import job record.
func (s *CatalogService) GetJob(ctx context.Context, id uint) (*domain.ImportJob, error) {
	return s.repos.Jobs.GetByID(ctx, id)
}

// ListProducts pages through the catalog.
func (s *CatalogService) ListProducts(ctx context.Context, page, size int) ([]*domain.Product, int, error) {
	if size <= 0 {
		size = 50
	}
	offset := (page - 1) * size
	if offset < 0 {
		offset = 0
	}
	return s.repos.Products.List(ctx, offset, size)
}
