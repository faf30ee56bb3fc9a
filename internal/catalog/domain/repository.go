package domain

import "context"

type SupplierRepository interface {
	GetBySlug(ctx context.Context, slug string) (*Supplier, error)
	GetByName(ctx context.Context, name string) (*Supplier, error)
	Save(ctx context.Context, supplier *Supplier) error
	List(ctx context.Context) ([]*Supplier, error)
}

type ProductRepository interface {
	GetByID(ctx context.Context, id uint) (*Product, error)
	// GetByGTIN and GetByMPN match case-insensitively and return (nil, nil)
	// when nothing matches.
	GetByGTIN(ctx context.Context, gtin string) (*Product, error)
	GetByMPN(ctx context.Context, mpn string) (*Product, error)
	// SearchByNameTokens returns the first product whose name contains every
	// token (case-insensitive); when socket is non-empty the candidate's
	// socket must equal it or its description must contain it.
	SearchByNameTokens(ctx context.Context, tokens []string, socket string) (*Product, error)
	Create(ctx context.Context, product *Product) error
	List(ctx context.Context, offset, limit int) ([]*Product, int, error)
}

type IdentifierRepository interface {
	Create(ctx context.Context, identifier *ProductIdentifier) error
	ListAll(ctx context.Context) ([]ProductIdentifier, error)
}

type OfferRepository interface {
	GetBySupplierSKU(ctx context.Context, supplierID uint, sku string) (*SupplierOffer, error)
	GetBySupplierProduct(ctx context.Context, supplierID, productID uint) (*SupplierOffer, error)
	// Create reports uniqueness violations as ErrOfferExists.
	Create(ctx context.Context, offer *SupplierOffer) error
	Update(ctx context.Context, offer *SupplierOffer) error
	ListBySupplier(ctx context.Context, supplierID uint) ([]SupplierOffer, error)
}

type ImportJobRepository interface {
	Create(ctx context.Context, job *ImportJob) error
	Update(ctx context.Context, job *ImportJob) error
	GetByID(ctx context.Context, id uint) (*ImportJob, error)
}

// Repositories bundles every catalog repository so the import pipeline can
// run a whole row against one transaction handle.
type Repositories struct {
	Suppliers   SupplierRepository
	Products    ProductRepository
	Identifiers IdentifierRepository
	Offers      OfferRepository
	Jobs        ImportJobRepository
}
