package mysql

import (
	"context"
	"errors"
	"fmt"

	"github.com/norteparts/catalogsync/internal/catalog/domain"
	"gorm.io/gorm"
)

type offerRepository struct{ db *gorm.DB }

func (r *offerRepository) GetBySupplierSKU(ctx context.Context, supplierID uint, sku string) (*domain.SupplierOffer, error) {
	var o domain.SupplierOffer
	err := r.db.WithContext(ctx).
		Where("supplier_id = ? AND supplier_sku = ?", supplierID, sku).
		First(&o).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *offerRepository) GetBySupplierProduct(ctx context.Context, supplierID, productID uint) (*domain.SupplierOffer, error) {
	var o domain.SupplierOffer
	err := r.db.WithContext(ctx).
		Where("supplier_id = ? AND product_id = ?", supplierID, productID).
		First(&o).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *offerRepository) Create(ctx context.Context, offer *domain.SupplierOffer) error {
	err := r.db.WithContext(ctx).Create(offer).Error
	if isDuplicate(err) {
		return fmt.Errorf("%w: supplier=%d sku=%q", domain.ErrOfferExists, offer.SupplierID, offer.SupplierSKU)
	}
	return err
}

func (r *offerRepository) Update(ctx context.Context, offer *domain.SupplierOffer) error {
	return r.db.WithContext(ctx).Save(offer).Error
}

func (r *offerRepository) ListBySupplier(ctx context.Context, supplierID uint) ([]domain.SupplierOffer, error) {
	var offers []domain.SupplierOffer
	err := r.db.WithContext(ctx).
		Where("supplier_id = ?", supplierID).
		Order("supplier_sku").
		Find(&offers).Error
	return offers, err
}
