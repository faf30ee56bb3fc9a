package mysql

import (
	"context"
	"errors"

	"github.com/norteparts/catalogsync/internal/catalog/domain"
	"gorm.io/gorm"
)

type supplierRepository struct{ db *gorm.DB }

func (r *supplierRepository) GetBySlug(ctx context.Context, slug string) (*domain.Supplier, error) {
	var s domain.Supplier
	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrSupplierNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *supplierRepository) GetByName(ctx context.Context, name string) (*domain.Supplier, error) {
	var s domain.Supplier
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrSupplierNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *supplierRepository) Save(ctx context.Context, supplier *domain.Supplier) error {
	return r.db.WithContext(ctx).Save(supplier).Error
}

func (r *supplierRepository) List(ctx context.Context) ([]*domain.Supplier, error) {
	var suppliers []*domain.Supplier
	err := r.db.WithContext(ctx).Order("name").Find(&suppliers).Error
	return suppliers, err
}
