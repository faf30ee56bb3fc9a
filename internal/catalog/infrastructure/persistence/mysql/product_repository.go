package mysql

import (
	"context"
	"errors"
	"strings"

	"github.com/norteparts/catalogsync/internal/catalog/domain"
	"gorm.io/gorm"
)

type productRepository struct{ db *gorm.DB }

func (r *productRepository) GetByID(ctx context.Context, id uint) (*domain.Product, error) {
	var p domain.Product
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productRepository) GetByGTIN(ctx context.Context, gtin string) (*domain.Product, error) {
	return r.firstWhere(ctx, "UPPER(gtin) = ?", strings.ToUpper(gtin))
}

func (r *productRepository) GetByMPN(ctx context.Context, mpn string) (*domain.Product, error) {
	return r.firstWhere(ctx, "UPPER(mpn) = ?", strings.ToUpper(mpn))
}

func (r *productRepository) firstWhere(ctx context.Context, cond string, arg interface{}) (*domain.Product, error) {
	var p domain.Product
	err := r.db.WithContext(ctx).Where(cond, arg).Order("id").First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productRepository) SearchByNameTokens(ctx context.Context, tokens []string, socket string) (*domain.Product, error) {
	if len(tokens) == 0 {
		return nil, nil
	}
	q := r.db.WithContext(ctx).Model(&domain.Product{})
	for _, t := range tokens {
		q = q.Where("UPPER(name) LIKE ?", "%"+strings.ToUpper(t)+"%")
	}
	if socket != "" {
		up := strings.ToUpper(socket)
		q = q.Where("UPPER(socket) = ? OR UPPER(description) LIKE ?", up, "%"+up+"%")
	}
	var p domain.Product
	err := q.Order("id").First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productRepository) Create(ctx context.Context, product *domain.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *productRepository) List(ctx context.Context, offset, limit int) ([]*domain.Product, int, error) {
	var products []*domain.Product
	var total int64
	q := r.db.WithContext(ctx).Model(&domain.Product{})
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Order("id").Offset(offset).Limit(limit).Find(&products).Error
	return products, int(total), err
}
